package widget

import "testing"

func TestSignal_EmitInConnectOrder(t *testing.T) {
	var s Signal[int]
	var order []string
	s.Connect(func(int) { order = append(order, "first") })
	s.Connect(func(int) { order = append(order, "second") })

	s.Emit(1)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}

func TestSignal_DisconnectStopsDelivery(t *testing.T) {
	var s Signal[string]
	count := 0
	disconnect := s.Connect(func(string) { count++ })
	s.Emit("a")
	disconnect()
	disconnect() // second call is a no-op
	s.Emit("b")
	if count != 1 {
		t.Errorf("expected 1 delivery, got %d", count)
	}
}

func TestSignal_DisconnectDuringEmit(t *testing.T) {
	var s Signal[int]
	var disconnect func()
	got := 0
	disconnect = s.Connect(func(int) {
		got++
		disconnect()
	})
	s.Emit(1)
	s.Emit(2)
	if got != 1 {
		t.Errorf("handler should run once, ran %d times", got)
	}
}

func TestSignal_PayloadDelivered(t *testing.T) {
	var s Signal[CurrentChange]
	var last CurrentChange
	s.Connect(func(c CurrentChange) { last = c })

	a := &Title{Label: "A"}
	s.Emit(CurrentChange{New: a})
	if last.New != a {
		t.Error("payload should arrive unchanged")
	}
}
