package shell

import (
	"testing"

	"workbench/internal/widget"
)

func TestFocusTracker_CurrentPersistsWhenActiveClears(t *testing.T) {
	tr := NewFocusTracker()
	w := widget.NewBase("editor", "Editor")
	tr.Add(w)

	tr.SetActive(w)
	if tr.Active() == nil || tr.Active().ID() != "editor" {
		t.Fatal("expected editor active")
	}
	if tr.Current() == nil || tr.Current().ID() != "editor" {
		t.Fatal("expected editor current")
	}

	// Focus moves outside all tracked widgets (e.g. to a dialog).
	tr.ClearActive()
	if tr.Active() != nil {
		t.Error("expected active nil after focus left")
	}
	if tr.Current() == nil || tr.Current().ID() != "editor" {
		t.Error("expected current to persist after focus left")
	}
}

func TestFocusTracker_AddIsIdempotent(t *testing.T) {
	tr := NewFocusTracker()
	w := widget.NewBase("w", "W")
	tr.Add(w)
	tr.Add(w)
	if len(tr.Widgets()) != 1 {
		t.Errorf("expected 1 tracked widget, got %d", len(tr.Widgets()))
	}
}

func TestFocusTracker_RemoveClearsSlots(t *testing.T) {
	tr := NewFocusTracker()
	w := widget.NewBase("w", "W")
	tr.Add(w)
	tr.SetActive(w)

	var currentEvents, activeEvents []FocusChange
	tr.OnCurrentChanged().Connect(func(c FocusChange) { currentEvents = append(currentEvents, c) })
	tr.OnActiveChanged().Connect(func(c FocusChange) { activeEvents = append(activeEvents, c) })

	tr.Remove(w)
	if tr.Current() != nil || tr.Active() != nil {
		t.Error("expected current and active cleared after removal")
	}
	if len(currentEvents) != 1 || currentEvents[0].New != nil {
		t.Errorf("expected one current change to nil, got %v", currentEvents)
	}
	if len(activeEvents) != 1 || activeEvents[0].New != nil {
		t.Errorf("expected one active change to nil, got %v", activeEvents)
	}
}

func TestFocusTracker_DisposedWidgetIsUntracked(t *testing.T) {
	tr := NewFocusTracker()
	w := widget.NewBase("w", "W")
	tr.Add(w)
	tr.SetActive(w)

	w.Close()
	if tr.Has("w") {
		t.Error("expected disposed widget to leave the tracker")
	}
	if tr.Current() != nil {
		t.Error("expected current cleared when its widget is disposed")
	}
}

func TestFocusTracker_ActiveSwitchEmitsBothDirections(t *testing.T) {
	tr := NewFocusTracker()
	a := widget.NewBase("a", "A")
	b := widget.NewBase("b", "B")
	tr.Add(a)
	tr.Add(b)

	tr.SetActive(a)
	var got []FocusChange
	tr.OnActiveChanged().Connect(func(c FocusChange) { got = append(got, c) })
	tr.SetActive(b)

	if len(got) != 1 {
		t.Fatalf("expected 1 active change, got %d", len(got))
	}
	if got[0].Old.ID() != "a" || got[0].New.ID() != "b" {
		t.Errorf("expected a->b, got %v->%v", got[0].Old, got[0].New)
	}
}
