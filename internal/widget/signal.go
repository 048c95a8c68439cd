package widget

// Signal is a synchronous typed event with ordered fan-out.
// Handlers run in connect order on the emitting goroutine.
// The zero value is ready to use.
type Signal[T any] struct {
	nextID   int
	handlers []signalHandler[T]
}

type signalHandler[T any] struct {
	id int
	fn func(T)
}

// Connect registers a handler and returns a function that disconnects it.
// Disconnecting twice is a no-op.
func (s *Signal[T]) Connect(fn func(T)) func() {
	id := s.nextID
	s.nextID++
	s.handlers = append(s.handlers, signalHandler[T]{id: id, fn: fn})
	return func() {
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every connected handler with v.
// Handlers connected or disconnected during emission do not affect this emission.
func (s *Signal[T]) Emit(v T) {
	snapshot := make([]signalHandler[T], len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		h.fn(v)
	}
}
