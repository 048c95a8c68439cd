package shell

import "workbench/internal/widget"

// FocusChange describes a current- or active-widget transition.
// Either side may be nil.
type FocusChange struct {
	Old widget.Widget
	New widget.Widget
}

// FocusTracker tracks the current and active widget across all shell areas.
// The current widget is the last-focused among tracked widgets and persists
// when focus leaves them; the active widget holds input focus right now and
// goes nil when focus moves outside all tracked widgets.
type FocusTracker struct {
	widgets []widget.Widget
	current widget.Widget
	active  widget.Widget

	onCurrentChanged widget.Signal[FocusChange]
	onActiveChanged  widget.Signal[FocusChange]

	disconnects map[string]func()
}

// NewFocusTracker creates an empty tracker.
func NewFocusTracker() *FocusTracker {
	return &FocusTracker{disconnects: make(map[string]func())}
}

// Widgets returns the tracked widgets in registration order.
func (t *FocusTracker) Widgets() []widget.Widget { return t.widgets }

// Current returns the last-focused tracked widget, or nil.
func (t *FocusTracker) Current() widget.Widget { return t.current }

// Active returns the widget holding focus now, or nil.
func (t *FocusTracker) Active() widget.Widget { return t.active }

// Has reports whether the widget with the given id is tracked.
func (t *FocusTracker) Has(id string) bool {
	for _, w := range t.widgets {
		if w.ID() == id {
			return true
		}
	}
	return false
}

// Add starts tracking w. Idempotent; disposed widgets are untracked
// automatically.
func (t *FocusTracker) Add(w widget.Widget) {
	if w == nil || t.Has(w.ID()) {
		return
	}
	t.widgets = append(t.widgets, w)
	t.disconnects[w.ID()] = w.OnDisposed().Connect(func(widget.Widget) {
		t.Remove(w)
	})
}

// Remove stops tracking w. If w was current or active, that slot is cleared
// and the change is emitted.
func (t *FocusTracker) Remove(w widget.Widget) {
	if w == nil {
		return
	}
	for i, x := range t.widgets {
		if widget.SameWidget(x, w) {
			t.widgets = append(t.widgets[:i], t.widgets[i+1:]...)
			if disconnect, ok := t.disconnects[w.ID()]; ok {
				disconnect()
				delete(t.disconnects, w.ID())
			}
			if widget.SameWidget(t.active, w) {
				old := t.active
				t.active = nil
				t.onActiveChanged.Emit(FocusChange{Old: old})
			}
			if widget.SameWidget(t.current, w) {
				old := t.current
				t.current = nil
				t.onCurrentChanged.Emit(FocusChange{Old: old})
			}
			return
		}
	}
}

// SetActive marks w as holding input focus. A non-nil w also becomes the
// current widget.
func (t *FocusTracker) SetActive(w widget.Widget) {
	if !widget.SameWidget(t.active, w) {
		old := t.active
		t.active = w
		t.onActiveChanged.Emit(FocusChange{Old: old, New: w})
	}
	if w != nil && !widget.SameWidget(t.current, w) {
		old := t.current
		t.current = w
		t.onCurrentChanged.Emit(FocusChange{Old: old, New: w})
	}
}

// ClearActive records that focus left all tracked widgets. The current
// widget persists.
func (t *FocusTracker) ClearActive() {
	t.SetActive(nil)
}

func (t *FocusTracker) OnCurrentChanged() *widget.Signal[FocusChange] { return &t.onCurrentChanged }
func (t *FocusTracker) OnActiveChanged() *widget.Signal[FocusChange]  { return &t.onActiveChanged }
