package editor

import (
	"context"

	"workbench/internal/shell"
	"workbench/internal/widget"
)

// Saver adapts editor widgets to the shell's save coordination. Widgets of
// other kinds are never dirty from its point of view.
type Saver struct{}

var _ shell.Saveable = (*Saver)(nil)

// Dirty implements shell.Saveable.
func (Saver) Dirty(w widget.Widget) bool {
	ed, ok := w.(*Widget)
	return ok && ed.Dirty()
}

// Save implements shell.Saveable.
func (Saver) Save(ctx context.Context, w widget.Widget) error {
	ed, ok := w.(*Widget)
	if !ok {
		return nil
	}
	return ed.Save(ctx)
}
