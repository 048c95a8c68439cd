package shell

import (
	"context"

	"golang.org/x/sync/errgroup"

	"workbench/internal/widget"
)

// CanSave reports whether the current widget is dirty according to the save
// collaborator.
func (s *Shell) CanSave() bool {
	if s.saver == nil {
		return false
	}
	w := s.tracker.Current()
	return w != nil && s.saver.Dirty(w)
}

// Save persists the current widget through the save collaborator. No-op
// when there is nothing to save; collaborator failures propagate unmodified.
func (s *Shell) Save(ctx context.Context) error {
	if !s.CanSave() {
		return nil
	}
	ctx, span := tracer.Start(ctx, "shell.Save")
	defer span.End()
	return s.saver.Save(ctx, s.tracker.Current())
}

// CanSaveAll reports whether any tracked widget is dirty.
func (s *Shell) CanSaveAll() bool {
	if s.saver == nil {
		return false
	}
	for _, w := range s.tracker.Widgets() {
		if s.saver.Dirty(w) {
			return true
		}
	}
	return false
}

// SaveAll persists every dirty tracked widget, saving concurrently across
// widgets. The first failure is returned; others still run to completion.
func (s *Shell) SaveAll(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	ctx, span := tracer.Start(ctx, "shell.SaveAll")
	defer span.End()

	var dirty []widget.Widget
	for _, w := range s.tracker.Widgets() {
		if s.saver.Dirty(w) {
			dirty = append(dirty, w)
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range dirty {
		g.Go(func() error {
			return s.saver.Save(ctx, w)
		})
	}
	return g.Wait()
}
