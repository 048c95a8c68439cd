// Package editor provides a text file widget for the main area with dirty
// tracking and disk persistence.
package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"workbench/internal/widget"
)

// Kind tags editor widgets in serialized layouts.
const Kind = "editor"

// dirtyClass marks tabs with unsaved changes.
const dirtyClass = "dirty"

// Widget holds the contents of one file. Edits accumulate in memory until
// Save writes them back.
type Widget struct {
	*widget.Base

	mu      sync.Mutex
	path    string
	content string
	dirty   bool
}

// WidgetID returns the canonical widget ID for a file path, so the same
// file always maps to the same tab.
func WidgetID(path string) string { return "editor:" + path }

// New creates an editor for path without touching the disk. Use Open to
// load an existing file.
func New(path string) *Widget {
	w := &Widget{
		Base: widget.NewBase(WidgetID(path), filepath.Base(path)),
		path: path,
	}
	w.SetKind(Kind)
	w.Title().Closable = true
	return w
}

// Open creates an editor and loads the file's current contents. A missing
// file yields an empty dirty buffer, so saving creates it.
func Open(path string) (*Widget, error) {
	w := New(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			w.markDirty(true)
			return w, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	w.content = string(data)
	return w, nil
}

// Path returns the file backing this editor.
func (w *Widget) Path() string { return w.path }

// Content returns the in-memory buffer.
func (w *Widget) Content() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content
}

// SetContent replaces the buffer and marks the editor dirty.
func (w *Widget) SetContent(s string) {
	w.mu.Lock()
	changed := s != w.content
	w.content = s
	w.mu.Unlock()
	if changed {
		w.markDirty(true)
	}
}

// Dirty reports whether the buffer has unsaved changes.
func (w *Widget) Dirty() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dirty
}

// Save writes the buffer to disk and clears the dirty flag.
func (w *Widget) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	content := w.content
	w.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", w.path, err)
	}
	if err := os.WriteFile(w.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", w.path, err)
	}
	w.markDirty(false)
	return nil
}

func (w *Widget) markDirty(dirty bool) {
	w.mu.Lock()
	w.dirty = dirty
	w.mu.Unlock()
	if dirty {
		w.Title().AddClass(dirtyClass)
	} else {
		w.Title().RemoveClass(dirtyClass)
	}
}
