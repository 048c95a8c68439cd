// Package explorer provides a file navigation widget for a workspace
// directory. Entries refresh automatically while a watcher is running.
package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"workbench/internal/widget"
)

// Kind tags explorer widgets in serialized layouts.
const Kind = "explorer"

// Entry is one file or directory in the listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// Widget lists the contents of a directory. Directories sort before files,
// both alphabetically; dotfiles are skipped unless ShowHidden is set.
type Widget struct {
	*widget.Base

	logger     *zap.Logger
	showHidden bool

	mu       sync.Mutex
	root     string
	entries  []Entry
	selected int
	watcher  *fsnotify.Watcher

	onChanged widget.Signal[[]Entry]
}

// Options configure an explorer widget.
type Options struct {
	ShowHidden bool
	Logger     *zap.Logger
}

// New creates an explorer rooted at dir. Call Refresh to populate the
// listing and Watch to keep it current.
func New(id, label, dir string, opts Options) *Widget {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	w := &Widget{
		Base:       widget.NewBase(id, label),
		logger:     opts.Logger,
		showHidden: opts.ShowHidden,
		root:       dir,
	}
	w.SetKind(Kind)
	w.OnDisposed().Connect(func(widget.Widget) { w.stopWatcher() })
	return w
}

// Root returns the directory being listed.
func (w *Widget) Root() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

// Entries returns a snapshot of the current listing.
func (w *Widget) Entries() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Entry(nil), w.entries...)
}

// OnChanged notifies with the new listing after a refresh.
func (w *Widget) OnChanged() *widget.Signal[[]Entry] { return &w.onChanged }

// Selected returns the index of the highlighted entry.
func (w *Widget) Selected() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selected
}

// Select moves the highlight, clamping to the listing bounds.
func (w *Widget) Select(i int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.entries) == 0 {
		w.selected = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(w.entries) {
		i = len(w.entries) - 1
	}
	w.selected = i
}

// Refresh re-reads the directory and replaces the listing.
func (w *Widget) Refresh() error {
	w.mu.Lock()
	root := w.root
	w.mu.Unlock()

	dirents, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", root, err)
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if !w.showHidden && strings.HasPrefix(d.Name(), ".") {
			continue
		}
		entries = append(entries, Entry{
			Name:  d.Name(),
			Path:  filepath.Join(root, d.Name()),
			IsDir: d.IsDir(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	w.mu.Lock()
	w.entries = entries
	if w.selected >= len(entries) {
		w.selected = len(entries) - 1
	}
	if w.selected < 0 {
		w.selected = 0
	}
	w.mu.Unlock()
	w.onChanged.Emit(entries)
	return nil
}

// Enter descends into the selected directory, refreshing the listing.
// Selecting a file is a no-op here; opening files is the host's job.
func (w *Widget) Enter() error {
	w.mu.Lock()
	var target string
	if w.selected < len(w.entries) && w.entries[w.selected].IsDir {
		target = w.entries[w.selected].Path
	}
	w.mu.Unlock()
	if target == "" {
		return nil
	}
	return w.SetRoot(target)
}

// Up ascends to the parent directory.
func (w *Widget) Up() error {
	w.mu.Lock()
	parent := filepath.Dir(w.root)
	w.mu.Unlock()
	return w.SetRoot(parent)
}

// SetRoot changes the listed directory. A running watcher follows the move.
func (w *Widget) SetRoot(dir string) error {
	w.mu.Lock()
	old := w.root
	w.root = dir
	w.selected = 0
	watcher := w.watcher
	w.mu.Unlock()

	if watcher != nil {
		// Best effort; the old path may already be gone.
		watcher.Remove(old)
		if err := watcher.Add(dir); err != nil {
			w.logger.Warn("failed to watch directory", zap.String("dir", dir), zap.Error(err))
		}
	}
	return w.Refresh()
}

// Watch starts an fsnotify watcher that refreshes the listing on any change
// in the current directory. The watcher stops when the widget is disposed.
func (w *Widget) Watch() error {
	w.mu.Lock()
	if w.watcher != nil {
		w.mu.Unlock()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.watcher = watcher
	root := w.root
	w.mu.Unlock()

	if err := watcher.Add(root); err != nil {
		w.stopWatcher()
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}
	go func() {
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				if err := w.Refresh(); err != nil {
					w.logger.Warn("refresh failed", zap.Error(err))
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

func (w *Widget) stopWatcher() {
	w.mu.Lock()
	watcher := w.watcher
	w.watcher = nil
	w.mu.Unlock()
	if watcher != nil {
		watcher.Close()
	}
}
