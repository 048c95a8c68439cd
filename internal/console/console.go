// Package console provides a terminal widget backed by a pseudo-terminal.
// The widget is host-agnostic: it buffers output lines and the UI layer
// decides how to render them.
package console

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	"workbench/internal/widget"
)

// Kind tags console widgets in serialized layouts.
const Kind = "console"

const (
	defaultShell    = "sh"
	defaultMaxLines = 500
	defaultRows     = 18
	defaultCols     = 80
)

// Options configure a console widget. Zero values fall back to defaults.
type Options struct {
	Shell    string // command to spawn, defaults to sh
	Dir      string // working directory for the shell
	MaxLines int    // output buffer cap in lines
	Runner   Runner // PTY implementation, defaults to CreackRunner
	Logger   *zap.Logger
}

// Widget is a tabbed terminal. Output accumulates in a bounded line buffer;
// disposing the widget terminates the underlying shell.
type Widget struct {
	*widget.Base

	shell    string
	dir      string
	maxLines int
	runner   Runner
	logger   *zap.Logger

	mu      sync.Mutex
	ptmx    io.ReadWriteCloser
	lines   []string
	partial string
	size    Size

	onData widget.Signal[[]byte]
}

// New creates a console widget. The shell is not spawned until Start.
func New(id, label string, opts Options) *Widget {
	if opts.Shell == "" {
		opts.Shell = defaultShell
	}
	if opts.MaxLines <= 0 {
		opts.MaxLines = defaultMaxLines
	}
	if opts.Runner == nil {
		opts.Runner = &CreackRunner{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	w := &Widget{
		Base:     widget.NewBase(id, label),
		shell:    opts.Shell,
		dir:      opts.Dir,
		maxLines: opts.MaxLines,
		runner:   opts.Runner,
		logger:   opts.Logger,
		size:     Size{Rows: defaultRows, Cols: defaultCols},
	}
	w.SetKind(Kind)
	w.Title().Closable = true
	w.OnDisposed().Connect(func(widget.Widget) { w.shutdown() })
	return w
}

// OnData notifies when new PTY output has been buffered. Handlers run on the
// reader goroutine; they should only schedule a repaint.
func (w *Widget) OnData() *widget.Signal[[]byte] { return &w.onData }

// Start spawns the shell and begins reading its output. Calling Start on a
// running console is an error.
func (w *Widget) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ptmx != nil {
		return fmt.Errorf("console %s already started", w.ID())
	}
	cmd := exec.Command(w.shell)
	cmd.Dir = w.dir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}
	ptmx, err := w.runner.Start(cmd, w.size)
	if err != nil {
		return fmt.Errorf("failed to spawn %s: %w", w.shell, err)
	}
	w.ptmx = ptmx
	go w.readLoop(ptmx)
	return nil
}

// Running reports whether the shell has been started and not yet shut down.
func (w *Widget) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ptmx != nil
}

// Send writes input to the shell.
func (w *Widget) Send(data []byte) error {
	w.mu.Lock()
	ptmx := w.ptmx
	w.mu.Unlock()
	if ptmx == nil {
		return fmt.Errorf("console %s not running", w.ID())
	}
	_, err := ptmx.Write(data)
	return err
}

// Resize propagates new terminal dimensions to the PTY.
func (w *Widget) Resize(rows, cols uint16) error {
	w.mu.Lock()
	w.size = Size{Rows: rows, Cols: cols}
	ptmx := w.ptmx
	w.mu.Unlock()
	if ptmx == nil {
		return nil
	}
	return w.runner.Resize(ptmx, w.size)
}

// Lines returns a snapshot of the buffered output, oldest first. A trailing
// partial line is included as the last element.
func (w *Widget) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.lines)+1)
	out = append(out, w.lines...)
	if w.partial != "" {
		out = append(out, w.partial)
	}
	return out
}

func (w *Widget) readLoop(ptmx io.ReadWriteCloser) {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			cp := make([]byte, n)
			copy(cp, buf[:n])
			w.append(cp)
			w.onData.Emit(cp)
		}
		if err != nil {
			// EOF when the shell exits or the PTY is closed on dispose.
			if err != io.EOF {
				w.logger.Debug("console read ended", zap.String("id", w.ID()), zap.Error(err))
			}
			return
		}
	}
}

func (w *Widget) append(data []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	text := w.partial + strings.ReplaceAll(string(data), "\r", "")
	parts := strings.Split(text, "\n")
	w.partial = parts[len(parts)-1]
	w.lines = append(w.lines, parts[:len(parts)-1]...)
	if over := len(w.lines) - w.maxLines; over > 0 {
		w.lines = append([]string(nil), w.lines[over:]...)
	}
}

func (w *Widget) shutdown() {
	w.mu.Lock()
	ptmx := w.ptmx
	w.ptmx = nil
	w.mu.Unlock()
	if ptmx != nil {
		ptmx.Close()
	}
}
