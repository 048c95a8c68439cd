package console

import (
	"bytes"
	"io"
	"os/exec"
	"sync"
	"testing"
	"time"
)

// fakePTY feeds scripted output to the reader and records writes.
type fakePTY struct {
	out *io.PipeReader
	in  *io.PipeWriter

	mu      sync.Mutex
	written bytes.Buffer
	closed  bool
}

func newFakePTY() *fakePTY {
	r, w := io.Pipe()
	return &fakePTY{out: r, in: w}
}

func (f *fakePTY) feed(s string) { f.in.Write([]byte(s)) }

func (f *fakePTY) Read(p []byte) (int, error) { return f.out.Read(p) }

func (f *fakePTY) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.written.Write(p)
}

func (f *fakePTY) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.in.Close()
	return f.out.Close()
}

func (f *fakePTY) wasClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

type fakeRunner struct {
	pty      *fakePTY
	lastSize Size
}

func (r *fakeRunner) Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	r.lastSize = size
	return r.pty, nil
}

func (r *fakeRunner) Resize(rwc io.ReadWriteCloser, size Size) error {
	r.lastSize = size
	return nil
}

func newTestConsole(t *testing.T, maxLines int) (*Widget, *fakePTY, <-chan struct{}) {
	t.Helper()
	fp := newFakePTY()
	w := New("console-1", "Terminal", Options{
		Runner:   &fakeRunner{pty: fp},
		MaxLines: maxLines,
	})
	dataCh := make(chan struct{}, 16)
	w.OnData().Connect(func([]byte) {
		select {
		case dataCh <- struct{}{}:
		default:
		}
	})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return w, fp, dataCh
}

func waitData(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for console output")
	}
}

func TestConsole_BuffersOutputLines(t *testing.T) {
	w, fp, dataCh := newTestConsole(t, 100)
	defer w.Close()

	fp.feed("hello\r\nworld\r\n")
	waitData(t, dataCh)

	lines := w.Lines()
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "world" {
		t.Errorf("Lines() = %v, want [hello world]", lines)
	}
}

func TestConsole_PartialLineIsVisible(t *testing.T) {
	w, fp, dataCh := newTestConsole(t, 100)
	defer w.Close()

	fp.feed("$ ec")
	waitData(t, dataCh)

	lines := w.Lines()
	if len(lines) != 1 || lines[0] != "$ ec" {
		t.Errorf("Lines() = %v, want the partial prompt", lines)
	}
}

func TestConsole_TrimsToMaxLines(t *testing.T) {
	w, fp, dataCh := newTestConsole(t, 2)
	defer w.Close()

	fp.feed("one\ntwo\nthree\n")
	waitData(t, dataCh)

	lines := w.Lines()
	if len(lines) != 2 || lines[0] != "two" || lines[1] != "three" {
		t.Errorf("Lines() = %v, want [two three]", lines)
	}
}

func TestConsole_SendWritesToPTY(t *testing.T) {
	w, fp, _ := newTestConsole(t, 100)
	defer w.Close()

	if err := w.Send([]byte("ls\r")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	fp.mu.Lock()
	got := fp.written.String()
	fp.mu.Unlock()
	if got != "ls\r" {
		t.Errorf("pty received %q, want %q", got, "ls\r")
	}
}

func TestConsole_DisposeClosesPTY(t *testing.T) {
	w, fp, _ := newTestConsole(t, 100)

	w.Close()
	if !w.Disposed() {
		t.Error("widget not disposed after Close")
	}
	if !fp.wasClosed() {
		t.Error("PTY not closed on dispose")
	}
	if w.Running() {
		t.Error("Running() = true after dispose")
	}
	if err := w.Send([]byte("x")); err == nil {
		t.Error("Send after dispose should fail")
	}
}

func TestConsole_StartTwiceFails(t *testing.T) {
	w, _, _ := newTestConsole(t, 100)
	defer w.Close()

	if err := w.Start(); err == nil {
		t.Error("second Start should fail")
	}
}

func TestConsole_ResizeTracksSize(t *testing.T) {
	fp := newFakePTY()
	fr := &fakeRunner{pty: fp}
	w := New("console-1", "Terminal", Options{Runner: fr})
	defer w.Close()

	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Resize(40, 120); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if fr.lastSize.Rows != 40 || fr.lastSize.Cols != 120 {
		t.Errorf("runner saw size %+v, want 40x120", fr.lastSize)
	}
}
