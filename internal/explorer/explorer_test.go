package explorer

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func TestRefresh_DirsFirstThenAlphabetical(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "b.txt"))
	mkfile(t, filepath.Join(dir, "a.txt"))
	os.Mkdir(filepath.Join(dir, "zsub"), 0o755)
	mkfile(t, filepath.Join(dir, ".hidden"))

	w := New("explorer", "Files", dir, Options{})
	defer w.Close()
	if err := w.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	got := entryNames(w.Entries())
	want := []string{"zsub", "a.txt", "b.txt"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestRefresh_ShowHiddenIncludesDotfiles(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, ".env"))

	w := New("explorer", "Files", dir, Options{ShowHidden: true})
	defer w.Close()
	if err := w.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := entryNames(w.Entries()); len(got) != 1 || got[0] != ".env" {
		t.Errorf("entries = %v, want [.env]", got)
	}
}

func TestSelect_ClampsToBounds(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "a.txt"))
	mkfile(t, filepath.Join(dir, "b.txt"))

	w := New("explorer", "Files", dir, Options{})
	defer w.Close()
	w.Refresh()

	w.Select(5)
	if w.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", w.Selected())
	}
	w.Select(-3)
	if w.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", w.Selected())
	}
}

func TestEnterAndUp_NavigateDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	os.Mkdir(sub, 0o755)
	mkfile(t, filepath.Join(sub, "inner.txt"))

	w := New("explorer", "Files", dir, Options{})
	defer w.Close()
	w.Refresh()

	w.Select(0)
	if err := w.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if w.Root() != sub {
		t.Fatalf("Root() = %q, want %q", w.Root(), sub)
	}
	if got := entryNames(w.Entries()); len(got) != 1 || got[0] != "inner.txt" {
		t.Errorf("entries = %v, want [inner.txt]", got)
	}

	if err := w.Up(); err != nil {
		t.Fatalf("Up: %v", err)
	}
	if w.Root() != dir {
		t.Errorf("Root() = %q, want %q", w.Root(), dir)
	}
}

func TestEnter_OnFileIsNoop(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "a.txt"))

	w := New("explorer", "Files", dir, Options{})
	defer w.Close()
	w.Refresh()

	if err := w.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if w.Root() != dir {
		t.Errorf("Root() changed to %q on file entry", w.Root())
	}
}

func TestWatch_RefreshesOnNewFile(t *testing.T) {
	dir := t.TempDir()
	w := New("explorer", "Files", dir, Options{})
	defer w.Close()
	w.Refresh()

	changed := make(chan struct{}, 8)
	w.OnChanged().Connect(func([]Entry) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	mkfile(t, filepath.Join(dir, "new.txt"))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case <-changed:
			for _, e := range w.Entries() {
				if e.Name == "new.txt" {
					return
				}
			}
		case <-deadline:
			t.Fatalf("listing never picked up new.txt: %v", entryNames(w.Entries()))
		}
	}
}
