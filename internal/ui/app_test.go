package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"workbench/internal/config"
	"workbench/internal/shell"
	"workbench/internal/storage"
	"workbench/internal/widget"
)

func testConfig() config.Config {
	cfg := config.Config{}
	cfg.Theme = config.Theme{Accent: "86", Highlight: "205", Muted: "241", Text: "252", Danger: "196"}
	return cfg
}

func panel(id, label string) *widget.Base {
	w := widget.NewBase(id, label)
	w.SetKind("panel")
	return w
}

func newTestModel(t *testing.T) (*Model, *shell.Shell) {
	t.Helper()
	sh := shell.New(shell.Options{})
	sh.AddToMainArea(panel("one", "One"))
	sh.AddToMainArea(panel("two", "Two"))
	sh.AddToLeftArea(panel("files", "Files"), nil)
	m := NewModel(sh, nil, testConfig(), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, sh
}

func TestModel_TabKeyCyclesTabs(t *testing.T) {
	m, sh := newTestModel(t)
	sh.ActivateWidget("one")

	_, cmd := m.Update(keyMsg("tab"))
	if cmd == nil {
		t.Fatal("tab produced no command")
	}
	m.Update(cmd())
	if cur := sh.MainArea().ActiveTabBar().CurrentTitle(); cur == nil || cur.Label != "Two" {
		t.Errorf("current tab = %v, want Two", cur)
	}
}

func TestModel_ToggleSideExpandsAndCollapses(t *testing.T) {
	m, sh := newTestModel(t)

	if sh.LeftBar().Expanded() {
		t.Fatal("left bar should start collapsed")
	}
	m.Update(toggleSideMsg{shell.SideLeft})
	if !sh.LeftBar().Expanded() {
		t.Error("toggle did not expand the left bar")
	}
	m.Update(toggleSideMsg{shell.SideLeft})
	if sh.LeftBar().Expanded() {
		t.Error("second toggle did not collapse the left bar")
	}
}

func TestModel_CloseTabMsg(t *testing.T) {
	m, sh := newTestModel(t)
	sh.ActivateWidget("one")

	m.Update(closeTabMsg{})
	ids := []string{}
	for _, w := range sh.MainArea().Widgets() {
		ids = append(ids, w.ID())
	}
	if len(ids) != 1 || ids[0] != "two" {
		t.Errorf("main widgets after close = %v, want [two]", ids)
	}
}

func TestModel_QuitPersistsLayout(t *testing.T) {
	store := storage.NewStoreAt(t.TempDir())
	sh := shell.New(shell.Options{})
	sh.AddToMainArea(panel("one", "One"))
	m := NewModel(sh, store, testConfig(), nil)

	_, cmd := m.Update(quitMsg{})
	if cmd == nil {
		t.Fatal("quit produced no command")
	}

	reg := storage.NewRegistry(nil)
	reg.Register("panel", func(ref storage.WidgetRef) (widget.Widget, error) {
		return panel(ref.ID, ref.Label), nil
	})
	d, found, err := store.LoadLayout(reg)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if !found {
		t.Fatal("layout not persisted on quit")
	}
	if d.MainArea == nil || len(d.MainArea.Widgets) != 1 {
		t.Errorf("persisted main area = %+v", d.MainArea)
	}
}

func TestModel_ViewShowsTabsAndStatus(t *testing.T) {
	m, sh := newTestModel(t)
	sh.ActivateWidget("one")

	out := m.View()
	for _, want := range []string{"One", "Two", "Files", "workbench"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_MenuConsumesKeysUntilDismissed(t *testing.T) {
	m, sh := newTestModel(t)
	sh.ActivateWidget("one")
	m.Menu().Render([]string{"edit", "copy"}, 4, 2)

	// While a menu is up, tab must not move tabs.
	m.Update(keyMsg("tab"))
	if !strings.Contains(m.View(), "edit / copy") {
		t.Error("menu not rendered")
	}

	m.Update(keyMsg("esc"))
	if m.Menu().Visible() {
		t.Error("esc did not dismiss the menu")
	}
}
