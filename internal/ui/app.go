package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"workbench/internal/config"
	"workbench/internal/console"
	"workbench/internal/editor"
	"workbench/internal/explorer"
	"workbench/internal/shell"
	"workbench/internal/storage"
	"workbench/internal/widget"
)

// refreshMsg asks for a repaint after background widget activity (console
// output, file system changes).
type refreshMsg struct{}

// Commands dispatched by keybindings.
type (
	quitMsg        struct{}
	nextTabMsg     struct{}
	prevTabMsg     struct{}
	collapseMsg    struct{}
	closeTabMsg    struct{}
	closeOthersMsg struct{}
	closeRightMsg  struct{}
	closeAllMsg    struct{}
	saveMsg        struct{}
	saveAllMsg     struct{}
	toggleSideMsg  struct{ side shell.Side }
)

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Model is the root Bubble Tea model hosting a shell.
type Model struct {
	Shell *shell.Shell

	store      *storage.Store
	logger     *zap.Logger
	styles     Styles
	keyHandler *KeyHandler
	menu       *Menu

	width, height int
	status        string
	refreshCh     chan struct{}
}

var _ tea.Model = (*Model)(nil)

// NewModel creates the root model. The store may be nil, in which case the
// layout is not persisted on quit.
func NewModel(sh *shell.Shell, store *storage.Store, cfg config.Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", msgCmd(quitMsg{}), "Quit")
	reg.BindWithDesc("SPC q", msgCmd(quitMsg{}), "Quit")
	reg.BindWithDesc("tab", msgCmd(nextTabMsg{}), "Next tab")
	reg.BindWithDesc("shift+tab", msgCmd(prevTabMsg{}), "Previous tab")
	reg.BindWithDesc("SPC 1", msgCmd(toggleSideMsg{shell.SideLeft}), "Toggle left bar")
	reg.BindWithDesc("SPC 2", msgCmd(toggleSideMsg{shell.SideBottom}), "Toggle bottom bar")
	reg.BindWithDesc("SPC 3", msgCmd(toggleSideMsg{shell.SideRight}), "Toggle right bar")
	reg.BindWithDesc("SPC w w", msgCmd(collapseMsg{}), "Collapse current")
	reg.BindWithDesc("SPC w c", msgCmd(closeTabMsg{}), "Close tab")
	reg.BindWithDesc("SPC w o", msgCmd(closeOthersMsg{}), "Close others")
	reg.BindWithDesc("SPC w r", msgCmd(closeRightMsg{}), "Close to the right")
	reg.BindWithDesc("SPC w a", msgCmd(closeAllMsg{}), "Close all")
	reg.BindWithDesc("SPC f s", msgCmd(saveMsg{}), "Save")
	reg.BindWithDesc("SPC f a", msgCmd(saveAllMsg{}), "Save all")

	menu := &Menu{}
	if shared, ok := sh.ContextMenu().(*Menu); ok {
		menu = shared
	}
	m := &Model{
		Shell:      sh,
		store:      store,
		logger:     logger,
		styles:     NewStyles(cfg.Theme),
		keyHandler: NewKeyHandler(reg),
		menu:       menu,
		refreshCh:  make(chan struct{}, 1),
	}
	sh.OnCurrentChanged().Connect(func(c shell.FocusChange) {
		if c.New != nil {
			m.status = c.New.Title().Label
		} else {
			m.status = ""
		}
	})
	for _, w := range sh.Tracker().Widgets() {
		m.Attach(w)
	}
	return m
}

// Menu returns the context menu collaborator, for wiring into shell.Options.
func (m *Model) Menu() *Menu { return m.menu }

// Attach subscribes the model to a widget's background activity so output
// triggers a repaint. Call it for every widget added after construction.
func (m *Model) Attach(w widget.Widget) {
	switch w := w.(type) {
	case *console.Widget:
		w.OnData().Connect(func([]byte) { m.notifyRefresh() })
	case *explorer.Widget:
		w.OnChanged().Connect(func([]explorer.Entry) { m.notifyRefresh() })
	}
}

func (m *Model) notifyRefresh() {
	select {
	case m.refreshCh <- struct{}{}:
	default:
	}
}

func (m *Model) waitRefresh() tea.Cmd {
	return func() tea.Msg {
		<-m.refreshCh
		return refreshMsg{}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitRefresh()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeConsoles()
		return m, nil
	case refreshMsg:
		return m, m.waitRefresh()
	case quitMsg:
		m.persistLayout()
		return m, tea.Quit
	case nextTabMsg:
		m.Shell.ActivateNextTab()
		return m, nil
	case prevTabMsg:
		m.Shell.ActivatePreviousTab()
		return m, nil
	case collapseMsg:
		m.Shell.CollapseCurrentTab()
		return m, nil
	case closeTabMsg:
		m.Shell.CloseCurrentTab()
		return m, nil
	case closeOthersMsg:
		m.Shell.CloseOtherTabs()
		return m, nil
	case closeRightMsg:
		m.Shell.CloseRightTabs()
		return m, nil
	case closeAllMsg:
		m.Shell.CloseAllTabs()
		return m, nil
	case saveMsg:
		if err := m.Shell.Save(context.Background()); err != nil {
			m.logger.Error("save failed", zap.Error(err))
			m.status = "save failed: " + err.Error()
		}
		return m, nil
	case saveAllMsg:
		if err := m.Shell.SaveAll(context.Background()); err != nil {
			m.logger.Error("save all failed", zap.Error(err))
			m.status = "save failed: " + err.Error()
		}
		return m, nil
	case toggleSideMsg:
		m.toggleSide(msg.side)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.Visible() {
		if s := msg.String(); s == "esc" || s == "enter" {
			m.menu.Dismiss()
		}
		return m, nil
	}

	// With a console focused, plain keys belong to the shell process. Only
	// control chords and tab cycling stay global.
	if c := m.activeConsole(); c != nil && !globalKey(msg.String()) {
		if b := keyToPTYBytes(msg); len(b) > 0 {
			if err := c.Send(b); err != nil {
				m.logger.Warn("console input dropped", zap.Error(err))
			}
		}
		return m, nil
	}

	if consumed, cmd := m.keyHandler.Handle(msg); consumed {
		return m, cmd
	}

	if e := m.activeExplorer(); e != nil {
		return m, m.handleExplorerKey(e, msg.String())
	}
	return m, nil
}

// globalKey reports whether a key bypasses console input passthrough.
func globalKey(s string) bool {
	if s == "tab" || s == "shift+tab" {
		return true
	}
	return len(s) > 5 && s[:5] == "ctrl+"
}

func (m *Model) handleExplorerKey(e *explorer.Widget, s string) tea.Cmd {
	switch s {
	case "j", "down":
		e.Select(e.Selected() + 1)
	case "k", "up":
		e.Select(e.Selected() - 1)
	case "backspace", "h":
		if err := e.Up(); err != nil {
			m.logger.Warn("explorer navigation failed", zap.Error(err))
		}
	case "enter", "l":
		entries := e.Entries()
		i := e.Selected()
		if i >= len(entries) {
			return nil
		}
		if entries[i].IsDir {
			if err := e.Enter(); err != nil {
				m.logger.Warn("explorer navigation failed", zap.Error(err))
			}
			return nil
		}
		m.openFile(entries[i].Path)
	}
	return nil
}

// openFile opens path in the main area, reusing an existing editor tab.
func (m *Model) openFile(path string) {
	id := editor.WidgetID(path)
	if _, ok := m.Shell.ActivateWidget(id); ok {
		return
	}
	ed, err := editor.Open(path)
	if err != nil {
		m.logger.Error("failed to open file", zap.String("path", path), zap.Error(err))
		m.status = "open failed: " + err.Error()
		return
	}
	m.Shell.AddToMainArea(ed)
	m.Shell.ActivateWidget(ed.ID())
}

func (m *Model) toggleSide(side shell.Side) {
	var h *shell.SideBarHandler
	switch side {
	case shell.SideLeft:
		h = m.Shell.LeftBar()
	case shell.SideRight:
		h = m.Shell.RightBar()
	case shell.SideBottom:
		h = m.Shell.BottomBar()
	}
	if h == nil {
		return
	}
	if h.Expanded() {
		h.Collapse()
		return
	}
	if ws := h.Widgets(); len(ws) > 0 {
		h.Expand(ws[0].ID())
	}
}

func (m *Model) activeConsole() *console.Widget {
	c, _ := m.Shell.Tracker().Active().(*console.Widget)
	return c
}

func (m *Model) activeExplorer() *explorer.Widget {
	e, _ := m.Shell.Tracker().Active().(*explorer.Widget)
	return e
}

func (m *Model) resizeConsoles() {
	rows, cols := consoleSize(m.width, m.height)
	for _, w := range m.Shell.Tracker().Widgets() {
		if c, ok := w.(*console.Widget); ok {
			if err := c.Resize(rows, cols); err != nil {
				m.logger.Warn("console resize failed", zap.Error(err))
			}
		}
	}
}

func (m *Model) persistLayout() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveLayout(m.Shell.LayoutData()); err != nil {
		m.logger.Error("failed to persist layout", zap.Error(err))
	}
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
