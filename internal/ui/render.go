package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"workbench/internal/console"
	"workbench/internal/editor"
	"workbench/internal/explorer"
	"workbench/internal/shell"
	"workbench/internal/widget"
)

const (
	bottomBarHeight = 12
	minBodyWidth    = 20
)

// consoleSize translates terminal dimensions into PTY rows and columns for
// consoles living in the bottom bar.
func consoleSize(width, height int) (rows, cols uint16) {
	cols = uint16(max(minBodyWidth, width-4))
	rows = uint16(bottomBarHeight - 2)
	return rows, cols
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	body := m.renderBody()
	status := m.renderStatusBar()

	out := body + "\n" + status
	if m.keyHandler.LeaderWaiting {
		out += "\n" + RenderKeybindHelp(m.keyHandler, m.styles)
	}
	if m.menu.Visible() {
		out += "\n" + m.menu.view(m.styles)
	}
	return out
}

func (m *Model) renderBody() string {
	mainView := m.renderMainArea()
	if bottom := m.renderSideBar(m.Shell.BottomBar()); bottom != "" {
		mainView = lipgloss.JoinVertical(lipgloss.Left, mainView, bottom)
	}

	cols := []string{}
	if left := m.renderSideBar(m.Shell.LeftBar()); left != "" {
		cols = append(cols, left)
	}
	cols = append(cols, mainView)
	if right := m.renderSideBar(m.Shell.RightBar()); right != "" {
		cols = append(cols, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderSideBar draws one edge: its tab strip, and the expanded widget when
// the bar is open. A bar with no widgets takes no space at all.
func (m *Model) renderSideBar(h *shell.SideBarHandler) string {
	if h.Container().Hidden() {
		return ""
	}
	var strip []string
	for _, t := range h.TabBar().Titles() {
		style := m.styles.SideTab
		if t == h.TabBar().CurrentTitle() {
			style = m.styles.SideCurrent
		}
		strip = append(strip, style.Render(t.Label))
	}

	var parts []string
	if h.Side() == shell.SideBottom {
		// Bottom tabs run horizontally; side tabs stack vertically.
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, strip...))
	} else {
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, strip...))
	}
	if w := h.CurrentWidget(); w != nil {
		parts = append(parts, m.renderWidget(w))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderMainArea draws the dock tree: tab strips over current widgets,
// splits joined along their orientation.
func (m *Model) renderMainArea() string {
	l := m.Shell.MainArea().LayoutData()
	if l == nil || (l.Type == widget.DockTabArea && len(l.Widgets) == 0) {
		return m.styles.Empty.Render("no open editors")
	}
	return m.renderDock(l)
}

func (m *Model) renderDock(l *widget.DockLayout) string {
	if l == nil {
		return ""
	}
	if l.Type == widget.DockSplitArea {
		parts := make([]string, 0, len(l.Children))
		for _, c := range l.Children {
			parts = append(parts, m.renderDock(c))
		}
		if l.Orientation == widget.SplitVertical {
			return lipgloss.JoinVertical(lipgloss.Left, parts...)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	var tabs []string
	for i, w := range l.Widgets {
		style := m.styles.Tab
		if i == l.CurrentIndex {
			style = m.styles.TabCurrent
		}
		if w.Title().HasClass("active") {
			style = m.styles.TabActive
		}
		label := w.Title().Label
		if w.Title().HasClass("dirty") {
			label += m.styles.TabDirty.Render("*")
		}
		tabs = append(tabs, style.Render(label))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	content := ""
	if l.CurrentIndex >= 0 && l.CurrentIndex < len(l.Widgets) {
		content = m.renderWidget(l.Widgets[l.CurrentIndex])
	}
	return lipgloss.JoinVertical(lipgloss.Left, strip, content)
}

// renderWidget draws a widget's content by concrete type.
func (m *Model) renderWidget(w widget.Widget) string {
	box := m.styles.Box
	if m.Shell.Tracker().Active() != nil && widget.SameWidget(m.Shell.Tracker().Active(), w) {
		box = m.styles.BoxFocus
	}
	switch w := w.(type) {
	case *console.Widget:
		return box.Render(m.renderConsole(w))
	case *explorer.Widget:
		return box.Render(m.renderExplorer(w))
	case *editor.Widget:
		return box.Render(m.styles.Normal.Render(w.Content()))
	default:
		return box.Render(m.styles.Empty.Render(w.Title().Label))
	}
}

func (m *Model) renderConsole(c *console.Widget) string {
	lines := c.Lines()
	visible := bottomBarHeight - 2
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	if len(lines) == 0 {
		return m.styles.Empty.Render("(no output)")
	}
	return m.styles.Normal.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderExplorer(e *explorer.Widget) string {
	entries := e.Entries()
	if len(entries) == 0 {
		return m.styles.Empty.Render("(empty)")
	}
	var b strings.Builder
	for i, entry := range entries {
		name := entry.Name
		if entry.IsDir {
			name += "/"
		}
		if i == e.Selected() {
			b.WriteString(m.styles.Selected.Render("> " + name))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + name))
		}
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderStatusBar() string {
	left := m.styles.Status.Render("workbench")
	mid := ""
	if m.status != "" {
		mid = m.styles.Normal.Render(m.status)
	}
	dirty := ""
	if m.Shell.CanSaveAll() {
		dirty = m.styles.Danger.Render(fmt.Sprintf("%d unsaved", m.dirtyCount()))
	}
	hint := m.styles.Muted.Render("SPC for commands")
	parts := []string{left}
	if mid != "" {
		parts = append(parts, mid)
	}
	if dirty != "" {
		parts = append(parts, dirty)
	}
	parts = append(parts, hint)
	return strings.Join(parts, m.styles.Muted.Render("  |  "))
}

func (m *Model) dirtyCount() int {
	n := 0
	for _, w := range m.Shell.Tracker().Widgets() {
		if ed, ok := w.(*editor.Widget); ok && ed.Dirty() {
			n++
		}
	}
	return n
}
