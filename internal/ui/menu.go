package ui

import (
	"strings"

	"workbench/internal/shell"
)

// Menu is the context menu overlay. It implements shell.ContextMenuRenderer
// by recording the requested menu; the root model draws it on the next frame.
type Menu struct {
	visible bool
	path    []string
	x, y    int
}

var _ shell.ContextMenuRenderer = (*Menu)(nil)

// Render implements shell.ContextMenuRenderer.
func (m *Menu) Render(menuPath []string, x, y int) {
	m.visible = true
	m.path = append([]string(nil), menuPath...)
	m.x, m.y = x, y
}

// Visible reports whether a menu is awaiting dismissal.
func (m *Menu) Visible() bool { return m.visible }

// Dismiss hides the menu.
func (m *Menu) Dismiss() {
	m.visible = false
	m.path = nil
}

// view renders the menu box.
func (m *Menu) view(styles Styles) string {
	if !m.visible {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render(strings.Join(m.path, " / ")))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("esc to close"))
	return styles.BoxFocus.Render(b.String())
}
