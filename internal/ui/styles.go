package ui

import (
	"github.com/charmbracelet/lipgloss"

	"workbench/internal/config"
)

// Styles contains shared style definitions used across the renderer.
type Styles struct {
	Title    lipgloss.Style // bold accent, area titles
	Box      lipgloss.Style // bordered widget content
	BoxFocus lipgloss.Style // bordered content of the active widget

	Tab         lipgloss.Style // inactive tab
	TabCurrent  lipgloss.Style // current tab of a strip
	TabActive   lipgloss.Style // tab of the active (focused) widget
	TabDirty    lipgloss.Style // unsaved-changes marker
	SideTab     lipgloss.Style // collapsed side bar tab
	SideCurrent lipgloss.Style // expanded side bar tab

	Selected lipgloss.Style // highlighted list rows
	Muted    lipgloss.Style // dimmed text, hints
	Normal   lipgloss.Style // normal text
	Status   lipgloss.Style // status bar
	Danger   lipgloss.Style // errors
	Empty    lipgloss.Style // empty state text
}

// NewStyles builds the style set from a theme.
func NewStyles(t config.Theme) Styles {
	accent := lipgloss.Color(t.Accent)
	highlight := lipgloss.Color(t.Highlight)
	muted := lipgloss.Color(t.Muted)
	text := lipgloss.Color(t.Text)
	danger := lipgloss.Color(t.Danger)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		BoxFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		TabCurrent: lipgloss.NewStyle().
			Foreground(text).
			Bold(true).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true).
			Padding(0, 1),
		TabDirty: lipgloss.NewStyle().
			Foreground(danger),
		SideTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		SideCurrent: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(text),
		Status: lipgloss.NewStyle().
			Foreground(accent),
		Danger: lipgloss.NewStyle().
			Foreground(danger),
		Empty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}
