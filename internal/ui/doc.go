// Package ui hosts the application shell in a Bubble Tea program.
//
// Core pieces:
//   - Model: the root tea.Model; routes input and repaints the shell tree
//   - KeybindRegistry / KeyHandler: leader-key command dispatch
//   - Styles: shared lipgloss styles derived from the configured theme
//   - Menu: the context menu overlay
//
// The shell itself knows nothing about terminals; this package walks its
// widget tree and draws tab strips, side bars, and widget contents.
package ui
