// Package widget provides the layout primitives the application shell composes.
//
// Core abstractions:
//   - Widget: An opaque UI unit with identity, title, parent, and lifecycle (show/hide/activate/close)
//   - Title: A widget's tab label with class markers (e.g. "current", "active")
//   - TabBar: An ordered strip of titles with a single optional current title
//   - StackPanel: An ordered stack of widgets, index-aligned with a TabBar
//   - BoxPanel: A directional container of nodes, used for shell nesting
//   - DockArea: The main editing area; a tree of split nodes and tab groups
//   - Signal: Synchronous typed fan-out used for all widget events
package widget
