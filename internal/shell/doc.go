// Package shell implements the application shell: ranked side bars around a
// dockable main area, global current/active widget tracking, and layout
// snapshot/restore.
//
// Core abstractions:
//   - RankedList: Insertion-ordered items sorted by rank (stable upper bound)
//   - SideBarHandler: One side's tab strip + stacked content, single-expansion accordion
//   - FocusTracker: Current (last-focused) and active (focused now) widget state
//   - Shell: Composes top panel, main dock area, and three side bars; placement,
//     tab navigation, close/collapse operations, save delegation, layout persistence
package shell
