// Package storage persists shell layout snapshots as versioned JSON and
// resolves widget references back to live widgets on restore.
package storage

import (
	"encoding/json"
	"fmt"

	"workbench/internal/shell"
	"workbench/internal/widget"
)

// LayoutVersion guards the on-disk format. Unknown versions are rejected.
const LayoutVersion = 1

// WidgetRef identifies a widget in a serialized layout. Kind selects the
// factory used to recreate it; Label restores the tab text.
type WidgetRef struct {
	ID    string `json:"id"`
	Kind  string `json:"kind,omitempty"`
	Label string `json:"label,omitempty"`
}

// SavedSideBar is the wire form of one side bar's snapshot.
type SavedSideBar struct {
	Type            string      `json:"type"`
	Widgets         []WidgetRef `json:"widgets,omitempty"`
	ExpandedWidgets []WidgetRef `json:"expandedWidgets,omitempty"`
}

// SavedDock is the wire form of one dock tree node.
type SavedDock struct {
	Type string `json:"type"`

	Widgets      []WidgetRef `json:"widgets,omitempty"`
	CurrentIndex int         `json:"currentIndex,omitempty"`

	Orientation string       `json:"orientation,omitempty"`
	Sizes       []float64    `json:"sizes,omitempty"`
	Children    []*SavedDock `json:"children,omitempty"`
}

// SavedLayout is the wire form of a full shell snapshot.
type SavedLayout struct {
	Version   int             `json:"version"`
	MainArea  *SavedDock      `json:"mainArea,omitempty"`
	LeftBar   *SavedSideBar   `json:"leftBar,omitempty"`
	RightBar  *SavedSideBar   `json:"rightBar,omitempty"`
	BottomBar *SavedSideBar   `json:"bottomBar,omitempty"`
	StatusBar json.RawMessage `json:"statusBar,omitempty"`
}

// Marshal converts an in-memory layout snapshot into versioned JSON.
// Widgets without a kind still serialize; whether they restore depends on
// the registry at load time.
func Marshal(d shell.LayoutData) ([]byte, error) {
	saved := SavedLayout{
		Version:   LayoutVersion,
		MainArea:  saveDock(d.MainArea),
		LeftBar:   saveSideBar(d.LeftBar),
		RightBar:  saveSideBar(d.RightBar),
		BottomBar: saveSideBar(d.BottomBar),
		StatusBar: d.StatusBar,
	}
	return json.MarshalIndent(saved, "", "  ")
}

// Unmarshal parses versioned JSON and resolves widget refs through the
// registry. Unresolvable widgets are skipped, not errors: a layout from a
// previous session may reference widgets whose kind no longer exists.
func Unmarshal(data []byte, reg *Registry) (shell.LayoutData, error) {
	var saved SavedLayout
	if err := json.Unmarshal(data, &saved); err != nil {
		return shell.LayoutData{}, fmt.Errorf("failed to parse layout: %w", err)
	}
	if saved.Version != LayoutVersion {
		return shell.LayoutData{}, fmt.Errorf("unsupported layout version %d", saved.Version)
	}
	return shell.LayoutData{
		MainArea:  loadDock(saved.MainArea, reg),
		LeftBar:   loadSideBar(saved.LeftBar, reg),
		RightBar:  loadSideBar(saved.RightBar, reg),
		BottomBar: loadSideBar(saved.BottomBar, reg),
		StatusBar: saved.StatusBar,
	}, nil
}

func refOf(w widget.Widget) WidgetRef {
	return WidgetRef{ID: w.ID(), Kind: w.Kind(), Label: w.Title().Label}
}

func saveSideBar(l *shell.SideBarLayout) *SavedSideBar {
	if l == nil {
		return nil
	}
	out := &SavedSideBar{Type: l.Type}
	for _, w := range l.Widgets {
		out.Widgets = append(out.Widgets, refOf(w))
	}
	for _, w := range l.ExpandedWidgets {
		out.ExpandedWidgets = append(out.ExpandedWidgets, refOf(w))
	}
	return out
}

func loadSideBar(l *SavedSideBar, reg *Registry) *shell.SideBarLayout {
	if l == nil {
		return nil
	}
	out := &shell.SideBarLayout{Type: l.Type}
	for _, ref := range l.Widgets {
		if w, ok := reg.Resolve(ref); ok {
			out.Widgets = append(out.Widgets, w)
		}
	}
	for _, ref := range l.ExpandedWidgets {
		for _, w := range out.Widgets {
			if w.ID() == ref.ID {
				out.ExpandedWidgets = append(out.ExpandedWidgets, w)
			}
		}
	}
	return out
}

func saveDock(l *widget.DockLayout) *SavedDock {
	if l == nil {
		return nil
	}
	out := &SavedDock{
		Type:         l.Type,
		CurrentIndex: l.CurrentIndex,
		Sizes:        l.Sizes,
	}
	if l.Type == widget.DockSplitArea {
		if l.Orientation == widget.SplitVertical {
			out.Orientation = "vertical"
		} else {
			out.Orientation = "horizontal"
		}
	}
	for _, w := range l.Widgets {
		out.Widgets = append(out.Widgets, refOf(w))
	}
	for _, c := range l.Children {
		out.Children = append(out.Children, saveDock(c))
	}
	return out
}

func loadDock(l *SavedDock, reg *Registry) *widget.DockLayout {
	if l == nil {
		return nil
	}
	out := &widget.DockLayout{
		Type:         l.Type,
		CurrentIndex: l.CurrentIndex,
		Sizes:        l.Sizes,
	}
	if l.Orientation == "vertical" {
		out.Orientation = widget.SplitVertical
	}
	for _, ref := range l.Widgets {
		if w, ok := reg.Resolve(ref); ok {
			out.Widgets = append(out.Widgets, w)
		}
	}
	// A skipped widget can invalidate the saved selection.
	if out.CurrentIndex >= len(out.Widgets) {
		out.CurrentIndex = len(out.Widgets) - 1
	}
	for _, c := range l.Children {
		out.Children = append(out.Children, loadDock(c, reg))
	}
	return out
}
