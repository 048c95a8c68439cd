package shell

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"workbench/internal/widget"
)

var tracer = otel.Tracer("workbench/shell")

// SideBarLayoutType tags side bar snapshots in serialized layouts.
const SideBarLayoutType = "sidebar"

// SideBarLayout is a side bar snapshot: widget order plus the expanded
// widget (zero or one element).
type SideBarLayout struct {
	Type            string
	Widgets         []widget.Widget
	ExpandedWidgets []widget.Widget
}

// LayoutData is a full shell snapshot. Restoring it reproduces the same
// widget order per area and the same expanded side-bar widgets. The status
// bar snapshot is opaque and passed through untouched.
type LayoutData struct {
	MainArea  *widget.DockLayout
	LeftBar   *SideBarLayout
	RightBar  *SideBarLayout
	BottomBar *SideBarLayout
	StatusBar []byte
}

// LayoutData snapshots the current arrangement of all areas.
func (s *Shell) LayoutData() LayoutData {
	return LayoutData{
		MainArea:  s.mainArea.LayoutData(),
		LeftBar:   s.left.LayoutData(),
		RightBar:  s.right.LayoutData(),
		BottomBar: s.bottom.LayoutData(),
		StatusBar: s.statusBar,
	}
}

// SetLayoutData restores a snapshot, applying each area in turn and
// re-registering every restored widget with the focus tracker.
func (s *Shell) SetLayoutData(ctx context.Context, d LayoutData) {
	_, span := tracer.Start(ctx, "shell.SetLayoutData")
	defer span.End()

	s.mainArea.ApplyLayout(d.MainArea)
	s.left.SetLayoutData(d.LeftBar)
	s.right.SetLayoutData(d.RightBar)
	s.bottom.SetLayoutData(d.BottomBar)
	s.statusBar = d.StatusBar

	registered := 0
	s.walkDock(d.MainArea, &registered)
	for _, l := range []*SideBarLayout{d.LeftBar, d.RightBar, d.BottomBar} {
		if l == nil {
			continue
		}
		for _, w := range l.Widgets {
			s.track(w)
			registered++
		}
	}
	span.SetAttributes(attribute.Int("widgets", registered))
}

// walkDock re-registers every widget in the restored dock tree, recursing
// through nested split and tab sub-trees.
func (s *Shell) walkDock(l *widget.DockLayout, registered *int) {
	if l == nil {
		return
	}
	for _, w := range l.Widgets {
		s.track(w)
		*registered++
	}
	for _, c := range l.Children {
		s.walkDock(c, registered)
	}
}
