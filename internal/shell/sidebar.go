package shell

import "workbench/internal/widget"

// Side names one collapsible edge of the shell.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
)

// ExpansionChange reports which widget a side bar currently expands.
// An empty WidgetID means the side collapsed. Hosts subscribe to mirror the
// expansion state into their environment (styling, window chrome).
type ExpansionChange struct {
	Side     Side
	WidgetID string
}

// SideBarHandler owns one side's tab strip and stacked content panel. The
// strip and the stack are kept index-aligned 1:1 with a ranked item list.
// At most one widget is expanded at a time: the bar's current title.
type SideBarHandler struct {
	side      Side
	items     RankedList
	tabBar    *widget.TabBar
	stack     *widget.StackPanel
	container *widget.BoxPanel

	onExpansionChanged widget.Signal[ExpansionChange]
	disconnects        map[string]func()
}

// NewSideBarHandler creates a collapsed, empty handler for the given side.
func NewSideBarHandler(side Side) *SideBarHandler {
	dir := widget.LeftToRight
	if side == SideBottom {
		dir = widget.TopToBottom
	}
	h := &SideBarHandler{
		side:        side,
		tabBar:      widget.NewTabBar(),
		stack:       widget.NewStackPanel(),
		container:   widget.NewBoxPanel(dir),
		disconnects: make(map[string]func()),
	}
	h.container.AddChild(h.tabBar)
	h.container.AddChild(h.stack)
	h.stack.OnRemoved = h.widgetRemoved
	h.tabBar.OnCurrentChanged().Connect(h.currentChanged)
	h.tabBar.OnTabActivateRequested().Connect(func(t *widget.Title) {
		if t.Owner != nil {
			t.Owner.Activate()
		}
	})
	h.tabBar.OnTabCloseRequested().Connect(func(t *widget.Title) {
		if t.Owner != nil {
			t.Owner.Close()
		}
	})
	h.refresh()
	return h
}

// Side returns the handler's edge.
func (h *SideBarHandler) Side() Side { return h.side }

// TabBar returns the handler's tab strip.
func (h *SideBarHandler) TabBar() *widget.TabBar { return h.tabBar }

// Container returns the enclosing panel (strip + stack).
func (h *SideBarHandler) Container() *widget.BoxPanel { return h.container }

// Widgets returns the handler's widgets in rank order.
func (h *SideBarHandler) Widgets() []widget.Widget { return h.stack.Widgets() }

// Has reports whether the widget with the given id is in this handler.
func (h *SideBarHandler) Has(id string) bool {
	_, _, ok := h.items.Find(id)
	return ok
}

// AddWidget places w in the side bar at the position its rank dictates.
// The widget is detached from any previous owner and starts hidden; it only
// shows when expanded. Re-adding a widget already in this handler relocates
// it (the detach removes the old entry).
func (h *SideBarHandler) AddWidget(w widget.Widget, rank int) {
	widget.Detach(w)
	w.Hide()
	i := h.items.Insert(RankItem{Widget: w, Rank: rank})
	h.tabBar.InsertTab(i, w.Title())
	h.stack.InsertWidget(i, w)
	if _, ok := h.disconnects[w.ID()]; !ok {
		h.disconnects[w.ID()] = w.OnDisposed().Connect(func(widget.Widget) {
			h.stack.RemoveWidget(w)
		})
	}
	h.refresh()
}

// Expand makes the widget with the given id the expanded one.
// Returns the widget, or false when the id is not in this handler.
func (h *SideBarHandler) Expand(id string) (widget.Widget, bool) {
	item, _, ok := h.items.Find(id)
	if !ok {
		return nil, false
	}
	h.tabBar.SetCurrentTitle(item.Widget.Title())
	return item.Widget, true
}

// Activate expands the widget and requests focus on it.
func (h *SideBarHandler) Activate(id string) (widget.Widget, bool) {
	w, ok := h.Expand(id)
	if !ok {
		return nil, false
	}
	w.Activate()
	return w, true
}

// Collapse clears the expansion; tab entries remain.
func (h *SideBarHandler) Collapse() {
	h.tabBar.SetCurrentTitle(nil)
}

// Expanded reports whether any widget is expanded.
func (h *SideBarHandler) Expanded() bool {
	return h.tabBar.CurrentTitle() != nil
}

// CurrentWidget returns the expanded widget, or nil when collapsed.
func (h *SideBarHandler) CurrentWidget() widget.Widget {
	i := h.tabBar.CurrentIndex()
	if i < 0 {
		return nil
	}
	return h.stack.WidgetAt(i)
}

// OnExpansionChanged fires after the expanded widget changes (including to
// none).
func (h *SideBarHandler) OnExpansionChanged() *widget.Signal[ExpansionChange] {
	return &h.onExpansionChanged
}

// currentChanged reacts to strip selection: hide the previously shown
// widget, show the newly selected one, and republish the expansion state.
func (h *SideBarHandler) currentChanged(c widget.CurrentChange) {
	if c.Old != nil && c.Old.Owner != nil {
		c.Old.Owner.Hide()
	}
	id := ""
	if c.New != nil {
		if w := h.stack.WidgetAt(h.tabBar.IndexOf(c.New)); w != nil {
			w.Show()
			id = w.ID()
		} else if c.New.Owner != nil {
			c.New.Owner.Show()
			id = c.New.Owner.ID()
		}
	}
	h.refresh()
	h.onExpansionChanged.Emit(ExpansionChange{Side: h.side, WidgetID: id})
}

// widgetRemoved keeps the item list and tab strip aligned with the stack.
// This is the only removal path: close or detachment lands here, and all
// three collections shrink together.
func (h *SideBarHandler) widgetRemoved(w widget.Widget) {
	i := h.items.IndexOf(w)
	if i < 0 {
		return
	}
	h.items.RemoveAt(i)
	h.tabBar.RemoveTab(i)
	if disconnect, ok := h.disconnects[w.ID()]; ok {
		disconnect()
		delete(h.disconnects, w.ID())
	}
	h.refresh()
}

// refresh recomputes the coupled visibility of strip, stack, and container.
// Recomputed atomically after every mutation: the strip is hidden iff it has
// no tabs, the stack iff nothing is expanded, the container iff both are.
func (h *SideBarHandler) refresh() {
	barHidden := h.tabBar.Len() == 0
	stackHidden := h.tabBar.CurrentTitle() == nil
	setHidden(h.tabBar, barHidden)
	setHidden(h.stack, stackHidden)
	setHidden(h.container, barHidden && stackHidden)
	if stackHidden {
		h.container.AddClass("collapsed")
	} else {
		h.container.RemoveClass("collapsed")
	}
}

func setHidden(n widget.Node, hidden bool) {
	if hidden {
		n.Hide()
	} else {
		n.Show()
	}
}

// LayoutData snapshots the side bar: widget order plus the expanded widget.
func (h *SideBarHandler) LayoutData() *SideBarLayout {
	l := &SideBarLayout{Type: SideBarLayoutType}
	l.Widgets = append(l.Widgets, h.stack.Widgets()...)
	if w := h.CurrentWidget(); w != nil {
		l.ExpandedWidgets = []widget.Widget{w}
	}
	return l
}

// SetLayoutData restores a snapshot: collapse, re-add every widget in
// snapshot order (ranks become 0..n-1, preserving relative order only), then
// re-expand the previously expanded widget.
func (h *SideBarHandler) SetLayoutData(l *SideBarLayout) {
	h.Collapse()
	if l == nil {
		return
	}
	for i, w := range l.Widgets {
		h.AddWidget(w, i)
	}
	if len(l.ExpandedWidgets) > 0 {
		h.Expand(l.ExpandedWidgets[0].ID())
	}
}
