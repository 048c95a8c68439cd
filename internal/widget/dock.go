package widget

// SplitDirection is the axis of a dock split.
type SplitDirection int

const (
	// SplitHorizontal places children side by side.
	SplitHorizontal SplitDirection = iota
	// SplitVertical stacks children top to bottom.
	SplitVertical
)

// TabGroup is one tabbed region of the dock area: a tab bar and a stack
// panel kept index-aligned 1:1.
type TabGroup struct {
	area  *DockArea
	bar   *TabBar
	stack *StackPanel

	disconnects map[string]func()
}

// Bar returns the group's tab bar.
func (g *TabGroup) Bar() *TabBar { return g.bar }

// Widgets returns the group's widgets in tab order.
func (g *TabGroup) Widgets() []Widget { return g.stack.Widgets() }

// CurrentWidget returns the widget behind the current tab, or nil.
func (g *TabGroup) CurrentWidget() Widget {
	return g.stack.WidgetAt(g.bar.CurrentIndex())
}

func newTabGroup(area *DockArea) *TabGroup {
	g := &TabGroup{
		area:        area,
		bar:         NewTabBar(),
		stack:       NewStackPanel(),
		disconnects: make(map[string]func()),
	}
	g.stack.Show()
	g.stack.OnRemoved = g.widgetRemoved
	g.bar.OnCurrentChanged().Connect(func(c CurrentChange) {
		if c.Old != nil {
			if i := g.bar.IndexOf(c.Old); i >= 0 {
				if w := g.stack.WidgetAt(i); w != nil {
					w.Hide()
				}
			} else if c.Old.Owner != nil {
				c.Old.Owner.Hide()
			}
		}
		if c.New != nil {
			if w := g.stack.WidgetAt(g.bar.IndexOf(c.New)); w != nil {
				w.Show()
			}
		}
	})
	g.bar.OnTabActivateRequested().Connect(func(t *Title) {
		if t.Owner != nil {
			t.Owner.Activate()
		}
	})
	g.bar.OnTabCloseRequested().Connect(func(t *Title) {
		if t.Owner != nil {
			t.Owner.Close()
		}
	})
	return g
}

// AddWidget appends w to the group and selects it.
func (g *TabGroup) AddWidget(w Widget) {
	Detach(w)
	g.bar.InsertTab(g.bar.Len(), w.Title())
	g.stack.InsertWidget(g.stack.Len(), w)
	if _, ok := g.disconnects[w.ID()]; !ok {
		g.disconnects[w.ID()] = w.OnDisposed().Connect(func(Widget) {
			g.stack.RemoveWidget(w)
		})
	}
	g.bar.SetCurrentTitle(w.Title())
	g.bar.Show()
}

// widgetRemoved syncs the tab bar after the stack dropped a widget, keeping
// the neighbor selected when the current tab went away.
func (g *TabGroup) widgetRemoved(w Widget) {
	i := g.bar.IndexOfWidget(w.ID())
	if i < 0 {
		return
	}
	wasCurrent := g.bar.CurrentIndex() == i
	g.bar.RemoveTab(i)
	if disconnect, ok := g.disconnects[w.ID()]; ok {
		disconnect()
		delete(g.disconnects, w.ID())
	}
	if wasCurrent && g.bar.Len() > 0 {
		next := i
		if next >= g.bar.Len() {
			next = g.bar.Len() - 1
		}
		g.bar.SetCurrentIndex(next)
	}
	if g.bar.Len() == 0 {
		g.bar.Hide()
	}
	if g.area != nil {
		g.area.pruneEmpty(g)
	}
}

// dockNode is one node of the dock tree: either a split or a leaf group.
type dockNode struct {
	parent *dockNode
	split  *splitData
	group  *TabGroup
}

type splitData struct {
	dir      SplitDirection
	children []*dockNode
	sizes    []float64
}

// DockArea is the main editing area: a tree of splits whose leaves are tab
// groups. New widgets land in the active group.
type DockArea struct {
	root   *dockNode
	active *TabGroup
	hidden bool
}

// NewDockArea creates a dock with a single empty group.
func NewDockArea() *DockArea {
	a := &DockArea{}
	g := newTabGroup(a)
	a.root = &dockNode{group: g}
	a.active = g
	return a
}

// Groups returns the dock's tab groups in stable traversal order.
func (a *DockArea) Groups() []*TabGroup {
	var out []*TabGroup
	collectGroups(a.root, &out)
	return out
}

func collectGroups(n *dockNode, out *[]*TabGroup) {
	if n == nil {
		return
	}
	if n.group != nil {
		*out = append(*out, n.group)
		return
	}
	for _, c := range n.split.children {
		collectGroups(c, out)
	}
}

// TabBars returns every group's tab bar in traversal order.
func (a *DockArea) TabBars() []*TabBar {
	groups := a.Groups()
	bars := make([]*TabBar, len(groups))
	for i, g := range groups {
		bars[i] = g.bar
	}
	return bars
}

// ActiveGroup returns the group that receives new widgets.
func (a *DockArea) ActiveGroup() *TabGroup { return a.active }

// ActiveTabBar returns the active group's tab bar.
func (a *DockArea) ActiveTabBar() *TabBar { return a.active.bar }

// AddWidget places w in the active group and selects its tab.
func (a *DockArea) AddWidget(w Widget) {
	a.active.AddWidget(w)
}

// ActivateWidget selects the tab owning the widget with the given id and
// makes its group active. Returns the widget, or false when absent.
func (a *DockArea) ActivateWidget(id string) (Widget, bool) {
	for _, g := range a.Groups() {
		if i := g.bar.IndexOfWidget(id); i >= 0 {
			g.bar.SetCurrentIndex(i)
			a.active = g
			return g.stack.WidgetAt(i), true
		}
	}
	return nil, false
}

// FindWidget returns the docked widget with the given id.
func (a *DockArea) FindWidget(id string) (Widget, bool) {
	for _, g := range a.Groups() {
		if i := g.stack.IndexOf(id); i >= 0 {
			return g.stack.WidgetAt(i), true
		}
	}
	return nil, false
}

// Widgets returns every docked widget in traversal+tab order.
func (a *DockArea) Widgets() []Widget {
	var out []Widget
	for _, g := range a.Groups() {
		out = append(out, g.Widgets()...)
	}
	return out
}

// SplitGroup splits the active group along dir, creating and activating a
// new empty group beside it.
func (a *DockArea) SplitGroup(dir SplitDirection) *TabGroup {
	node := a.nodeOf(a.root, a.active)
	if node == nil {
		return a.active
	}
	fresh := newTabGroup(a)
	freshNode := &dockNode{group: fresh}
	if p := node.parent; p != nil && p.split.dir == dir {
		// Same axis: insert as a sibling after node.
		freshNode.parent = p
		for i, c := range p.split.children {
			if c == node {
				p.split.children = append(p.split.children[:i+1], append([]*dockNode{freshNode}, p.split.children[i+1:]...)...)
				break
			}
		}
		p.split.sizes = evenSizes(len(p.split.children))
	} else {
		// Wrap the leaf in a new split.
		inner := &dockNode{group: node.group}
		node.group = nil
		node.split = &splitData{dir: dir, children: []*dockNode{inner, freshNode}, sizes: evenSizes(2)}
		inner.parent = node
		freshNode.parent = node
	}
	a.active = fresh
	return fresh
}

func evenSizes(n int) []float64 {
	sizes := make([]float64, n)
	for i := range sizes {
		sizes[i] = 1.0 / float64(n)
	}
	return sizes
}

func (a *DockArea) nodeOf(n *dockNode, g *TabGroup) *dockNode {
	if n == nil {
		return nil
	}
	if n.group == g {
		return n
	}
	if n.split != nil {
		for _, c := range n.split.children {
			if found := a.nodeOf(c, g); found != nil {
				return found
			}
		}
	}
	return nil
}

// pruneEmpty removes an emptied group's node from the tree and collapses
// single-child splits. The last remaining group always survives.
func (a *DockArea) pruneEmpty(g *TabGroup) {
	if g.bar.Len() > 0 {
		return
	}
	node := a.nodeOf(a.root, g)
	if node == nil || node.parent == nil {
		return
	}
	p := node.parent
	for i, c := range p.split.children {
		if c == node {
			p.split.children = append(p.split.children[:i], p.split.children[i+1:]...)
			break
		}
	}
	p.split.sizes = evenSizes(len(p.split.children))
	if len(p.split.children) == 1 {
		only := p.split.children[0]
		p.split = only.split
		p.group = only.group
		if p.split != nil {
			for _, c := range p.split.children {
				c.parent = p
			}
		}
	}
	if a.active == g {
		if groups := a.Groups(); len(groups) > 0 {
			a.active = groups[0]
		}
	}
}

func (a *DockArea) Show()        { a.hidden = false }
func (a *DockArea) Hide()        { a.hidden = true }
func (a *DockArea) Hidden() bool { return a.hidden }

// Dock layout node types.
const (
	DockTabArea   = "tab-area"
	DockSplitArea = "split-area"
)

// DockLayout is an in-memory snapshot of the dock tree. Tab areas hold live
// widget references; the storage layer converts these to serializable refs.
type DockLayout struct {
	Type string

	// Tab areas.
	Widgets      []Widget
	CurrentIndex int

	// Split areas.
	Orientation SplitDirection
	Sizes       []float64
	Children    []*DockLayout
}

// LayoutData snapshots the dock tree.
func (a *DockArea) LayoutData() *DockLayout {
	return snapshotNode(a.root)
}

func snapshotNode(n *dockNode) *DockLayout {
	if n == nil {
		return nil
	}
	if n.group != nil {
		widgets := make([]Widget, len(n.group.stack.Widgets()))
		copy(widgets, n.group.stack.Widgets())
		return &DockLayout{
			Type:         DockTabArea,
			Widgets:      widgets,
			CurrentIndex: n.group.bar.CurrentIndex(),
		}
	}
	l := &DockLayout{
		Type:        DockSplitArea,
		Orientation: n.split.dir,
		Sizes:       append([]float64(nil), n.split.sizes...),
	}
	for _, c := range n.split.children {
		l.Children = append(l.Children, snapshotNode(c))
	}
	return l
}

// ApplyLayout replaces the dock contents with the snapshot. Unknown node
// types collapse to empty tab areas.
func (a *DockArea) ApplyLayout(l *DockLayout) {
	if l == nil {
		g := newTabGroup(a)
		a.root = &dockNode{group: g}
		a.active = g
		return
	}
	a.root = a.buildNode(l, nil)
	groups := a.Groups()
	if len(groups) == 0 {
		g := newTabGroup(a)
		a.root = &dockNode{group: g}
		groups = []*TabGroup{g}
	}
	a.active = groups[0]
	for _, g := range groups {
		if g.bar.Len() > 0 {
			a.active = g
			break
		}
	}
}

func (a *DockArea) buildNode(l *DockLayout, parent *dockNode) *dockNode {
	n := &dockNode{parent: parent}
	if l.Type == DockSplitArea && len(l.Children) > 0 {
		n.split = &splitData{dir: l.Orientation, sizes: append([]float64(nil), l.Sizes...)}
		for _, c := range l.Children {
			n.split.children = append(n.split.children, a.buildNode(c, n))
		}
		if len(n.split.sizes) != len(n.split.children) {
			n.split.sizes = evenSizes(len(n.split.children))
		}
		return n
	}
	g := newTabGroup(a)
	for _, w := range l.Widgets {
		g.AddWidget(w)
	}
	if l.CurrentIndex >= 0 && l.CurrentIndex < g.bar.Len() {
		g.bar.SetCurrentIndex(l.CurrentIndex)
	}
	n.group = g
	return n
}
