package widget

// Node is anything a BoxPanel can contain: widgets, other panels, tab bars.
type Node interface {
	Show()
	Hide()
	Hidden() bool
}

// Direction is a BoxPanel's layout axis.
type Direction int

const (
	LeftToRight Direction = iota
	TopToBottom
)

// BoxPanel arranges child nodes along one axis. The shell uses nested box
// panels for its fixed area nesting; the top panel is a box of widgets.
type BoxPanel struct {
	direction Direction
	children  []Node
	hidden    bool
	classes   []string
}

var _ Container = (*BoxPanel)(nil)
var _ Node = (*BoxPanel)(nil)

// NewBoxPanel creates an empty, visible box with the given direction.
func NewBoxPanel(d Direction) *BoxPanel {
	return &BoxPanel{direction: d}
}

// Direction returns the layout axis.
func (p *BoxPanel) Direction() Direction { return p.direction }

// Children returns the child nodes in order. The slice is shared.
func (p *BoxPanel) Children() []Node { return p.children }

// AddChild appends a node.
func (p *BoxPanel) AddChild(n Node) {
	if w, ok := n.(Widget); ok {
		Detach(w)
		w.SetParent(p)
	}
	p.children = append(p.children, n)
}

// AddWidget appends a widget, claiming ownership.
func (p *BoxPanel) AddWidget(w Widget) {
	p.AddChild(w)
}

// Widgets returns the child nodes that are widgets, in order.
func (p *BoxPanel) Widgets() []Widget {
	var out []Widget
	for _, n := range p.children {
		if w, ok := n.(Widget); ok {
			out = append(out, w)
		}
	}
	return out
}

// RemoveWidget implements Container.
func (p *BoxPanel) RemoveWidget(w Widget) bool {
	for i, n := range p.children {
		if x, ok := n.(Widget); ok && SameWidget(x, w) {
			p.children = append(p.children[:i], p.children[i+1:]...)
			if x.Parent() == p {
				x.SetParent(nil)
			}
			return true
		}
	}
	return false
}

func (p *BoxPanel) Show()        { p.hidden = false }
func (p *BoxPanel) Hide()        { p.hidden = true }
func (p *BoxPanel) Hidden() bool { return p.hidden }

// AddClass adds a class marker (e.g. "collapsed"). Idempotent.
func (p *BoxPanel) AddClass(class string) {
	if p.HasClass(class) {
		return
	}
	p.classes = append(p.classes, class)
}

// RemoveClass removes a class marker if present.
func (p *BoxPanel) RemoveClass(class string) {
	for i, c := range p.classes {
		if c == class {
			p.classes = append(p.classes[:i], p.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the class marker is set.
func (p *BoxPanel) HasClass(class string) bool {
	for _, c := range p.classes {
		if c == class {
			return true
		}
	}
	return false
}
