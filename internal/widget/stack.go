package widget

// StackPanel is an ordered collection of widgets, typically index-aligned
// with a TabBar. It owns the widgets it contains.
type StackPanel struct {
	widgets []Widget
	hidden  bool

	// OnRemoved, when set, runs after a widget leaves the stack for any
	// reason (close, or detachment by a new owner). Owners use it to keep
	// their tab strip index-aligned with the stack.
	OnRemoved func(Widget)
}

var _ Container = (*StackPanel)(nil)

// NewStackPanel creates an empty, hidden stack.
func NewStackPanel() *StackPanel {
	return &StackPanel{hidden: true}
}

// Widgets returns the stack's widgets in order. The slice is shared.
func (p *StackPanel) Widgets() []Widget { return p.widgets }

// Len returns the number of widgets.
func (p *StackPanel) Len() int { return len(p.widgets) }

// WidgetAt returns the widget at index i, or nil when out of range.
func (p *StackPanel) WidgetAt(i int) Widget {
	if i < 0 || i >= len(p.widgets) {
		return nil
	}
	return p.widgets[i]
}

// IndexOf returns the index of the widget with the given id, or -1.
func (p *StackPanel) IndexOf(id string) int {
	for i, w := range p.widgets {
		if w.ID() == id {
			return i
		}
	}
	return -1
}

// InsertWidget inserts w at index i, claiming ownership. w is detached from
// any previous owner first. Indices out of range clamp to the ends.
func (p *StackPanel) InsertWidget(i int, w Widget) {
	Detach(w)
	w.SetParent(p)
	if i < 0 {
		i = 0
	}
	if i > len(p.widgets) {
		i = len(p.widgets)
	}
	p.widgets = append(p.widgets, nil)
	copy(p.widgets[i+1:], p.widgets[i:])
	p.widgets[i] = w
}

// AddWidget appends w to the stack.
func (p *StackPanel) AddWidget(w Widget) {
	p.InsertWidget(len(p.widgets), w)
}

// RemoveWidget implements Container. Clears w's parent reference.
func (p *StackPanel) RemoveWidget(w Widget) bool {
	for i, x := range p.widgets {
		if SameWidget(x, w) {
			p.widgets = append(p.widgets[:i], p.widgets[i+1:]...)
			if x.Parent() == p {
				x.SetParent(nil)
			}
			if p.OnRemoved != nil {
				p.OnRemoved(x)
			}
			return true
		}
	}
	return false
}

func (p *StackPanel) Show()        { p.hidden = false }
func (p *StackPanel) Hide()        { p.hidden = true }
func (p *StackPanel) Hidden() bool { return p.hidden }
