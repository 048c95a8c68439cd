package widget

// Container is anything that can own widgets. A widget belongs to at most
// one container at a time; moving a widget detaches it from the old owner.
type Container interface {
	// RemoveWidget removes w from the container.
	// Returns true if w was present.
	RemoveWidget(w Widget) bool
}

// Widget is an opaque UI unit with a unique identifier, a title, exactly one
// optional parent container, and show/hide/activate/close lifecycle.
type Widget interface {
	ID() string
	Kind() string
	Title() *Title
	Parent() Container
	SetParent(c Container)
	Show()
	Hide()
	Hidden() bool
	// Activate requests input focus for the widget.
	Activate()
	// Close disposes the widget. Disposal is the only destruction path;
	// owners listen on OnDisposed to drop their references.
	Close()
	Disposed() bool
	OnDisposed() *Signal[Widget]
	OnActivateRequest() *Signal[Widget]
}

// Base is the standard Widget implementation. Concrete widgets embed *Base
// and add content; lifecycle and identity live here.
type Base struct {
	id       string
	kind     string
	title    *Title
	parent   Container
	hidden   bool
	disposed bool

	onDisposed Signal[Widget]
	onActivate Signal[Widget]
}

var _ Widget = (*Base)(nil)

// NewBase creates a widget with the given id and tab label.
// Widgets start hidden; owners show them as part of placement.
func NewBase(id, label string) *Base {
	b := &Base{id: id, hidden: true}
	b.title = &Title{Label: label, Closable: true, Owner: b}
	return b
}

// ID returns the widget's unique identifier.
func (b *Base) ID() string { return b.id }

// Kind names the widget's factory kind, used to recreate it on layout restore.
// Empty for widgets that are not restorable.
func (b *Base) Kind() string { return b.kind }

// SetKind sets the factory kind.
func (b *Base) SetKind(kind string) { b.kind = kind }

// Title returns the widget's title. Never nil.
func (b *Base) Title() *Title { return b.title }

// Parent returns the owning container, or nil.
func (b *Base) Parent() Container { return b.parent }

// SetParent records the owning container. It does not detach from the old
// owner; use Detach for that.
func (b *Base) SetParent(c Container) { b.parent = c }

func (b *Base) Show()        { b.hidden = false }
func (b *Base) Hide()        { b.hidden = true }
func (b *Base) Hidden() bool { return b.hidden }

// Activate emits OnActivateRequest. The host wires this to its focus handling.
func (b *Base) Activate() {
	if b.disposed {
		return
	}
	b.onActivate.Emit(b)
}

// Close disposes the widget, emitting OnDisposed exactly once.
func (b *Base) Close() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.onDisposed.Emit(b)
}

// Disposed reports whether Close has run.
func (b *Base) Disposed() bool { return b.disposed }

func (b *Base) OnDisposed() *Signal[Widget]        { return &b.onDisposed }
func (b *Base) OnActivateRequest() *Signal[Widget] { return &b.onActivate }

// Detach removes w from its current parent, if any, and clears the parent
// reference. The previous owner's reference to w is cleared by its
// RemoveWidget implementation.
func Detach(w Widget) {
	if p := w.Parent(); p != nil {
		p.RemoveWidget(w)
	}
	w.SetParent(nil)
}

// SameWidget reports whether a and b are the same widget. Identity is by ID;
// either side may be nil.
func SameWidget(a, b Widget) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
