package shell

import (
	"context"

	"go.uber.org/zap"

	"workbench/internal/widget"
)

// Area names a shell region a widget can be placed into. The set is closed.
type Area string

const (
	AreaMain   Area = "main"
	AreaTop    Area = "top"
	AreaLeft   Area = "left"
	AreaRight  Area = "right"
	AreaBottom Area = "bottom"
)

// DefaultRank orders side-bar widgets that do not specify a rank.
// Lower ranks sort earlier.
const DefaultRank = 100

// AddOptions controls widget placement. Rank applies to side areas only;
// the main and top areas append in call order.
type AddOptions struct {
	Rank int
}

// Saveable is the external save coordination capability. Failures propagate
// to the shell's Save/SaveAll caller unmodified.
type Saveable interface {
	Dirty(w widget.Widget) bool
	Save(ctx context.Context, w widget.Widget) error
}

// ContextMenuRenderer renders a context menu at a position. Consumed, not
// implemented here; the host supplies one.
type ContextMenuRenderer interface {
	Render(menuPath []string, x, y int)
}

// Options configures a Shell. Zero values are usable: logging is discarded
// and save operations are no-ops until a Saveable is supplied.
type Options struct {
	Logger      *zap.Logger
	Saver       Saveable
	ContextMenu ContextMenuRenderer
}

// Shell composes the top panel, the main dock area, and three side bars into
// a single layout tree and tracks current/active widget state across them.
type Shell struct {
	logger      *zap.Logger
	tracker     *FocusTracker
	saver       Saveable
	contextMenu ContextMenuRenderer

	topPanel *widget.BoxPanel
	mainArea *widget.DockArea
	left     *SideBarHandler
	right    *SideBarHandler
	bottom   *SideBarHandler
	root     *widget.BoxPanel

	statusBar []byte // opaque status bar snapshot, passed through layout data

	onCurrentChanged       widget.Signal[FocusChange]
	onActiveChanged        widget.Signal[FocusChange]
	onSideExpansionChanged widget.Signal[ExpansionChange]

	registered map[string]bool
}

// New builds the shell layout tree. The visual nesting is fixed regardless
// of placement call order: left outermost, then bottom, then right, with the
// main area innermost, and the top panel above everything.
func New(opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Shell{
		logger:      logger,
		tracker:     NewFocusTracker(),
		saver:       opts.Saver,
		contextMenu: opts.ContextMenu,
		topPanel:    widget.NewBoxPanel(widget.LeftToRight),
		mainArea:    widget.NewDockArea(),
		registered:  make(map[string]bool),
	}
	for _, area := range []Area{AreaLeft, AreaRight, AreaBottom} {
		h := NewSideBarHandler(sideOf(area))
		switch area {
		case AreaLeft:
			s.left = h
		case AreaRight:
			s.right = h
		case AreaBottom:
			s.bottom = h
		}
		h.OnExpansionChanged().Connect(func(c ExpansionChange) {
			s.onSideExpansionChanged.Emit(c)
		})
	}

	mainRow := widget.NewBoxPanel(widget.LeftToRight)
	mainRow.AddChild(s.mainArea)
	mainRow.AddChild(s.right.Container())
	middle := widget.NewBoxPanel(widget.TopToBottom)
	middle.AddChild(mainRow)
	middle.AddChild(s.bottom.Container())
	body := widget.NewBoxPanel(widget.LeftToRight)
	body.AddChild(s.left.Container())
	body.AddChild(middle)
	s.root = widget.NewBoxPanel(widget.TopToBottom)
	s.root.AddChild(s.topPanel)
	s.root.AddChild(body)

	s.tracker.OnCurrentChanged().Connect(s.currentChanged)
	s.tracker.OnActiveChanged().Connect(s.activeChanged)
	return s
}

// sideOf maps a side area name to its handler side. The area set is closed;
// anything else is a programming error, not a runtime condition.
func sideOf(area Area) Side {
	switch area {
	case AreaLeft:
		return SideLeft
	case AreaRight:
		return SideRight
	case AreaBottom:
		return SideBottom
	}
	panic("shell: unknown side area " + string(area))
}

// Tracker returns the shell's focus tracker, shared by all areas.
func (s *Shell) Tracker() *FocusTracker { return s.tracker }

// MainArea returns the main dock area.
func (s *Shell) MainArea() *widget.DockArea { return s.mainArea }

// TopPanel returns the top panel (toolbar/menu host).
func (s *Shell) TopPanel() *widget.BoxPanel { return s.topPanel }

// Root returns the outermost layout panel.
func (s *Shell) Root() *widget.BoxPanel { return s.root }

// LeftBar, RightBar, and BottomBar return the side bar handlers.
func (s *Shell) LeftBar() *SideBarHandler   { return s.left }
func (s *Shell) RightBar() *SideBarHandler  { return s.right }
func (s *Shell) BottomBar() *SideBarHandler { return s.bottom }

// ContextMenu returns the host-supplied renderer, or nil.
func (s *Shell) ContextMenu() ContextMenuRenderer { return s.contextMenu }

// OnCurrentChanged fires after the current widget changes (shell-level
// re-emission for external subscribers).
func (s *Shell) OnCurrentChanged() *widget.Signal[FocusChange] { return &s.onCurrentChanged }

// OnActiveChanged fires after the active widget changes.
func (s *Shell) OnActiveChanged() *widget.Signal[FocusChange] { return &s.onActiveChanged }

// OnSideExpansionChanged fires when any side bar's expanded widget changes.
func (s *Shell) OnSideExpansionChanged() *widget.Signal[ExpansionChange] {
	return &s.onSideExpansionChanged
}

// checkWidget validates the placement contract: a widget and a non-empty id.
// Violations log an error and the placement becomes a no-op.
func (s *Shell) checkWidget(w widget.Widget, area Area) bool {
	if w == nil || w.ID() == "" {
		s.logger.Error("widgets added to the shell require a unique id",
			zap.String("area", string(area)))
		return false
	}
	return true
}

// track registers w with the focus tracker and routes its focus requests.
func (s *Shell) track(w widget.Widget) {
	s.tracker.Add(w)
	if s.registered[w.ID()] {
		return
	}
	s.registered[w.ID()] = true
	w.OnActivateRequest().Connect(func(widget.Widget) {
		s.tracker.SetActive(w)
	})
	w.OnDisposed().Connect(func(widget.Widget) {
		delete(s.registered, w.ID())
	})
}

// AddToMainArea places w in the main dock area and selects its tab.
func (s *Shell) AddToMainArea(w widget.Widget) {
	if !s.checkWidget(w, AreaMain) {
		return
	}
	s.mainArea.AddWidget(w)
	s.track(w)
}

// AddToTopArea places w in the top panel. Widgets append in call order;
// rank is ignored here.
func (s *Shell) AddToTopArea(w widget.Widget, opts *AddOptions) {
	if !s.checkWidget(w, AreaTop) {
		return
	}
	s.topPanel.AddWidget(w)
	w.Show()
	s.track(w)
}

// AddToLeftArea places w in the left side bar at the given rank.
func (s *Shell) AddToLeftArea(w widget.Widget, opts *AddOptions) {
	s.addToSide(s.left, AreaLeft, w, opts)
}

// AddToRightArea places w in the right side bar at the given rank.
func (s *Shell) AddToRightArea(w widget.Widget, opts *AddOptions) {
	s.addToSide(s.right, AreaRight, w, opts)
}

// AddToBottomArea places w in the bottom side bar at the given rank.
func (s *Shell) AddToBottomArea(w widget.Widget, opts *AddOptions) {
	s.addToSide(s.bottom, AreaBottom, w, opts)
}

func (s *Shell) addToSide(h *SideBarHandler, area Area, w widget.Widget, opts *AddOptions) {
	if !s.checkWidget(w, area) {
		return
	}
	rank := DefaultRank
	if opts != nil {
		rank = opts.Rank
	}
	h.AddWidget(w, rank)
	s.track(w)
}

// ActivateWidget finds the widget with the given id, selects it in its area,
// and requests focus on it. Areas are searched main, left, right, bottom;
// the first match wins.
func (s *Shell) ActivateWidget(id string) (widget.Widget, bool) {
	if w, ok := s.mainArea.ActivateWidget(id); ok {
		w.Activate()
		return w, true
	}
	for _, h := range []*SideBarHandler{s.left, s.right, s.bottom} {
		if w, ok := h.Activate(id); ok {
			return w, true
		}
	}
	return nil, false
}

// currentChanged moves the "current" title marker and re-emits.
func (s *Shell) currentChanged(c FocusChange) {
	if c.Old != nil {
		c.Old.Title().RemoveClass("current")
	}
	if c.New != nil {
		c.New.Title().AddClass("current")
	}
	s.onCurrentChanged.Emit(c)
}

// activeChanged moves the "active" title marker and re-emits.
func (s *Shell) activeChanged(c FocusChange) {
	if c.Old != nil {
		c.Old.Title().RemoveClass("active")
	}
	if c.New != nil {
		c.New.Title().AddClass("active")
	}
	s.onActiveChanged.Emit(c)
}
