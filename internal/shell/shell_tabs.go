package shell

import "workbench/internal/widget"

// CurrentTabBar returns the tab strip containing the tracked current
// widget's title, searching the main area's strips first, then the left,
// right, and bottom side bars. Returns nil when no strip owns it.
func (s *Shell) CurrentTabBar() *widget.TabBar {
	w := s.tracker.Current()
	if w == nil {
		return nil
	}
	return s.tabBarFor(w)
}

func (s *Shell) tabBarFor(w widget.Widget) *widget.TabBar {
	t := w.Title()
	for _, bar := range s.mainArea.TabBars() {
		if bar.IndexOf(t) >= 0 {
			return bar
		}
	}
	for _, h := range []*SideBarHandler{s.left, s.right, s.bottom} {
		if h.TabBar().IndexOf(t) >= 0 {
			return h.TabBar()
		}
	}
	return nil
}

// nextTabBar returns the cyclic successor of bar among the main area's tab
// strips. Bars outside the main area map to the first main strip.
func (s *Shell) nextTabBar(bar *widget.TabBar) *widget.TabBar {
	bars := s.mainArea.TabBars()
	if len(bars) == 0 {
		return nil
	}
	for i, b := range bars {
		if b == bar {
			return bars[(i+1)%len(bars)]
		}
	}
	return bars[0]
}

// previousTabBar returns the cyclic predecessor of bar among the main
// area's tab strips.
func (s *Shell) previousTabBar(bar *widget.TabBar) *widget.TabBar {
	bars := s.mainArea.TabBars()
	if len(bars) == 0 {
		return nil
	}
	for i, b := range bars {
		if b == bar {
			return bars[(i-1+len(bars))%len(bars)]
		}
	}
	return bars[0]
}

// ActivateNextTab moves the selection one tab forward within the strip
// owning the current widget. At the last tab it wraps to the first tab of
// the next main-area strip; side-bar strips are not part of the wrap cycle.
// No-op when there is no current widget or no owning strip.
func (s *Shell) ActivateNextTab() {
	bar := s.CurrentTabBar()
	if bar == nil {
		return
	}
	i := bar.CurrentIndex()
	if i >= 0 && i < bar.Len()-1 {
		s.activateTabAt(bar, i+1)
		return
	}
	next := s.nextTabBar(bar)
	if next != nil && next.Len() > 0 {
		s.activateTabAt(next, 0)
	}
}

// ActivatePreviousTab moves the selection one tab back within the strip
// owning the current widget, wrapping to the first tab of the previous
// main-area strip at the front.
func (s *Shell) ActivatePreviousTab() {
	bar := s.CurrentTabBar()
	if bar == nil {
		return
	}
	i := bar.CurrentIndex()
	if i > 0 {
		s.activateTabAt(bar, i-1)
		return
	}
	prev := s.previousTabBar(bar)
	if prev != nil && prev.Len() > 0 {
		s.activateTabAt(prev, 0)
	}
}

func (s *Shell) activateTabAt(bar *widget.TabBar, i int) {
	bar.SetCurrentIndex(i)
	titles := bar.Titles()
	if i >= 0 && i < len(titles) && titles[i].Owner != nil {
		titles[i].Owner.Activate()
	}
}

// CollapseLeft collapses the left side bar.
func (s *Shell) CollapseLeft() { s.left.Collapse() }

// CollapseRight collapses the right side bar.
func (s *Shell) CollapseRight() { s.right.Collapse() }

// CollapseBottom collapses the bottom side bar.
func (s *Shell) CollapseBottom() { s.bottom.Collapse() }

// CollapseCurrentTab collapses whichever side bar owns the current widget's
// title, checked left, then right, then bottom. Returns false when the
// current widget is not in any side bar.
func (s *Shell) CollapseCurrentTab() bool {
	w := s.tracker.Current()
	if w == nil {
		return false
	}
	t := w.Title()
	for _, h := range []*SideBarHandler{s.left, s.right, s.bottom} {
		if h.TabBar().IndexOf(t) >= 0 {
			h.Collapse()
			return true
		}
	}
	return false
}

// CloseCurrentTab closes the current tab of the strip owning the current
// widget.
func (s *Shell) CloseCurrentTab() {
	bar := s.CurrentTabBar()
	if bar == nil {
		return
	}
	i := bar.CurrentIndex()
	if i < 0 {
		return
	}
	closeTitle(bar.Titles()[i])
}

// CloseRightTabs closes the tabs strictly to the right of the current one.
func (s *Shell) CloseRightTabs() {
	bar := s.CurrentTabBar()
	if bar == nil {
		return
	}
	i := bar.CurrentIndex()
	if i < 0 {
		return
	}
	// Snapshot: closing mutates the strip.
	titles := append([]*widget.Title(nil), bar.Titles()[i+1:]...)
	for _, t := range titles {
		closeTitle(t)
	}
}

// CloseOtherTabs closes every tab except the current one.
func (s *Shell) CloseOtherTabs() {
	bar := s.CurrentTabBar()
	if bar == nil {
		return
	}
	current := bar.CurrentTitle()
	titles := append([]*widget.Title(nil), bar.Titles()...)
	for _, t := range titles {
		if t != current {
			closeTitle(t)
		}
	}
}

// CloseAllTabs closes every tab in the current strip, repeatedly closing
// the first until none remain (robust to reindexing after each close).
func (s *Shell) CloseAllTabs() {
	bar := s.CurrentTabBar()
	if bar == nil {
		return
	}
	for bar.Len() > 0 {
		before := bar.Len()
		closeTitle(bar.Titles()[0])
		if bar.Len() >= before {
			// A widget refused to close; avoid spinning.
			return
		}
	}
}

// CloseAll closes every widget in the main area, regardless of the current
// selection.
func (s *Shell) CloseAll() {
	for _, w := range s.mainArea.Widgets() {
		w.Close()
	}
}

func closeTitle(t *widget.Title) {
	if t != nil && t.Owner != nil {
		t.Owner.Close()
	}
}
