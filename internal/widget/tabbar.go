package widget

// CurrentChange describes a tab bar selection change. Either side may be nil.
type CurrentChange struct {
	Old *Title
	New *Title
}

// TabBar is an ordered strip of titles with a single optional current title.
// It emits selection changes and tab activate/close requests; it never
// mutates the widgets behind the titles itself.
type TabBar struct {
	titles  []*Title
	current *Title
	hidden  bool

	onCurrentChanged       Signal[CurrentChange]
	onTabActivateRequested Signal[*Title]
	onTabCloseRequested    Signal[*Title]
}

// NewTabBar creates an empty, hidden tab bar with no selection.
func NewTabBar() *TabBar {
	return &TabBar{hidden: true}
}

// Titles returns the strip's titles in order. The slice is shared; callers
// that mutate the strip during iteration must snapshot first.
func (b *TabBar) Titles() []*Title { return b.titles }

// Len returns the number of tabs.
func (b *TabBar) Len() int { return len(b.titles) }

// InsertTab inserts t at index i. Indices out of range clamp to the ends.
func (b *TabBar) InsertTab(i int, t *Title) {
	if i < 0 {
		i = 0
	}
	if i > len(b.titles) {
		i = len(b.titles)
	}
	b.titles = append(b.titles, nil)
	copy(b.titles[i+1:], b.titles[i:])
	b.titles[i] = t
}

// RemoveTab removes the tab at index i. Removing the current tab clears the
// selection (emitting a change) before the tab disappears.
func (b *TabBar) RemoveTab(i int) {
	if i < 0 || i >= len(b.titles) {
		return
	}
	if b.titles[i] == b.current {
		b.SetCurrentTitle(nil)
	}
	b.titles = append(b.titles[:i], b.titles[i+1:]...)
}

// IndexOf returns the index of t, or -1.
func (b *TabBar) IndexOf(t *Title) int {
	for i, x := range b.titles {
		if x == t {
			return i
		}
	}
	return -1
}

// IndexOfWidget returns the index of the tab owned by the widget with the
// given id, or -1.
func (b *TabBar) IndexOfWidget(id string) int {
	for i, t := range b.titles {
		if t.Owner != nil && t.Owner.ID() == id {
			return i
		}
	}
	return -1
}

// CurrentTitle returns the selected title, or nil.
func (b *TabBar) CurrentTitle() *Title { return b.current }

// CurrentIndex returns the index of the selected title, or -1.
func (b *TabBar) CurrentIndex() int {
	if b.current == nil {
		return -1
	}
	return b.IndexOf(b.current)
}

// SetCurrentTitle selects t (which must be in the strip) or clears the
// selection when t is nil. No-op when the selection is unchanged or t is
// not a member.
func (b *TabBar) SetCurrentTitle(t *Title) {
	if t == b.current {
		return
	}
	if t != nil && b.IndexOf(t) < 0 {
		return
	}
	old := b.current
	b.current = t
	b.onCurrentChanged.Emit(CurrentChange{Old: old, New: t})
}

// SetCurrentIndex selects the tab at index i; out-of-range clears the selection.
func (b *TabBar) SetCurrentIndex(i int) {
	if i < 0 || i >= len(b.titles) {
		b.SetCurrentTitle(nil)
		return
	}
	b.SetCurrentTitle(b.titles[i])
}

// ActivateTab requests focus for the tab at index i.
func (b *TabBar) ActivateTab(i int) {
	if i < 0 || i >= len(b.titles) {
		return
	}
	b.onTabActivateRequested.Emit(b.titles[i])
}

// CloseTab requests closing of the tab at index i. The owning widget decides;
// the tab disappears only once the widget is disposed.
func (b *TabBar) CloseTab(i int) {
	if i < 0 || i >= len(b.titles) {
		return
	}
	b.onTabCloseRequested.Emit(b.titles[i])
}

func (b *TabBar) Show()        { b.hidden = false }
func (b *TabBar) Hide()        { b.hidden = true }
func (b *TabBar) Hidden() bool { return b.hidden }

func (b *TabBar) OnCurrentChanged() *Signal[CurrentChange]  { return &b.onCurrentChanged }
func (b *TabBar) OnTabActivateRequested() *Signal[*Title]   { return &b.onTabActivateRequested }
func (b *TabBar) OnTabCloseRequested() *Signal[*Title]      { return &b.onTabCloseRequested }
