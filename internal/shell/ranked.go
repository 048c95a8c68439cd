package shell

import "workbench/internal/widget"

// RankItem pairs a widget with its ordering rank. Lower ranks sort first.
type RankItem struct {
	Widget widget.Widget
	Rank   int
}

// RankedList keeps items sorted by ascending rank; equal ranks preserve
// insertion order. Cardinalities are small, so linear scans are fine.
type RankedList struct {
	items []RankItem
}

// Len returns the number of items.
func (l *RankedList) Len() int { return len(l.items) }

// Items returns the items in order. The slice is shared.
func (l *RankedList) Items() []RankItem { return l.items }

// Insert places item before the first existing item with a strictly greater
// rank (stable upper bound) and returns the insertion index.
func (l *RankedList) Insert(item RankItem) int {
	i := len(l.items)
	for j, x := range l.items {
		if x.Rank > item.Rank {
			i = j
			break
		}
	}
	l.items = append(l.items, RankItem{})
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	return i
}

// RemoveAt removes the item at index i.
func (l *RankedList) RemoveAt(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// IndexOf returns the index of the item holding w, or -1.
func (l *RankedList) IndexOf(w widget.Widget) int {
	for i, x := range l.items {
		if widget.SameWidget(x.Widget, w) {
			return i
		}
	}
	return -1
}

// Find returns the item whose widget has the given id.
func (l *RankedList) Find(id string) (RankItem, int, bool) {
	for i, x := range l.items {
		if x.Widget.ID() == id {
			return x, i, true
		}
	}
	return RankItem{}, -1, false
}
