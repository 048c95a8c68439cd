package widget

import "testing"

func dockIDs(ws []Widget) []string {
	ids := make([]string, 0, len(ws))
	for _, w := range ws {
		ids = append(ids, w.ID())
	}
	return ids
}

func TestDockArea_AddSelectsAndShows(t *testing.T) {
	a := NewDockArea()
	w := NewBase("editor", "Editor")
	a.AddWidget(w)

	if a.ActiveTabBar().CurrentIndex() != 0 {
		t.Error("new widget's tab should be selected")
	}
	if w.Hidden() {
		t.Error("selected widget should be shown")
	}

	second := NewBase("second", "Second")
	a.AddWidget(second)
	if !w.Hidden() || second.Hidden() {
		t.Error("selection should move to the newly added widget")
	}
}

func TestDockArea_SplitCreatesSecondGroup(t *testing.T) {
	a := NewDockArea()
	a.AddWidget(NewBase("one", "One"))
	a.SplitGroup(SplitHorizontal)
	a.AddWidget(NewBase("two", "Two"))

	bars := a.TabBars()
	if len(bars) != 2 {
		t.Fatalf("expected 2 tab bars, got %d", len(bars))
	}
	if bars[0].IndexOfWidget("one") != 0 || bars[1].IndexOfWidget("two") != 0 {
		t.Error("widgets should land in their own groups")
	}
}

func TestDockArea_EmptyGroupIsPruned(t *testing.T) {
	a := NewDockArea()
	one := NewBase("one", "One")
	a.AddWidget(one)
	a.SplitGroup(SplitHorizontal)
	two := NewBase("two", "Two")
	a.AddWidget(two)

	two.Close()
	if got := len(a.TabBars()); got != 1 {
		t.Fatalf("expected emptied group pruned, got %d bars", got)
	}
	if _, ok := a.FindWidget("one"); !ok {
		t.Error("surviving widget should remain")
	}
	if a.ActiveGroup().bar.IndexOfWidget("one") < 0 {
		t.Error("active group should fall back to a surviving group")
	}
}

func TestDockArea_LastGroupSurvives(t *testing.T) {
	a := NewDockArea()
	w := NewBase("only", "Only")
	a.AddWidget(w)
	w.Close()
	if got := len(a.TabBars()); got != 1 {
		t.Fatalf("root group must survive, got %d bars", got)
	}
	if len(a.Widgets()) != 0 {
		t.Error("dock should be empty")
	}
}

func TestDockArea_CloseSelectsNeighbor(t *testing.T) {
	a := NewDockArea()
	ws := make([]*Base, 3)
	for i, id := range []string{"a", "b", "c"} {
		ws[i] = NewBase(id, id)
		a.AddWidget(ws[i])
	}
	a.ActivateWidget("b")

	ws[1].Close()
	bar := a.ActiveTabBar()
	if bar.CurrentIndex() != 1 {
		t.Errorf("expected neighbor at index 1 selected, got %d", bar.CurrentIndex())
	}
	if bar.CurrentTitle().Owner.ID() != "c" {
		t.Errorf("expected c selected, got %s", bar.CurrentTitle().Owner.ID())
	}
}

func TestDockArea_LayoutRoundTrip(t *testing.T) {
	a := NewDockArea()
	one := NewBase("one", "One")
	two := NewBase("two", "Two")
	a.AddWidget(one)
	a.AddWidget(two)
	a.SplitGroup(SplitVertical)
	three := NewBase("three", "Three")
	a.AddWidget(three)
	a.ActivateWidget("one")

	l := a.LayoutData()
	if l.Type != DockSplitArea || len(l.Children) != 2 {
		t.Fatalf("unexpected snapshot shape: %+v", l)
	}

	fresh := NewDockArea()
	fresh.ApplyLayout(l)
	if got := len(fresh.TabBars()); got != 2 {
		t.Fatalf("expected 2 bars after restore, got %d", got)
	}
	if got := dockIDs(fresh.Widgets()); len(got) != 3 {
		t.Fatalf("expected 3 widgets after restore, got %v", got)
	}
	first := fresh.TabBars()[0]
	if first.CurrentIndex() != 0 {
		t.Errorf("expected the first group's selection restored, got %d", first.CurrentIndex())
	}
}

func TestDockArea_ActivateUnknownWidget(t *testing.T) {
	a := NewDockArea()
	if _, ok := a.ActivateWidget("missing"); ok {
		t.Error("expected not-found")
	}
}
