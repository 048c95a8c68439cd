package widget

// Title is a widget's tab entry: a label, a closable flag, and a set of
// class markers consumed by styling (e.g. "current", "active", "collapsed").
type Title struct {
	Label    string
	Closable bool
	Owner    Widget

	classes []string
}

// AddClass adds a class marker. Adding an existing class is a no-op.
func (t *Title) AddClass(class string) {
	if t.HasClass(class) {
		return
	}
	t.classes = append(t.classes, class)
}

// RemoveClass removes a class marker if present.
func (t *Title) RemoveClass(class string) {
	for i, c := range t.classes {
		if c == class {
			t.classes = append(t.classes[:i], t.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the class marker is set.
func (t *Title) HasClass(class string) bool {
	for _, c := range t.classes {
		if c == class {
			return true
		}
	}
	return false
}
