package domain

// NavigationSource exposes the counts the navigator clamps against.
// Item indices refer to the currently visible items only.
type NavigationSource interface {
	VisibleItemCount() int
	MatchCount(item int) int
}

// Navigator tracks which visible item and which match inside it has focus.
//
// The match index is only meaningful for the current item: every change of the
// item index resets it to 0 before anything can observe it.
type Navigator struct {
	item    int
	match   int
	focused bool
}

// Position returns the (item, match) pair. ok is false until focus has
// been moved at least once, which is when the focus is drawn. Before
// that the state is (0, 0).
func (n *Navigator) Position() (item, match int, ok bool) {
	return n.item, n.match, n.focused
}

// Current returns the (item, match) pair if both point at an existing
// match in src.
func (n *Navigator) Current(src NavigationSource) (item, match int, ok bool) {
	if n.item >= src.VisibleItemCount() || n.match >= src.MatchCount(n.item) {
		return 0, 0, false
	}
	return n.item, n.match, true
}

// Reset returns to the initial (0, 0) state without drawn focus
func (n *Navigator) Reset() {
	n.item, n.match, n.focused = 0, 0, false
}

// FocusItem focuses the visible item at target, clamped into range, and
// focuses its first match. It is a no-op when there are no visible items.
func (n *Navigator) FocusItem(src NavigationSource, target int) bool {
	count := src.VisibleItemCount()
	if count == 0 {
		return false
	}
	n.item = clamp(target, count)
	n.match = 0
	n.focused = true
	n.FocusMatch(src, 0)
	return true
}

// FocusMatch focuses the match at target inside the current item, clamped
// into range. It is a no-op when the current item has no matches.
func (n *Navigator) FocusMatch(src NavigationSource, target int) bool {
	if n.item >= src.VisibleItemCount() {
		return false
	}
	count := src.MatchCount(n.item)
	if count == 0 {
		return false
	}
	n.match = clamp(target, count)
	n.focused = true
	return true
}

// NextItem moves focus one item down
func (n *Navigator) NextItem(src NavigationSource) bool {
	return n.FocusItem(src, n.item+1)
}

// PrevItem moves focus one item up
func (n *Navigator) PrevItem(src NavigationSource) bool {
	return n.FocusItem(src, n.item-1)
}

// NextMatch moves focus one match right
func (n *Navigator) NextMatch(src NavigationSource) bool {
	return n.FocusMatch(src, n.match+1)
}

// PrevMatch moves focus one match left
func (n *Navigator) PrevMatch(src NavigationSource) bool {
	return n.FocusMatch(src, n.match-1)
}

// Revalidate re-clamps the item index after the visible set changed.
// The item keeps focus when it is still in range; otherwise the last
// visible item is focused. With nothing visible, focus is dropped.
func (n *Navigator) Revalidate(src NavigationSource) {
	count := src.VisibleItemCount()
	switch {
	case count == 0:
		n.Reset()
	case n.item >= count:
		n.FocusItem(src, count-1)
	default:
		if m := src.MatchCount(n.item); m == 0 {
			n.match = 0
		} else if n.match >= m {
			n.match = m - 1
		}
	}
}

func clamp(v, count int) int {
	if v < 0 {
		return 0
	}
	if v > count-1 {
		return count - 1
	}
	return v
}
