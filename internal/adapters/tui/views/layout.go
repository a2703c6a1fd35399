package views

import "matchreview/internal/domain"

// Screen geometry of the review view, in cells
const (
	headerHeight = 3 // title, status line, blank
	footerHeight = 2 // toast, key help
	blockHeight  = 5 // bordered cells: border, three content lines, border
	blockSpacing = 1
	sourceWidth  = 30 // outer width of the source cell
	cardWidth    = 22 // outer width of a match card
	cardGap      = 1
	cardLinkRow  = 3 // row of the link line inside a card

	hoverWidth  = 44
	hoverHeight = 6
	hoverGap    = 2
	hoverMargin = 1
)

type hitKind int

const (
	hitNone hitKind = iota
	hitSource
	hitCard
	hitLink
)

// hit is what lies under a screen cell. item is a visible item index.
type hit struct {
	kind  hitKind
	item  int
	match int
	rect  domain.Rect
}

// rowLayout places one visible item on screen
type rowLayout struct {
	item       int
	y          int
	matchStart int
	matchEnd   int
}

// layout is the on-screen placement of items and cards for one frame.
// Rendering and hit-testing both derive from it.
type layout struct {
	rows         []rowLayout
	visibleCards int
}

// centerWindow returns the first index of a window of size visible over
// total entries that keeps focus as close to the middle as possible.
func centerWindow(total, focus, visible int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	start := focus - visible/2
	return max(0, min(start, total-visible))
}

// visibleRows is how many item blocks fit into height
func visibleRows(height int) int {
	return max(1, (height-headerHeight-footerHeight+blockSpacing)/(blockHeight+blockSpacing))
}

// visibleCards is how many match cards fit next to the source cell
func visibleCards(width int) int {
	return max(1, (width-sourceWidth)/(cardWidth+cardGap))
}

// computeLayout places the items of src on a width x height screen with
// the focused item vertically centered and its focused match horizontally
// centered. Other items show their first matches.
func computeLayout(src visibleSet, focusItem, focusMatch, width, height int) layout {
	l := layout{visibleCards: visibleCards(width)}
	count := src.VisibleItemCount()
	rows := visibleRows(height)
	start := centerWindow(count, focusItem, rows)

	for i := start; i < count && i < start+rows; i++ {
		matches := src.MatchCount(i)
		ms := 0
		if i == focusItem {
			ms = centerWindow(matches, focusMatch, l.visibleCards)
		}
		l.rows = append(l.rows, rowLayout{
			item:       i,
			y:          headerHeight + (i-start)*(blockHeight+blockSpacing),
			matchStart: ms,
			matchEnd:   min(matches, ms+l.visibleCards),
		})
	}
	return l
}

func sourceRect(y int) domain.Rect {
	return domain.Rect{X: 0, Y: y, Width: sourceWidth, Height: blockHeight}
}

func cardRect(y, slot int) domain.Rect {
	return domain.Rect{
		X:      sourceWidth + cardGap + slot*(cardWidth+cardGap),
		Y:      y,
		Width:  cardWidth,
		Height: blockHeight,
	}
}

// cardPos returns the rectangle of a card if it is on screen
func (l layout) cardPos(item, match int) (domain.Rect, bool) {
	for _, r := range l.rows {
		if r.item == item && match >= r.matchStart && match < r.matchEnd {
			return cardRect(r.y, match-r.matchStart), true
		}
	}
	return domain.Rect{}, false
}

// hitTest returns what lies under cell (x, y)
func (l layout) hitTest(x, y int) hit {
	for _, r := range l.rows {
		if y < r.y || y >= r.y+blockHeight {
			continue
		}
		if rect := sourceRect(r.y); rect.Contains(x, y) {
			return hit{kind: hitSource, item: r.item, rect: rect}
		}
		for m := r.matchStart; m < r.matchEnd; m++ {
			rect := cardRect(r.y, m-r.matchStart)
			if !rect.Contains(x, y) {
				continue
			}
			kind := hitCard
			// The link line sits inside the borders
			if y == r.y+cardLinkRow && x > rect.X && x < rect.X+rect.Width-1 {
				kind = hitLink
			}
			return hit{kind: kind, item: r.item, match: m, rect: rect}
		}
	}
	return hit{kind: hitNone}
}

// visibleSet is the filtered view of one catalog page. It implements
// domain.NavigationSource.
type visibleSet struct {
	items []domain.Item
	idx   []int
}

// VisibleItemCount returns the number of items passing the filter
func (s visibleSet) VisibleItemCount() int {
	return len(s.idx)
}

// MatchCount returns the number of matches of visible item i
func (s visibleSet) MatchCount(i int) int {
	if i < 0 || i >= len(s.idx) {
		return 0
	}
	return len(s.items[s.idx[i]].Matches)
}

// Item returns visible item i
func (s visibleSet) Item(i int) (domain.Item, bool) {
	if i < 0 || i >= len(s.idx) {
		return domain.Item{}, false
	}
	return s.items[s.idx[i]], true
}

// Match returns match j of visible item i
func (s visibleSet) Match(i, j int) (domain.Item, domain.Match, bool) {
	it, ok := s.Item(i)
	if !ok || j < 0 || j >= len(it.Matches) {
		return domain.Item{}, domain.Match{}, false
	}
	return it, it.Matches[j], true
}

var _ domain.NavigationSource = visibleSet{}
