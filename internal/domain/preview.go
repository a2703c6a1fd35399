package domain

// Rect is a cell rectangle on screen
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Size is a width/height pair in cells
type Size struct {
	Width, Height int
}

// Point is a cell position
type Point struct {
	X, Y int
}

// PlacePreview positions a floating panel next to target.
//
// The panel goes to the right of the target, separated by gap. If it would
// cross the right edge (keeping margin free) it flips to the left side; if it
// would cross the bottom edge it is lifted so its bottom sits margin above
// the viewport edge. The result is never negative.
func PlacePreview(target Rect, viewport Size, panel Size, gap, margin int) Point {
	p := Point{X: target.X + target.Width + gap, Y: target.Y}

	if p.X+panel.Width+margin > viewport.Width {
		p.X = target.X - panel.Width - gap
	}
	if p.Y+panel.Height+margin > viewport.Height {
		p.Y = viewport.Height - panel.Height - margin
	}

	p.X = max(p.X, 0)
	p.Y = max(p.Y, 0)
	return p
}
