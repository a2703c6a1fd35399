package views

// Paginator tracks the current catalog page
type Paginator struct {
	current int
	total   int
}

// NewPaginator creates a paginator over total pages
func NewPaginator(total int) *Paginator {
	p := &Paginator{}
	p.SetTotal(total)
	return p
}

// SetTotal sets the number of pages and keeps the current page in range
func (p *Paginator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.SetPage(p.current)
}

// Page returns the current page index (0-based)
func (p *Paginator) Page() int {
	return p.current
}

// Total returns the number of pages
func (p *Paginator) Total() int {
	return p.total
}

// SetPage jumps to page i, clamped into range. Returns true if the page changed.
func (p *Paginator) SetPage(i int) bool {
	if i >= p.total {
		i = p.total - 1
	}
	if i < 0 {
		i = 0
	}
	changed := i != p.current
	p.current = i
	return changed
}

// NextPage moves to the next page
func (p *Paginator) NextPage() bool {
	return p.SetPage(p.current + 1)
}

// PrevPage moves to the previous page
func (p *Paginator) PrevPage() bool {
	return p.SetPage(p.current - 1)
}

// FirstPage moves to the first page
func (p *Paginator) FirstPage() bool {
	return p.SetPage(0)
}

// LastPage moves to the last page
func (p *Paginator) LastPage() bool {
	return p.SetPage(p.total - 1)
}

// HasPrev reports whether a previous page exists
func (p *Paginator) HasPrev() bool {
	return p.current > 0
}

// HasNext reports whether a next page exists
func (p *Paginator) HasNext() bool {
	return p.current < p.total-1
}
