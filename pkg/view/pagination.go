package view

import "fmt"

const pageWindow = 5

// Paginator holds offset-based paging state for a list page.
type Paginator struct {
	Page     int
	PageSize int
	Total    int
}

// NewPaginator clamps page and size into a usable range.
func NewPaginator(page, size, total int) Paginator {
	if size < 1 {
		size = 10
	}
	p := Paginator{Page: page, PageSize: size, Total: total}
	if p.Page < 1 {
		p.Page = 1
	}
	if tp := p.TotalPages(); p.Page > tp {
		p.Page = tp
	}
	return p
}

func (p Paginator) TotalPages() int {
	if p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// Skip is the upstream offset for the current page.
func (p Paginator) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// WithPage moves to page n; out-of-range requests keep the current page.
func (p Paginator) WithPage(n int) Paginator {
	if n < 1 || n > p.TotalPages() {
		return p
	}
	p.Page = n
	return p
}

// WithPageSize changes the page size and always resets to the first page.
func (p Paginator) WithPageSize(size int) Paginator {
	if size < 1 {
		return p
	}
	p.PageSize = size
	p.Page = 1
	return p
}

// Window returns the visible page buttons: at most five numbers centered on
// the current page and clamped at both ends.
func (p Paginator) Window() []int {
	tp := p.TotalPages()
	n := pageWindow
	if tp < n {
		n = tp
	}
	start := 1
	switch {
	case tp <= pageWindow || p.Page <= 3:
		start = 1
	case p.Page >= tp-2:
		start = tp - pageWindow + 1
	default:
		start = p.Page - 2
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+i)
	}
	return out
}

// From and To bound the "showing X to Y of Z" caption.
func (p Paginator) From() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Page-1)*p.PageSize + 1
}

func (p Paginator) To() int {
	to := p.Page * p.PageSize
	if to > p.Total {
		to = p.Total
	}
	return to
}

func (p Paginator) RangeText() string {
	return fmt.Sprintf("显示第 %d 到 %d 条，共 %d 条", p.From(), p.To(), p.Total)
}

// SizeOptions are the selectable page sizes.
func (p Paginator) SizeOptions() []int { return []int{10, 20, 50, 100} }

func (p Paginator) HasPrev() bool { return p.Page > 1 }
func (p Paginator) HasNext() bool { return p.Page < p.TotalPages() }
