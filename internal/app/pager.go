package app

import "reviews_carousel/internal/domain"

const (
	NarrowPageSize    = 2
	DefaultPageSize   = 4
	DefaultBreakpoint = 768
)

// PageSizeForWidth is the viewport rule: narrow screens show two reviews per page.
func PageSizeForWidth(width, breakpoint int) int {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width < breakpoint {
		return NarrowPageSize
	}
	return DefaultPageSize
}

// Pager slices a ReviewSet into fixed-size pages. It is not safe for
// concurrent use; Widget serializes access.
type Pager struct {
	reviews    domain.ReviewSet
	pageSize   int
	pageIndex  int
	totalPages int
	r          domain.Renderer
}

func NewPager(pageSize int, r domain.Renderer) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{pageSize: pageSize, r: r}
}

// SetReviews replaces the whole set and goes back to the first page.
func (p *Pager) SetReviews(rs domain.ReviewSet) {
	p.reviews = rs
	p.recompute()
	p.pageIndex = 0
	p.render()
	if p.r != nil {
		p.r.RenderSummary(p.Summary())
	}
}

// CurrentPage returns a view of the current page. The result is capped so
// appending to it never writes into the underlying set.
func (p *Pager) CurrentPage() domain.ReviewSet {
	start := p.pageIndex * p.pageSize
	if start >= len(p.reviews) {
		return domain.ReviewSet{}
	}
	end := min(start+p.pageSize, len(p.reviews))
	return p.reviews[start:end:end]
}

func (p *Pager) NextPage() bool {
	if p.pageIndex >= p.totalPages-1 {
		return false
	}
	p.pageIndex++
	p.render()
	return true
}

func (p *Pager) PreviousPage() bool {
	if p.pageIndex <= 0 {
		return false
	}
	p.pageIndex--
	p.render()
	return true
}

// GoToPage ignores out-of-range indexes.
func (p *Pager) GoToPage(i int) bool {
	if i < 0 || i >= p.totalPages {
		return false
	}
	p.pageIndex = i
	p.render()
	return true
}

// SetPageSize is driven by the viewport observer. Non-positive sizes are ignored.
func (p *Pager) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	p.pageSize = n
	p.recompute()
	p.render()
}

func (p *Pager) Summary() domain.Summary {
	return domain.Summary{Count: len(p.reviews), AverageRating: domain.AverageRating(p.reviews)}
}

func (p *Pager) PageIndex() int { return p.pageIndex }
func (p *Pager) PageSize() int { return p.pageSize }
func (p *Pager) TotalPages() int { return p.totalPages }
func (p *Pager) Len() int { return len(p.reviews) }
func (p *Pager) PrevEnabled() bool { return p.pageIndex > 0 }
func (p *Pager) NextEnabled() bool { return p.pageIndex < p.totalPages-1 }

func (p *Pager) Indicators() []domain.Indicator {
	out := make([]domain.Indicator, p.totalPages)
	for i := range out {
		out[i] = domain.Indicator{Index: i, Active: i == p.pageIndex}
	}
	return out
}

func (p *Pager) View() domain.PageView {
	return domain.PageView{
		Reviews:     p.CurrentPage(),
		PageIndex:   p.pageIndex,
		PageSize:    p.pageSize,
		TotalPages:  p.totalPages,
		Indicators:  p.Indicators(),
		PrevEnabled: p.PrevEnabled(),
		NextEnabled: p.NextEnabled(),
	}
}

// recompute keeps pageIndex inside [0, totalPages-1], or 0 when empty.
func (p *Pager) recompute() {
	p.totalPages = (len(p.reviews) + p.pageSize - 1) / p.pageSize
	if p.pageIndex > p.totalPages-1 {
		p.pageIndex = p.totalPages - 1
	}
	if p.pageIndex < 0 {
		p.pageIndex = 0
	}
}

func (p *Pager) render() {
	if p.r != nil {
		p.r.RenderPage(p.View())
	}
}
