package app_test

import (
	"testing"

	"reviews_carousel/internal/app"
)

func TestPager_TotalPagesIsCeil(t *testing.T) {
	for count := 0; count <= 13; count++ {
		for size := 1; size <= 5; size++ {
			p := app.NewPager(size, nil)
			p.SetReviews(nReviews(count))
			want := (count + size - 1) / size
			if p.TotalPages() != want {
				t.Fatalf("count=%d size=%d: totalPages=%d want %d", count, size, p.TotalPages(), want)
			}
		}
	}
}

func TestPager_PageLengths(t *testing.T) {
	for count := 1; count <= 11; count++ {
		p := app.NewPager(4, nil)
		p.SetReviews(nReviews(count))
		for i := 0; i < p.TotalPages(); i++ {
			p.GoToPage(i)
			want := 4
			if i == p.TotalPages()-1 {
				want = count - i*4
			}
			if got := len(p.CurrentPage()); got != want {
				t.Fatalf("count=%d page=%d: len=%d want %d", count, i, got, want)
			}
		}
	}
}

func TestPager_TenReviewsFourPerPage(t *testing.T) {
	rs := nReviews(10)
	p := app.NewPager(4, nil)
	p.SetReviews(rs)

	if p.TotalPages() != 3 {
		t.Fatalf("totalPages=%d", p.TotalPages())
	}
	page := p.CurrentPage()
	if len(page) != 4 || page[0].Author != rs[0].Author || page[3].Author != rs[3].Author {
		t.Fatalf("unexpected first page: %+v", page)
	}

	p.GoToPage(2)
	page = p.CurrentPage()
	if len(page) != 2 || page[0].Author != rs[8].Author || page[1].Author != rs[9].Author {
		t.Fatalf("unexpected last page: %+v", page)
	}
}

func TestPager_Empty(t *testing.T) {
	r := &fakeRenderer{}
	p := app.NewPager(4, r)
	p.SetReviews(nil)

	if p.TotalPages() != 0 || len(p.CurrentPage()) != 0 {
		t.Fatalf("expected empty pager, got pages=%d", p.TotalPages())
	}
	if p.PrevEnabled() || p.NextEnabled() {
		t.Fatalf("both nav buttons must be disabled")
	}
	if len(p.Indicators()) != 0 {
		t.Fatalf("expected no indicators")
	}
	if r.summary == nil || r.summary.Count != 0 || r.summary.AverageRating != 0 {
		t.Fatalf("unexpected summary: %+v", r.summary)
	}
	if p.NextPage() || p.PreviousPage() || p.GoToPage(0) {
		t.Fatalf("navigation on empty pager must be a no-op")
	}
}

func TestPager_NavigationClamps(t *testing.T) {
	r := &fakeRenderer{}
	p := app.NewPager(4, r)
	p.SetReviews(nReviews(10))
	base := r.renders()

	if p.PreviousPage() {
		t.Fatalf("previous at page 0 moved")
	}
	if !p.NextPage() || !p.NextPage() {
		t.Fatalf("next should advance twice")
	}
	if p.NextPage() {
		t.Fatalf("next at last page moved")
	}
	if p.PageIndex() != 2 {
		t.Fatalf("pageIndex=%d", p.PageIndex())
	}
	if got := r.renders() - base; got != 2 {
		t.Fatalf("no-ops must not render; renders=%d", got)
	}
	if !p.PrevEnabled() || p.NextEnabled() {
		t.Fatalf("at last page: prev=%v next=%v", p.PrevEnabled(), p.NextEnabled())
	}
}

func TestPager_GoToPageOutOfRangeIgnored(t *testing.T) {
	p := app.NewPager(4, nil)
	p.SetReviews(nReviews(10))
	p.GoToPage(1)
	for _, i := range []int{-1, 3, 100} {
		if p.GoToPage(i) {
			t.Fatalf("GoToPage(%d) accepted", i)
		}
	}
	if p.PageIndex() != 1 {
		t.Fatalf("pageIndex changed to %d", p.PageIndex())
	}
}

func TestPager_SetReviewsResetsIndex(t *testing.T) {
	p := app.NewPager(2, nil)
	p.SetReviews(nReviews(10))
	p.GoToPage(4)
	p.SetReviews(nReviews(3))
	if p.PageIndex() != 0 || p.TotalPages() != 2 {
		t.Fatalf("index=%d pages=%d", p.PageIndex(), p.TotalPages())
	}
}

func TestPager_SetPageSizeKeepsValidIndex(t *testing.T) {
	p := app.NewPager(4, nil)
	p.SetReviews(nReviews(10))
	p.GoToPage(2)

	p.SetPageSize(2)
	if p.TotalPages() != 5 || p.PageIndex() != 2 {
		t.Fatalf("pages=%d index=%d", p.TotalPages(), p.PageIndex())
	}
}

func TestPager_SetPageSizeClamps(t *testing.T) {
	p := app.NewPager(2, nil)
	p.SetReviews(nReviews(10))
	p.GoToPage(4)

	p.SetPageSize(4)
	if p.TotalPages() != 3 || p.PageIndex() != 2 {
		t.Fatalf("pages=%d index=%d", p.TotalPages(), p.PageIndex())
	}

	p.SetPageSize(0)
	if p.PageSize() != 4 {
		t.Fatalf("non-positive size must be ignored, got %d", p.PageSize())
	}

	empty := app.NewPager(4, nil)
	empty.SetPageSize(2)
	if empty.PageIndex() != 0 || empty.TotalPages() != 0 {
		t.Fatalf("empty pager: index=%d pages=%d", empty.PageIndex(), empty.TotalPages())
	}
}

func TestPager_IndexAlwaysInRangeAfterResize(t *testing.T) {
	for count := 0; count <= 12; count++ {
		for start := 1; start <= 5; start++ {
			p := app.NewPager(start, nil)
			p.SetReviews(nReviews(count))
			p.GoToPage(p.TotalPages() - 1)
			for size := 1; size <= 5; size++ {
				p.SetPageSize(size)
				if p.TotalPages() == 0 && p.PageIndex() != 0 {
					t.Fatalf("empty set must reset index")
				}
				if p.TotalPages() > 0 && p.PageIndex() >= p.TotalPages() {
					t.Fatalf("count=%d size=%d index=%d pages=%d", count, size, p.PageIndex(), p.TotalPages())
				}
			}
		}
	}
}

func TestPager_SummaryUsesFullSet(t *testing.T) {
	p := app.NewPager(2, nil)
	p.SetReviews(reviews(5, 4, 5, 3, 5))
	p.GoToPage(2)
	s := p.Summary()
	if s.Count != 5 || s.AverageRating != 4.4 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestPager_IndicatorsMarkActive(t *testing.T) {
	p := app.NewPager(4, nil)
	p.SetReviews(nReviews(10))
	p.GoToPage(1)
	ind := p.Indicators()
	if len(ind) != 3 {
		t.Fatalf("indicators=%d", len(ind))
	}
	for i, in := range ind {
		if in.Index != i || in.Active != (i == 1) {
			t.Fatalf("indicator %d: %+v", i, in)
		}
	}
}

func TestPager_CurrentPageIsolatedFromAppend(t *testing.T) {
	rs := nReviews(10)
	p := app.NewPager(4, nil)
	p.SetReviews(rs)
	page := p.CurrentPage()
	_ = append(page, rs[9])
	if p.CurrentPage()[0].Author != rs[0].Author || rs[4].Author != "E" {
		t.Fatalf("append through page view mutated the set")
	}
}

func TestPageSizeForWidth(t *testing.T) {
	if app.PageSizeForWidth(767, 768) != 2 || app.PageSizeForWidth(768, 768) != 4 || app.PageSizeForWidth(320, 0) != 2 {
		t.Fatalf("breakpoint rule broken")
	}
}
