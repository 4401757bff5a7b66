package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"reviews_carousel/internal/adapters/observability"
	"reviews_carousel/internal/domain"
)

// Widget wires the pager to its loader and renderer. One mutex stands in for
// the UI event loop: every pager mutation runs to completion under it.
type Widget struct {
	loader     *Loader
	settings   *Settings
	themes     *ThemeService
	r          domain.Renderer
	breakpoint int

	mu         sync.Mutex
	pager      *Pager
	origin     Origin
	loadedAt   time.Time
	refreshing int
}

func NewWidget(l *Loader, s *Settings, th *ThemeService, r domain.Renderer, breakpoint int) *Widget {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Widget{
		loader:     l,
		settings:   s,
		themes:     th,
		r:          r,
		breakpoint: breakpoint,
		pager:      NewPager(DefaultPageSize, r),
	}
}

type WidgetStatus struct {
	ReviewsCount int          `json:"reviewsCount"`
	PageIndex    int          `json:"pageIndex"`
	TotalPages   int          `json:"totalPages"`
	Theme        domain.Theme `json:"theme"`
	Origin       Origin       `json:"origin,omitempty"`
	LoadedAt     *time.Time   `json:"loadedAt,omitempty"`
	Config       ConfigStatus `json:"config"`
}

// Refresh loads reviews and swaps them in. The pager keeps its prior state
// while the load is outstanding and when it yields nothing. The loading
// indicator stays on until the last overlapping Refresh returns. A caller
// that gives up before the load finishes leaves the painted state alone.
func (w *Widget) Refresh(ctx context.Context) LoadResult {
	w.mu.Lock()
	w.refreshing++
	w.r.ShowLoading(true)
	w.r.ShowError("")
	w.mu.Unlock()

	res := w.loader.Load(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() {
		w.refreshing--
		w.r.ShowLoading(w.refreshing > 0)
	}()

	switch {
	case res.Err != nil && ctx.Err() != nil:
		log.Debug().Err(res.Err).Msg("refresh abandoned by caller")
	case res.Err != nil:
		log.Error().Err(res.Err).Msg("load reviews failed")
		w.r.ShowError(res.Err.Error())
	case res.Empty():
		w.r.ShowError(domain.ErrEmptyResult.Error())
	default:
		w.pager.SetReviews(res.Payload.Reviews)
		w.origin = res.Origin
		w.loadedAt = time.Now()
		log.Info().
			Str("origin", string(res.Origin)).
			Int("reviews", len(res.Payload.Reviews)).
			Msg("reviews loaded")
	}
	return res
}

func (w *Widget) Next() bool     { return w.navigate("next", (*Pager).NextPage) }
func (w *Widget) Previous() bool { return w.navigate("previous", (*Pager).PreviousPage) }

func (w *Widget) GoTo(i int) bool {
	return w.navigate("goto", func(p *Pager) bool { return p.GoToPage(i) })
}

func (w *Widget) navigate(action string, f func(*Pager) bool) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	moved := f(w.pager)
	if moved {
		observability.ObserveNavigation(action)
	}
	return moved
}

// Resize applies the viewport breakpoint rule and returns the resulting page size.
func (w *Widget) Resize(width int) int {
	n := PageSizeForWidth(width, w.breakpoint)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pager.SetPageSize(n)
	return n
}

func (w *Widget) View() domain.PageView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pager.View()
}

func (w *Widget) Summary() domain.Summary {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pager.Summary()
}

func (w *Widget) Status(ctx context.Context) (WidgetStatus, error) {
	cs, err := w.settings.Status(ctx)
	if err != nil {
		return WidgetStatus{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	st := WidgetStatus{
		ReviewsCount: w.pager.Len(),
		PageIndex:    w.pager.PageIndex(),
		TotalPages:   w.pager.TotalPages(),
		Theme:        w.themes.Current(),
		Origin:       w.origin,
		Config:       cs,
	}
	if !w.loadedAt.IsZero() {
		t := w.loadedAt
		st.LoadedAt = &t
	}
	return st, nil
}

// AutoPlay advances one page per tick and loops back to the first page
// after the last. It returns when ctx is done.
func (w *Widget) AutoPlay(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.mu.Lock()
			if !w.pager.NextPage() {
				w.pager.GoToPage(0)
			}
			w.mu.Unlock()
		}
	}
}
