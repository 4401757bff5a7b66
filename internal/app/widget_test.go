package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"reviews_carousel/internal/app"
	"reviews_carousel/internal/domain"
)

func newWidget(t *testing.T, src domain.ReviewSource, places domain.PlacesClient, kv ...string) (*app.Widget, *fakeRenderer) {
	t.Helper()
	store := newMemSettings(kv...)
	s := app.NewSettings(store)
	r := &fakeRenderer{}
	l := app.NewLoader(s, places, src, nil, time.Minute)
	th := app.NewThemeService(context.Background(), store)
	return app.NewWidget(l, s, th, r, 768), r
}

func TestWidget_RefreshPopulatesPager(t *testing.T) {
	w, r := newWidget(t, staticSource{domain.Payload{Reviews: nReviews(10), TotalCount: 10}}, nil)

	res := w.Refresh(context.Background())
	if res.Origin != app.OriginFallback {
		t.Fatalf("origin=%s", res.Origin)
	}
	v := w.View()
	if v.TotalPages != 3 || len(v.Reviews) != 4 || v.PrevEnabled || !v.NextEnabled {
		t.Fatalf("unexpected view: %+v", v)
	}
	if len(r.loading) != 2 || !r.loading[0] || r.loading[1] {
		t.Fatalf("loading indicator sequence: %v", r.loading)
	}
	if r.lastErr != "" {
		t.Fatalf("unexpected error state %q", r.lastErr)
	}
	if r.summary == nil || r.summary.Count != 10 {
		t.Fatalf("summary not rendered: %+v", r.summary)
	}
}

func TestWidget_EmptyResultShowsErrorAndKeepsState(t *testing.T) {
	places := &fakePlaces{payload: domain.Payload{Reviews: nReviews(6)}}
	w, r := newWidget(t, staticSource{}, places, domain.SettingAPIKey, "k", domain.SettingPlaceID, "p")

	w.Refresh(context.Background())
	w.Next()

	places.mu.Lock()
	places.payload = domain.Payload{}
	places.mu.Unlock()

	res := w.Refresh(context.Background())
	if !res.Empty() {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if r.lastErr != domain.ErrEmptyResult.Error() {
		t.Fatalf("error state = %q", r.lastErr)
	}
	if v := w.View(); v.PageIndex != 1 || v.TotalPages != 2 {
		t.Fatalf("prior state must be kept, got %+v", v)
	}
}

func TestWidget_RefreshFailureShowsError(t *testing.T) {
	w, r := newWidget(t, failingSource{}, nil)

	res := w.Refresh(context.Background())
	if res.Err == nil || r.lastErr == "" {
		t.Fatalf("expected error state, got res=%+v err=%q", res, r.lastErr)
	}
	if w.View().TotalPages != 0 {
		t.Fatalf("pager should stay empty")
	}
}

func TestWidget_NavigationAndResize(t *testing.T) {
	w, _ := newWidget(t, staticSource{domain.Payload{Reviews: nReviews(10)}}, nil)
	w.Refresh(context.Background())

	if w.Previous() {
		t.Fatalf("previous at page 0 moved")
	}
	if !w.GoTo(2) || w.GoTo(3) {
		t.Fatalf("goto bounds broken")
	}
	if n := w.Resize(400); n != 2 {
		t.Fatalf("narrow viewport page size = %d", n)
	}
	v := w.View()
	if v.TotalPages != 5 || v.PageIndex != 2 {
		t.Fatalf("after resize: %+v", v)
	}
	w.GoTo(4)
	w.Resize(1024)
	if v := w.View(); v.TotalPages != 3 || v.PageIndex != 2 || v.NextEnabled {
		t.Fatalf("after widen: %+v", v)
	}
}

func TestWidget_Status(t *testing.T) {
	w, _ := newWidget(t, staticSource{domain.Payload{Reviews: nReviews(3)}}, nil, domain.SettingTheme, "light")
	w.Refresh(context.Background())

	st, err := w.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.ReviewsCount != 3 || st.Theme != domain.ThemeLight || st.Origin != app.OriginFallback || st.LoadedAt == nil {
		t.Fatalf("unexpected status: %+v", st)
	}
	if !st.Config.UsingFallback {
		t.Fatalf("expected fallback config status")
	}
}

func TestWidget_AutoPlayWraps(t *testing.T) {
	w, _ := newWidget(t, staticSource{domain.Payload{Reviews: nReviews(8)}}, nil)
	w.Refresh(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.AutoPlay(ctx, 5*time.Millisecond)
		close(done)
	}()

	// two pages: the index must come back to 0 after reaching 1
	sawLast, wrapped := false, false
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && !wrapped {
		switch w.View().PageIndex {
		case 1:
			sawLast = true
		case 0:
			wrapped = sawLast
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done
	if !wrapped {
		t.Fatalf("autoplay did not wrap to the first page")
	}
}

type failingSource struct{}

func (failingSource) Load(ctx context.Context) (domain.Payload, error) {
	return domain.Payload{}, errors.New("source unavailable")
}

func TestWidget_OverlappingRefreshKeepsLoadingUntilLastReturns(t *testing.T) {
	gate := make(chan struct{})
	places := &fakePlaces{payload: domain.Payload{Reviews: nReviews(6)}, gate: gate}
	w, r := newWidget(t, staticSource{}, places, domain.SettingAPIKey, "k", domain.SettingPlaceID, "p")

	ctxA, cancelA := context.WithCancel(context.Background())
	doneA := make(chan app.LoadResult, 1)
	go func() { doneA <- w.Refresh(ctxA) }()
	for places.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	doneB := make(chan app.LoadResult, 1)
	go func() { doneB <- w.Refresh(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	// A walks away; B is still waiting on the same load
	cancelA()
	if res := <-doneA; res.Err == nil {
		t.Fatalf("abandoned refresh should report ctx error, got %+v", res)
	}
	r.mu.Lock()
	loading, lastErr := r.loading[len(r.loading)-1], r.lastErr
	r.mu.Unlock()
	if !loading || lastErr != "" {
		t.Fatalf("abandoned refresh must not end loading or paint an error: loading=%v err=%q", loading, lastErr)
	}

	close(gate)
	if res := <-doneB; res.Err != nil || res.Origin != app.OriginLive {
		t.Fatalf("waiting refresh: %+v", res)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loading[len(r.loading)-1] || r.lastErr != "" {
		t.Fatalf("final state: loading=%v err=%q", r.loading, r.lastErr)
	}
	if w.View().TotalPages != 2 {
		t.Fatalf("reviews not applied: %+v", w.View())
	}
}
