package app_test

import (
	"context"
	"sync"

	"reviews_carousel/internal/domain"
)

// ---- fakes ----

type fakeRenderer struct {
	mu       sync.Mutex
	pages    []domain.PageView
	summary  *domain.Summary
	loading  []bool
	lastErr  string
	errCalls int
}

func (f *fakeRenderer) RenderPage(v domain.PageView) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, v)
}

func (f *fakeRenderer) RenderSummary(s domain.Summary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summary = &s
}

func (f *fakeRenderer) ShowLoading(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = append(f.loading, on)
}

func (f *fakeRenderer) ShowError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastErr = msg
	f.errCalls++
}

func (f *fakeRenderer) renders() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pages)
}

type memSettings struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemSettings(kv ...string) *memSettings {
	s := &memSettings{m: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		s.m[kv[i]] = kv[i+1]
	}
	return s
}

func (s *memSettings) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memSettings) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *memSettings) Del(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

type fakeCache struct {
	mu     sync.Mutex
	store  map[string]any
	getErr error
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*domain.Payload); ok {
		*d = v.(domain.Payload)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

type fakePlaces struct {
	mu      sync.Mutex
	payload domain.Payload
	err     error
	calls   int
	gate    chan struct{} // when set, GetReviews blocks until closed
	gotKey  string
	gotID   string
}

func (f *fakePlaces) GetReviews(ctx context.Context, apiKey, placeID string) (domain.Payload, error) {
	f.mu.Lock()
	f.calls++
	f.gotKey, f.gotID = apiKey, placeID
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.payload, f.err
}

func (f *fakePlaces) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type staticSource struct{ p domain.Payload }

func (s staticSource) Load(ctx context.Context) (domain.Payload, error) { return s.p, nil }

func reviews(ratings ...int) domain.ReviewSet {
	out := make(domain.ReviewSet, len(ratings))
	for i, r := range ratings {
		out[i] = domain.Review{Author: string(rune('A' + i)), Rating: r}
	}
	return out
}

func nReviews(n int) domain.ReviewSet {
	rs := make([]int, n)
	for i := range rs {
		rs[i] = 5
	}
	return reviews(rs...)
}
