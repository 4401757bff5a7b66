package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"reviews_carousel/internal/adapters/observability"
	"reviews_carousel/internal/domain"
)

type Origin string

const (
	OriginLive     Origin = "live"
	OriginCache    Origin = "cache"
	OriginFallback Origin = "fallback"
)

// LoadResult is the outcome of one load. Cause records why the live source
// was skipped in favour of fallback data; Err is set only when nothing at all
// could be loaded.
type LoadResult struct {
	Payload domain.Payload
	Origin  Origin
	Cause   error
	Err     error
}

func (r LoadResult) Empty() bool { return r.Err == nil && len(r.Payload.Reviews) == 0 }

// Loader picks between the live places client and the fallback source.
type Loader struct {
	settings *Settings
	places   domain.PlacesClient
	fallback domain.ReviewSource
	cache    domain.Cache
	cacheTTL time.Duration

	sf singleflight.Group
}

// NewLoader accepts a nil places client (fallback only) and a nil cache.
func NewLoader(s *Settings, places domain.PlacesClient, fallback domain.ReviewSource, cache domain.Cache, ttl time.Duration) *Loader {
	return &Loader{settings: s, places: places, fallback: fallback, cache: cache, cacheTTL: ttl}
}

// LoadTimeout bounds one shared load, independent of any single caller.
const LoadTimeout = 30 * time.Second

// Load collapses concurrent calls into a single outstanding request. The
// shared request does not inherit the caller's cancellation; a caller whose
// ctx ends stops waiting and gets ctx.Err() while the others keep theirs.
func (l *Loader) Load(ctx context.Context) LoadResult {
	ch := l.sf.DoChan("reviews", func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()
		return l.load(lctx), nil
	})
	select {
	case <-ctx.Done():
		observability.ObserveLoad("none", "canceled")
		return LoadResult{Err: ctx.Err()}
	case r := <-ch:
		res := r.Val.(LoadResult)
		observability.ObserveLoad(string(res.Origin), outcome(res))
		return res
	}
}

func (l *Loader) load(ctx context.Context) LoadResult {
	key, placeID, live, err := l.settings.Credentials(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("settings unavailable, using fallback reviews")
		return l.useFallback(ctx, err)
	}
	if !live || l.places == nil {
		return l.useFallback(ctx, nil)
	}

	cacheKey := "reviews:place:" + placeID
	if l.cache != nil {
		var p domain.Payload
		ok, err := l.cache.Get(ctx, cacheKey, &p)
		if err != nil {
			log.Debug().Err(err).Str("key", cacheKey).Msg("cache get failed")
		}
		if ok {
			return LoadResult{Payload: p, Origin: OriginCache}
		}
	}

	p, err := l.places.GetReviews(ctx, key, placeID)
	if err != nil {
		log.Warn().Err(err).Str("place_id", placeID).Msg("places fetch failed, falling back to static reviews")
		return l.useFallback(ctx, err)
	}
	if l.cache != nil && len(p.Reviews) > 0 {
		if err := l.cache.Set(ctx, cacheKey, p, int(l.cacheTTL.Seconds())); err != nil {
			log.Debug().Err(err).Str("key", cacheKey).Msg("cache set failed")
		}
	}
	return LoadResult{Payload: p, Origin: OriginLive}
}

func (l *Loader) useFallback(ctx context.Context, cause error) LoadResult {
	p, err := l.fallback.Load(ctx)
	if err != nil {
		return LoadResult{Origin: OriginFallback, Cause: cause, Err: err}
	}
	return LoadResult{Payload: p, Origin: OriginFallback, Cause: cause}
}

func outcome(r LoadResult) string {
	switch {
	case r.Err != nil:
		return "error"
	case r.Empty():
		return "empty"
	default:
		return "ok"
	}
}
