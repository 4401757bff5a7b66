// internal/adapters/places/client.go
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"reviews_carousel/internal/adapters/observability"
	"reviews_carousel/internal/domain"
)

const DefaultBase = "https://maps.googleapis.com/maps/api/place"

var (
	ErrUnauthorized = errors.New("places: unauthorized")
	ErrForbidden    = errors.New("places: forbidden")
	ErrMissingCreds = errors.New("places: api key and place id are required")
)

// StatusError is a non-OK status reported inside a 200 response body.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "places: status " + e.Status
	}
	return fmt.Sprintf("places: status %s: %s", e.Status, e.Message)
}

// Client talks to the place details endpoint. Failed calls are not retried;
// the caller falls back to static data instead.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if base == "" {
		base = DefaultBase
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// ---- wire format ----

type detailsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Result       *detailResult `json:"result"`
}

type detailResult struct {
	Reviews          []placeReview `json:"reviews"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
}

type placeReview struct {
	AuthorName      string  `json:"author_name"`
	Rating          float64 `json:"rating"`
	Text            string  `json:"text"`
	Time            int64   `json:"time"` // unix seconds
	ProfilePhotoURL string  `json:"profile_photo_url"`
}

// ---- Public API ----

func (c *Client) GetReviews(ctx context.Context, apiKey, placeID string) (domain.Payload, error) {
	if apiKey == "" || placeID == "" {
		return domain.Payload{}, ErrMissingCreds
	}
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "reviews,rating,user_ratings_total")
	q.Set("key", apiKey)

	var resp detailsResponse
	if err := c.get(ctx, c.base+"/details/json?"+q.Encode(), &resp); err != nil {
		return domain.Payload{}, err
	}
	if resp.Status != "OK" || resp.Result == nil {
		return domain.Payload{}, &StatusError{Status: resp.Status, Message: resp.ErrorMessage}
	}
	return mapDetails(*resp.Result), nil
}

// mapDetails converts provider reviews, keeping provider order.
func mapDetails(r detailResult) domain.Payload {
	out := make(domain.ReviewSet, 0, len(r.Reviews))
	for _, pr := range r.Reviews {
		out = append(out, domain.Review{
			Author:    strings.TrimSpace(pr.AuthorName),
			Rating:    domain.ClampRating(int(pr.Rating + 0.5)),
			Body:      pr.Text,
			PostedAt:  time.Unix(pr.Time, 0).UTC(),
			AvatarURL: pr.ProfilePhotoURL,
		})
	}
	total := r.UserRatingsTotal
	if total == 0 {
		total = len(out)
	}
	return domain.Payload{
		Reviews:       out,
		TotalCount:    total,
		AverageRating: domain.AverageRating(out),
	}
}

// ---- Internals ----

// get performs a rate-limited GET and decodes JSON into out.
func (c *Client) get(ctx context.Context, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "reviews-carousel/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("places", "details", 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Debug().Str("err_type", observability.LabelErr(err)).Msg("places request failed")
		return fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("places", "details", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("places decode: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
