package render

import (
	"html"
	"math"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"reviews_carousel/internal/domain"
)

type Card struct {
	Author    string `json:"author"`
	AvatarURL string `json:"avatarUrl"`
	Rating    int    `json:"rating"`
	Stars     string `json:"stars"`
	Posted    string `json:"posted"`
	Body      string `json:"body"`
}

type SummaryView struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
	Stars         string  `json:"stars"`
}

// Snapshot is the painted state of the widget.
type Snapshot struct {
	Cards       []Card             `json:"cards"`
	PageIndex   int                `json:"pageIndex"`
	TotalPages  int                `json:"totalPages"`
	Indicators  []domain.Indicator `json:"indicators"`
	PrevEnabled bool               `json:"prevEnabled"`
	NextEnabled bool               `json:"nextEnabled"`
	Summary     SummaryView        `json:"summary"`
	Loading     bool               `json:"loading"`
	Error       string             `json:"error,omitempty"`
}

// Document is a domain.Renderer that keeps the last painted state in memory.
type Document struct {
	policy *bluemonday.Policy
	now    func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

func NewDocument() *Document {
	return &Document{policy: bluemonday.StrictPolicy(), now: time.Now}
}

// WithClock overrides the clock used for relative timestamps.
func (d *Document) WithClock(now func() time.Time) *Document {
	d.now = now
	return d
}

func (d *Document) RenderPage(v domain.PageView) {
	now := d.now()
	cards := make([]Card, 0, len(v.Reviews))
	for _, r := range v.Reviews {
		cards = append(cards, Card{
			Author:    d.clean(r.Author),
			AvatarURL: r.Avatar(),
			Rating:    r.Rating,
			Stars:     Stars(r.Rating),
			Posted:    RelativeTime(r.PostedAt, now),
			Body:      d.clean(r.Body),
		})
	}
	ind := append([]domain.Indicator(nil), v.Indicators...)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Cards = cards
	d.snap.PageIndex = v.PageIndex
	d.snap.TotalPages = v.TotalPages
	d.snap.Indicators = ind
	d.snap.PrevEnabled = v.PrevEnabled
	d.snap.NextEnabled = v.NextEnabled
}

func (d *Document) RenderSummary(s domain.Summary) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Summary = SummaryView{
		Count:         s.Count,
		AverageRating: s.AverageRating,
		Stars:         Stars(int(math.Round(s.AverageRating))),
	}
}

func (d *Document) ShowLoading(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Loading = on
}

func (d *Document) ShowError(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Error = msg
}

// Snapshot returns a copy safe to use after further renders.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := d.snap
	s.Cards = append([]Card(nil), d.snap.Cards...)
	s.Indicators = append([]domain.Indicator(nil), d.snap.Indicators...)
	return s
}

// clean strips markup and decodes entities; html/template escapes again on output.
func (d *Document) clean(s string) string {
	return html.UnescapeString(d.policy.Sanitize(s))
}
