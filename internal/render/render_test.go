package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"reviews_carousel/internal/domain"
	"reviews_carousel/internal/render"
)

func TestStars(t *testing.T) {
	cases := map[int]string{
		0: "☆☆☆☆☆",
		1: "★☆☆☆☆",
		4: "★★★★☆",
		5: "★★★★★",
		7: "★★★★★",
	}
	for in, want := range cases {
		if got := render.Stars(in); got != want {
			t.Fatalf("Stars(%d) = %s, want %s", in, got, want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "today"},
		{3 * time.Hour, "today"},
		{day, "1 day ago"},
		{6 * day, "6 days ago"},
		{7 * day, "1 week ago"},
		{29 * day, "4 weeks ago"},
		{30 * day, "1 month ago"},
		{364 * day, "12 months ago"},
		{365 * day, "1 year ago"},
		{3 * 365 * day, "3 years ago"},
	}
	for _, c := range cases {
		if got := render.RelativeTime(now.Add(-c.ago), now); got != c.want {
			t.Fatalf("RelativeTime(-%v) = %q, want %q", c.ago, got, c.want)
		}
	}
	// future timestamps use the absolute distance
	if got := render.RelativeTime(now.Add(2*day), now); got != "2 days ago" {
		t.Fatalf("future: %q", got)
	}
}

func TestDocument_RenderPageAndSummary(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	doc := render.NewDocument().WithClock(func() time.Time { return now })

	doc.RenderPage(domain.PageView{
		Reviews: domain.ReviewSet{
			{Author: "<b>Ana</b>", Rating: 4, Body: `<a href="x">Great</a> place &amp; staff`, PostedAt: now.Add(-10 * 24 * time.Hour)},
		},
		PageIndex:   0,
		TotalPages:  2,
		Indicators:  []domain.Indicator{{Index: 0, Active: true}, {Index: 1}},
		NextEnabled: true,
	})
	doc.RenderSummary(domain.Summary{Count: 5, AverageRating: 4.4})

	s := doc.Snapshot()
	if len(s.Cards) != 1 {
		t.Fatalf("cards=%d", len(s.Cards))
	}
	c := s.Cards[0]
	if c.Author != "Ana" || c.Body != "Great place & staff" {
		t.Fatalf("markup not stripped: %+v", c)
	}
	if c.Stars != "★★★★☆" || c.Posted != "1 week ago" || c.AvatarURL != domain.DefaultAvatarURL {
		t.Fatalf("unexpected card: %+v", c)
	}
	if s.PrevEnabled || !s.NextEnabled || len(s.Indicators) != 2 {
		t.Fatalf("unexpected nav state: %+v", s)
	}
	if s.Summary.Stars != "★★★★☆" || s.Summary.Count != 5 {
		t.Fatalf("unexpected summary: %+v", s.Summary)
	}
}

func TestDocument_LoadingAndError(t *testing.T) {
	doc := render.NewDocument()
	doc.ShowLoading(true)
	doc.ShowError("no reviews found")
	s := doc.Snapshot()
	if !s.Loading || s.Error != "no reviews found" {
		t.Fatalf("unexpected state: %+v", s)
	}
	doc.ShowLoading(false)
	doc.ShowError("")
	if s := doc.Snapshot(); s.Loading || s.Error != "" {
		t.Fatalf("state not cleared: %+v", s)
	}
}

func TestWriteHTML(t *testing.T) {
	doc := render.NewDocument()
	doc.RenderPage(domain.PageView{
		Reviews:     domain.ReviewSet{{Author: "Bob & Co", Rating: 5, Body: "Lovely", PostedAt: time.Now()}},
		TotalPages:  3,
		PageIndex:   1,
		Indicators:  []domain.Indicator{{Index: 0}, {Index: 1, Active: true}, {Index: 2}},
		PrevEnabled: true,
		NextEnabled: true,
	})
	doc.RenderSummary(domain.Summary{Count: 9, AverageRating: 4.5})

	var buf bytes.Buffer
	err := render.WriteHTML(&buf, render.Page{Snapshot: doc.Snapshot(), Theme: domain.ThemeModern.Transition(), UsingDummy: true})
	if err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`data-theme="modern"`,
		`Bob &amp; Co`,
		`<span id="averageRating">4.5</span>`,
		`/v1/reviews/pages/2`,
		`class="indicator active"`,
		`(sample data)`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "disabled") {
		t.Fatalf("middle page must not disable navigation")
	}
}
