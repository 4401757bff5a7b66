package render

import (
	"fmt"
	"strings"
	"time"

	"reviews_carousel/internal/domain"
)

const (
	starFull  = "★"
	starEmpty = "☆"
)

// Stars renders a rating as five glyphs, filled up to the rating.
func Stars(rating int) string {
	rating = min(max(rating, 0), domain.MaxRating)
	return strings.Repeat(starFull, rating) + strings.Repeat(starEmpty, domain.MaxRating-rating)
}

// RelativeTime buckets the distance between posted and now into a coarse label.
func RelativeTime(posted, now time.Time) string {
	d := now.Sub(posted)
	if d < 0 {
		d = -d
	}
	days := int(d / (24 * time.Hour))
	switch {
	case days == 0:
		return "today"
	case days < 7:
		return plural(days, "day")
	case days < 30:
		return plural(days/7, "week")
	case days < 365:
		return plural(days/30, "month")
	default:
		return plural(days/365, "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
