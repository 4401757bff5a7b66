package domain

import (
	"math"
	"time"
)

// DefaultAvatarURL is shown for reviewers without a profile photo.
const DefaultAvatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	Author    string    `json:"author"`
	Rating    int       `json:"rating"` // 1..5
	Body      string    `json:"body"`
	PostedAt  time.Time `json:"postedAt"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
}

// Avatar returns the review's avatar or the default one.
func (r Review) Avatar() string {
	if r.AvatarURL == "" {
		return DefaultAvatarURL
	}
	return r.AvatarURL
}

// ReviewSet is ordered as delivered by the source; never re-sorted.
type ReviewSet []Review

// Payload is what a review source resolves to.
type Payload struct {
	Reviews       ReviewSet `json:"reviews"`
	TotalCount    int       `json:"totalCount"`
	AverageRating float64   `json:"averageRating"`
}

type Summary struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// AverageRating is the mean of all ratings rounded to one decimal, 0 for an empty set.
func AverageRating(rs ReviewSet) float64 {
	if len(rs) == 0 {
		return 0
	}
	total := 0
	for _, r := range rs {
		total += r.Rating
	}
	return RoundOne(float64(total) / float64(len(rs)))
}

func RoundOne(f float64) float64 {
	return math.Round(f*10) / 10
}

// ClampRating forces provider ratings into the 1..5 star range.
func ClampRating(n int) int {
	if n < MinRating {
		return MinRating
	}
	if n > MaxRating {
		return MaxRating
	}
	return n
}
