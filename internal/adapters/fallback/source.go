package fallback

import (
	"context"
	"time"

	"reviews_carousel/internal/domain"
)

// Source serves the built-in review set, optionally after a simulated delay.
type Source struct {
	delay time.Duration
}

func New(delay time.Duration) *Source { return &Source{delay: delay} }

func (s *Source) Load(ctx context.Context) (domain.Payload, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return domain.Payload{}, ctx.Err()
		case <-t.C:
		}
	}
	rs := Reviews()
	return domain.Payload{Reviews: rs, TotalCount: len(rs), AverageRating: domain.AverageRating(rs)}, nil
}

func ms(v int64) time.Time { return time.UnixMilli(v).UTC() }

const photo = "https://images.unsplash.com/"

// Reviews returns a fresh copy of the static set, newest first.
func Reviews() domain.ReviewSet {
	return domain.ReviewSet{
		{Author: "Ahmed Mohamed", Rating: 5, PostedAt: ms(1640995200000),
			Body:      "A wonderful experience! Excellent service and very helpful staff. High quality at reasonable prices.",
			AvatarURL: photo + "photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face"},
		{Author: "Fatima Ali", Rating: 4, PostedAt: ms(1640908800000),
			Body:      "Nice and clean place with a relaxed atmosphere. The only downside is the wait at peak hours.",
			AvatarURL: photo + "photo-1487412720507-e7ab37603c6f?w=150&h=150&fit=crop&crop=face"},
		{Author: "Mohamed Hassan", Rating: 5, PostedAt: ms(1640822400000),
			Body:      "Excellent customer service! My request was handled quickly and professionally.",
			AvatarURL: photo + "photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"},
		{Author: "Sara Ahmed", Rating: 3, PostedAt: ms(1640736000000),
			Body:      "Good overall. Pleasant place but it could be faster. Friendly staff.",
			AvatarURL: photo + "photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face"},
		{Author: "Abdullah Khaled", Rating: 5, PostedAt: ms(1640649600000),
			Body:      "The best place in the area! Fast service and fair prices. I visit regularly and have never been disappointed.",
			AvatarURL: photo + "photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face"},
		{Author: "Noura Salem", Rating: 4, PostedAt: ms(1640563200000),
			Body:      "Great for families, the kids loved it. Book ahead on weekends.",
			AvatarURL: photo + "photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop&crop=face"},
		{Author: "Youssef Omar", Rating: 5, PostedAt: ms(1640476800000),
			Body:      "Unforgettable! Everything was perfect from reception to service. Very clean and professional.",
			AvatarURL: photo + "photo-1507591064344-4c6ce005b128?w=150&h=150&fit=crop&crop=face"},
		{Author: "Layla Mahmoud", Rating: 4, PostedAt: ms(1640390400000),
			Body:      "Excellent quality and good service. Calm and comfortable, suitable for meetings.",
			AvatarURL: photo + "photo-1487412720507-e7ab37603c6f?w=150&h=150&fit=crop&crop=face"},
		{Author: "Karim Ahmed", Rating: 5, PostedAt: ms(1640304000000),
			Body:      "Exceptional service that exceeded my expectations. I recommend it to everyone.",
			AvatarURL: photo + "photo-1519345182560-3f2917c472ef?w=150&h=150&fit=crop&crop=face"},
		{Author: "Hind Saad", Rating: 4, PostedAt: ms(1640217600000),
			Body:      "Comfortable place, quick service and polite staff. I will definitely come back.",
			AvatarURL: photo + "photo-1534528741775-53994a69daeb?w=150&h=150&fit=crop&crop=face"},
	}
}
