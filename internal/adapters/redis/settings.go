package redisad

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const settingsKey = "reviews_carousel:settings"

// Settings keeps persisted UI settings in a single redis hash.
type Settings struct{ c redis.UniversalClient }

func NewSettings(c redis.UniversalClient) *Settings { return &Settings{c: c} }

func (s *Settings) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.c.HGet(ctx, settingsKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Settings) Set(ctx context.Context, key, value string) error {
	return s.c.HSet(ctx, settingsKey, key, value).Err()
}

func (s *Settings) Del(ctx context.Context, key string) error {
	return s.c.HDel(ctx, settingsKey, key).Err()
}
