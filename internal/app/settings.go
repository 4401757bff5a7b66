package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"reviews_carousel/internal/domain"
)

// Settings manages the places credentials kept in the settings store.
type Settings struct {
	store domain.SettingsStore

	mu            sync.Mutex
	forceFallback bool
}

func NewSettings(store domain.SettingsStore) *Settings {
	return &Settings{store: store}
}

type ConfigStatus struct {
	HasAPIKey     bool   `json:"hasApiKey"`
	HasPlaceID    bool   `json:"hasPlaceId"`
	UsingFallback bool   `json:"usingFallback"`
	MaskedAPIKey  string `json:"apiKey"`
	PlaceID       string `json:"placeId"`
}

func (s *Settings) Save(ctx context.Context, apiKey, placeID string) error {
	apiKey, placeID = strings.TrimSpace(apiKey), strings.TrimSpace(placeID)
	if apiKey == "" || placeID == "" {
		return domain.ErrConfigIncomplete
	}
	if err := s.store.Set(ctx, domain.SettingAPIKey, apiKey); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	if err := s.store.Set(ctx, domain.SettingPlaceID, placeID); err != nil {
		return fmt.Errorf("save place id: %w", err)
	}
	s.mu.Lock()
	s.forceFallback = false
	s.mu.Unlock()
	return nil
}

// UseFallback forces the static data set until credentials are saved again.
func (s *Settings) UseFallback() {
	s.mu.Lock()
	s.forceFallback = true
	s.mu.Unlock()
}

func (s *Settings) Clear(ctx context.Context) error {
	if err := s.store.Del(ctx, domain.SettingAPIKey); err != nil {
		return fmt.Errorf("clear api key: %w", err)
	}
	if err := s.store.Del(ctx, domain.SettingPlaceID); err != nil {
		return fmt.Errorf("clear place id: %w", err)
	}
	s.UseFallback()
	return nil
}

// Credentials reports live=false when either value is missing or fallback is forced.
func (s *Settings) Credentials(ctx context.Context) (apiKey, placeID string, live bool, err error) {
	apiKey, _, err = s.store.Get(ctx, domain.SettingAPIKey)
	if err != nil {
		return "", "", false, fmt.Errorf("read api key: %w", err)
	}
	placeID, _, err = s.store.Get(ctx, domain.SettingPlaceID)
	if err != nil {
		return "", "", false, fmt.Errorf("read place id: %w", err)
	}
	s.mu.Lock()
	forced := s.forceFallback
	s.mu.Unlock()
	return apiKey, placeID, !forced && apiKey != "" && placeID != "", nil
}

func (s *Settings) Status(ctx context.Context) (ConfigStatus, error) {
	key, id, live, err := s.Credentials(ctx)
	if err != nil {
		return ConfigStatus{}, err
	}
	return ConfigStatus{
		HasAPIKey:     key != "",
		HasPlaceID:    id != "",
		UsingFallback: !live,
		MaskedAPIKey:  maskKey(key),
		PlaceID:       id,
	}, nil
}

func maskKey(k string) string {
	if k == "" {
		return ""
	}
	r := []rune(k)
	if len(r) > 10 {
		r = r[:10]
	}
	return string(r) + "..."
}
