package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"reviews_carousel/internal/adapters/observability"
	"reviews_carousel/internal/domain"
)

type ThemeService struct {
	store domain.SettingsStore

	mu      sync.Mutex
	current domain.Theme
}

// NewThemeService restores the persisted theme; anything unreadable or unknown means the default.
func NewThemeService(ctx context.Context, store domain.SettingsStore) *ThemeService {
	s := &ThemeService{store: store, current: domain.DefaultTheme}
	v, ok, err := store.Get(ctx, domain.SettingTheme)
	if err != nil {
		log.Warn().Err(err).Msg("read saved theme failed")
		return s
	}
	if !ok {
		return s
	}
	if t, err := domain.ParseTheme(v); err == nil {
		s.current = t
	} else {
		log.Debug().Str("theme", v).Msg("ignoring unknown saved theme")
	}
	return s
}

func (s *ThemeService) Current() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *ThemeService) Info() domain.Transition { return s.Current().Transition() }

// Switch persists t and returns its transition. changed is false when t is already active.
func (s *ThemeService) Switch(ctx context.Context, t domain.Theme) (tr domain.Transition, changed bool, err error) {
	if !t.Valid() {
		return domain.Transition{}, false, fmt.Errorf("%w: %d", domain.ErrUnknownTheme, int(t))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == s.current {
		return t.Transition(), false, nil
	}
	if err := s.store.Set(ctx, domain.SettingTheme, t.String()); err != nil {
		return domain.Transition{}, false, fmt.Errorf("save theme: %w", err)
	}
	log.Info().Str("from", s.current.String()).Str("to", t.String()).Msg("theme switched")
	s.current = t
	observability.ObserveThemeSwitch(t.String())
	return t.Transition(), true, nil
}

func (s *ThemeService) SwitchByShortcut(ctx context.Context, n int) (domain.Transition, bool, error) {
	t, ok := domain.ThemeByShortcut(n)
	if !ok {
		return domain.Transition{}, false, fmt.Errorf("%w: shortcut %d", domain.ErrUnknownTheme, n)
	}
	return s.Switch(ctx, t)
}

// Cycle moves to the next theme in order.
func (s *ThemeService) Cycle(ctx context.Context) (domain.Transition, error) {
	tr, _, err := s.Switch(ctx, s.Current().Next())
	return tr, err
}
