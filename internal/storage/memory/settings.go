package memory

import (
	"context"
	"sync"
)

// Settings is an in-process settings store. Values are lost on restart.
type Settings struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewSettings() *Settings { return &Settings{m: map[string]string{}} }

func (s *Settings) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Settings) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *Settings) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
