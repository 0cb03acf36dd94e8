package source

import (
	"boulderhall-service/internal/domain"
	"context"
	"sync"
)

// StaticSource serves a fixed hall list, or Err when set. Tests swap the
// fields between calls to simulate an upstream that starts failing.
type StaticSource struct {
	mu    sync.Mutex
	halls []domain.Hall
	err   error
	calls int
}

func NewStaticSource(halls []domain.Hall) *StaticSource {
	return &StaticSource{halls: halls}
}

func (s *StaticSource) Set(halls []domain.Hall, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.halls = halls
	s.err = err
}

func (s *StaticSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *StaticSource) FetchHalls(ctx context.Context) ([]domain.Hall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	out := make([]domain.Hall, len(s.halls))
	copy(out, s.halls)
	return out, nil
}
