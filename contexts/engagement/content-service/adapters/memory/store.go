package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"clipops/contexts/engagement/content-service/ports"
)

// Store keeps generated content in memory, newest first.
type Store struct {
	mu      sync.RWMutex
	entries []ports.GeneratedContent

	NowFunc func() time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SaveContent(_ context.Context, content ports.GeneratedContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]ports.GeneratedContent{content}, s.entries...)
	return nil
}

func (s *Store) ListRecent(_ context.Context, limit int) ([]ports.GeneratedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit > len(s.entries) {
		limit = len(s.entries)
	}
	out := make([]ports.GeneratedContent, limit)
	copy(out, s.entries[:limit])
	return out, nil
}

func (s *Store) Now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc()
	}
	return time.Now().UTC()
}

func (s *Store) NewID() string {
	return uuid.NewString()
}
