package session

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	userID    int64
	expiresAt time.Time
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryRecord
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an in-process session store for redis-less runs and
// tests. Safe for concurrent use; expired records are dropped on lookup.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		sessions: make(map[string]memoryRecord),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *memoryStore) Create(_ context.Context, userID int64) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = memoryRecord{
		userID:    userID,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token, nil
}

func (s *memoryStore) Get(_ context.Context, token string) (int64, error) {
	s.mu.RLock()
	rec, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return 0, ErrNotFound
	}
	if s.now().After(rec.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	return rec.userID, nil
}

func (s *memoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
