package admin

import (
	"context"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[string]Session
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]Session{}}
}

func (s *MemStore) Create(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sess.ID] = sess
	return nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.m[id]
	return sess, ok, nil
}

func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}
