package storage

import (
	"context"
	"sync"
	"time"
)

// MemorySessionStorage keeps sessions in-process. Used for local runs and
// tests; a restart logs everyone out, which is acceptable there.
type MemorySessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]ConsoleSession
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{sessions: make(map[string]ConsoleSession)}
}

func (s *MemorySessionStorage) Get(_ context.Context, token string) (*ConsoleSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *MemorySessionStorage) Put(_ context.Context, session *ConsoleSession) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

func (s *MemorySessionStorage) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
