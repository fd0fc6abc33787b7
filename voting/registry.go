package voting

import (
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Registry owns the live scoring sessions of this process. Sessions live in
// memory only: a discarded or submitted session leaves no trace, matching
// the single-page-lifetime rule for in-progress scores.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Add assigns the session an id and tracks it.
func (r *Registry) Add(s *Session) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	s.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = s
	return id, nil
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Discard drops the session and its in-progress scores.
func (r *Registry) Discard(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
