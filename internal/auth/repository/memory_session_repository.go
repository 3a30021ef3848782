package repository

import (
	"context"
	"sync"
	"time"

	"github.com/allisson/gamestats/internal/auth/domain"
)

// MemorySessionRepository keeps sessions in process memory. It suits a single
// instance deployment and tests; sessions are lost on restart.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionRepository creates a new MemorySessionRepository. Sessions older than
// ttl are treated as absent; zero keeps them forever.
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Put stores session, replacing any session already kept for the same username.
func (r *MemorySessionRepository) Put(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Username] = *session
	return nil
}

// Get returns the current session for username, or ErrSessionNotFound.
func (r *MemorySessionRepository) Get(ctx context.Context, username string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	session, ok := r.sessions[username]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if r.ttl > 0 && !r.now().Before(session.CreatedAt.Add(r.ttl)) {
		return nil, domain.ErrSessionNotFound
	}

	return &session, nil
}
