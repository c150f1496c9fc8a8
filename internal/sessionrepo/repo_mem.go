// Package sessionrepo stores active customer sessions.
package sessionrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sunbelt-bank/bank-core/internal/domain"
)

// RepoMem is an in-memory session store. Sessions live only for the
// lifetime of the process.
type RepoMem struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]domain.Session
}

// NewRepoMem returns an empty session store.
func NewRepoMem() *RepoMem {
	return &RepoMem{sessions: make(map[uuid.UUID]domain.Session)}
}

// Create stores the session and returns it.
func (r *RepoMem) Create(ctx context.Context, sess domain.Session) (domain.Session, error) {
	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()

	return sess, nil
}

// Get returns the session with the given ID.
func (r *RepoMem) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	r.mu.RLock()
	sess, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	return sess, nil
}

// Delete removes the session with the given ID.
func (r *RepoMem) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}

	delete(r.sessions, id)

	return nil
}
