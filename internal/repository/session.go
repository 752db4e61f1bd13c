package repository

import (
	"context"
	"fmt"

	"datacash/internal/kv"
)

// SessionRepository persists the single pointer to the active account.
// It survives process restarts until explicitly cleared.
type SessionRepository struct {
	store kv.Store
}

// NewSessionRepository creates a new SessionRepository instance.
func NewSessionRepository(store kv.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Current returns the active account identifier, or false when logged out.
func (r *SessionRepository) Current(ctx context.Context) (string, bool, error) {
	id, ok, err := r.store.Get(ctx, currentUserKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}
	return id, ok, nil
}

// Set makes the given account the active one.
func (r *SessionRepository) Set(ctx context.Context, id string) error {
	if err := r.store.Set(ctx, currentUserKey, id); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

// Clear drops the session pointer. Clearing an absent session is a no-op.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, currentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
