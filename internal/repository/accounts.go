// Package repository provides data access layer implementations over the
// key-value store. All wallet state lives under two keys: the serialized
// account store and the current session pointer.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"datacash/internal/kv"
	"datacash/internal/model"
)

// Persisted key names, carried over from the legacy localStorage layout.
const (
	usersKey       = "users"
	currentUserKey = "currentUser"
)

// AccountRepository persists the whole account store as one JSON document.
// Every mutation follows load, mutate in memory, save; there are no partial
// updates.
type AccountRepository struct {
	store kv.Store
}

// NewAccountRepository creates a new AccountRepository instance.
func NewAccountRepository(store kv.Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// Load reads the full account store. A missing key yields an empty store.
func (r *AccountRepository) Load(ctx context.Context) (model.AccountStore, error) {
	raw, ok, err := r.store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if !ok {
		return model.AccountStore{}, nil
	}

	var accounts model.AccountStore
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	if accounts == nil {
		accounts = model.AccountStore{}
	}
	return accounts, nil
}

// Save replaces the persisted account store with the given one, as a single
// write.
func (r *AccountRepository) Save(ctx context.Context, accounts model.AccountStore) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}
