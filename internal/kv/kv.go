// Package kv provides the key-value persistence backends the wallet state
// round-trips through. Exactly two logical keys exist: the serialized
// account store and the current session pointer.
package kv

import "context"

// Store is an opaque key-value persistence service. Get reports absence via
// its boolean; there are no transactions and no atomicity across keys.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
