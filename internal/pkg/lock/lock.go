// Package lock provides per-account locking so the check-then-act pairs in
// wallet operations (duplicate check at signup, daily cap before a sell)
// execute as one logical unit even under re-entrant invocation.
package lock

import "sync"

// accountMutex wraps a mutex with reference counting for cleanup.
type accountMutex struct {
	mu       sync.Mutex
	refCount int
}

// AccountLock provides per-account locking keyed by account identifier.
type AccountLock struct {
	locks sync.Map // map[string]*accountMutex
	pool  sync.Pool
}

// NewAccountLock creates a new AccountLock instance.
func NewAccountLock() *AccountLock {
	return &AccountLock{
		pool: sync.Pool{
			New: func() any {
				return &accountMutex{}
			},
		},
	}
}

// getLock retrieves or creates a mutex for the given account.
func (al *AccountLock) getLock(id string) *accountMutex {
	if v, ok := al.locks.Load(id); ok {
		return v.(*accountMutex)
	}

	newLock := al.pool.Get().(*accountMutex)
	newLock.refCount = 0

	actual, loaded := al.locks.LoadOrStore(id, newLock)
	if loaded {
		// Another goroutine created the lock first, return ours to pool
		al.pool.Put(newLock)
	}
	return actual.(*accountMutex)
}

// Lock acquires the lock for an account. It must be held across any
// balance-modifying operation.
func (al *AccountLock) Lock(id string) {
	l := al.getLock(id)
	l.mu.Lock()
	l.refCount++
}

// Unlock releases the lock for an account.
func (al *AccountLock) Unlock(id string) {
	if v, ok := al.locks.Load(id); ok {
		l := v.(*accountMutex)
		l.refCount--
		l.mu.Unlock()
	}
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired.
func (al *AccountLock) TryLock(id string) bool {
	l := al.getLock(id)
	if l.mu.TryLock() {
		l.refCount++
		return true
	}
	return false
}

// WithLock executes fn while holding the account's lock.
func (al *AccountLock) WithLock(id string, fn func() error) error {
	al.Lock(id)
	defer al.Unlock(id)
	return fn()
}
