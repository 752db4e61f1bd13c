package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacash/internal/kv"
	"datacash/internal/model"
)

func newTestRepos(t *testing.T) (*AccountRepository, *SessionRepository) {
	t.Helper()
	store, err := kv.OpenFileStore(filepath.Join(t.TempDir(), "datacash.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewAccountRepository(store), NewSessionRepository(store)
}

func TestLoadEmptyStore(t *testing.T) {
	accounts, _ := newTestRepos(t)

	store, err := accounts.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Empty(t, store)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	accounts, _ := newTestRepos(t)
	ctx := context.Background()

	day := model.NewDay(2025, time.February, 3)
	in := model.AccountStore{
		"alice": model.NewAccount("secret", 50, day),
	}
	in["alice"].SellCount[day.String()] = 2
	in["alice"].Referrals = model.ReferralStats{Count: 3, Earned: 120}

	require.NoError(t, accounts.Save(ctx, in))

	out, err := accounts.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, out, "alice")
	assert.Equal(t, in["alice"], out["alice"])
}

func TestSaveReplacesWholeStore(t *testing.T) {
	accounts, _ := newTestRepos(t)
	ctx := context.Background()

	day := model.NewDay(2025, time.February, 3)
	require.NoError(t, accounts.Save(ctx, model.AccountStore{
		"alice": model.NewAccount("a", 50, day),
		"bob":   model.NewAccount("b", 50, day),
	}))
	require.NoError(t, accounts.Save(ctx, model.AccountStore{
		"alice": model.NewAccount("a", 50, day),
	}))

	out, err := accounts.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.NotContains(t, out, "bob")
}

func TestSessionLifecycle(t *testing.T) {
	_, sessions := newTestRepos(t)
	ctx := context.Background()

	_, ok, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, sessions.Set(ctx, "alice"))
	id, ok, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", id)

	require.NoError(t, sessions.Clear(ctx))
	_, ok, err = sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing again is a no-op
	require.NoError(t, sessions.Clear(ctx))
}
