package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreGetAbsentKey(t *testing.T) {
	s, err := OpenFileStore(filepath.Join(t.TempDir(), "kv.json"))
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreSetGetRemove(t *testing.T) {
	s, err := OpenFileStore(filepath.Join(t.TempDir(), "kv.json"))
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "currentUser", "alice"))

	v, ok, err := s.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	require.NoError(t, s.Remove(ctx, "currentUser"))
	_, ok, err = s.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error
	require.NoError(t, s.Remove(ctx, "currentUser"))
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	ctx := context.Background()

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "users", `{"alice":{"balance":50}}`))
	require.NoError(t, s.Set(ctx, "currentUser", "alice"))
	require.NoError(t, s.Close())

	s2, err := OpenFileStore(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"alice":{"balance":50}}`, v)

	v, ok, err = s2.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestFileStoreShrinkingValueTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	ctx := context.Background()

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "users", `{"a":1,"b":2,"c":3,"d":4,"e":5}`))
	require.NoError(t, s.Set(ctx, "users", `{}`))
	require.NoError(t, s.Close())

	// A stale tail would make the document unparseable on reopen
	s2, err := OpenFileStore(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{}`, v)
}
