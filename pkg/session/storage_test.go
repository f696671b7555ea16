package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-go/pkg/session"
)

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := session.NewMemoryStorage()

	_, err := storage.Get(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrKeyNotFound)

	require.NoError(t, storage.Set(ctx, session.KeySessionID, "sid1"))
	value, err := storage.Get(ctx, session.KeySessionID)
	require.NoError(t, err)
	assert.Equal(t, "sid1", value)

	require.NoError(t, storage.Delete(ctx, session.KeySessionID))
	_, err = storage.Get(ctx, session.KeySessionID)
	assert.ErrorIs(t, err, session.ErrKeyNotFound)

	// Deleting an absent key is a no-op.
	require.NoError(t, storage.Delete(ctx, "missing"))
}

func TestFileStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.json")
	storage := session.NewFileStorage(path)

	_, err := storage.Get(ctx, session.KeyToken)
	assert.ErrorIs(t, err, session.ErrKeyNotFound, "missing file reads as empty")

	require.NoError(t, storage.Set(ctx, session.KeyToken, "tok1"))
	require.NoError(t, storage.Set(ctx, session.KeySessionID, "sid1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "credentials file is private")

	// A second storage over the same path sees the persisted values.
	reopened := session.NewFileStorage(path)
	value, err := reopened.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok1", value)

	require.NoError(t, reopened.Delete(ctx, session.KeyToken))
	_, err = reopened.Get(ctx, session.KeyToken)
	assert.ErrorIs(t, err, session.ErrKeyNotFound)

	value, err = reopened.Get(ctx, session.KeySessionID)
	require.NoError(t, err)
	assert.Equal(t, "sid1", value, "deleting one key leaves the others")
}

func TestFileStorage_CreatesParentDir(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "credentials.json")
	storage := session.NewFileStorage(path)

	require.NoError(t, storage.Set(ctx, session.KeyToken, "tok1"))

	value, err := storage.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok1", value)
}

func TestFileStorage_CorruptedFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	storage := session.NewFileStorage(path)

	_, err := storage.Get(ctx, session.KeyToken)
	assert.ErrorIs(t, err, session.ErrKeyNotFound, "corrupted file reads as empty")

	// Writing replaces the corrupted content.
	require.NoError(t, storage.Set(ctx, session.KeyToken, "tok1"))
	value, err := storage.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok1", value)
}
