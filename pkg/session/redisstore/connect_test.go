package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-go/pkg/session/redisstore"
)

func TestConnect(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client, err := redisstore.Connect(context.Background(), redisstore.Config{
		ConnectionURL:  "redis://" + mr.Addr(),
		RetryAttempts:  3,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := redisstore.Connect(context.Background(), redisstore.Config{
		ConnectionURL:  "not-a-url",
		RetryAttempts:  1,
		RetryInterval:  time.Millisecond,
		ConnectTimeout: time.Second,
	})
	assert.ErrorIs(t, err, redisstore.ErrInvalidConnectionURL)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redisstore.Connect(context.Background(), redisstore.Config{
		ConnectionURL:  "redis://127.0.0.1:1",
		RetryAttempts:  2,
		RetryInterval:  5 * time.Millisecond,
		ConnectTimeout: 200 * time.Millisecond,
	})
	assert.ErrorIs(t, err, redisstore.ErrNotReady)
}
