package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestPDFCacheRoundTrip(t *testing.T) {
	c := NewPDFCache(testClient(t), time.Hour)
	ctx := context.Background()

	_, err := c.Get(ctx, "q1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "q1", []byte("%PDF-1.4")))

	data, err := c.Get(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestPDFCacheInvalidate(t *testing.T) {
	c := NewPDFCache(testClient(t), time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "q1", []byte("stale")))
	require.NoError(t, c.Invalidate(ctx, "q1"))

	_, err := c.Get(ctx, "q1")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestPDFCacheKeysAreScoped(t *testing.T) {
	c := NewPDFCache(testClient(t), time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "q1", []byte("one")))
	require.NoError(t, c.Set(ctx, "q2", []byte("two")))
	require.NoError(t, c.Invalidate(ctx, "q1"))

	data, err := c.Get(ctx, "q2")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}

func TestPDFCacheNilSafe(t *testing.T) {
	var c *PDFCache
	ctx := context.Background()

	_, err := c.Get(ctx, "q1")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Set(ctx, "q1", nil))
	assert.NoError(t, c.Invalidate(ctx, "q1"))
}
