package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCacheRoundTrip(t *testing.T) {
	c := NewSettingsCache(testClient(t), time.Minute)
	ctx := context.Background()

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, ErrMiss)

	snapshot := []byte(`{"companyName":"ANFER ESQUADRIAS"}`)
	require.NoError(t, c.Set(ctx, snapshot))

	data, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, data)
}

func TestSettingsCacheInvalidate(t *testing.T) {
	c := NewSettingsCache(testClient(t), time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, []byte("{}")))
	require.NoError(t, c.Invalidate(ctx))

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestSettingsCacheNilSafe(t *testing.T) {
	var c *SettingsCache
	ctx := context.Background()

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Set(ctx, nil))
	assert.NoError(t, c.Invalidate(ctx))
}
