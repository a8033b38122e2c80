package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("connection refused")
}

func (brokenCache) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func TestFetchLoadsOnceThenHits(t *testing.T) {
	c, _ := setupRedis(t)
	ctx := context.Background()
	calls := 0
	load := func() ([]byte, error) {
		calls++
		return []byte(`{"count":1}`), nil
	}

	val, hit, err := Fetch(ctx, c, "pilots:list:a", time.Minute, load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, `{"count":1}`, string(val))

	val, hit, err = Fetch(ctx, c, "pilots:list:a", time.Minute, load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, `{"count":1}`, string(val))
	assert.Equal(t, 1, calls)
}

func TestFetchDegradesWhenCacheFails(t *testing.T) {
	val, hit, err := Fetch(context.Background(), brokenCache{}, "k", time.Minute, func() ([]byte, error) {
		return []byte("fresh"), nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "fresh", string(val))
}

func TestFetchReturnsLoadError(t *testing.T) {
	_, _, err := Fetch(context.Background(), nil, "k", time.Minute, func() ([]byte, error) {
		return nil, errors.New("encode failed")
	})
	require.EqualError(t, err, "encode failed")
}
