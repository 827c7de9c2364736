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

type feedItem struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAsideMissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var got []feedItem
	fetch := func() error {
		fetches++
		got = []feedItem{{ID: 1, Title: "Summer campaign"}}
		return nil
	}

	require.NoError(t, Aside(ctx, "listings:feed", &got, time.Minute, fetch))
	assert.Equal(t, 1, fetches)
	assert.Len(t, got, 1)

	// Second call must be served from the cache.
	var again []feedItem
	require.NoError(t, Aside(ctx, "listings:feed", &again, time.Minute, func() error {
		fetches++
		return nil
	}))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, got, again)
}

func TestAsideCorruptEntryFallsBack(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("listing:7", "{not json"))

	fetches := 0
	var got feedItem
	require.NoError(t, Aside(ctx, "listing:7", &got, time.Minute, func() error {
		fetches++
		got = feedItem{ID: 7, Title: "repaired"}
		return nil
	}))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, uint(7), got.ID)
}

func TestAsideWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var got feedItem
	require.NoError(t, Aside(ctx, "listing:1", &got, time.Minute, func() error {
		fetches++
		return nil
	}))
	assert.Equal(t, 1, fetches)
}

func TestInvalidateListing(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(ListingKey(3), `{"id":3}`))
	require.NoError(t, mr.Set(ListingsFeedKey(), `[]`))

	InvalidateListing(ctx, 3)

	assert.False(t, mr.Exists(ListingKey(3)))
	assert.False(t, mr.Exists(ListingsFeedKey()))
}
