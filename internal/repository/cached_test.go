package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/localnerve/goldphotos/internal/cache"
	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepository struct {
	Repository
	mu         sync.Mutex
	previews   int
	boards     int
	categories int
}

func (c *countingRepository) GetCategoriesPreview(ctx context.Context, n int) ([]contracts.CategoryPreviewContract, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.previews++
	return []contracts.CategoryPreviewContract{{ID: "c", PhotoThumbnails: make([]contracts.PhotoThumbnailContract, n)}}, nil
}

func (c *countingRepository) GetLeaderboard(ctx context.Context, a, b, cc, d int) (contracts.LeaderboardContract, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boards++
	return contracts.LeaderboardContract{}, nil
}

func (c *countingRepository) GetCategories(ctx context.Context) ([]contracts.CategoryContract, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories++
	return nil, nil
}

func TestCachedRepositoryKeys(t *testing.T) {
	ctx := context.Background()
	inner := &countingRepository{}
	service, err := cache.NewLRU(16)
	require.NoError(t, err)
	cached := NewCached(inner, service)

	for i := 0; i < 3; i++ {
		previews, err := cached.GetCategoriesPreview(ctx, 4)
		require.NoError(t, err)
		assert.Len(t, previews[0].PhotoThumbnails, 4)
	}
	_, err = cached.GetCategoriesPreview(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.previews)

	for i := 0; i < 3; i++ {
		_, err := cached.GetLeaderboard(ctx, 5, 5, 5, 5)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, inner.boards)
	assert.Equal(t, 3, service.Len())

	for i := 0; i < 2; i++ {
		_, err := cached.GetCategories(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, inner.categories, "uncached operations pass through")
}

func TestCachedLeaderboardKeysKeepArgumentsApart(t *testing.T) {
	ctx := context.Background()
	inner := &countingRepository{}
	service, err := cache.NewLRU(16)
	require.NoError(t, err)
	cached := NewCached(inner, service)

	for _, counts := range [][4]int{{1, 11, 1, 1}, {11, 1, 1, 1}, {1, 1, 11, 1}, {1, 11, 1, 1}} {
		_, err := cached.GetLeaderboard(ctx, counts[0], counts[1], counts[2], counts[3])
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.boards, "digit runs of different counts must not share an entry")
	assert.Equal(t, 3, service.Len())
}
