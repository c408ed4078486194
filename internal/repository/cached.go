package repository

import (
	"context"
	"fmt"

	"github.com/localnerve/goldphotos/internal/cache"
	"github.com/localnerve/goldphotos/internal/contracts"
)

// CachedRepository memoizes GetCategoriesPreview and GetLeaderboard. Every
// other operation passes through. Entries are never invalidated.
type CachedRepository struct {
	Repository
	cache cache.Service
}

var _ Repository = (*CachedRepository)(nil)

// NewCached wraps next with the given cache service
func NewCached(next Repository, service cache.Service) *CachedRepository {
	return &CachedRepository{Repository: next, cache: service}
}

// GetCategoriesPreview is cached under "GetCategoriesPreview" + numberOfThumbnails
func (c *CachedRepository) GetCategoriesPreview(ctx context.Context, numberOfThumbnails int) ([]contracts.CategoryPreviewContract, error) {
	key := fmt.Sprintf("GetCategoriesPreview%d", numberOfThumbnails)
	return cache.Get(ctx, c.cache, key, func(ctx context.Context) ([]contracts.CategoryPreviewContract, error) {
		return c.Repository.GetCategoriesPreview(ctx, numberOfThumbnails)
	})
}

// GetLeaderboard is cached under "GetLeaderboard" + the four counts joined by "_"
func (c *CachedRepository) GetLeaderboard(ctx context.Context, mostGoldCategoriesCount, mostGoldPhotosCount, mostGoldUsersCount, mostGivingUsersCount int) (contracts.LeaderboardContract, error) {
	key := fmt.Sprintf("GetLeaderboard%d_%d_%d_%d", mostGoldCategoriesCount, mostGoldPhotosCount, mostGoldUsersCount, mostGivingUsersCount)
	return cache.Get(ctx, c.cache, key, func(ctx context.Context) (contracts.LeaderboardContract, error) {
		return c.Repository.GetLeaderboard(ctx, mostGoldCategoriesCount, mostGoldPhotosCount, mostGoldUsersCount, mostGivingUsersCount)
	})
}
