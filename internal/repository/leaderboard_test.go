package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/localnerve/goldphotos/internal/cache"
	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRanking(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t, newTestStore(t), Settings{
		DatabaseID:   testSettings.DatabaseID,
		CollectionID: testSettings.CollectionID,
	})

	for i, balance := range []int64{50, 40, 30, 20, 10} {
		user := mustUser(t, repo, fmt.Sprintf("user-%d", i))
		_, err := repo.transferGold(ctx, user.UserID, SystemUserID, balance, TransactionIapPurchase, "")
		require.NoError(t, err)
	}

	board, err := repo.GetLeaderboard(ctx, 2, 2, 2, 2)
	require.NoError(t, err)

	require.Len(t, board.MostGoldUsers, 2)
	assert.Equal(t, 1, board.MostGoldUsers[0].Rank)
	assert.Equal(t, 2, board.MostGoldUsers[1].Rank)
	assert.Equal(t, int64(50), board.MostGoldUsers[0].Value)
	assert.Equal(t, int64(40), board.MostGoldUsers[1].Value)
	assert.Equal(t, "user-0", board.MostGoldUsers[0].Model.RegistrationReference)

	assert.Empty(t, board.MostGoldCategories)
	assert.Empty(t, board.MostGoldPhotos)
	require.Len(t, board.MostGivingUsers, 2)
	assert.Equal(t, int64(0), board.MostGivingUsers[0].Value)
	assert.Equal(t, 1, board.MostGivingUsers[1].Rank, "equal values share a rank")
}

func TestLeaderboardCategoriesPhotosAndGiving(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	owner := mustUser(t, repo, "owner")
	big := mustUser(t, repo, "big-giver")
	small := mustUser(t, repo, "small-giver")
	nature := mustCategory(t, repo, "Nature")
	urban := mustCategory(t, repo, "Urban")
	mustCategory(t, repo, "Empty")

	n1 := mustPhoto(t, repo, owner, nature, 0)
	n2 := mustPhoto(t, repo, owner, nature, 0)
	u1 := mustPhoto(t, repo, owner, urban, 0)

	for _, a := range []struct {
		photo string
		from  contracts.UserContract
		gold  int64
	}{
		{n1.ID, big, 6}, {n2.ID, small, 2}, {u1.ID, big, 7},
	} {
		_, err := repo.InsertAnnotation(ctx, contracts.AnnotationContract{PhotoID: a.photo, From: a.from, GoldCount: a.gold})
		require.NoError(t, err)
	}

	board, err := repo.GetLeaderboard(ctx, 5, 1, 1, 3)
	require.NoError(t, err)

	require.Len(t, board.MostGoldCategories, 2, "categories without photos are not ranked")
	assert.Equal(t, "Nature", board.MostGoldCategories[0].Model.Name)
	assert.Equal(t, int64(8), board.MostGoldCategories[0].Value)
	assert.Equal(t, "Urban", board.MostGoldCategories[1].Model.Name)
	assert.Equal(t, 2, board.MostGoldCategories[1].Rank)

	require.Len(t, board.MostGoldPhotos, 1)
	assert.Equal(t, u1.ID, board.MostGoldPhotos[0].Model.ID)
	assert.Equal(t, "owner", board.MostGoldPhotos[0].Model.User.RegistrationReference)

	require.Len(t, board.MostGoldUsers, 1)
	assert.Equal(t, owner.UserID, board.MostGoldUsers[0].Model.UserID)
	assert.Equal(t, int64(35), board.MostGoldUsers[0].Value)

	require.Len(t, board.MostGivingUsers, 3)
	assert.Equal(t, big.UserID, board.MostGivingUsers[0].Model.UserID)
	assert.Equal(t, int64(13), board.MostGivingUsers[0].Value)
	assert.Equal(t, small.UserID, board.MostGivingUsers[1].Model.UserID)
	assert.Equal(t, 3, board.MostGivingUsers[2].Rank)
}

func TestGetCategoriesPreview(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	owner := mustUser(t, repo, "owner")
	nature := mustCategory(t, repo, "Nature")
	animals := mustCategory(t, repo, "Animals")
	mustCategory(t, repo, "Empty")

	var natureIDs []string
	for i := 0; i < 4; i++ {
		natureIDs = append(natureIDs, mustPhoto(t, repo, owner, nature, 0).ID)
	}
	animal := mustPhoto(t, repo, owner, animals, 0)
	hidden := mustPhoto(t, repo, owner, animals, 0)
	hidden.Status = contracts.PhotoStatusUnderReview
	_, err := repo.UpdatePhotoStatus(ctx, hidden)
	require.NoError(t, err)

	previews, err := repo.GetCategoriesPreview(ctx, 3)
	require.NoError(t, err)
	require.Len(t, previews, 2, "categories without active photos are absent")

	assert.Equal(t, "Animals", previews[0].Name)
	require.Len(t, previews[0].PhotoThumbnails, 1)
	assert.Equal(t, animal.ID, previews[0].PhotoThumbnails[0].PhotoID)

	assert.Equal(t, "Nature", previews[1].Name)
	require.Len(t, previews[1].PhotoThumbnails, 3)
	assert.Equal(t, natureIDs[3], previews[1].PhotoThumbnails[0].PhotoID)
	assert.Equal(t, natureIDs[1], previews[1].PhotoThumbnails[2].PhotoID)

	previews, err = repo.GetCategoriesPreview(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, previews)
}

func TestCachedLeaderboardIsStale(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	service, err := cache.NewLRU(16)
	require.NoError(t, err)
	cached := NewCached(repo, service)

	user := mustUser(t, repo, "ref-1")

	first, err := cached.GetLeaderboard(ctx, 5, 5, 5, 5)
	require.NoError(t, err)
	require.Len(t, first.MostGoldUsers, 1)
	assert.Equal(t, int64(20), first.MostGoldUsers[0].Value)

	_, err = repo.transferGold(ctx, user.UserID, SystemUserID, 100, TransactionIapPurchase, "")
	require.NoError(t, err)
	mustUser(t, repo, "ref-2")

	second, err := cached.GetLeaderboard(ctx, 5, 5, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second, "the cache answered the second call")

	fresh, err := cached.GetLeaderboard(ctx, 5, 5, 5, 4)
	require.NoError(t, err)
	assert.Len(t, fresh.MostGoldUsers, 2, "different arguments use a different key")
	assert.Equal(t, int64(120), fresh.MostGoldUsers[0].Value)

	// uncached operations see the change
	got, err := cached.GetUser(ctx, user.UserID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(120), got.GoldBalance)
}
