package repository

import (
	"context"
	"sort"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/documents"
	"github.com/localnerve/goldphotos/internal/types"
	"golang.org/x/sync/errgroup"
)

// GetLeaderboard computes the four rankings concurrently. Each is truncated
// to its requested count and densely ranked from 1.
func (r *DocumentRepository) GetLeaderboard(ctx context.Context, mostGoldCategoriesCount, mostGoldPhotosCount, mostGoldUsersCount, mostGivingUsersCount int) (contracts.LeaderboardContract, error) {
	var board contracts.LeaderboardContract
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := r.mostGoldCategories(gctx, mostGoldCategoriesCount)
		board.MostGoldCategories = entries
		return err
	})
	g.Go(func() error {
		entries, err := r.mostGoldPhotos(gctx, mostGoldPhotosCount)
		board.MostGoldPhotos = entries
		return err
	})
	g.Go(func() error {
		entries, err := r.topUsers(gctx, docstore.FieldScore, mostGoldUsersCount, func(u contracts.UserContract) int64 {
			return u.GoldBalance
		})
		board.MostGoldUsers = entries
		return err
	})
	g.Go(func() error {
		entries, err := r.topUsers(gctx, docstore.FieldAltScore, mostGivingUsersCount, func(u contracts.UserContract) int64 {
			return u.GoldGiven
		})
		board.MostGivingUsers = entries
		return err
	})

	if err := g.Wait(); err != nil {
		return contracts.LeaderboardContract{}, err
	}
	return board, nil
}

// mostGoldCategories aggregates the gold of every photo per category
func (r *DocumentRepository) mostGoldCategories(ctx context.Context, count int) ([]contracts.LeaderboardEntry[contracts.CategoryContract], error) {
	if count <= 0 {
		return []contracts.LeaderboardEntry[contracts.CategoryContract]{}, nil
	}

	q := documents.Query(documents.TypePhoto)
	q.PageSize = PageSize
	docs, err := docstore.QueryAll(ctx, r.store, q)
	if err != nil {
		return nil, types.UnknownError(err, "load photos")
	}

	totals := make(map[string]int64)
	for _, doc := range docs {
		totals[doc.Index.GroupID] += doc.Index.Score
	}

	categories, err := r.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]contracts.CategoryContract, 0, len(totals))
	for _, c := range categories {
		if _, ok := totals[c.ID]; ok {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i].ID] > totals[ranked[j].ID]
	})

	return contracts.Rank(ranked, func(c contracts.CategoryContract) int64 { return totals[c.ID] }, count), nil
}

func (r *DocumentRepository) mostGoldPhotos(ctx context.Context, count int) ([]contracts.LeaderboardEntry[contracts.PhotoContract], error) {
	if count <= 0 {
		return []contracts.LeaderboardEntry[contracts.PhotoContract]{}, nil
	}

	q := documents.Query(documents.TypePhoto).OrderBy(docstore.FieldScore, true)
	q.Limit = count
	page, err := r.store.Query(ctx, q)
	if err != nil {
		return nil, types.UnknownError(err, "query photos")
	}
	photos, err := documents.DecodeAll[documents.PhotoDocument](page.Documents)
	if err != nil {
		return nil, types.UnknownError(err, "decode photos")
	}
	items, err := r.photoContracts(ctx, photos)
	if err != nil {
		return nil, err
	}
	return contracts.Rank(items, func(p contracts.PhotoContract) int64 { return p.GoldCount }, count), nil
}

func (r *DocumentRepository) topUsers(ctx context.Context, field docstore.Field, count int, value func(contracts.UserContract) int64) ([]contracts.LeaderboardEntry[contracts.UserContract], error) {
	if count <= 0 {
		return []contracts.LeaderboardEntry[contracts.UserContract]{}, nil
	}

	q := documents.Query(documents.TypeUser).
		Filter(docstore.FieldID, docstore.OpNe, SystemUserID).
		OrderBy(field, true)
	q.Limit = count
	page, err := r.store.Query(ctx, q)
	if err != nil {
		return nil, types.UnknownError(err, "query users")
	}
	users, err := documents.DecodeAll[documents.UserDocument](page.Documents)
	if err != nil {
		return nil, types.UnknownError(err, "decode users")
	}

	items := make([]contracts.UserContract, 0, len(users))
	for _, u := range users {
		items = append(items, u.ToContract())
	}
	return contracts.Rank(items, value, count), nil
}
