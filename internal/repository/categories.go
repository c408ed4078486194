package repository

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/documents"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/sirupsen/logrus"
)

// ProcedureRecentPhotos is the id of the recent-photos-for-categories procedure
const ProcedureRecentPhotos = "getRecentPhotosForCategories"

// CreateCategory creates a category. The name must not exist yet; the check is not atomic.
func (r *DocumentRepository) CreateCategory(ctx context.Context, name string) (contracts.CategoryContract, error) {
	q := documents.Query(documents.TypeCategory).Where(docstore.FieldLookupKey, documents.CategoryKey(name))
	q.Limit = 1
	page, err := r.store.Query(ctx, q)
	if err != nil {
		return contracts.CategoryContract{}, types.UnknownError(err, "lookup category %q", name)
	}
	if len(page.Documents) > 0 {
		return contracts.CategoryContract{}, types.DuplicateKeyError("category %q already exists", name)
	}

	category := documents.NewCategory(r.newID(), name)
	if err := r.insert(ctx, category); err != nil {
		return contracts.CategoryContract{}, err
	}

	r.log.WithFields(logrus.Fields{"op": "CreateCategory", "id": category.ID, "name": name}).Info("category created")
	return category.ToContract(), nil
}

// GetCategories returns every category sorted by name
func (r *DocumentRepository) GetCategories(ctx context.Context) ([]contracts.CategoryContract, error) {
	q := documents.Query(documents.TypeCategory).OrderBy(docstore.FieldLookupKey, false)
	q.PageSize = PageSize
	docs, err := docstore.QueryAll(ctx, r.store, q)
	if err != nil {
		return nil, types.UnknownError(err, "query categories")
	}
	categories, err := documents.DecodeAll[documents.CategoryDocument](docs)
	if err != nil {
		return nil, types.UnknownError(err, "decode categories")
	}

	out := make([]contracts.CategoryContract, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.ToContract())
	}
	return out, nil
}

// GetCategoriesPreview returns, for every category that has active photos, up
// to numberOfThumbnails of its newest thumbnails.
func (r *DocumentRepository) GetCategoriesPreview(ctx context.Context, numberOfThumbnails int) ([]contracts.CategoryPreviewContract, error) {
	raw, err := r.store.ExecuteProcedure(ctx, ProcedureRecentPhotos, numberOfThumbnails, documents.CurrentVersion)
	if err != nil {
		return nil, storeError(err, "%s", ProcedureRecentPhotos)
	}

	var photos []documents.PhotoDocument
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, types.UnknownError(err, "decode %s result", ProcedureRecentPhotos)
	}

	previews := make(map[string]*contracts.CategoryPreviewContract)
	for _, p := range photos {
		preview, ok := previews[p.CategoryID]
		if !ok {
			preview = &contracts.CategoryPreviewContract{ID: p.CategoryID, Name: p.CategoryName}
			previews[p.CategoryID] = preview
		}
		preview.PhotoThumbnails = append(preview.PhotoThumbnails, contracts.PhotoThumbnailContract{
			PhotoID:      p.ID,
			ThumbnailURL: p.ThumbnailURL,
			CreatedAt:    p.CreatedAt,
		})
	}

	out := make([]contracts.CategoryPreviewContract, 0, len(previews))
	for _, preview := range previews {
		sort.SliceStable(preview.PhotoThumbnails, func(i, j int) bool {
			return preview.PhotoThumbnails[i].CreatedAt.After(preview.PhotoThumbnails[j].CreatedAt)
		})
		out = append(out, *preview)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// recentPhotosProcedure returns the newest active photos of each category
func (r *DocumentRepository) recentPhotosProcedure(ctx context.Context, tx docstore.Driver, args docstore.Arguments) (interface{}, error) {
	limit := int(args.Int("numberOfThumbnails"))
	version := args.String("documentVersion")
	photos := []documents.PhotoDocument{}
	if limit <= 0 {
		return photos, nil
	}

	categoryQuery := docstore.Query{Type: documents.TypeCategory, Version: version, PageSize: PageSize}
	categories, err := docstore.QueryAll(ctx, tx, categoryQuery)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		q := docstore.Query{Type: documents.TypePhoto, Version: version, Limit: limit}.
			Where(docstore.FieldGroupID, category.ID).
			Where(docstore.FieldStatus, string(contracts.PhotoStatusActive)).
			OrderBy(docstore.FieldSortTime, true)
		page, err := tx.Query(ctx, q)
		if err != nil {
			return nil, err
		}
		decoded, err := documents.DecodeAll[documents.PhotoDocument](page.Documents)
		if err != nil {
			return nil, err
		}
		photos = append(photos, decoded...)
	}
	return photos, nil
}
