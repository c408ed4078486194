package repository

import (
	"context"
	"errors"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/documents"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/sirupsen/logrus"
)

// GetPhoto returns a photo with its owner and annotation authors resolved
func (r *DocumentRepository) GetPhoto(ctx context.Context, id string) (contracts.PhotoContract, error) {
	photo, err := r.loadPhoto(ctx, id)
	if err != nil {
		return contracts.PhotoContract{}, err
	}
	users, err := r.resolveUsers(ctx, photo.UserIDs())
	if err != nil {
		return contracts.PhotoContract{}, err
	}
	return photo.ToContract(users), nil
}

// photoPage runs one page of a photo stream query
func (r *DocumentRepository) photoPage(ctx context.Context, q docstore.Query, continuationToken string) (contracts.PagedResponse[contracts.PhotoContract], error) {
	q = q.OrderBy(docstore.FieldSortTime, true)
	q.PageSize = PageSize
	q.ContinuationToken = continuationToken

	page, err := r.store.Query(ctx, q)
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidToken) {
			return contracts.PagedResponse[contracts.PhotoContract]{}, types.UnknownError(err, "invalid continuation token")
		}
		return contracts.PagedResponse[contracts.PhotoContract]{}, types.UnknownError(err, "query photos")
	}

	photos, err := documents.DecodeAll[documents.PhotoDocument](page.Documents)
	if err != nil {
		return contracts.PagedResponse[contracts.PhotoContract]{}, types.UnknownError(err, "decode photos")
	}
	items, err := r.photoContracts(ctx, photos)
	if err != nil {
		return contracts.PagedResponse[contracts.PhotoContract]{}, err
	}
	return contracts.PagedResponse[contracts.PhotoContract]{
		Items:             items,
		ContinuationToken: page.ContinuationToken,
	}, nil
}

// GetCategoryPhotoStream returns one page of the active photos of a category, newest first
func (r *DocumentRepository) GetCategoryPhotoStream(ctx context.Context, categoryID, continuationToken string) (contracts.PagedResponse[contracts.PhotoContract], error) {
	q := documents.Query(documents.TypePhoto).
		Where(docstore.FieldGroupID, categoryID).
		Where(docstore.FieldStatus, string(contracts.PhotoStatusActive))
	return r.photoPage(ctx, q, continuationToken)
}

// GetUserPhotoStream returns one page of a user's photos, newest first.
// Non-active photos are included only on request.
func (r *DocumentRepository) GetUserPhotoStream(ctx context.Context, userID, continuationToken string, includeNonActive bool) (contracts.PagedResponse[contracts.PhotoContract], error) {
	q := documents.Query(documents.TypePhoto).Where(docstore.FieldOwnerID, userID)
	if !includeNonActive {
		q = q.Where(docstore.FieldStatus, string(contracts.PhotoStatusActive))
	}
	return r.photoPage(ctx, q, continuationToken)
}

// GetHeroPhotos returns up to count active photos of the last daysOld days with the most gold
func (r *DocumentRepository) GetHeroPhotos(ctx context.Context, count, daysOld int) ([]contracts.PhotoContract, error) {
	if count <= 0 {
		return []contracts.PhotoContract{}, nil
	}

	since := r.now().AddDate(0, 0, -daysOld)
	q := documents.Query(documents.TypePhoto).
		Where(docstore.FieldStatus, string(contracts.PhotoStatusActive)).
		Filter(docstore.FieldSortTime, docstore.OpGte, documents.SortTime(since)).
		OrderBy(docstore.FieldScore, true)
	q.Limit = count

	page, err := r.store.Query(ctx, q)
	if err != nil {
		return nil, types.UnknownError(err, "query hero photos")
	}
	photos, err := documents.DecodeAll[documents.PhotoDocument](page.Documents)
	if err != nil {
		return nil, types.UnknownError(err, "decode hero photos")
	}
	return r.photoContracts(ctx, photos)
}

// InsertPhoto stores a new active photo and credits the owner goldIncrement gold from the system
func (r *DocumentRepository) InsertPhoto(ctx context.Context, photo contracts.PhotoContract, goldIncrement int) (contracts.PhotoContract, error) {
	if photo.ID == "" {
		photo.ID = r.newID()
	}
	log := r.log.WithFields(logrus.Fields{"op": "InsertPhoto", "id": photo.ID})

	found, err := r.exists(ctx, photo.ID)
	if err != nil {
		return contracts.PhotoContract{}, err
	}
	if found {
		return contracts.PhotoContract{}, types.DuplicateKeyError("photo %s already exists", photo.ID)
	}

	category, err := r.loadCategory(ctx, photo.CategoryID)
	if err != nil {
		return contracts.PhotoContract{}, err
	}

	now := r.now()
	doc := documents.PhotoFromContract(photo)
	doc.CategoryName = category.Name
	doc.Status = string(contracts.PhotoStatusActive)
	doc.GoldCount = 0
	doc.CreatedAt = now
	doc.ModifiedAt = now
	doc.Annotations = []documents.AnnotationDocument{}
	doc.Report = nil

	if err := r.insert(ctx, doc); err != nil {
		return contracts.PhotoContract{}, err
	}
	log.Info("photo inserted")

	if goldIncrement > 0 {
		if _, err := r.transferGold(ctx, doc.UserID, SystemUserID, int64(goldIncrement), TransactionNewPhoto, doc.ID); err != nil {
			return contracts.PhotoContract{}, err
		}
	}

	return r.GetPhoto(ctx, doc.ID)
}

// UpdatePhoto changes the category and description of a photo
func (r *DocumentRepository) UpdatePhoto(ctx context.Context, photo contracts.PhotoContract) (contracts.PhotoContract, error) {
	stored, err := r.loadPhoto(ctx, photo.ID)
	if err != nil {
		return contracts.PhotoContract{}, err
	}
	category, err := r.loadCategory(ctx, photo.CategoryID)
	if err != nil {
		return contracts.PhotoContract{}, err
	}

	stored.CategoryID = category.ID
	stored.CategoryName = category.Name
	stored.Description = photo.Description
	stored.ModifiedAt = r.now()

	if err := r.replace(ctx, stored); err != nil {
		return contracts.PhotoContract{}, err
	}
	return r.GetPhoto(ctx, stored.ID)
}

// UpdatePhotoStatus changes only the status of a photo
func (r *DocumentRepository) UpdatePhotoStatus(ctx context.Context, photo contracts.PhotoContract) (contracts.PhotoContract, error) {
	stored, err := r.loadPhoto(ctx, photo.ID)
	if err != nil {
		return contracts.PhotoContract{}, err
	}

	stored.Status = string(photo.Status)
	stored.ModifiedAt = r.now()

	if err := r.replace(ctx, stored); err != nil {
		return contracts.PhotoContract{}, err
	}
	r.log.WithFields(logrus.Fields{"op": "UpdatePhotoStatus", "id": stored.ID, "status": stored.Status}).Info("photo status changed")
	return r.GetPhoto(ctx, stored.ID)
}

// DeletePhoto deletes a photo owned by the caller. A missing photo, a
// non-owner caller and the owner's profile photo all yield NotFound.
func (r *DocumentRepository) DeletePhoto(ctx context.Context, photoID, registrationReference string) error {
	photo, err := r.loadPhoto(ctx, photoID)
	if err != nil {
		return err
	}

	owner, err := r.loadUser(ctx, photo.UserID)
	if err != nil {
		if types.IsCode(err, types.NotFound) {
			return types.NotFoundError("photo %s has no owner", photoID)
		}
		return err
	}
	if registrationReference == "" || owner.RegistrationReference != registrationReference {
		return types.NotFoundError("photo %s is not owned by the caller", photoID)
	}
	if owner.ProfilePhotoID == photoID {
		return types.NotFoundError("photo %s is the owner's profile photo", photoID)
	}

	if err := r.store.Delete(ctx, photoID); err != nil {
		return storeError(err, "delete photo %s", photoID)
	}
	r.log.WithFields(logrus.Fields{"op": "DeletePhoto", "id": photoID}).Info("photo deleted")
	return nil
}
