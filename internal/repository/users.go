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

func (r *DocumentRepository) userByRegistration(ctx context.Context, registrationReference string) (documents.UserDocument, error) {
	q := documents.Query(documents.TypeUser).Where(docstore.FieldLookupKey, registrationReference)
	q.Limit = 1
	page, err := r.store.Query(ctx, q)
	if err != nil {
		return documents.UserDocument{}, types.UnknownError(err, "lookup user by registration")
	}
	if len(page.Documents) == 0 {
		return documents.UserDocument{}, types.NotFoundError("user with registration %q", registrationReference)
	}
	user, err := documents.Decode[documents.UserDocument](page.Documents[0])
	if err != nil {
		return user, types.UnknownError(err, "decode user")
	}
	return user, nil
}

// GetUser looks a user up by id, or by registration reference when no id is
// given. A user that does not exist is returned as the empty user.
func (r *DocumentRepository) GetUser(ctx context.Context, userID, registrationReference string) (contracts.UserContract, error) {
	var (
		user documents.UserDocument
		err  error
	)
	switch {
	case userID != "":
		user, err = r.loadUser(ctx, userID)
	case registrationReference != "":
		user, err = r.userByRegistration(ctx, registrationReference)
	default:
		return contracts.UserContract{}, nil
	}

	if err != nil {
		if types.IsCode(err, types.NotFound) {
			return contracts.UserContract{}, nil
		}
		return contracts.UserContract{}, types.UnknownError(err, "get user")
	}
	return user.ToContract(), nil
}

// CreateUser creates a user and credits the welcome gold from the system
func (r *DocumentRepository) CreateUser(ctx context.Context, registrationReference string) (contracts.UserContract, error) {
	if registrationReference == "" {
		return contracts.UserContract{}, types.UnknownError(nil, "registration reference is required")
	}

	_, err := r.userByRegistration(ctx, registrationReference)
	if err == nil {
		return contracts.UserContract{}, types.DuplicateKeyError("user with registration %q already exists", registrationReference)
	}
	if !types.IsCode(err, types.NotFound) {
		return contracts.UserContract{}, err
	}

	user := documents.NewUser(r.newID(), registrationReference, r.now())
	if err := r.insert(ctx, user); err != nil {
		return contracts.UserContract{}, err
	}
	r.log.WithFields(logrus.Fields{"op": "CreateUser", "id": user.ID}).Info("user created")

	if r.settings.NewUserGold > 0 {
		if _, err := r.transferGold(ctx, user.ID, SystemUserID, r.settings.NewUserGold, TransactionNewUser, ""); err != nil {
			return contracts.UserContract{}, err
		}
	}

	return r.GetUser(ctx, user.ID, "")
}

// UpdateUser replaces the mutable fields of a user. The first profile photo
// assignment is rewarded with gold from the system.
func (r *DocumentRepository) UpdateUser(ctx context.Context, user contracts.UserContract) (contracts.UserContract, error) {
	if user.UserID == "" {
		return contracts.UserContract{}, types.NotFoundError("user id is required")
	}

	var stored, updated documents.UserDocument
	err := r.store.Update(ctx, user.UserID, func(doc docstore.Document) (docstore.Document, error) {
		if doc.Type != documents.TypeUser || doc.Version != documents.CurrentVersion {
			return doc, docstore.ErrNotFound
		}
		var err error
		if stored, err = documents.Decode[documents.UserDocument](doc); err != nil {
			return doc, err
		}
		updated = documents.UserFromContract(user, &stored)
		updated.ModifiedAt = r.now()
		return updated.Document()
	})
	if err != nil {
		return contracts.UserContract{}, storeError(err, "update user %s", user.UserID)
	}

	firstProfilePhoto := stored.ProfilePhotoID == "" && updated.ProfilePhotoID != ""
	if firstProfilePhoto && r.settings.FirstProfilePhotoGold > 0 {
		if _, err := r.transferGold(ctx, updated.ID, SystemUserID, r.settings.FirstProfilePhotoGold, TransactionFirstProfilePhoto, updated.ProfilePhotoID); err != nil {
			return contracts.UserContract{}, err
		}
	}

	return r.GetUser(ctx, updated.ID, "")
}

// InsertIapPurchase fulfills a purchase receipt once and returns the refreshed user
func (r *DocumentRepository) InsertIapPurchase(ctx context.Context, purchase contracts.IapPurchaseContract) (contracts.UserContract, error) {
	log := r.log.WithFields(logrus.Fields{"op": "InsertIapPurchase", "id": purchase.ID, "user": purchase.UserID})

	if purchase.ID == "" {
		return contracts.UserContract{}, types.UnknownError(nil, "purchase receipt id is required")
	}
	found, err := r.exists(ctx, purchase.ID)
	if err != nil {
		return contracts.UserContract{}, err
	}
	if found {
		return contracts.UserContract{}, types.DuplicateKeyError("purchase %s already fulfilled", purchase.ID)
	}

	doc := documents.IapPurchaseFromContract(purchase, r.now())

	var ledger documents.GoldTransactionDocument
	if doc.GoldIncrement > 0 {
		ledger, err = r.transferGold(ctx, doc.UserID, SystemUserID, doc.GoldIncrement, TransactionIapPurchase, "")
		if err != nil {
			return contracts.UserContract{}, err
		}
	}

	if err := r.insert(ctx, doc); err != nil {
		if ledger.ID != "" {
			return contracts.UserContract{}, r.goldAppliedWritePending("InsertIapPurchase", doc.ID, ledger, err)
		}
		return contracts.UserContract{}, err
	}
	log.WithField("gold", doc.GoldIncrement).Info("purchase fulfilled")

	return r.GetUser(ctx, doc.UserID, "")
}

// GetGoldTransactions returns one page of the ledger entries received by a user, newest first
func (r *DocumentRepository) GetGoldTransactions(ctx context.Context, userID, continuationToken string) (contracts.PagedResponse[contracts.GoldTransactionContract], error) {
	q := documents.Query(documents.TypeGoldTransaction).
		Where(docstore.FieldOwnerID, userID).
		OrderBy(docstore.FieldSortTime, true)
	q.PageSize = PageSize
	q.ContinuationToken = continuationToken

	page, err := r.store.Query(ctx, q)
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidToken) {
			return contracts.PagedResponse[contracts.GoldTransactionContract]{}, types.UnknownError(err, "invalid continuation token")
		}
		return contracts.PagedResponse[contracts.GoldTransactionContract]{}, types.UnknownError(err, "query gold transactions")
	}

	ledger, err := documents.DecodeAll[documents.GoldTransactionDocument](page.Documents)
	if err != nil {
		return contracts.PagedResponse[contracts.GoldTransactionContract]{}, types.UnknownError(err, "decode gold transactions")
	}

	items := make([]contracts.GoldTransactionContract, 0, len(ledger))
	for _, entry := range ledger {
		items = append(items, entry.ToContract())
	}
	return contracts.PagedResponse[contracts.GoldTransactionContract]{
		Items:             items,
		ContinuationToken: page.ContinuationToken,
	}, nil
}
