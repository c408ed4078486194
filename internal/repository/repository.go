// repository.go
//
// Photo sharing and gold economy data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of goldphotos.
// goldphotos is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// goldphotos is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with goldphotos.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package repository implements the photo and gold economy operations on top
// of the document store, plus a caching decorator.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/goldphotos/internal/config"
	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/documents"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/sirupsen/logrus"
)

// SystemUserID is the reserved source of gold issued by the platform. It is never a real user.
const SystemUserID = "ffffffff-ffff-ffff-ffff-ffffffffffff"

// PageSize is the fixed page size of photo streams and ledger pages
const PageSize = 100

// Repository is the full operation surface used by controllers
type Repository interface {
	CreateCategory(ctx context.Context, name string) (contracts.CategoryContract, error)
	CreateUser(ctx context.Context, registrationReference string) (contracts.UserContract, error)
	DeleteAnnotation(ctx context.Context, annotationID, registrationReference string) error
	DeletePhoto(ctx context.Context, photoID, registrationReference string) error
	GetAnnotations(ctx context.Context, photoID string) ([]contracts.AnnotationContract, error)
	GetCategories(ctx context.Context) ([]contracts.CategoryContract, error)
	GetCategoriesPreview(ctx context.Context, numberOfThumbnails int) ([]contracts.CategoryPreviewContract, error)
	GetCategoryPhotoStream(ctx context.Context, categoryID, continuationToken string) (contracts.PagedResponse[contracts.PhotoContract], error)
	GetGoldTransactions(ctx context.Context, userID, continuationToken string) (contracts.PagedResponse[contracts.GoldTransactionContract], error)
	GetHeroPhotos(ctx context.Context, count, daysOld int) ([]contracts.PhotoContract, error)
	GetLeaderboard(ctx context.Context, mostGoldCategoriesCount, mostGoldPhotosCount, mostGoldUsersCount, mostGivingUsersCount int) (contracts.LeaderboardContract, error)
	GetPhoto(ctx context.Context, id string) (contracts.PhotoContract, error)
	GetUser(ctx context.Context, userID, registrationReference string) (contracts.UserContract, error)
	GetUserPhotoStream(ctx context.Context, userID, continuationToken string, includeNonActive bool) (contracts.PagedResponse[contracts.PhotoContract], error)
	InitializeDatabaseIfNotExisting(ctx context.Context, serverPath string) error
	InsertAnnotation(ctx context.Context, annotation contracts.AnnotationContract) (contracts.AnnotationContract, error)
	InsertIapPurchase(ctx context.Context, purchase contracts.IapPurchaseContract) (contracts.UserContract, error)
	InsertPhoto(ctx context.Context, photo contracts.PhotoContract, goldIncrement int) (contracts.PhotoContract, error)
	InsertReport(ctx context.Context, report contracts.ReportContract, registrationReference string) (contracts.ReportContract, error)
	ReinitializeDatabase(ctx context.Context, serverPath string) error
	UpdatePhoto(ctx context.Context, photo contracts.PhotoContract) (contracts.PhotoContract, error)
	UpdatePhotoStatus(ctx context.Context, photo contracts.PhotoContract) (contracts.PhotoContract, error)
	UpdateUser(ctx context.Context, user contracts.UserContract) (contracts.UserContract, error)
}

// Settings are the repository inputs taken from configuration
type Settings struct {
	DatabaseID            string
	CollectionID          string
	NewUserGold           int64
	FirstProfilePhotoGold int64
}

// SettingsFromConfig extracts the repository settings
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		DatabaseID:            cfg.DocstoreDatabase,
		CollectionID:          cfg.DocstoreCollection,
		NewUserGold:           int64(cfg.NewUserGold),
		FirstProfilePhotoGold: int64(cfg.FirstProfilePhotoGold),
	}
}

func (s Settings) validate() error {
	switch {
	case s.DatabaseID == "":
		return types.ConfigurationError("document database id is required")
	case s.CollectionID == "":
		return types.ConfigurationError("document collection id is required")
	case s.NewUserGold < 0:
		return types.ConfigurationError("new user gold must not be negative, got %d", s.NewUserGold)
	case s.FirstProfilePhotoGold < 0:
		return types.ConfigurationError("first profile photo gold must not be negative, got %d", s.FirstProfilePhotoGold)
	}
	return nil
}

// Option customizes a DocumentRepository
type Option func(*DocumentRepository)

// WithClock replaces the time source
func WithClock(now func() time.Time) Option {
	return func(r *DocumentRepository) {
		r.now = now
	}
}

// WithIDGenerator replaces the document id generator
func WithIDGenerator(newID func() string) Option {
	return func(r *DocumentRepository) {
		r.newID = newID
	}
}

// DocumentRepository implements Repository on a docstore.Driver
type DocumentRepository struct {
	store    docstore.Driver
	settings Settings
	now      func() time.Time
	newID    func() string
	log      *logrus.Entry
}

var _ Repository = (*DocumentRepository)(nil)

// New creates the repository and registers its procedure handlers on the store
func New(store docstore.Driver, settings Settings, opts ...Option) (*DocumentRepository, error) {
	if store == nil {
		return nil, types.ConfigurationError("document store is required")
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}

	r := &DocumentRepository{
		store:    store,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		log: logrus.WithFields(logrus.Fields{
			"component":  "repository",
			"database":   settings.DatabaseID,
			"collection": settings.CollectionID,
		}),
	}
	for _, opt := range opts {
		opt(r)
	}

	store.RegisterProcedure(ProcedureTransferGold, r.transferGoldProcedure)
	store.RegisterProcedure(ProcedureRecentPhotos, r.recentPhotosProcedure)

	return r, nil
}

// storeError maps a docstore failure to a repository error
func storeError(err error, format string, args ...interface{}) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return types.NewError(types.NotFound, err, format, args...)
	case errors.Is(err, docstore.ErrConflict):
		return types.NewError(types.DuplicateKeyInsert, err, format, args...)
	}
	return types.UnknownError(err, format, args...)
}

// readTyped reads a document and checks its type and schema version
func (r *DocumentRepository) readTyped(ctx context.Context, documentType, id string) (docstore.Document, error) {
	if id == "" {
		return docstore.Document{}, types.NotFoundError("%s id is required", documentType)
	}
	doc, err := r.store.Read(ctx, id)
	if err != nil {
		return docstore.Document{}, storeError(err, "%s %s", documentType, id)
	}
	if doc.Type != documentType || doc.Version != documents.CurrentVersion {
		return docstore.Document{}, types.NotFoundError("%s %s", documentType, id)
	}
	return doc, nil
}

// exists reports whether any document already uses id
func (r *DocumentRepository) exists(ctx context.Context, id string) (bool, error) {
	_, err := r.store.Read(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	return false, types.UnknownError(err, "existence check of %s", id)
}

func (r *DocumentRepository) loadPhoto(ctx context.Context, id string) (documents.PhotoDocument, error) {
	doc, err := r.readTyped(ctx, documents.TypePhoto, id)
	if err != nil {
		return documents.PhotoDocument{}, err
	}
	photo, err := documents.Decode[documents.PhotoDocument](doc)
	if err != nil {
		return photo, types.UnknownError(err, "photo %s", id)
	}
	return photo, nil
}

func (r *DocumentRepository) loadUser(ctx context.Context, id string) (documents.UserDocument, error) {
	doc, err := r.readTyped(ctx, documents.TypeUser, id)
	if err != nil {
		return documents.UserDocument{}, err
	}
	user, err := documents.Decode[documents.UserDocument](doc)
	if err != nil {
		return user, types.UnknownError(err, "user %s", id)
	}
	return user, nil
}

func (r *DocumentRepository) loadCategory(ctx context.Context, id string) (documents.CategoryDocument, error) {
	doc, err := r.readTyped(ctx, documents.TypeCategory, id)
	if err != nil {
		return documents.CategoryDocument{}, err
	}
	category, err := documents.Decode[documents.CategoryDocument](doc)
	if err != nil {
		return category, types.UnknownError(err, "category %s", id)
	}
	return category, nil
}

func (r *DocumentRepository) replace(ctx context.Context, doc interface {
	Document() (docstore.Document, error)
}) error {
	stored, err := doc.Document()
	if err != nil {
		return types.UnknownError(err, "encode document")
	}
	if err := r.store.Replace(ctx, stored); err != nil {
		return storeError(err, "replace %s %s", stored.Type, stored.ID)
	}
	return nil
}

func (r *DocumentRepository) insert(ctx context.Context, doc interface {
	Document() (docstore.Document, error)
}) error {
	stored, err := doc.Document()
	if err != nil {
		return types.UnknownError(err, "encode document")
	}
	if err := r.store.Insert(ctx, stored); err != nil {
		return storeError(err, "insert %s %s", stored.Type, stored.ID)
	}
	return nil
}

// resolveUsers batch loads users by id. Missing users are absent from the result.
func (r *DocumentRepository) resolveUsers(ctx context.Context, ids []string) (map[string]contracts.UserContract, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users := make(map[string]contracts.UserContract, len(unique))
	if len(unique) == 0 {
		return users, nil
	}

	docs, err := docstore.QueryAll(ctx, r.store,
		documents.Query(documents.TypeUser).Filter(docstore.FieldID, docstore.OpIn, unique))
	if err != nil {
		return nil, types.UnknownError(err, "resolve users")
	}
	decoded, err := documents.DecodeAll[documents.UserDocument](docs)
	if err != nil {
		return nil, types.UnknownError(err, "resolve users")
	}
	for _, u := range decoded {
		users[u.ID] = u.ToContract()
	}
	return users, nil
}

// photoContracts maps photos to contracts with one batch user lookup
func (r *DocumentRepository) photoContracts(ctx context.Context, photos []documents.PhotoDocument) ([]contracts.PhotoContract, error) {
	var ids []string
	for _, p := range photos {
		ids = append(ids, p.UserIDs()...)
	}
	users, err := r.resolveUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]contracts.PhotoContract, 0, len(photos))
	for _, p := range photos {
		out = append(out, p.ToContract(users))
	}
	return out, nil
}
