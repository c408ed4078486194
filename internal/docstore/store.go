// store.go
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

package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/goldphotos/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

var _ Driver = (*Store)(nil)

// Store is the gorm backed Driver bound to one database and collection
type Store struct {
	db           *gorm.DB
	databaseID   string
	collectionID string
	procedures   *registry
	inTx         bool
	log          *logrus.Entry
}

// New creates a store for the given logical database and collection
func New(db *gorm.DB, databaseID, collectionID string) *Store {
	return &Store{
		db:           db,
		databaseID:   databaseID,
		collectionID: collectionID,
		procedures:   newRegistry(),
		log: logrus.WithFields(logrus.Fields{
			"database":   databaseID,
			"collection": collectionID,
		}),
	}
}

// DatabaseID returns the logical database id of the store
func (s *Store) DatabaseID() string {
	return s.databaseID
}

// CollectionID returns the collection id of the store
func (s *Store) CollectionID() string {
	return s.collectionID
}

// withTx returns a copy of the store bound to an open transaction
func (s *Store) withTx(tx *gorm.DB) *Store {
	c := *s
	c.db = tx
	c.inTx = true
	return &c
}

// transaction runs fn in a transaction unless the store already is in one
func (s *Store) transaction(ctx context.Context, fn func(tx *Store) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.withTx(tx))
	})
}

func (s *Store) documents(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("database_id = ? AND collection_id = ?", s.databaseID, s.collectionID)
}

// Query returns documents matching q. With a page size the result is one page.
func (s *Store) Query(ctx context.Context, q Query) (Page, error) {
	db, order, err := s.apply(s.documents(ctx).Clauses(hints.Comment("select", "docstore:"+q.Type)), q)
	if err != nil {
		return Page{}, err
	}

	limit := q.Limit
	if q.PageSize > 0 {
		limit = q.PageSize + 1
	}
	if limit > 0 {
		db = db.Limit(limit)
	}

	var rows []models.Document
	if err := db.Preload("Children").Find(&rows).Error; err != nil {
		return Page{}, err
	}

	page := Page{}
	if q.PageSize > 0 && len(rows) > q.PageSize {
		rows = rows[:q.PageSize]
		page.ContinuationToken, err = encodeToken(order, fromRow(rows[len(rows)-1]))
		if err != nil {
			return Page{}, err
		}
	}

	page.Documents = make([]Document, 0, len(rows))
	for _, row := range rows {
		page.Documents = append(page.Documents, fromRow(row))
	}

	s.log.WithFields(logrus.Fields{
		"type":  q.Type,
		"count": len(page.Documents),
		"more":  page.ContinuationToken != "",
	}).Debug("query")

	return page, nil
}

// QueryAll follows continuation tokens until the result set is exhausted
func QueryAll(ctx context.Context, d Driver, q Query) ([]Document, error) {
	var all []Document
	for {
		page, err := d.Query(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Documents...)
		if page.ContinuationToken == "" || q.PageSize == 0 {
			return all, nil
		}
		q.ContinuationToken = page.ContinuationToken
	}
}

// forUpdate locks the rows a read returns until the enclosing transaction ends.
// Reads outside a transaction are left unlocked.
func (s *Store) forUpdate(db *gorm.DB) *gorm.DB {
	if !s.inTx {
		return db
	}
	if db.Dialector.Name() == "sqlserver" {
		lock := hints.CommentAfter("FROM", "UPDLOCK, ROWLOCK")
		lock.Prefix, lock.Suffix = "WITH (", ")"
		return db.Clauses(lock)
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (s *Store) readRow(ctx context.Context, id string) (models.Document, error) {
	var row models.Document
	err := s.forUpdate(s.documents(ctx)).
		Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Preload("Children").
		Where("doc_id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return row, ErrNotFound
		}
		return row, err
	}
	return row, nil
}

// Read returns the document with the given id regardless of type or version.
// Inside a procedure the row stays locked until the procedure commits.
func (s *Store) Read(ctx context.Context, id string) (Document, error) {
	row, err := s.readRow(ctx, id)
	if err != nil {
		return Document{}, err
	}
	return fromRow(row), nil
}

// Insert creates a document. An existing id yields ErrConflict.
func (s *Store) Insert(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("%w: document id is required", ErrInvalidQuery)
	}

	err := s.transaction(ctx, func(tx *Store) error {
		row := tx.toRow(doc)
		if err := tx.db.WithContext(ctx).Omit("Children").Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}
		return tx.writeChildren(ctx, row.DocumentPK, doc.Children)
	})
	if err != nil && !errors.Is(err, ErrConflict) {
		// Drivers without error translation report unique violations as plain errors
		if _, readErr := s.readRow(ctx, doc.ID); readErr == nil {
			return ErrConflict
		}
	}
	if err == nil {
		s.log.WithFields(logrus.Fields{"type": doc.Type, "id": doc.ID}).Debug("insert")
	}
	return err
}

// Replace overwrites the body, tags, index attributes and children of an existing document
func (s *Store) Replace(ctx context.Context, doc Document) error {
	return s.transaction(ctx, func(tx *Store) error {
		row, err := tx.readRow(ctx, doc.ID)
		if err != nil {
			return err
		}

		next := tx.toRow(doc)
		result := tx.db.WithContext(ctx).
			Model(&models.Document{}).
			Where("document_pk = ?", row.DocumentPK).
			Updates(map[string]interface{}{
				"document_type":    next.DocumentType,
				"document_version": next.DocumentVersion,
				"lookup_key":       next.LookupKey,
				"owner_id":         next.OwnerID,
				"group_id":         next.GroupID,
				"status":           next.Status,
				"score":            next.Score,
				"alt_score":        next.AltScore,
				"sort_time":        next.SortTime,
				"body":             next.Body,
			})
		if result.Error != nil {
			return result.Error
		}

		if err := tx.db.WithContext(ctx).
			Where("document_pk = ?", row.DocumentPK).
			Delete(&models.DocumentChild{}).Error; err != nil {
			return err
		}
		if err := tx.writeChildren(ctx, row.DocumentPK, doc.Children); err != nil {
			return err
		}

		tx.log.WithFields(logrus.Fields{"type": doc.Type, "id": doc.ID}).Debug("replace")
		return nil
	})
}

// Update reads a document with its row locked, applies mutate and replaces it
// in one transaction. An error from mutate leaves the document unchanged.
func (s *Store) Update(ctx context.Context, id string, mutate func(Document) (Document, error)) error {
	return s.transaction(ctx, func(tx *Store) error {
		current, err := tx.Read(ctx, id)
		if err != nil {
			return err
		}
		next, err := mutate(current)
		if err != nil {
			return err
		}
		if next.ID != id {
			return fmt.Errorf("%w: update of %s cannot change the document id", ErrInvalidQuery, id)
		}
		return tx.Replace(ctx, next)
	})
}

// Delete removes a document and its child index
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.transaction(ctx, func(tx *Store) error {
		row, err := tx.readRow(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.db.WithContext(ctx).
			Where("document_pk = ?", row.DocumentPK).
			Delete(&models.DocumentChild{}).Error; err != nil {
			return err
		}
		if err := tx.db.WithContext(ctx).
			Delete(&models.Document{}, row.DocumentPK).Error; err != nil {
			return err
		}
		tx.log.WithField("id", id).Debug("delete")
		return nil
	})
}

func (s *Store) writeChildren(ctx context.Context, documentPK uint64, children []string) error {
	if len(children) == 0 {
		return nil
	}
	rows := make([]models.DocumentChild, 0, len(children))
	for _, child := range children {
		rows = append(rows, models.DocumentChild{
			DocumentPK:   documentPK,
			DatabaseID:   s.databaseID,
			CollectionID: s.collectionID,
			ChildID:      child,
		})
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

// CreateDatabaseIfNotExists registers the logical database. It reports whether it was created.
func (s *Store) CreateDatabaseIfNotExists(ctx context.Context) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.DocumentDatabase{DatabaseID: s.databaseID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CreateCollectionIfNotExists registers the collection. It reports whether it was created.
func (s *Store) CreateCollectionIfNotExists(ctx context.Context) (bool, error) {
	if _, err := s.CreateDatabaseIfNotExists(ctx); err != nil {
		return false, err
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.DocumentCollection{DatabaseID: s.databaseID, CollectionID: s.collectionID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteDatabase removes every document, procedure and catalog entry of the logical database
func (s *Store) DeleteDatabase(ctx context.Context) error {
	return s.transaction(ctx, func(tx *Store) error {
		db := tx.db.WithContext(ctx)
		for _, model := range []interface{}{
			&models.DocumentChild{},
			&models.Document{},
			&models.StoredProcedure{},
			&models.DocumentCollection{},
			&models.DocumentDatabase{},
		} {
			if err := db.Where("database_id = ?", tx.databaseID).Delete(model).Error; err != nil {
				return err
			}
		}
		tx.log.Warn("database deleted")
		return nil
	})
}

func (s *Store) toRow(doc Document) models.Document {
	return models.Document{
		DatabaseID:      s.databaseID,
		CollectionID:    s.collectionID,
		DocID:           doc.ID,
		DocumentType:    doc.Type,
		DocumentVersion: doc.Version,
		LookupKey:       doc.Index.LookupKey,
		OwnerID:         doc.Index.OwnerID,
		GroupID:         doc.Index.GroupID,
		Status:          doc.Index.Status,
		Score:           doc.Index.Score,
		AltScore:        doc.Index.AltScore,
		SortTime:        doc.Index.SortTime,
		Body:            models.NewJSON(doc.Body),
	}
}

func fromRow(row models.Document) Document {
	doc := Document{
		ID:      row.DocID,
		Type:    row.DocumentType,
		Version: row.DocumentVersion,
		Index: Index{
			LookupKey: row.LookupKey,
			OwnerID:   row.OwnerID,
			GroupID:   row.GroupID,
			Status:    row.Status,
			Score:     row.Score,
			AltScore:  row.AltScore,
			SortTime:  row.SortTime,
		},
		Body: row.Body.Bytes(),
	}
	for _, child := range row.Children {
		doc.Children = append(doc.Children, child.ChildID)
	}
	return doc
}
