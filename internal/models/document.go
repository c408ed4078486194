package models

import (
	"time"
)

// Document is a single stored document. Every row is scoped to a logical
// database and collection; the id is unique inside that scope.
type Document struct {
	DocumentPK      uint64 `gorm:"primaryKey;autoIncrement"`
	DatabaseID      string `gorm:"size:64;not null;uniqueIndex:idx_documents_key,priority:1"`
	CollectionID    string `gorm:"size:64;not null;uniqueIndex:idx_documents_key,priority:2"`
	DocID           string `gorm:"size:64;not null;uniqueIndex:idx_documents_key,priority:3"`
	DocumentType    string `gorm:"size:32;not null;index:idx_documents_type,priority:1"`
	DocumentVersion string `gorm:"size:16;not null;index:idx_documents_type,priority:2"`
	LookupKey       string `gorm:"size:255;index"`
	OwnerID         string `gorm:"size:64;index"`
	GroupID         string `gorm:"size:64;index"`
	Status          string `gorm:"size:32"`
	Score           int64  `gorm:"not null;default:0"`
	AltScore        int64  `gorm:"not null;default:0"`
	SortTime        int64  `gorm:"not null;default:0;index"`
	Body            JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Children        []DocumentChild `gorm:"foreignKey:DocumentPK;references:DocumentPK"`
}

// DocumentChild indexes the id of a sub-document embedded in a document body
type DocumentChild struct {
	DocumentChildPK uint64 `gorm:"primaryKey;autoIncrement"`
	DocumentPK      uint64 `gorm:"not null;index"`
	DatabaseID      string `gorm:"size:64;not null;index:idx_document_children_key,priority:1"`
	CollectionID    string `gorm:"size:64;not null;index:idx_document_children_key,priority:2"`
	ChildID         string `gorm:"size:64;not null;index:idx_document_children_key,priority:3"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}

// TableName overrides the table name for DocumentChild
func (DocumentChild) TableName() string {
	return "document_children"
}
