package models

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentDatabase is a catalog entry for a logical database
type DocumentDatabase struct {
	DatabaseID string `gorm:"primaryKey;size:64"`
	CreatedAt  time.Time
}

// DocumentCollection is a catalog entry for a collection inside a logical database
type DocumentCollection struct {
	DatabaseID   string `gorm:"primaryKey;size:64"`
	CollectionID string `gorm:"primaryKey;size:64"`
	CreatedAt    time.Time
}

// StoredProcedure is a provisioned procedure definition in a collection
type StoredProcedure struct {
	DatabaseID   string `gorm:"primaryKey;size:64"`
	CollectionID string `gorm:"primaryKey;size:64"`
	ProcedureID  string `gorm:"primaryKey;size:128"`
	Description  string `gorm:"size:512"`
	Parameters   datatypes.JSON
	Source       string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for DocumentDatabase
func (DocumentDatabase) TableName() string {
	return "document_databases"
}

// TableName overrides the table name for DocumentCollection
func (DocumentCollection) TableName() string {
	return "document_collections"
}

// TableName overrides the table name for StoredProcedure
func (StoredProcedure) TableName() string {
	return "stored_procedures"
}
