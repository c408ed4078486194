// Package docstore is a document database on top of gorm.
//
// Documents live in one table scoped by a logical database id and a
// collection id. Each document has a type tag, a schema version tag, a JSON
// body and a small set of promoted index attributes that queries can filter
// and order on. Ids of sub-documents embedded in a body can be indexed as
// children so the parent can be located by a child id.
//
// Multi-document atomicity is only available through procedures: a
// procedure is provisioned from a definition and runs its registered handler
// inside a single database transaction.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrNotFound is returned when a document, database or procedure does not exist
	ErrNotFound = errors.New("docstore: not found")
	// ErrConflict is returned when inserting a document whose id already exists
	ErrConflict = errors.New("docstore: document id conflict")
	// ErrInvalidToken is returned for a malformed continuation token
	ErrInvalidToken = errors.New("docstore: invalid continuation token")
	// ErrInvalidQuery is returned for filters or orderings on unsupported fields
	ErrInvalidQuery = errors.New("docstore: invalid query")
	// ErrInvalidArguments is returned when procedure arguments do not match the definition
	ErrInvalidArguments = errors.New("docstore: invalid procedure arguments")
	// ErrProcedureNotRegistered is returned when a provisioned procedure has no handler
	ErrProcedureNotRegistered = errors.New("docstore: procedure handler not registered")
)

// Index holds the promoted attributes of a document
type Index struct {
	LookupKey string
	OwnerID   string
	GroupID   string
	Status    string
	Score     int64
	AltScore  int64
	SortTime  int64
}

// Document is a stored document in its driver representation
type Document struct {
	ID       string
	Type     string
	Version  string
	Index    Index
	Children []string
	Body     json.RawMessage
}

// Decode unmarshals the document body into v
func (d Document) Decode(v interface{}) error {
	return json.Unmarshal(d.Body, v)
}

// Driver is the surface the repository layer depends on
type Driver interface {
	Query(ctx context.Context, q Query) (Page, error)
	Read(ctx context.Context, id string) (Document, error)
	Insert(ctx context.Context, doc Document) error
	Replace(ctx context.Context, doc Document) error
	Update(ctx context.Context, id string, mutate func(Document) (Document, error)) error
	Delete(ctx context.Context, id string) error
	ExecuteProcedure(ctx context.Context, procedureID string, args ...interface{}) (json.RawMessage, error)

	RegisterProcedure(procedureID string, handler Procedure)
	CreateDatabaseIfNotExists(ctx context.Context) (bool, error)
	CreateCollectionIfNotExists(ctx context.Context) (bool, error)
	UpsertProcedure(ctx context.Context, def ProcedureDefinition) error
	DeleteDatabase(ctx context.Context) error
}
