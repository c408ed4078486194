// Package documents defines the persisted document shapes and their mapping
// to and from the wire contracts.
package documents

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/localnerve/goldphotos/internal/docstore"
)

// CurrentVersion is the schema version written and read by this build.
// Documents of any other version are invisible to queries.
const CurrentVersion = "1.0"

// Document type tags
const (
	TypeCategory        = "Category"
	TypeUser            = "User"
	TypePhoto           = "Photo"
	TypeIapPurchase     = "IapPurchase"
	TypeGoldTransaction = "GoldTransaction"
)

// Base carries the id and the two discriminators of every document
type Base struct {
	ID              string `json:"id"`
	DocumentType    string `json:"documentType"`
	DocumentVersion string `json:"documentVersion"`
}

func newBase(documentType, id string) Base {
	return Base{ID: id, DocumentType: documentType, DocumentVersion: CurrentVersion}
}

// Query starts a query for documents of one type at the current version
func Query(documentType string) docstore.Query {
	return docstore.Query{Type: documentType, Version: CurrentVersion}
}

func encode(base Base, index docstore.Index, children []string, body interface{}) (docstore.Document, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("encode %s %s: %w", base.DocumentType, base.ID, err)
	}
	return docstore.Document{
		ID:       base.ID,
		Type:     base.DocumentType,
		Version:  base.DocumentVersion,
		Index:    index,
		Children: children,
		Body:     raw,
	}, nil
}

// Decode unmarshals a stored document body into a document shape
func Decode[T any](doc docstore.Document) (T, error) {
	var v T
	if err := doc.Decode(&v); err != nil {
		return v, fmt.Errorf("decode %s %s: %w", doc.Type, doc.ID, err)
	}
	return v, nil
}

// DecodeAll decodes every document of a result set
func DecodeAll[T any](docs []docstore.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := Decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SortTime converts a timestamp into the promoted sort attribute
func SortTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}
