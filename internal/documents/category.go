package documents

import (
	"strings"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
)

// CategoryDocument is a photo category. Its key is promoted as the lookup key.
type CategoryDocument struct {
	Base
	Name string `json:"name"`
}

// NewCategory creates a category document at the current version
func NewCategory(id, name string) CategoryDocument {
	return CategoryDocument{Base: newBase(TypeCategory, id), Name: name}
}

// CategoryKey is the unique key of a category name. Names differing only in
// case or whitespace share a key.
func CategoryKey(name string) string {
	return strings.ToLower(contracts.NormalizeCategoryName(name))
}

// Document converts the category to its stored form
func (d CategoryDocument) Document() (docstore.Document, error) {
	return encode(d.Base, docstore.Index{LookupKey: CategoryKey(d.Name)}, nil, d)
}

// ToContract maps the document to its wire contract
func (d CategoryDocument) ToContract() contracts.CategoryContract {
	return contracts.CategoryContract{ID: d.ID, Name: d.Name}
}

// CategoryFromContract maps a wire contract to a document
func CategoryFromContract(c contracts.CategoryContract) CategoryDocument {
	return NewCategory(c.ID, c.Name)
}
