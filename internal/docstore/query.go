package docstore

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Field names a queryable document attribute
type Field string

const (
	FieldID        Field = "doc_id"
	FieldLookupKey Field = "lookup_key"
	FieldOwnerID   Field = "owner_id"
	FieldGroupID   Field = "group_id"
	FieldStatus    Field = "status"
	FieldScore     Field = "score"
	FieldAltScore  Field = "alt_score"
	FieldSortTime  Field = "sort_time"
	// FieldChildID matches documents embedding a sub-document with the given id
	FieldChildID Field = "child_id"
)

// Op is a filter comparison operator
type Op string

const (
	OpEq  Op = "="
	OpNe  Op = "<>"
	OpGte Op = ">="
	OpLte Op = "<="
	OpIn  Op = "IN"
)

// Filter is a single predicate on a field
type Filter struct {
	Field Field
	Op    Op
	Value interface{}
}

// Order sorts results by one field. Ties are broken by document id in the same direction.
type Order struct {
	Field      Field
	Descending bool
}

// Query selects documents of one type and schema version
type Query struct {
	Type    string
	Version string
	Filters []Filter
	Order   *Order
	// Limit caps the number of results of an unpaged query
	Limit int
	// PageSize enables pagination; a continuation token is returned while more results exist
	PageSize          int
	ContinuationToken string
}

// Page is one page of query results. An empty ContinuationToken means there are no more pages.
type Page struct {
	Documents         []Document
	ContinuationToken string
}

// Where appends an equality filter
func (q Query) Where(field Field, value interface{}) Query {
	q.Filters = append(q.Filters, Filter{Field: field, Op: OpEq, Value: value})
	return q
}

// Filter appends a filter with an explicit operator
func (q Query) Filter(field Field, op Op, value interface{}) Query {
	q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: value})
	return q
}

// OrderBy sets the result ordering
func (q Query) OrderBy(field Field, descending bool) Query {
	q.Order = &Order{Field: field, Descending: descending}
	return q
}

var filterable = map[Field]bool{
	FieldID:        true,
	FieldLookupKey: true,
	FieldOwnerID:   true,
	FieldGroupID:   true,
	FieldStatus:    true,
	FieldScore:     true,
	FieldAltScore:  true,
	FieldSortTime:  true,
}

var numeric = map[Field]bool{
	FieldScore:    true,
	FieldAltScore: true,
	FieldSortTime: true,
}

type cursor struct {
	Value json.RawMessage `json:"k,omitempty"`
	ID    string          `json:"id"`
}

func encodeToken(order Order, last Document) (string, error) {
	c := cursor{ID: last.ID}
	if order.Field != FieldID {
		raw, err := json.Marshal(sortValue(order.Field, last))
		if err != nil {
			return "", err
		}
		c.Value = raw
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func decodeToken(order Order, token string) (interface{}, string, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, "", ErrInvalidToken
	}
	var c cursor
	if err := json.Unmarshal(data, &c); err != nil || c.ID == "" {
		return nil, "", ErrInvalidToken
	}
	if order.Field == FieldID {
		return nil, c.ID, nil
	}
	if len(c.Value) == 0 {
		return nil, "", ErrInvalidToken
	}
	if numeric[order.Field] {
		var n int64
		if err := json.Unmarshal(c.Value, &n); err != nil {
			return nil, "", ErrInvalidToken
		}
		return n, c.ID, nil
	}
	var s string
	if err := json.Unmarshal(c.Value, &s); err != nil {
		return nil, "", ErrInvalidToken
	}
	return s, c.ID, nil
}

func sortValue(field Field, doc Document) interface{} {
	switch field {
	case FieldLookupKey:
		return doc.Index.LookupKey
	case FieldOwnerID:
		return doc.Index.OwnerID
	case FieldGroupID:
		return doc.Index.GroupID
	case FieldStatus:
		return doc.Index.Status
	case FieldScore:
		return doc.Index.Score
	case FieldAltScore:
		return doc.Index.AltScore
	case FieldSortTime:
		return doc.Index.SortTime
	}
	return doc.ID
}

// apply adds the query predicates, cursor and ordering to db
func (s *Store) apply(db *gorm.DB, q Query) (*gorm.DB, Order, error) {
	db = db.Where("document_type = ? AND document_version = ?", q.Type, q.Version)

	for _, f := range q.Filters {
		if f.Field == FieldChildID {
			op := f.Op
			if op != OpEq && op != OpIn {
				return nil, Order{}, fmt.Errorf("%w: operator %s on %s", ErrInvalidQuery, op, f.Field)
			}
			children := s.db.Session(&gorm.Session{NewDB: true}).
				Table("document_children").
				Select("document_pk").
				Where("database_id = ? AND collection_id = ?", s.databaseID, s.collectionID).
				Where(fmt.Sprintf("child_id %s ?", op), f.Value)
			db = db.Where("document_pk IN (?)", children)
			continue
		}
		if !filterable[f.Field] {
			return nil, Order{}, fmt.Errorf("%w: field %q", ErrInvalidQuery, f.Field)
		}
		switch f.Op {
		case OpEq, OpNe, OpGte, OpLte:
			db = db.Where(fmt.Sprintf("%s %s ?", f.Field, f.Op), f.Value)
		case OpIn:
			db = db.Where(fmt.Sprintf("%s IN ?", f.Field), f.Value)
		default:
			return nil, Order{}, fmt.Errorf("%w: operator %q", ErrInvalidQuery, f.Op)
		}
	}

	order := Order{Field: FieldID}
	if q.Order != nil {
		order = *q.Order
	}
	if !filterable[order.Field] {
		return nil, Order{}, fmt.Errorf("%w: order on %q", ErrInvalidQuery, order.Field)
	}

	cmp := ">"
	dir := "ASC"
	if order.Descending {
		cmp = "<"
		dir = "DESC"
	}

	if q.PageSize > 0 && q.ContinuationToken != "" {
		value, lastID, err := decodeToken(order, q.ContinuationToken)
		if err != nil {
			return nil, Order{}, err
		}
		if order.Field == FieldID {
			db = db.Where(fmt.Sprintf("doc_id %s ?", cmp), lastID)
		} else {
			db = db.Where(
				fmt.Sprintf("((%s %s ?) OR (%s = ? AND doc_id %s ?))", order.Field, cmp, order.Field, cmp),
				value, value, lastID,
			)
		}
	}

	if order.Field == FieldID {
		db = db.Order("doc_id " + dir)
	} else {
		db = db.Order(fmt.Sprintf("%s %s", order.Field, dir)).Order("doc_id " + dir)
	}

	return db, order, nil
}
