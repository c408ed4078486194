package docstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/localnerve/goldphotos/data"
	"github.com/localnerve/goldphotos/internal/database"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *docstore.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	store := docstore.New(db, "testdb", "docs")
	_, err = store.CreateCollectionIfNotExists(context.Background())
	require.NoError(t, err)
	return store
}

func item(id string, sortTime int64) docstore.Document {
	return docstore.Document{
		ID:      id,
		Type:    "Item",
		Version: "1",
		Index:   docstore.Index{GroupID: "g1", Status: "Active", SortTime: sortTime, Score: sortTime % 7},
		Body:    json.RawMessage(fmt.Sprintf(`{"id":%q}`, id)),
	}
}

func TestInsertReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	doc := item("a", 10)
	doc.Children = []string{"c1", "c2"}
	require.NoError(t, store.Insert(ctx, doc))

	got, err := store.Read(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Item", got.Type)
	assert.Equal(t, int64(10), got.Index.SortTime)
	assert.ElementsMatch(t, []string{"c1", "c2"}, got.Children)
	assert.JSONEq(t, `{"id":"a"}`, string(got.Body))

	_, err = store.Read(ctx, "missing")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestInsertDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Insert(ctx, item("a", 1)))
	err := store.Insert(ctx, item("a", 2))
	assert.ErrorIs(t, err, docstore.ErrConflict)
}

func TestReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	doc := item("a", 1)
	doc.Children = []string{"old"}
	require.NoError(t, store.Insert(ctx, doc))

	doc.Index.Status = "Hidden"
	doc.Children = []string{"new"}
	doc.Body = json.RawMessage(`{"id":"a","v":2}`)
	require.NoError(t, store.Replace(ctx, doc))

	got, err := store.Read(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Hidden", got.Index.Status)
	assert.Equal(t, []string{"new"}, got.Children)

	page, err := store.Query(ctx, docstore.Query{Type: "Item", Version: "1"}.Where(docstore.FieldChildID, "old"))
	require.NoError(t, err)
	assert.Empty(t, page.Documents)

	assert.ErrorIs(t, store.Replace(ctx, item("missing", 1)), docstore.ErrNotFound)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Read(ctx, "a")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "a"), docstore.ErrNotFound)
}

func TestUpdateReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Insert(ctx, item("a", 1)))

	bump := func(doc docstore.Document) (docstore.Document, error) {
		doc.Index.Score++
		return doc, nil
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Update(ctx, "a", bump))
	}
	got, err := store.Read(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Index.Score)

	refused := errors.New("refused")
	err = store.Update(ctx, "a", func(doc docstore.Document) (docstore.Document, error) {
		doc.Index.Score = 100
		return doc, refused
	})
	assert.ErrorIs(t, err, refused)

	err = store.Update(ctx, "a", func(doc docstore.Document) (docstore.Document, error) {
		doc.ID = "b"
		return doc, nil
	})
	assert.ErrorIs(t, err, docstore.ErrInvalidQuery)

	got, err = store.Read(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Index.Score, "failed updates leave the document unchanged")

	assert.ErrorIs(t, store.Update(ctx, "missing", bump), docstore.ErrNotFound)
}

func TestQueryFiltersTypeAndVersion(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Insert(ctx, item("current", 1)))
	old := item("old", 2)
	old.Version = "0"
	require.NoError(t, store.Insert(ctx, old))
	other := item("other", 3)
	other.Type = "Other"
	require.NoError(t, store.Insert(ctx, other))

	page, err := store.Query(ctx, docstore.Query{Type: "Item", Version: "1"})
	require.NoError(t, err)
	require.Len(t, page.Documents, 1)
	assert.Equal(t, "current", page.Documents[0].ID)
	assert.Empty(t, page.ContinuationToken)
}

func TestQueryOperators(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, store.Insert(ctx, item(fmt.Sprintf("d%d", i), i)))
	}

	q := docstore.Query{Type: "Item", Version: "1"}

	page, err := store.Query(ctx, q.Filter(docstore.FieldSortTime, docstore.OpGte, int64(4)))
	require.NoError(t, err)
	assert.Len(t, page.Documents, 2)

	page, err = store.Query(ctx, q.Filter(docstore.FieldID, docstore.OpIn, []string{"d1", "d3", "zz"}))
	require.NoError(t, err)
	assert.Len(t, page.Documents, 2)

	page, err = store.Query(ctx, q.OrderBy(docstore.FieldSortTime, true).Filter(docstore.FieldID, docstore.OpNe, "d5"))
	require.NoError(t, err)
	require.Len(t, page.Documents, 4)
	assert.Equal(t, "d4", page.Documents[0].ID)

	limited := q.OrderBy(docstore.FieldSortTime, false)
	limited.Limit = 2
	page, err = store.Query(ctx, limited)
	require.NoError(t, err)
	require.Len(t, page.Documents, 2)
	assert.Equal(t, "d1", page.Documents[0].ID)
	assert.Empty(t, page.ContinuationToken)

	_, err = store.Query(ctx, q.Where(docstore.Field("body"), "x"))
	assert.ErrorIs(t, err, docstore.ErrInvalidQuery)
}

func TestPaginationVisitsEveryDocumentOnce(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	total := 25
	for i := 0; i < total; i++ {
		// pairs of equal sort times exercise the id tie-breaker
		require.NoError(t, store.Insert(ctx, item(fmt.Sprintf("p%02d", i), int64(i/2))))
	}

	q := docstore.Query{Type: "Item", Version: "1", PageSize: 10}.OrderBy(docstore.FieldSortTime, true)

	seen := map[string]bool{}
	var last *docstore.Document
	pages := 0
	for {
		page, err := store.Query(ctx, q)
		require.NoError(t, err)
		pages++
		for i := range page.Documents {
			doc := page.Documents[i]
			assert.False(t, seen[doc.ID], "document %s returned twice", doc.ID)
			seen[doc.ID] = true
			if last != nil {
				assert.True(t, last.Index.SortTime > doc.Index.SortTime ||
					(last.Index.SortTime == doc.Index.SortTime && last.ID > doc.ID))
			}
			last = &doc
		}
		if page.ContinuationToken == "" {
			break
		}
		q.ContinuationToken = page.ContinuationToken
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, seen, total)

	all, err := docstore.QueryAll(ctx, store, docstore.Query{Type: "Item", Version: "1", PageSize: 7})
	require.NoError(t, err)
	assert.Len(t, all, total)
}

func TestInvalidContinuationToken(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, token := range []string{"%%%", "bm90LWpzb24"} {
		_, err := store.Query(ctx, docstore.Query{Type: "Item", Version: "1", PageSize: 5, ContinuationToken: token}.
			OrderBy(docstore.FieldSortTime, true))
		assert.ErrorIs(t, err, docstore.ErrInvalidToken)
	}
}

func TestChildFilter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	a := item("a", 1)
	a.Children = []string{"x1", "x2"}
	b := item("b", 2)
	b.Children = []string{"y1"}
	require.NoError(t, store.Insert(ctx, a))
	require.NoError(t, store.Insert(ctx, b))

	page, err := store.Query(ctx, docstore.Query{Type: "Item", Version: "1"}.Where(docstore.FieldChildID, "x2"))
	require.NoError(t, err)
	require.Len(t, page.Documents, 1)
	assert.Equal(t, "a", page.Documents[0].ID)
}

func counterDefinition() docstore.ProcedureDefinition {
	return docstore.ProcedureDefinition{
		ID: "writeTwo",
		Parameters: []docstore.Parameter{
			{Name: "first", Type: docstore.ParamString},
			{Name: "second", Type: docstore.ParamString},
			{Name: "fail", Type: docstore.ParamBool},
		},
	}
}

func writeTwo(ctx context.Context, tx docstore.Driver, args docstore.Arguments) (interface{}, error) {
	if err := tx.Insert(ctx, item(args.String("first"), 1)); err != nil {
		return nil, err
	}
	if err := tx.Insert(ctx, item(args.String("second"), 2)); err != nil {
		return nil, err
	}
	if args.Bool("fail") {
		return nil, errors.New("requested failure")
	}
	return map[string]string{"inserted": args.String("first") + "," + args.String("second")}, nil
}

func TestExecuteProcedure(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.ExecuteProcedure(ctx, "writeTwo", "a", "b", false)
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	require.NoError(t, store.UpsertProcedure(ctx, counterDefinition()))
	_, err = store.ExecuteProcedure(ctx, "writeTwo", "a", "b", false)
	assert.ErrorIs(t, err, docstore.ErrProcedureNotRegistered)

	store.RegisterProcedure("writeTwo", writeTwo)

	_, err = store.ExecuteProcedure(ctx, "writeTwo", "a", "b")
	assert.ErrorIs(t, err, docstore.ErrInvalidArguments)
	_, err = store.ExecuteProcedure(ctx, "writeTwo", "a", 2, false)
	assert.ErrorIs(t, err, docstore.ErrInvalidArguments)

	result, err := store.ExecuteProcedure(ctx, "writeTwo", "a", "b", false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inserted":"a,b"}`, string(result))

	// upsert replaces the definition
	require.NoError(t, store.UpsertProcedure(ctx, counterDefinition()))
}

func TestExecuteProcedureIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.UpsertProcedure(ctx, counterDefinition()))
	store.RegisterProcedure("writeTwo", writeTwo)

	_, err := store.ExecuteProcedure(ctx, "writeTwo", "c", "d", true)
	require.Error(t, err)

	for _, id := range []string{"c", "d"} {
		_, err := store.Read(ctx, id)
		assert.ErrorIs(t, err, docstore.ErrNotFound, "write to %s should be rolled back", id)
	}

	// a conflicting second insert also rolls back the first
	require.NoError(t, store.Insert(ctx, item("taken", 1)))
	_, err = store.ExecuteProcedure(ctx, "writeTwo", "fresh", "taken", false)
	require.ErrorIs(t, err, docstore.ErrConflict)
	_, err = store.Read(ctx, "fresh")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestProvisioningAndDeleteDatabase(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.CreateDatabaseIfNotExists(ctx)
	require.NoError(t, err)
	assert.False(t, created, "database already registered by the helper")

	created, err = store.CreateCollectionIfNotExists(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, store.Insert(ctx, item("a", 1)))
	require.NoError(t, store.UpsertProcedure(ctx, counterDefinition()))

	require.NoError(t, store.DeleteDatabase(ctx))

	_, err = store.Read(ctx, "a")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
	store.RegisterProcedure("writeTwo", writeTwo)
	_, err = store.ExecuteProcedure(ctx, "writeTwo", "a", "b", false)
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	created, err = store.CreateCollectionIfNotExists(ctx)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestLoadDefinitions(t *testing.T) {
	defs, err := docstore.LoadDefinitions(data.Procedures())
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "getRecentPhotosForCategories", defs[0].ID)
	assert.Equal(t, "transferGoldBetweenUsers", defs[1].ID)
	assert.Len(t, defs[1].Parameters, 7)
	assert.Contains(t, defs[1].Source, "transferGoldBetweenUsers")
}

func TestParseDefinitionRejectsBadTypes(t *testing.T) {
	_, err := docstore.ParseDefinition([]byte("id: x\nparameters:\n  - name: a\n    type: float\n"))
	assert.Error(t, err)

	_, err = docstore.ParseDefinition([]byte("description: no id\n"))
	assert.Error(t, err)
}
