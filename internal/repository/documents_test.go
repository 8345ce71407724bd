package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcarrillo/docuflow/gen/ent"
	"github.com/jmcarrillo/docuflow/gen/ent/documentmetadata"
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
	"github.com/jmcarrillo/docuflow/internal/pipeline"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func createContractDocument(t *testing.T, client *ent.Client) *ent.Document {
	t.Helper()
	ctx := context.Background()
	dt, err := client.DocumentType.Create().
		SetCode("CONTRACT").
		SetName("Contrato").
		Save(ctx)
	require.NoError(t, err)
	doc, err := client.Document.Create().
		SetTitle("contrato de obra").
		SetTypeID(dt.ID).
		Save(ctx)
	require.NoError(t, err)
	return doc
}

func metadataRow(t *testing.T, client *ent.Client, doc *ent.Document) *ent.DocumentMetadata {
	t.Helper()
	md, err := client.DocumentMetadata.Query().
		Where(documentmetadata.DocumentIDEQ(doc.ID)).
		Only(context.Background())
	require.NoError(t, err)
	return md
}

func TestSaveRunResultsKeepsFirstMainDate(t *testing.T) {
	client := newTestClient(t)
	store := NewDocumentStore(client, nil)
	doc := createContractDocument(t, client)
	ctx := context.Background()

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveRunResults(ctx, doc.ID, pipeline.RunResults{
		Text:           "texto",
		SuggestedType:  "CONTRACT",
		SuggestedScore: 0.8,
		DateMain:       &first,
		DateStart:      &first,
	}))

	md := metadataRow(t, client, doc)
	require.NotNil(t, md.DateMain)
	assert.True(t, md.DateMain.Equal(first))

	// a rerun extracting a different main date must not displace the first
	second := time.Date(2027, 6, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveRunResults(ctx, doc.ID, pipeline.RunResults{
		Text:      "texto nuevo",
		DateMain:  &second,
		DateStart: &second,
	}))

	md = metadataRow(t, client, doc)
	require.NotNil(t, md.DateMain)
	assert.True(t, md.DateMain.Equal(first))
	// date_start is overwritten unconditionally
	require.NotNil(t, md.DateStart)
	assert.True(t, md.DateStart.Equal(second))

	// a rerun with no date at all must not clear it either
	require.NoError(t, store.SaveRunResults(ctx, doc.ID, pipeline.RunResults{Text: "sin fechas"}))
	md = metadataRow(t, client, doc)
	require.NotNil(t, md.DateMain)
	assert.True(t, md.DateMain.Equal(first))
}

func TestSaveRunResultsSetsMainDateWhenPreviouslyUnset(t *testing.T) {
	client := newTestClient(t)
	store := NewDocumentStore(client, nil)
	doc := createContractDocument(t, client)
	ctx := context.Background()

	require.NoError(t, store.SaveRunResults(ctx, doc.ID, pipeline.RunResults{Text: "sin fechas"}))
	md := metadataRow(t, client, doc)
	assert.Nil(t, md.DateMain)

	later := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveRunResults(ctx, doc.ID, pipeline.RunResults{
		Text:     "con fecha",
		DateMain: &later,
	}))
	md = metadataRow(t, client, doc)
	require.NotNil(t, md.DateMain)
	assert.True(t, md.DateMain.Equal(later))
}

func TestSaveRunResultsRoundTripsExactAmount(t *testing.T) {
	client := newTestClient(t)
	store := NewDocumentStore(client, nil)
	doc := createContractDocument(t, client)
	ctx := context.Background()

	amount := decimal.RequireFromString("12345678901234.67")
	require.NoError(t, store.SaveRunResults(ctx, doc.ID, pipeline.RunResults{
		Text:   "texto",
		Amount: &amount,
	}))

	md := metadataRow(t, client, doc)
	require.NotNil(t, md.Amount)
	assert.True(t, md.Amount.Equal(amount), "got %s", md.Amount)

	require.NoError(t, store.SaveRunResults(ctx, doc.ID, pipeline.RunResults{Text: "sin monto"}))
	md = metadataRow(t, client, doc)
	assert.Nil(t, md.Amount)
}

func TestSeedDocumentTypesIdempotent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, SeedDocumentTypes(ctx, client))
	require.NoError(t, SeedDocumentTypes(ctx, client))

	n, err := client.DocumentType.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	for _, code := range []string{"CONTRACT", "PO", "CERT"} {
		ok, err := client.DocumentType.Query().
			Where(documenttype.CodeEQ(code)).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, ok, code)
	}
}
