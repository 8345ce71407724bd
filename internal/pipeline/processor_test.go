package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcarrillo/docuflow/internal/audit"
	"github.com/jmcarrillo/docuflow/internal/classify"
	"github.com/jmcarrillo/docuflow/internal/common"
	"github.com/jmcarrillo/docuflow/internal/extract"
)

type fakeStore struct {
	doc        DocumentSnapshot
	getErr     error
	knownTypes map[string]bool

	saved     []RunResults
	saveErr   error
	saveCalls int
}

func (f *fakeStore) GetDocument(_ context.Context, id uuid.UUID) (DocumentSnapshot, error) {
	if f.getErr != nil {
		return DocumentSnapshot{}, f.getErr
	}
	return f.doc, nil
}

func (f *fakeStore) ResolveTypeCode(_ context.Context, code string) (bool, error) {
	return f.knownTypes[code], nil
}

func (f *fakeStore) SaveRunResults(_ context.Context, _ uuid.UUID, res RunResults) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, res)
	return nil
}

type fakeExtractor struct {
	res extract.ExtractionResult
	err error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (extract.ExtractionResult, error) {
	return f.res, f.err
}

type fakeRecorder struct {
	events []audit.Event
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, ev audit.Event) error {
	f.events = append(f.events, ev)
	return f.err
}

func testClassifier(t *testing.T) *classify.Classifier {
	t.Helper()
	rules, err := classify.LoadRules("")
	require.NoError(t, err)
	c, err := classify.New(rules)
	require.NoError(t, err)
	return c
}

const contractPDFText = `CONTRATO DE OBRA N° CT-2026/001
EL CONTRATANTE: Acme S.A.
EL CONTRATISTA: Construcciones del Sur Ltda.
CLÁUSULA PRIMERA - OBJETO: ejecutar la obra contratada.
CLÁUSULA SEGUNDA - PLAZO: vigencia desde 01/01/2026 y vigencia hasta 31/12/2026.
CLÁUSULA TERCERA - VALOR TOTAL: $10.000,00`

func newTestProcessor(store *fakeStore, ex extract.TextExtractor, rec audit.Recorder, t *testing.T) *Processor {
	return NewProcessor(store, ex, testClassifier(t), rec, nil)
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestProcessNoFileIsNoOp(t *testing.T) {
	store := &fakeStore{doc: DocumentSnapshot{ID: uuid.New(), HasFile: false}}
	rec := &fakeRecorder{}
	p := newTestProcessor(store, &fakeExtractor{}, rec, t)

	err := p.Process(context.Background(), store.doc.ID)
	require.NoError(t, err)
	assert.Zero(t, store.saveCalls)
	assert.Empty(t, rec.events)
}

func TestProcessMissingDocument(t *testing.T) {
	store := &fakeStore{getErr: common.WrapError(common.ErrNotFound, "get", errors.New("missing"))}
	p := newTestProcessor(store, &fakeExtractor{}, &fakeRecorder{}, t)

	err := p.Process(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Zero(t, store.saveCalls)
}

func TestProcessExtractionErrorAbortsWithoutWrites(t *testing.T) {
	store := &fakeStore{doc: DocumentSnapshot{ID: uuid.New(), FilePath: "/x.pdf", HasFile: true}}
	ex := &fakeExtractor{err: common.WrapError(common.ErrExtraction, "ocr", errors.New("boom"))}
	rec := &fakeRecorder{}
	p := newTestProcessor(store, ex, rec, t)

	err := p.Process(context.Background(), store.doc.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
	assert.Zero(t, store.saveCalls)
	assert.Empty(t, rec.events)
}

func TestProcessContractEndToEnd(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{
		doc:        DocumentSnapshot{ID: id, DeclaredType: "CONTRACT", FilePath: "/c.pdf", HasFile: true},
		knownTypes: map[string]bool{"CONTRACT": true, "PO": true, "CERT": true},
	}
	conf := 0.88
	ex := &fakeExtractor{res: extract.ExtractionResult{
		Text:          contractPDFText,
		UsedOCR:       true,
		OCRConfidence: &conf,
	}}
	rec := &fakeRecorder{}
	p := newTestProcessor(store, ex, rec, t)

	require.NoError(t, p.Process(context.Background(), id))
	require.Len(t, store.saved, 1)
	res := store.saved[0]

	assert.Equal(t, contractPDFText, res.Text)
	assert.True(t, res.UsedOCR)
	require.NotNil(t, res.OCRConfidence)
	assert.InDelta(t, 0.88, *res.OCRConfidence, 1e-9)

	assert.Equal(t, "CONTRACT", res.SuggestedType)
	assert.Greater(t, res.SuggestedScore, 0.5)

	assert.Equal(t, "CT-2026/001", res.ReferenceNumber)
	assert.Equal(t, "EL CONTRATANTE: Acme S.A. | EL CONTRATISTA: Construcciones del Sur Ltda.", res.Parties)
	require.NotNil(t, res.Amount)
	assert.True(t, res.Amount.Equal(decimalFromString(t, "10000.00")))
	require.NotNil(t, res.DateMain)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *res.DateMain)
	require.NotNil(t, res.DateStart)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *res.DateStart)
	require.NotNil(t, res.DateEnd)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), *res.DateEnd)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "OCR_EXTRACT", string(ev.Action))
	assert.Equal(t, id, ev.DocumentID)
	assert.Equal(t, "Extracción automática ejecutada", ev.Message)
	assert.Equal(t, true, ev.Metadata["used_ocr"])
	assert.Equal(t, "CONTRACT", ev.Metadata["suggested_type"])
}

func TestProcessUnknownSuggestionNotPersisted(t *testing.T) {
	id := uuid.New()
	// type table misses the classifier's suggestion
	store := &fakeStore{
		doc:        DocumentSnapshot{ID: id, DeclaredType: "CONTRACT", FilePath: "/c.pdf", HasFile: true},
		knownTypes: map[string]bool{},
	}
	ex := &fakeExtractor{res: extract.ExtractionResult{Text: contractPDFText}}
	p := newTestProcessor(store, ex, &fakeRecorder{}, t)

	require.NoError(t, p.Process(context.Background(), id))
	require.Len(t, store.saved, 1)
	assert.Empty(t, store.saved[0].SuggestedType)
	// the score is still recorded alongside the text
	assert.Greater(t, store.saved[0].SuggestedScore, 0.0)
}

func TestProcessUnknownSuggestionFallsBackToDeclaredType(t *testing.T) {
	id := uuid.New()
	// the classifier reads this as a contract, but no CONTRACT type record
	// exists; the declared PO type must steer the heuristics instead
	store := &fakeStore{
		doc:        DocumentSnapshot{ID: id, DeclaredType: "PO", FilePath: "/c.pdf", HasFile: true},
		knownTypes: map[string]bool{"PO": true},
	}
	text := contractPDFText + "\nOC: 4500123456"
	ex := &fakeExtractor{res: extract.ExtractionResult{Text: text}}
	p := newTestProcessor(store, ex, &fakeRecorder{}, t)

	require.NoError(t, p.Process(context.Background(), id))
	require.Len(t, store.saved, 1)
	res := store.saved[0]

	assert.Empty(t, res.SuggestedType)
	assert.Greater(t, res.SuggestedScore, 0.0)
	// purchase-order reference override, not the generic contract capture
	assert.Equal(t, "4500123456", res.ReferenceNumber)
	// the contract-only date override must not run
	assert.Nil(t, res.DateStart)
	assert.Nil(t, res.DateEnd)
	require.NotNil(t, res.DateMain)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *res.DateMain)
	require.NotNil(t, res.Amount)
	assert.True(t, res.Amount.Equal(decimalFromString(t, "10000.00")))
}

func TestProcessSaveErrorPropagatesWithoutAudit(t *testing.T) {
	store := &fakeStore{
		doc:     DocumentSnapshot{ID: uuid.New(), FilePath: "/c.pdf", HasFile: true},
		saveErr: errors.New("tx failed"),
	}
	ex := &fakeExtractor{res: extract.ExtractionResult{Text: "texto"}}
	rec := &fakeRecorder{}
	p := newTestProcessor(store, ex, rec, t)

	require.Error(t, p.Process(context.Background(), store.doc.ID))
	assert.Empty(t, rec.events)
}

func TestProcessAuditFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{doc: DocumentSnapshot{ID: uuid.New(), FilePath: "/c.pdf", HasFile: true}}
	ex := &fakeExtractor{res: extract.ExtractionResult{Text: "texto"}}
	rec := &fakeRecorder{err: errors.New("nats down")}
	p := newTestProcessor(store, ex, rec, t)

	assert.NoError(t, p.Process(context.Background(), store.doc.ID))
	assert.Len(t, store.saved, 1)
}

func TestProcessRerunProducesSameResults(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{
		doc:        DocumentSnapshot{ID: id, DeclaredType: "CONTRACT", FilePath: "/c.pdf", HasFile: true},
		knownTypes: map[string]bool{"CONTRACT": true},
	}
	ex := &fakeExtractor{res: extract.ExtractionResult{Text: contractPDFText}}
	p := newTestProcessor(store, ex, &fakeRecorder{}, t)

	require.NoError(t, p.Process(context.Background(), id))
	require.NoError(t, p.Process(context.Background(), id))
	require.Len(t, store.saved, 2)
	assert.Equal(t, store.saved[0], store.saved[1])
}
