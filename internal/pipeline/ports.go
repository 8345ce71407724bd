package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentSnapshot is the orchestrator's read view of a document: its declared
// type and the latest version's file path, if any.
type DocumentSnapshot struct {
	ID           uuid.UUID
	DeclaredType string // declared type code, "" when the document has none
	FilePath     string
	HasFile      bool
}

// RunResults is everything one pipeline run writes back. The write-back is a
// single atomic transaction scoped to the document.
type RunResults struct {
	Text          string
	UsedOCR       bool
	OCRConfidence *float64

	SuggestedType  string // resolved type code, "" when no type record matched
	SuggestedScore float64

	ReferenceNumber string
	Amount          *decimal.Decimal
	Parties         string
	// DateMain is a candidate only: the store sets it just when the persisted
	// field is currently unset (first extracted date wins once).
	DateMain  *time.Time
	DateStart *time.Time
	DateEnd   *time.Time
}

// Store is the pipeline's boundary with persistence.
type Store interface {
	// GetDocument returns a snapshot or common.ErrNotFound.
	GetDocument(ctx context.Context, id uuid.UUID) (DocumentSnapshot, error)
	// ResolveTypeCode reports whether a type record exists for code.
	ResolveTypeCode(ctx context.Context, code string) (bool, error)
	// SaveRunResults persists a run atomically.
	SaveRunResults(ctx context.Context, id uuid.UUID, res RunResults) error
}
