// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
	"github.com/jmcarrillo/docuflow/gen/ent/documentmetadata"
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
	"github.com/jmcarrillo/docuflow/gen/ent/documentversion"
	"github.com/jmcarrillo/docuflow/gen/ent/predicate"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument         = "Document"
	TypeDocumentMetadata = "DocumentMetadata"
	TypeDocumentType     = "DocumentType"
	TypeDocumentVersion  = "DocumentVersion"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	title                 *string
	status                *string
	enabled               *bool
	suggested_score       *float64
	addsuggested_score    *float64
	extracted_text        *string
	is_ocr                *bool
	ocr_confidence        *float64
	addocr_confidence     *float64
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	document_type         *int
	cleareddocument_type  bool
	suggested_type        *int
	clearedsuggested_type bool
	versions              map[uuid.UUID]struct{}
	removedversions       map[uuid.UUID]struct{}
	clearedversions       bool
	metadata              *uuid.UUID
	clearedmetadata       bool
	done                  bool
	oldValue              func(context.Context) (*Document, error)
	predicates            []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
}

// SetTypeID sets the "type_id" field.
func (m *DocumentMutation) SetTypeID(i int) {
	m.document_type = &i
}

// TypeID returns the value of the "type_id" field in the mutation.
func (m *DocumentMutation) TypeID() (r int, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeID returns the old "type_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTypeID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeID: %w", err)
	}
	return oldValue.TypeID, nil
}

// ResetTypeID resets all changes to the "type_id" field.
func (m *DocumentMutation) ResetTypeID() {
	m.document_type = nil
}

// SetSuggestedTypeID sets the "suggested_type_id" field.
func (m *DocumentMutation) SetSuggestedTypeID(i int) {
	m.suggested_type = &i
}

// SuggestedTypeID returns the value of the "suggested_type_id" field in the mutation.
func (m *DocumentMutation) SuggestedTypeID() (r int, exists bool) {
	v := m.suggested_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedTypeID returns the old "suggested_type_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSuggestedTypeID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedTypeID: %w", err)
	}
	return oldValue.SuggestedTypeID, nil
}

// ClearSuggestedTypeID clears the value of the "suggested_type_id" field.
func (m *DocumentMutation) ClearSuggestedTypeID() {
	m.suggested_type = nil
	m.clearedFields[document.FieldSuggestedTypeID] = struct{}{}
}

// SuggestedTypeIDCleared returns if the "suggested_type_id" field was cleared in this mutation.
func (m *DocumentMutation) SuggestedTypeIDCleared() bool {
	_, ok := m.clearedFields[document.FieldSuggestedTypeID]
	return ok
}

// ResetSuggestedTypeID resets all changes to the "suggested_type_id" field.
func (m *DocumentMutation) ResetSuggestedTypeID() {
	m.suggested_type = nil
	delete(m.clearedFields, document.FieldSuggestedTypeID)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetEnabled sets the "enabled" field.
func (m *DocumentMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *DocumentMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *DocumentMutation) ResetEnabled() {
	m.enabled = nil
}

// SetSuggestedScore sets the "suggested_score" field.
func (m *DocumentMutation) SetSuggestedScore(f float64) {
	m.suggested_score = &f
	m.addsuggested_score = nil
}

// SuggestedScore returns the value of the "suggested_score" field in the mutation.
func (m *DocumentMutation) SuggestedScore() (r float64, exists bool) {
	v := m.suggested_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedScore returns the old "suggested_score" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSuggestedScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedScore: %w", err)
	}
	return oldValue.SuggestedScore, nil
}

// AddSuggestedScore adds f to the "suggested_score" field.
func (m *DocumentMutation) AddSuggestedScore(f float64) {
	if m.addsuggested_score != nil {
		*m.addsuggested_score += f
	} else {
		m.addsuggested_score = &f
	}
}

// AddedSuggestedScore returns the value that was added to the "suggested_score" field in this mutation.
func (m *DocumentMutation) AddedSuggestedScore() (r float64, exists bool) {
	v := m.addsuggested_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSuggestedScore clears the value of the "suggested_score" field.
func (m *DocumentMutation) ClearSuggestedScore() {
	m.suggested_score = nil
	m.addsuggested_score = nil
	m.clearedFields[document.FieldSuggestedScore] = struct{}{}
}

// SuggestedScoreCleared returns if the "suggested_score" field was cleared in this mutation.
func (m *DocumentMutation) SuggestedScoreCleared() bool {
	_, ok := m.clearedFields[document.FieldSuggestedScore]
	return ok
}

// ResetSuggestedScore resets all changes to the "suggested_score" field.
func (m *DocumentMutation) ResetSuggestedScore() {
	m.suggested_score = nil
	m.addsuggested_score = nil
	delete(m.clearedFields, document.FieldSuggestedScore)
}

// SetExtractedText sets the "extracted_text" field.
func (m *DocumentMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *DocumentMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *DocumentMutation) ResetExtractedText() {
	m.extracted_text = nil
}

// SetIsOcr sets the "is_ocr" field.
func (m *DocumentMutation) SetIsOcr(b bool) {
	m.is_ocr = &b
}

// IsOcr returns the value of the "is_ocr" field in the mutation.
func (m *DocumentMutation) IsOcr() (r bool, exists bool) {
	v := m.is_ocr
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOcr returns the old "is_ocr" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIsOcr(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOcr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOcr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOcr: %w", err)
	}
	return oldValue.IsOcr, nil
}

// ResetIsOcr resets all changes to the "is_ocr" field.
func (m *DocumentMutation) ResetIsOcr() {
	m.is_ocr = nil
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *DocumentMutation) SetOcrConfidence(f float64) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *DocumentMutation) OcrConfidence() (r float64, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *DocumentMutation) AddOcrConfidence(f float64) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *DocumentMutation) AddedOcrConfidence() (r float64, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *DocumentMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[document.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *DocumentMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *DocumentMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, document.FieldOcrConfidence)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDocumentTypeID sets the "document_type" edge to the DocumentType entity by id.
func (m *DocumentMutation) SetDocumentTypeID(id int) {
	m.document_type = &id
}

// ClearDocumentType clears the "document_type" edge to the DocumentType entity.
func (m *DocumentMutation) ClearDocumentType() {
	m.cleareddocument_type = true
	m.clearedFields[document.FieldTypeID] = struct{}{}
}

// DocumentTypeCleared reports if the "document_type" edge to the DocumentType entity was cleared.
func (m *DocumentMutation) DocumentTypeCleared() bool {
	return m.cleareddocument_type
}

// DocumentTypeID returns the "document_type" edge ID in the mutation.
func (m *DocumentMutation) DocumentTypeID() (id int, exists bool) {
	if m.document_type != nil {
		return *m.document_type, true
	}
	return
}

// DocumentTypeIDs returns the "document_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentTypeID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) DocumentTypeIDs() (ids []int) {
	if id := m.document_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocumentType resets all changes to the "document_type" edge.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
	m.cleareddocument_type = false
}

// ClearSuggestedType clears the "suggested_type" edge to the DocumentType entity.
func (m *DocumentMutation) ClearSuggestedType() {
	m.clearedsuggested_type = true
	m.clearedFields[document.FieldSuggestedTypeID] = struct{}{}
}

// SuggestedTypeCleared reports if the "suggested_type" edge to the DocumentType entity was cleared.
func (m *DocumentMutation) SuggestedTypeCleared() bool {
	return m.SuggestedTypeIDCleared() || m.clearedsuggested_type
}

// SuggestedTypeIDs returns the "suggested_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SuggestedTypeID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) SuggestedTypeIDs() (ids []int) {
	if id := m.suggested_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSuggestedType resets all changes to the "suggested_type" edge.
func (m *DocumentMutation) ResetSuggestedType() {
	m.suggested_type = nil
	m.clearedsuggested_type = false
}

// AddVersionIDs adds the "versions" edge to the DocumentVersion entity by ids.
func (m *DocumentMutation) AddVersionIDs(ids ...uuid.UUID) {
	if m.versions == nil {
		m.versions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the DocumentVersion entity.
func (m *DocumentMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the DocumentVersion entity was cleared.
func (m *DocumentMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the DocumentVersion entity by IDs.
func (m *DocumentMutation) RemoveVersionIDs(ids ...uuid.UUID) {
	if m.removedversions == nil {
		m.removedversions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the DocumentVersion entity.
func (m *DocumentMutation) RemovedVersionsIDs() (ids []uuid.UUID) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *DocumentMutation) VersionsIDs() (ids []uuid.UUID) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *DocumentMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// SetMetadataID sets the "metadata" edge to the DocumentMetadata entity by id.
func (m *DocumentMutation) SetMetadataID(id uuid.UUID) {
	m.metadata = &id
}

// ClearMetadata clears the "metadata" edge to the DocumentMetadata entity.
func (m *DocumentMutation) ClearMetadata() {
	m.clearedmetadata = true
}

// MetadataCleared reports if the "metadata" edge to the DocumentMetadata entity was cleared.
func (m *DocumentMutation) MetadataCleared() bool {
	return m.clearedmetadata
}

// MetadataID returns the "metadata" edge ID in the mutation.
func (m *DocumentMutation) MetadataID() (id uuid.UUID, exists bool) {
	if m.metadata != nil {
		return *m.metadata, true
	}
	return
}

// MetadataIDs returns the "metadata" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MetadataID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) MetadataIDs() (ids []uuid.UUID) {
	if id := m.metadata; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMetadata resets all changes to the "metadata" edge.
func (m *DocumentMutation) ResetMetadata() {
	m.metadata = nil
	m.clearedmetadata = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldTypeID)
	}
	if m.suggested_type != nil {
		fields = append(fields, document.FieldSuggestedTypeID)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.enabled != nil {
		fields = append(fields, document.FieldEnabled)
	}
	if m.suggested_score != nil {
		fields = append(fields, document.FieldSuggestedScore)
	}
	if m.extracted_text != nil {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.is_ocr != nil {
		fields = append(fields, document.FieldIsOcr)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, document.FieldOcrConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTitle:
		return m.Title()
	case document.FieldTypeID:
		return m.TypeID()
	case document.FieldSuggestedTypeID:
		return m.SuggestedTypeID()
	case document.FieldStatus:
		return m.Status()
	case document.FieldEnabled:
		return m.Enabled()
	case document.FieldSuggestedScore:
		return m.SuggestedScore()
	case document.FieldExtractedText:
		return m.ExtractedText()
	case document.FieldIsOcr:
		return m.IsOcr()
	case document.FieldOcrConfidence:
		return m.OcrConfidence()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldTypeID:
		return m.OldTypeID(ctx)
	case document.FieldSuggestedTypeID:
		return m.OldSuggestedTypeID(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldEnabled:
		return m.OldEnabled(ctx)
	case document.FieldSuggestedScore:
		return m.OldSuggestedScore(ctx)
	case document.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case document.FieldIsOcr:
		return m.OldIsOcr(ctx)
	case document.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeID(v)
		return nil
	case document.FieldSuggestedTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedTypeID(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case document.FieldSuggestedScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedScore(v)
		return nil
	case document.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case document.FieldIsOcr:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOcr(v)
		return nil
	case document.FieldOcrConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addsuggested_score != nil {
		fields = append(fields, document.FieldSuggestedScore)
	}
	if m.addocr_confidence != nil {
		fields = append(fields, document.FieldOcrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSuggestedScore:
		return m.AddedSuggestedScore()
	case document.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSuggestedScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuggestedScore(v)
		return nil
	case document.FieldOcrConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldSuggestedTypeID) {
		fields = append(fields, document.FieldSuggestedTypeID)
	}
	if m.FieldCleared(document.FieldSuggestedScore) {
		fields = append(fields, document.FieldSuggestedScore)
	}
	if m.FieldCleared(document.FieldOcrConfidence) {
		fields = append(fields, document.FieldOcrConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldSuggestedTypeID:
		m.ClearSuggestedTypeID()
		return nil
	case document.FieldSuggestedScore:
		m.ClearSuggestedScore()
		return nil
	case document.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldTypeID:
		m.ResetTypeID()
		return nil
	case document.FieldSuggestedTypeID:
		m.ResetSuggestedTypeID()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldEnabled:
		m.ResetEnabled()
		return nil
	case document.FieldSuggestedScore:
		m.ResetSuggestedScore()
		return nil
	case document.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case document.FieldIsOcr:
		m.ResetIsOcr()
		return nil
	case document.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.document_type != nil {
		edges = append(edges, document.EdgeDocumentType)
	}
	if m.suggested_type != nil {
		edges = append(edges, document.EdgeSuggestedType)
	}
	if m.versions != nil {
		edges = append(edges, document.EdgeVersions)
	}
	if m.metadata != nil {
		edges = append(edges, document.EdgeMetadata)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeDocumentType:
		if id := m.document_type; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeSuggestedType:
		if id := m.suggested_type; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeMetadata:
		if id := m.metadata; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedversions != nil {
		edges = append(edges, document.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareddocument_type {
		edges = append(edges, document.EdgeDocumentType)
	}
	if m.clearedsuggested_type {
		edges = append(edges, document.EdgeSuggestedType)
	}
	if m.clearedversions {
		edges = append(edges, document.EdgeVersions)
	}
	if m.clearedmetadata {
		edges = append(edges, document.EdgeMetadata)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeDocumentType:
		return m.cleareddocument_type
	case document.EdgeSuggestedType:
		return m.clearedsuggested_type
	case document.EdgeVersions:
		return m.clearedversions
	case document.EdgeMetadata:
		return m.clearedmetadata
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeDocumentType:
		m.ClearDocumentType()
		return nil
	case document.EdgeSuggestedType:
		m.ClearSuggestedType()
		return nil
	case document.EdgeMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeDocumentType:
		m.ResetDocumentType()
		return nil
	case document.EdgeSuggestedType:
		m.ResetSuggestedType()
		return nil
	case document.EdgeVersions:
		m.ResetVersions()
		return nil
	case document.EdgeMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentMetadataMutation represents an operation that mutates the DocumentMetadata nodes in the graph.
type DocumentMetadataMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	parties          *string
	date_main        *time.Time
	date_start       *time.Time
	date_end         *time.Time
	reference_number *string
	amount           *decimal.Decimal
	addamount        *decimal.Decimal
	notes            *string
	clearedFields    map[string]struct{}
	document         *uuid.UUID
	cleareddocument  bool
	done             bool
	oldValue         func(context.Context) (*DocumentMetadata, error)
	predicates       []predicate.DocumentMetadata
}

var _ ent.Mutation = (*DocumentMetadataMutation)(nil)

// documentmetadataOption allows management of the mutation configuration using functional options.
type documentmetadataOption func(*DocumentMetadataMutation)

// newDocumentMetadataMutation creates new mutation for the DocumentMetadata entity.
func newDocumentMetadataMutation(c config, op Op, opts ...documentmetadataOption) *DocumentMetadataMutation {
	m := &DocumentMetadataMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentMetadata,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentMetadataID sets the ID field of the mutation.
func withDocumentMetadataID(id uuid.UUID) documentmetadataOption {
	return func(m *DocumentMetadataMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentMetadata
		)
		m.oldValue = func(ctx context.Context) (*DocumentMetadata, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentMetadata.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentMetadata sets the old DocumentMetadata of the mutation.
func withDocumentMetadata(node *DocumentMetadata) documentmetadataOption {
	return func(m *DocumentMetadataMutation) {
		m.oldValue = func(context.Context) (*DocumentMetadata, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMetadataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMetadataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentMetadata entities.
func (m *DocumentMetadataMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMetadataMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMetadataMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentMetadata.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentMetadataMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentMetadataMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentMetadata entity.
// If the DocumentMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMetadataMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentMetadataMutation) ResetDocumentID() {
	m.document = nil
}

// SetParties sets the "parties" field.
func (m *DocumentMetadataMutation) SetParties(s string) {
	m.parties = &s
}

// Parties returns the value of the "parties" field in the mutation.
func (m *DocumentMetadataMutation) Parties() (r string, exists bool) {
	v := m.parties
	if v == nil {
		return
	}
	return *v, true
}

// OldParties returns the old "parties" field's value of the DocumentMetadata entity.
// If the DocumentMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMetadataMutation) OldParties(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParties: %w", err)
	}
	return oldValue.Parties, nil
}

// ResetParties resets all changes to the "parties" field.
func (m *DocumentMetadataMutation) ResetParties() {
	m.parties = nil
}

// SetDateMain sets the "date_main" field.
func (m *DocumentMetadataMutation) SetDateMain(t time.Time) {
	m.date_main = &t
}

// DateMain returns the value of the "date_main" field in the mutation.
func (m *DocumentMetadataMutation) DateMain() (r time.Time, exists bool) {
	v := m.date_main
	if v == nil {
		return
	}
	return *v, true
}

// OldDateMain returns the old "date_main" field's value of the DocumentMetadata entity.
// If the DocumentMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMetadataMutation) OldDateMain(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateMain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateMain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateMain: %w", err)
	}
	return oldValue.DateMain, nil
}

// ClearDateMain clears the value of the "date_main" field.
func (m *DocumentMetadataMutation) ClearDateMain() {
	m.date_main = nil
	m.clearedFields[documentmetadata.FieldDateMain] = struct{}{}
}

// DateMainCleared returns if the "date_main" field was cleared in this mutation.
func (m *DocumentMetadataMutation) DateMainCleared() bool {
	_, ok := m.clearedFields[documentmetadata.FieldDateMain]
	return ok
}

// ResetDateMain resets all changes to the "date_main" field.
func (m *DocumentMetadataMutation) ResetDateMain() {
	m.date_main = nil
	delete(m.clearedFields, documentmetadata.FieldDateMain)
}

// SetDateStart sets the "date_start" field.
func (m *DocumentMetadataMutation) SetDateStart(t time.Time) {
	m.date_start = &t
}

// DateStart returns the value of the "date_start" field in the mutation.
func (m *DocumentMetadataMutation) DateStart() (r time.Time, exists bool) {
	v := m.date_start
	if v == nil {
		return
	}
	return *v, true
}

// OldDateStart returns the old "date_start" field's value of the DocumentMetadata entity.
// If the DocumentMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMetadataMutation) OldDateStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateStart: %w", err)
	}
	return oldValue.DateStart, nil
}

// ClearDateStart clears the value of the "date_start" field.
func (m *DocumentMetadataMutation) ClearDateStart() {
	m.date_start = nil
	m.clearedFields[documentmetadata.FieldDateStart] = struct{}{}
}

// DateStartCleared returns if the "date_start" field was cleared in this mutation.
func (m *DocumentMetadataMutation) DateStartCleared() bool {
	_, ok := m.clearedFields[documentmetadata.FieldDateStart]
	return ok
}

// ResetDateStart resets all changes to the "date_start" field.
func (m *DocumentMetadataMutation) ResetDateStart() {
	m.date_start = nil
	delete(m.clearedFields, documentmetadata.FieldDateStart)
}

// SetDateEnd sets the "date_end" field.
func (m *DocumentMetadataMutation) SetDateEnd(t time.Time) {
	m.date_end = &t
}

// DateEnd returns the value of the "date_end" field in the mutation.
func (m *DocumentMetadataMutation) DateEnd() (r time.Time, exists bool) {
	v := m.date_end
	if v == nil {
		return
	}
	return *v, true
}

// OldDateEnd returns the old "date_end" field's value of the DocumentMetadata entity.
// If the DocumentMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMetadataMutation) OldDateEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateEnd: %w", err)
	}
	return oldValue.DateEnd, nil
}

// ClearDateEnd clears the value of the "date_end" field.
func (m *DocumentMetadataMutation) ClearDateEnd() {
	m.date_end = nil
	m.clearedFields[documentmetadata.FieldDateEnd] = struct{}{}
}

// DateEndCleared returns if the "date_end" field was cleared in this mutation.
func (m *DocumentMetadataMutation) DateEndCleared() bool {
	_, ok := m.clearedFields[documentmetadata.FieldDateEnd]
	return ok
}

// ResetDateEnd resets all changes to the "date_end" field.
func (m *DocumentMetadataMutation) ResetDateEnd() {
	m.date_end = nil
	delete(m.clearedFields, documentmetadata.FieldDateEnd)
}

// SetReferenceNumber sets the "reference_number" field.
func (m *DocumentMetadataMutation) SetReferenceNumber(s string) {
	m.reference_number = &s
}

// ReferenceNumber returns the value of the "reference_number" field in the mutation.
func (m *DocumentMetadataMutation) ReferenceNumber() (r string, exists bool) {
	v := m.reference_number
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceNumber returns the old "reference_number" field's value of the DocumentMetadata entity.
// If the DocumentMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMetadataMutation) OldReferenceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceNumber: %w", err)
	}
	return oldValue.ReferenceNumber, nil
}

// ResetReferenceNumber resets all changes to the "reference_number" field.
func (m *DocumentMetadataMutation) ResetReferenceNumber() {
	m.reference_number = nil
}

// SetAmount sets the "amount" field.
func (m *DocumentMetadataMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *DocumentMetadataMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the DocumentMetadata entity.
// If the DocumentMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMetadataMutation) OldAmount(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds d to the "amount" field.
func (m *DocumentMetadataMutation) AddAmount(d decimal.Decimal) {
	if m.addamount != nil {
		*m.addamount = m.addamount.Add(d)
	} else {
		m.addamount = &d
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *DocumentMetadataMutation) AddedAmount() (r decimal.Decimal, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *DocumentMetadataMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[documentmetadata.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *DocumentMetadataMutation) AmountCleared() bool {
	_, ok := m.clearedFields[documentmetadata.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *DocumentMetadataMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, documentmetadata.FieldAmount)
}

// SetNotes sets the "notes" field.
func (m *DocumentMetadataMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *DocumentMetadataMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the DocumentMetadata entity.
// If the DocumentMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMetadataMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ResetNotes resets all changes to the "notes" field.
func (m *DocumentMetadataMutation) ResetNotes() {
	m.notes = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentMetadataMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentmetadata.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentMetadataMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentMetadataMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentMetadataMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocumentMetadataMutation builder.
func (m *DocumentMetadataMutation) Where(ps ...predicate.DocumentMetadata) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMetadataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMetadataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentMetadata, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMetadataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMetadataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentMetadata).
func (m *DocumentMetadataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMetadataMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, documentmetadata.FieldDocumentID)
	}
	if m.parties != nil {
		fields = append(fields, documentmetadata.FieldParties)
	}
	if m.date_main != nil {
		fields = append(fields, documentmetadata.FieldDateMain)
	}
	if m.date_start != nil {
		fields = append(fields, documentmetadata.FieldDateStart)
	}
	if m.date_end != nil {
		fields = append(fields, documentmetadata.FieldDateEnd)
	}
	if m.reference_number != nil {
		fields = append(fields, documentmetadata.FieldReferenceNumber)
	}
	if m.amount != nil {
		fields = append(fields, documentmetadata.FieldAmount)
	}
	if m.notes != nil {
		fields = append(fields, documentmetadata.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMetadataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentmetadata.FieldDocumentID:
		return m.DocumentID()
	case documentmetadata.FieldParties:
		return m.Parties()
	case documentmetadata.FieldDateMain:
		return m.DateMain()
	case documentmetadata.FieldDateStart:
		return m.DateStart()
	case documentmetadata.FieldDateEnd:
		return m.DateEnd()
	case documentmetadata.FieldReferenceNumber:
		return m.ReferenceNumber()
	case documentmetadata.FieldAmount:
		return m.Amount()
	case documentmetadata.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMetadataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentmetadata.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentmetadata.FieldParties:
		return m.OldParties(ctx)
	case documentmetadata.FieldDateMain:
		return m.OldDateMain(ctx)
	case documentmetadata.FieldDateStart:
		return m.OldDateStart(ctx)
	case documentmetadata.FieldDateEnd:
		return m.OldDateEnd(ctx)
	case documentmetadata.FieldReferenceNumber:
		return m.OldReferenceNumber(ctx)
	case documentmetadata.FieldAmount:
		return m.OldAmount(ctx)
	case documentmetadata.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentMetadata field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMetadataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentmetadata.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentmetadata.FieldParties:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParties(v)
		return nil
	case documentmetadata.FieldDateMain:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateMain(v)
		return nil
	case documentmetadata.FieldDateStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateStart(v)
		return nil
	case documentmetadata.FieldDateEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateEnd(v)
		return nil
	case documentmetadata.FieldReferenceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceNumber(v)
		return nil
	case documentmetadata.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case documentmetadata.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentMetadata field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMetadataMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, documentmetadata.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMetadataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentmetadata.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMetadataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentmetadata.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentMetadata numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMetadataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentmetadata.FieldDateMain) {
		fields = append(fields, documentmetadata.FieldDateMain)
	}
	if m.FieldCleared(documentmetadata.FieldDateStart) {
		fields = append(fields, documentmetadata.FieldDateStart)
	}
	if m.FieldCleared(documentmetadata.FieldDateEnd) {
		fields = append(fields, documentmetadata.FieldDateEnd)
	}
	if m.FieldCleared(documentmetadata.FieldAmount) {
		fields = append(fields, documentmetadata.FieldAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMetadataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMetadataMutation) ClearField(name string) error {
	switch name {
	case documentmetadata.FieldDateMain:
		m.ClearDateMain()
		return nil
	case documentmetadata.FieldDateStart:
		m.ClearDateStart()
		return nil
	case documentmetadata.FieldDateEnd:
		m.ClearDateEnd()
		return nil
	case documentmetadata.FieldAmount:
		m.ClearAmount()
		return nil
	}
	return fmt.Errorf("unknown DocumentMetadata nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMetadataMutation) ResetField(name string) error {
	switch name {
	case documentmetadata.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentmetadata.FieldParties:
		m.ResetParties()
		return nil
	case documentmetadata.FieldDateMain:
		m.ResetDateMain()
		return nil
	case documentmetadata.FieldDateStart:
		m.ResetDateStart()
		return nil
	case documentmetadata.FieldDateEnd:
		m.ResetDateEnd()
		return nil
	case documentmetadata.FieldReferenceNumber:
		m.ResetReferenceNumber()
		return nil
	case documentmetadata.FieldAmount:
		m.ResetAmount()
		return nil
	case documentmetadata.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown DocumentMetadata field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMetadataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, documentmetadata.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMetadataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentmetadata.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMetadataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMetadataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMetadataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, documentmetadata.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMetadataMutation) EdgeCleared(name string) bool {
	switch name {
	case documentmetadata.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMetadataMutation) ClearEdge(name string) error {
	switch name {
	case documentmetadata.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentMetadata unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMetadataMutation) ResetEdge(name string) error {
	switch name {
	case documentmetadata.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentMetadata edge %s", name)
}

// DocumentTypeMutation represents an operation that mutates the DocumentType nodes in the graph.
type DocumentTypeMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	code                       *string
	name                       *string
	description                *string
	is_active                  *bool
	clearedFields              map[string]struct{}
	documents                  map[uuid.UUID]struct{}
	removeddocuments           map[uuid.UUID]struct{}
	cleareddocuments           bool
	suggested_documents        map[uuid.UUID]struct{}
	removedsuggested_documents map[uuid.UUID]struct{}
	clearedsuggested_documents bool
	done                       bool
	oldValue                   func(context.Context) (*DocumentType, error)
	predicates                 []predicate.DocumentType
}

var _ ent.Mutation = (*DocumentTypeMutation)(nil)

// documenttypeOption allows management of the mutation configuration using functional options.
type documenttypeOption func(*DocumentTypeMutation)

// newDocumentTypeMutation creates new mutation for the DocumentType entity.
func newDocumentTypeMutation(c config, op Op, opts ...documenttypeOption) *DocumentTypeMutation {
	m := &DocumentTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentTypeID sets the ID field of the mutation.
func withDocumentTypeID(id int) documenttypeOption {
	return func(m *DocumentTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentType
		)
		m.oldValue = func(ctx context.Context) (*DocumentType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentType sets the old DocumentType of the mutation.
func withDocumentType(node *DocumentType) documenttypeOption {
	return func(m *DocumentTypeMutation) {
		m.oldValue = func(context.Context) (*DocumentType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentTypeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentTypeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *DocumentTypeMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *DocumentTypeMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the DocumentType entity.
// If the DocumentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTypeMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *DocumentTypeMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *DocumentTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DocumentTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DocumentType entity.
// If the DocumentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DocumentTypeMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *DocumentTypeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DocumentTypeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the DocumentType entity.
// If the DocumentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTypeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *DocumentTypeMutation) ResetDescription() {
	m.description = nil
}

// SetIsActive sets the "is_active" field.
func (m *DocumentTypeMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *DocumentTypeMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the DocumentType entity.
// If the DocumentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTypeMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *DocumentTypeMutation) ResetIsActive() {
	m.is_active = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *DocumentTypeMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *DocumentTypeMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *DocumentTypeMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *DocumentTypeMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *DocumentTypeMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *DocumentTypeMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *DocumentTypeMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddSuggestedDocumentIDs adds the "suggested_documents" edge to the Document entity by ids.
func (m *DocumentTypeMutation) AddSuggestedDocumentIDs(ids ...uuid.UUID) {
	if m.suggested_documents == nil {
		m.suggested_documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.suggested_documents[ids[i]] = struct{}{}
	}
}

// ClearSuggestedDocuments clears the "suggested_documents" edge to the Document entity.
func (m *DocumentTypeMutation) ClearSuggestedDocuments() {
	m.clearedsuggested_documents = true
}

// SuggestedDocumentsCleared reports if the "suggested_documents" edge to the Document entity was cleared.
func (m *DocumentTypeMutation) SuggestedDocumentsCleared() bool {
	return m.clearedsuggested_documents
}

// RemoveSuggestedDocumentIDs removes the "suggested_documents" edge to the Document entity by IDs.
func (m *DocumentTypeMutation) RemoveSuggestedDocumentIDs(ids ...uuid.UUID) {
	if m.removedsuggested_documents == nil {
		m.removedsuggested_documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.suggested_documents, ids[i])
		m.removedsuggested_documents[ids[i]] = struct{}{}
	}
}

// RemovedSuggestedDocuments returns the removed IDs of the "suggested_documents" edge to the Document entity.
func (m *DocumentTypeMutation) RemovedSuggestedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removedsuggested_documents {
		ids = append(ids, id)
	}
	return
}

// SuggestedDocumentsIDs returns the "suggested_documents" edge IDs in the mutation.
func (m *DocumentTypeMutation) SuggestedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.suggested_documents {
		ids = append(ids, id)
	}
	return
}

// ResetSuggestedDocuments resets all changes to the "suggested_documents" edge.
func (m *DocumentTypeMutation) ResetSuggestedDocuments() {
	m.suggested_documents = nil
	m.clearedsuggested_documents = false
	m.removedsuggested_documents = nil
}

// Where appends a list predicates to the DocumentTypeMutation builder.
func (m *DocumentTypeMutation) Where(ps ...predicate.DocumentType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentType).
func (m *DocumentTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentTypeMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.code != nil {
		fields = append(fields, documenttype.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, documenttype.FieldName)
	}
	if m.description != nil {
		fields = append(fields, documenttype.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, documenttype.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documenttype.FieldCode:
		return m.Code()
	case documenttype.FieldName:
		return m.Name()
	case documenttype.FieldDescription:
		return m.Description()
	case documenttype.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documenttype.FieldCode:
		return m.OldCode(ctx)
	case documenttype.FieldName:
		return m.OldName(ctx)
	case documenttype.FieldDescription:
		return m.OldDescription(ctx)
	case documenttype.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documenttype.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case documenttype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case documenttype.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case documenttype.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentTypeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentTypeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentTypeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentTypeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentTypeMutation) ResetField(name string) error {
	switch name {
	case documenttype.FieldCode:
		m.ResetCode()
		return nil
	case documenttype.FieldName:
		m.ResetName()
		return nil
	case documenttype.FieldDescription:
		m.ResetDescription()
		return nil
	case documenttype.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown DocumentType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.documents != nil {
		edges = append(edges, documenttype.EdgeDocuments)
	}
	if m.suggested_documents != nil {
		edges = append(edges, documenttype.EdgeSuggestedDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentTypeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documenttype.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case documenttype.EdgeSuggestedDocuments:
		ids := make([]ent.Value, 0, len(m.suggested_documents))
		for id := range m.suggested_documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, documenttype.EdgeDocuments)
	}
	if m.removedsuggested_documents != nil {
		edges = append(edges, documenttype.EdgeSuggestedDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentTypeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documenttype.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case documenttype.EdgeSuggestedDocuments:
		ids := make([]ent.Value, 0, len(m.removedsuggested_documents))
		for id := range m.removedsuggested_documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocuments {
		edges = append(edges, documenttype.EdgeDocuments)
	}
	if m.clearedsuggested_documents {
		edges = append(edges, documenttype.EdgeSuggestedDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentTypeMutation) EdgeCleared(name string) bool {
	switch name {
	case documenttype.EdgeDocuments:
		return m.cleareddocuments
	case documenttype.EdgeSuggestedDocuments:
		return m.clearedsuggested_documents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentTypeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentTypeMutation) ResetEdge(name string) error {
	switch name {
	case documenttype.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case documenttype.EdgeSuggestedDocuments:
		m.ResetSuggestedDocuments()
		return nil
	}
	return fmt.Errorf("unknown DocumentType edge %s", name)
}

// DocumentVersionMutation represents an operation that mutates the DocumentVersion nodes in the graph.
type DocumentVersionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	version_number     *int
	addversion_number  *int
	file_path          *string
	file_name          *string
	mime_type          *string
	file_hash_sha256   *string
	file_size_bytes    *int64
	addfile_size_bytes *int64
	uploaded_at        *time.Time
	clearedFields      map[string]struct{}
	document           *uuid.UUID
	cleareddocument    bool
	done               bool
	oldValue           func(context.Context) (*DocumentVersion, error)
	predicates         []predicate.DocumentVersion
}

var _ ent.Mutation = (*DocumentVersionMutation)(nil)

// documentversionOption allows management of the mutation configuration using functional options.
type documentversionOption func(*DocumentVersionMutation)

// newDocumentVersionMutation creates new mutation for the DocumentVersion entity.
func newDocumentVersionMutation(c config, op Op, opts ...documentversionOption) *DocumentVersionMutation {
	m := &DocumentVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentVersionID sets the ID field of the mutation.
func withDocumentVersionID(id uuid.UUID) documentversionOption {
	return func(m *DocumentVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentVersion
		)
		m.oldValue = func(ctx context.Context) (*DocumentVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentVersion sets the old DocumentVersion of the mutation.
func withDocumentVersion(node *DocumentVersion) documentversionOption {
	return func(m *DocumentVersionMutation) {
		m.oldValue = func(context.Context) (*DocumentVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentVersion entities.
func (m *DocumentVersionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentVersionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentVersionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentVersionMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentVersionMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentVersionMutation) ResetDocumentID() {
	m.document = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *DocumentVersionMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *DocumentVersionMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *DocumentVersionMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *DocumentVersionMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *DocumentVersionMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetFilePath sets the "file_path" field.
func (m *DocumentVersionMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DocumentVersionMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DocumentVersionMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentVersionMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentVersionMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentVersionMutation) ResetFileName() {
	m.file_name = nil
}

// SetMimeType sets the "mime_type" field.
func (m *DocumentVersionMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *DocumentVersionMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *DocumentVersionMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetFileHashSha256 sets the "file_hash_sha256" field.
func (m *DocumentVersionMutation) SetFileHashSha256(s string) {
	m.file_hash_sha256 = &s
}

// FileHashSha256 returns the value of the "file_hash_sha256" field in the mutation.
func (m *DocumentVersionMutation) FileHashSha256() (r string, exists bool) {
	v := m.file_hash_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHashSha256 returns the old "file_hash_sha256" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldFileHashSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHashSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHashSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHashSha256: %w", err)
	}
	return oldValue.FileHashSha256, nil
}

// ResetFileHashSha256 resets all changes to the "file_hash_sha256" field.
func (m *DocumentVersionMutation) ResetFileHashSha256() {
	m.file_hash_sha256 = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *DocumentVersionMutation) SetFileSizeBytes(i int64) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *DocumentVersionMutation) FileSizeBytes() (r int64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldFileSizeBytes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *DocumentVersionMutation) AddFileSizeBytes(i int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *DocumentVersionMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (m *DocumentVersionMutation) ClearFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	m.clearedFields[documentversion.FieldFileSizeBytes] = struct{}{}
}

// FileSizeBytesCleared returns if the "file_size_bytes" field was cleared in this mutation.
func (m *DocumentVersionMutation) FileSizeBytesCleared() bool {
	_, ok := m.clearedFields[documentversion.FieldFileSizeBytes]
	return ok
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *DocumentVersionMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	delete(m.clearedFields, documentversion.FieldFileSizeBytes)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentVersionMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentVersionMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentVersionMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentVersionMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentversion.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentVersionMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentVersionMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentVersionMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocumentVersionMutation builder.
func (m *DocumentVersionMutation) Where(ps ...predicate.DocumentVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentVersion).
func (m *DocumentVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentVersionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, documentversion.FieldDocumentID)
	}
	if m.version_number != nil {
		fields = append(fields, documentversion.FieldVersionNumber)
	}
	if m.file_path != nil {
		fields = append(fields, documentversion.FieldFilePath)
	}
	if m.file_name != nil {
		fields = append(fields, documentversion.FieldFileName)
	}
	if m.mime_type != nil {
		fields = append(fields, documentversion.FieldMimeType)
	}
	if m.file_hash_sha256 != nil {
		fields = append(fields, documentversion.FieldFileHashSha256)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, documentversion.FieldFileSizeBytes)
	}
	if m.uploaded_at != nil {
		fields = append(fields, documentversion.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentversion.FieldDocumentID:
		return m.DocumentID()
	case documentversion.FieldVersionNumber:
		return m.VersionNumber()
	case documentversion.FieldFilePath:
		return m.FilePath()
	case documentversion.FieldFileName:
		return m.FileName()
	case documentversion.FieldMimeType:
		return m.MimeType()
	case documentversion.FieldFileHashSha256:
		return m.FileHashSha256()
	case documentversion.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case documentversion.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentversion.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentversion.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case documentversion.FieldFilePath:
		return m.OldFilePath(ctx)
	case documentversion.FieldFileName:
		return m.OldFileName(ctx)
	case documentversion.FieldMimeType:
		return m.OldMimeType(ctx)
	case documentversion.FieldFileHashSha256:
		return m.OldFileHashSha256(ctx)
	case documentversion.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case documentversion.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentversion.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case documentversion.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case documentversion.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case documentversion.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case documentversion.FieldFileHashSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHashSha256(v)
		return nil
	case documentversion.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case documentversion.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion_number != nil {
		fields = append(fields, documentversion.FieldVersionNumber)
	}
	if m.addfile_size_bytes != nil {
		fields = append(fields, documentversion.FieldFileSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentversion.FieldVersionNumber:
		return m.AddedVersionNumber()
	case documentversion.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	case documentversion.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentversion.FieldFileSizeBytes) {
		fields = append(fields, documentversion.FieldFileSizeBytes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentVersionMutation) ClearField(name string) error {
	switch name {
	case documentversion.FieldFileSizeBytes:
		m.ClearFileSizeBytes()
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentVersionMutation) ResetField(name string) error {
	switch name {
	case documentversion.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentversion.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case documentversion.FieldFilePath:
		m.ResetFilePath()
		return nil
	case documentversion.FieldFileName:
		m.ResetFileName()
		return nil
	case documentversion.FieldMimeType:
		m.ResetMimeType()
		return nil
	case documentversion.FieldFileHashSha256:
		m.ResetFileHashSha256()
		return nil
	case documentversion.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case documentversion.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, documentversion.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentversion.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, documentversion.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case documentversion.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentVersionMutation) ClearEdge(name string) error {
	switch name {
	case documentversion.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentVersionMutation) ResetEdge(name string) error {
	switch name {
	case documentversion.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion edge %s", name)
}
