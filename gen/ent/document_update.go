// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
	"github.com/jmcarrillo/docuflow/gen/ent/documentmetadata"
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
	"github.com/jmcarrillo/docuflow/gen/ent/documentversion"
	"github.com/jmcarrillo/docuflow/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTypeID sets the "type_id" field.
func (_u *DocumentUpdate) SetTypeID(v int) *DocumentUpdate {
	_u.mutation.SetTypeID(v)
	return _u
}

// SetNillableTypeID sets the "type_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTypeID(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetTypeID(*v)
	}
	return _u
}

// SetSuggestedTypeID sets the "suggested_type_id" field.
func (_u *DocumentUpdate) SetSuggestedTypeID(v int) *DocumentUpdate {
	_u.mutation.SetSuggestedTypeID(v)
	return _u
}

// SetNillableSuggestedTypeID sets the "suggested_type_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSuggestedTypeID(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetSuggestedTypeID(*v)
	}
	return _u
}

// ClearSuggestedTypeID clears the value of the "suggested_type_id" field.
func (_u *DocumentUpdate) ClearSuggestedTypeID() *DocumentUpdate {
	_u.mutation.ClearSuggestedTypeID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *DocumentUpdate) SetEnabled(v bool) *DocumentUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableEnabled(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetSuggestedScore sets the "suggested_score" field.
func (_u *DocumentUpdate) SetSuggestedScore(v float64) *DocumentUpdate {
	_u.mutation.ResetSuggestedScore()
	_u.mutation.SetSuggestedScore(v)
	return _u
}

// SetNillableSuggestedScore sets the "suggested_score" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSuggestedScore(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetSuggestedScore(*v)
	}
	return _u
}

// AddSuggestedScore adds value to the "suggested_score" field.
func (_u *DocumentUpdate) AddSuggestedScore(v float64) *DocumentUpdate {
	_u.mutation.AddSuggestedScore(v)
	return _u
}

// ClearSuggestedScore clears the value of the "suggested_score" field.
func (_u *DocumentUpdate) ClearSuggestedScore() *DocumentUpdate {
	_u.mutation.ClearSuggestedScore()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdate) SetExtractedText(v string) *DocumentUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetIsOcr sets the "is_ocr" field.
func (_u *DocumentUpdate) SetIsOcr(v bool) *DocumentUpdate {
	_u.mutation.SetIsOcr(v)
	return _u
}

// SetNillableIsOcr sets the "is_ocr" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIsOcr(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetIsOcr(*v)
	}
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *DocumentUpdate) SetOcrConfidence(v float64) *DocumentUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrConfidence(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *DocumentUpdate) AddOcrConfidence(v float64) *DocumentUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *DocumentUpdate) ClearOcrConfidence() *DocumentUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumentTypeID sets the "document_type" edge to the DocumentType entity by ID.
func (_u *DocumentUpdate) SetDocumentTypeID(id int) *DocumentUpdate {
	_u.mutation.SetDocumentTypeID(id)
	return _u
}

// SetDocumentType sets the "document_type" edge to the DocumentType entity.
func (_u *DocumentUpdate) SetDocumentType(v *DocumentType) *DocumentUpdate {
	return _u.SetDocumentTypeID(v.ID)
}

// SetSuggestedType sets the "suggested_type" edge to the DocumentType entity.
func (_u *DocumentUpdate) SetSuggestedType(v *DocumentType) *DocumentUpdate {
	return _u.SetSuggestedTypeID(v.ID)
}

// AddVersionIDs adds the "versions" edge to the DocumentVersion entity by IDs.
func (_u *DocumentUpdate) AddVersionIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the DocumentVersion entity.
func (_u *DocumentUpdate) AddVersions(v ...*DocumentVersion) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// SetMetadataID sets the "metadata" edge to the DocumentMetadata entity by ID.
func (_u *DocumentUpdate) SetMetadataID(id uuid.UUID) *DocumentUpdate {
	_u.mutation.SetMetadataID(id)
	return _u
}

// SetNillableMetadataID sets the "metadata" edge to the DocumentMetadata entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMetadataID(id *uuid.UUID) *DocumentUpdate {
	if id != nil {
		_u = _u.SetMetadataID(*id)
	}
	return _u
}

// SetMetadata sets the "metadata" edge to the DocumentMetadata entity.
func (_u *DocumentUpdate) SetMetadata(v *DocumentMetadata) *DocumentUpdate {
	return _u.SetMetadataID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearDocumentType clears the "document_type" edge to the DocumentType entity.
func (_u *DocumentUpdate) ClearDocumentType() *DocumentUpdate {
	_u.mutation.ClearDocumentType()
	return _u
}

// ClearSuggestedType clears the "suggested_type" edge to the DocumentType entity.
func (_u *DocumentUpdate) ClearSuggestedType() *DocumentUpdate {
	_u.mutation.ClearSuggestedType()
	return _u
}

// ClearVersions clears all "versions" edges to the DocumentVersion entity.
func (_u *DocumentUpdate) ClearVersions() *DocumentUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to DocumentVersion entities by IDs.
func (_u *DocumentUpdate) RemoveVersionIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to DocumentVersion entities.
func (_u *DocumentUpdate) RemoveVersions(v ...*DocumentVersion) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearMetadata clears the "metadata" edge to the DocumentMetadata entity.
func (_u *DocumentUpdate) ClearMetadata() *DocumentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentTypeCleared() && len(_u.mutation.DocumentTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.document_type"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(document.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuggestedScore(); ok {
		_spec.SetField(document.FieldSuggestedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuggestedScore(); ok {
		_spec.AddField(document.FieldSuggestedScore, field.TypeFloat64, value)
	}
	if _u.mutation.SuggestedScoreCleared() {
		_spec.ClearField(document.FieldSuggestedScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsOcr(); ok {
		_spec.SetField(document.FieldIsOcr, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(document.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(document.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(document.FieldOcrConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.DocumentTypeTable,
			Columns: []string{document.DocumentTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.DocumentTypeTable,
			Columns: []string{document.DocumentTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestedTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SuggestedTypeTable,
			Columns: []string{document.SuggestedTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestedTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SuggestedTypeTable,
			Columns: []string{document.SuggestedTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetadataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.MetadataTable,
			Columns: []string{document.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentmetadata.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetadataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.MetadataTable,
			Columns: []string{document.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentmetadata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTypeID sets the "type_id" field.
func (_u *DocumentUpdateOne) SetTypeID(v int) *DocumentUpdateOne {
	_u.mutation.SetTypeID(v)
	return _u
}

// SetNillableTypeID sets the "type_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTypeID(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetTypeID(*v)
	}
	return _u
}

// SetSuggestedTypeID sets the "suggested_type_id" field.
func (_u *DocumentUpdateOne) SetSuggestedTypeID(v int) *DocumentUpdateOne {
	_u.mutation.SetSuggestedTypeID(v)
	return _u
}

// SetNillableSuggestedTypeID sets the "suggested_type_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSuggestedTypeID(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetSuggestedTypeID(*v)
	}
	return _u
}

// ClearSuggestedTypeID clears the value of the "suggested_type_id" field.
func (_u *DocumentUpdateOne) ClearSuggestedTypeID() *DocumentUpdateOne {
	_u.mutation.ClearSuggestedTypeID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *DocumentUpdateOne) SetEnabled(v bool) *DocumentUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableEnabled(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetSuggestedScore sets the "suggested_score" field.
func (_u *DocumentUpdateOne) SetSuggestedScore(v float64) *DocumentUpdateOne {
	_u.mutation.ResetSuggestedScore()
	_u.mutation.SetSuggestedScore(v)
	return _u
}

// SetNillableSuggestedScore sets the "suggested_score" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSuggestedScore(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetSuggestedScore(*v)
	}
	return _u
}

// AddSuggestedScore adds value to the "suggested_score" field.
func (_u *DocumentUpdateOne) AddSuggestedScore(v float64) *DocumentUpdateOne {
	_u.mutation.AddSuggestedScore(v)
	return _u
}

// ClearSuggestedScore clears the value of the "suggested_score" field.
func (_u *DocumentUpdateOne) ClearSuggestedScore() *DocumentUpdateOne {
	_u.mutation.ClearSuggestedScore()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdateOne) SetExtractedText(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetIsOcr sets the "is_ocr" field.
func (_u *DocumentUpdateOne) SetIsOcr(v bool) *DocumentUpdateOne {
	_u.mutation.SetIsOcr(v)
	return _u
}

// SetNillableIsOcr sets the "is_ocr" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIsOcr(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetIsOcr(*v)
	}
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *DocumentUpdateOne) SetOcrConfidence(v float64) *DocumentUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrConfidence(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *DocumentUpdateOne) AddOcrConfidence(v float64) *DocumentUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *DocumentUpdateOne) ClearOcrConfidence() *DocumentUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumentTypeID sets the "document_type" edge to the DocumentType entity by ID.
func (_u *DocumentUpdateOne) SetDocumentTypeID(id int) *DocumentUpdateOne {
	_u.mutation.SetDocumentTypeID(id)
	return _u
}

// SetDocumentType sets the "document_type" edge to the DocumentType entity.
func (_u *DocumentUpdateOne) SetDocumentType(v *DocumentType) *DocumentUpdateOne {
	return _u.SetDocumentTypeID(v.ID)
}

// SetSuggestedType sets the "suggested_type" edge to the DocumentType entity.
func (_u *DocumentUpdateOne) SetSuggestedType(v *DocumentType) *DocumentUpdateOne {
	return _u.SetSuggestedTypeID(v.ID)
}

// AddVersionIDs adds the "versions" edge to the DocumentVersion entity by IDs.
func (_u *DocumentUpdateOne) AddVersionIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the DocumentVersion entity.
func (_u *DocumentUpdateOne) AddVersions(v ...*DocumentVersion) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// SetMetadataID sets the "metadata" edge to the DocumentMetadata entity by ID.
func (_u *DocumentUpdateOne) SetMetadataID(id uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetMetadataID(id)
	return _u
}

// SetNillableMetadataID sets the "metadata" edge to the DocumentMetadata entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMetadataID(id *uuid.UUID) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetMetadataID(*id)
	}
	return _u
}

// SetMetadata sets the "metadata" edge to the DocumentMetadata entity.
func (_u *DocumentUpdateOne) SetMetadata(v *DocumentMetadata) *DocumentUpdateOne {
	return _u.SetMetadataID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearDocumentType clears the "document_type" edge to the DocumentType entity.
func (_u *DocumentUpdateOne) ClearDocumentType() *DocumentUpdateOne {
	_u.mutation.ClearDocumentType()
	return _u
}

// ClearSuggestedType clears the "suggested_type" edge to the DocumentType entity.
func (_u *DocumentUpdateOne) ClearSuggestedType() *DocumentUpdateOne {
	_u.mutation.ClearSuggestedType()
	return _u
}

// ClearVersions clears all "versions" edges to the DocumentVersion entity.
func (_u *DocumentUpdateOne) ClearVersions() *DocumentUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to DocumentVersion entities by IDs.
func (_u *DocumentUpdateOne) RemoveVersionIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to DocumentVersion entities.
func (_u *DocumentUpdateOne) RemoveVersions(v ...*DocumentVersion) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearMetadata clears the "metadata" edge to the DocumentMetadata entity.
func (_u *DocumentUpdateOne) ClearMetadata() *DocumentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentTypeCleared() && len(_u.mutation.DocumentTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.document_type"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(document.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuggestedScore(); ok {
		_spec.SetField(document.FieldSuggestedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuggestedScore(); ok {
		_spec.AddField(document.FieldSuggestedScore, field.TypeFloat64, value)
	}
	if _u.mutation.SuggestedScoreCleared() {
		_spec.ClearField(document.FieldSuggestedScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsOcr(); ok {
		_spec.SetField(document.FieldIsOcr, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(document.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(document.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(document.FieldOcrConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.DocumentTypeTable,
			Columns: []string{document.DocumentTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.DocumentTypeTable,
			Columns: []string{document.DocumentTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestedTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SuggestedTypeTable,
			Columns: []string{document.SuggestedTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestedTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SuggestedTypeTable,
			Columns: []string{document.SuggestedTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetadataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.MetadataTable,
			Columns: []string{document.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentmetadata.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetadataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.MetadataTable,
			Columns: []string{document.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentmetadata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
