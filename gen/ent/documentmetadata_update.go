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
	"github.com/jmcarrillo/docuflow/gen/ent/predicate"
	"github.com/shopspring/decimal"
)

// DocumentMetadataUpdate is the builder for updating DocumentMetadata entities.
type DocumentMetadataUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMetadataMutation
}

// Where appends a list predicates to the DocumentMetadataUpdate builder.
func (_u *DocumentMetadataUpdate) Where(ps ...predicate.DocumentMetadata) *DocumentMetadataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentMetadataUpdate) SetDocumentID(v uuid.UUID) *DocumentMetadataUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentMetadataUpdate) SetNillableDocumentID(v *uuid.UUID) *DocumentMetadataUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetParties sets the "parties" field.
func (_u *DocumentMetadataUpdate) SetParties(v string) *DocumentMetadataUpdate {
	_u.mutation.SetParties(v)
	return _u
}

// SetNillableParties sets the "parties" field if the given value is not nil.
func (_u *DocumentMetadataUpdate) SetNillableParties(v *string) *DocumentMetadataUpdate {
	if v != nil {
		_u.SetParties(*v)
	}
	return _u
}

// SetDateMain sets the "date_main" field.
func (_u *DocumentMetadataUpdate) SetDateMain(v time.Time) *DocumentMetadataUpdate {
	_u.mutation.SetDateMain(v)
	return _u
}

// SetNillableDateMain sets the "date_main" field if the given value is not nil.
func (_u *DocumentMetadataUpdate) SetNillableDateMain(v *time.Time) *DocumentMetadataUpdate {
	if v != nil {
		_u.SetDateMain(*v)
	}
	return _u
}

// ClearDateMain clears the value of the "date_main" field.
func (_u *DocumentMetadataUpdate) ClearDateMain() *DocumentMetadataUpdate {
	_u.mutation.ClearDateMain()
	return _u
}

// SetDateStart sets the "date_start" field.
func (_u *DocumentMetadataUpdate) SetDateStart(v time.Time) *DocumentMetadataUpdate {
	_u.mutation.SetDateStart(v)
	return _u
}

// SetNillableDateStart sets the "date_start" field if the given value is not nil.
func (_u *DocumentMetadataUpdate) SetNillableDateStart(v *time.Time) *DocumentMetadataUpdate {
	if v != nil {
		_u.SetDateStart(*v)
	}
	return _u
}

// ClearDateStart clears the value of the "date_start" field.
func (_u *DocumentMetadataUpdate) ClearDateStart() *DocumentMetadataUpdate {
	_u.mutation.ClearDateStart()
	return _u
}

// SetDateEnd sets the "date_end" field.
func (_u *DocumentMetadataUpdate) SetDateEnd(v time.Time) *DocumentMetadataUpdate {
	_u.mutation.SetDateEnd(v)
	return _u
}

// SetNillableDateEnd sets the "date_end" field if the given value is not nil.
func (_u *DocumentMetadataUpdate) SetNillableDateEnd(v *time.Time) *DocumentMetadataUpdate {
	if v != nil {
		_u.SetDateEnd(*v)
	}
	return _u
}

// ClearDateEnd clears the value of the "date_end" field.
func (_u *DocumentMetadataUpdate) ClearDateEnd() *DocumentMetadataUpdate {
	_u.mutation.ClearDateEnd()
	return _u
}

// SetReferenceNumber sets the "reference_number" field.
func (_u *DocumentMetadataUpdate) SetReferenceNumber(v string) *DocumentMetadataUpdate {
	_u.mutation.SetReferenceNumber(v)
	return _u
}

// SetNillableReferenceNumber sets the "reference_number" field if the given value is not nil.
func (_u *DocumentMetadataUpdate) SetNillableReferenceNumber(v *string) *DocumentMetadataUpdate {
	if v != nil {
		_u.SetReferenceNumber(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DocumentMetadataUpdate) SetAmount(v decimal.Decimal) *DocumentMetadataUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DocumentMetadataUpdate) SetNillableAmount(v *decimal.Decimal) *DocumentMetadataUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DocumentMetadataUpdate) AddAmount(v decimal.Decimal) *DocumentMetadataUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *DocumentMetadataUpdate) ClearAmount() *DocumentMetadataUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DocumentMetadataUpdate) SetNotes(v string) *DocumentMetadataUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DocumentMetadataUpdate) SetNillableNotes(v *string) *DocumentMetadataUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentMetadataUpdate) SetDocument(v *Document) *DocumentMetadataUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentMetadataMutation object of the builder.
func (_u *DocumentMetadataUpdate) Mutation() *DocumentMetadataMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentMetadataUpdate) ClearDocument() *DocumentMetadataUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentMetadataUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentMetadataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentMetadataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentMetadataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentMetadataUpdate) check() error {
	if v, ok := _u.mutation.ReferenceNumber(); ok {
		if err := documentmetadata.ReferenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "reference_number", err: fmt.Errorf(`ent: validator failed for field "DocumentMetadata.reference_number": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentMetadata.document"`)
	}
	return nil
}

func (_u *DocumentMetadataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentmetadata.Table, documentmetadata.Columns, sqlgraph.NewFieldSpec(documentmetadata.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Parties(); ok {
		_spec.SetField(documentmetadata.FieldParties, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateMain(); ok {
		_spec.SetField(documentmetadata.FieldDateMain, field.TypeTime, value)
	}
	if _u.mutation.DateMainCleared() {
		_spec.ClearField(documentmetadata.FieldDateMain, field.TypeTime)
	}
	if value, ok := _u.mutation.DateStart(); ok {
		_spec.SetField(documentmetadata.FieldDateStart, field.TypeTime, value)
	}
	if _u.mutation.DateStartCleared() {
		_spec.ClearField(documentmetadata.FieldDateStart, field.TypeTime)
	}
	if value, ok := _u.mutation.DateEnd(); ok {
		_spec.SetField(documentmetadata.FieldDateEnd, field.TypeTime, value)
	}
	if _u.mutation.DateEndCleared() {
		_spec.ClearField(documentmetadata.FieldDateEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.ReferenceNumber(); ok {
		_spec.SetField(documentmetadata.FieldReferenceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(documentmetadata.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(documentmetadata.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(documentmetadata.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(documentmetadata.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   documentmetadata.DocumentTable,
			Columns: []string{documentmetadata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   documentmetadata.DocumentTable,
			Columns: []string{documentmetadata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentmetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentMetadataUpdateOne is the builder for updating a single DocumentMetadata entity.
type DocumentMetadataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMetadataMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentMetadataUpdateOne) SetDocumentID(v uuid.UUID) *DocumentMetadataUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentMetadataUpdateOne) SetNillableDocumentID(v *uuid.UUID) *DocumentMetadataUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetParties sets the "parties" field.
func (_u *DocumentMetadataUpdateOne) SetParties(v string) *DocumentMetadataUpdateOne {
	_u.mutation.SetParties(v)
	return _u
}

// SetNillableParties sets the "parties" field if the given value is not nil.
func (_u *DocumentMetadataUpdateOne) SetNillableParties(v *string) *DocumentMetadataUpdateOne {
	if v != nil {
		_u.SetParties(*v)
	}
	return _u
}

// SetDateMain sets the "date_main" field.
func (_u *DocumentMetadataUpdateOne) SetDateMain(v time.Time) *DocumentMetadataUpdateOne {
	_u.mutation.SetDateMain(v)
	return _u
}

// SetNillableDateMain sets the "date_main" field if the given value is not nil.
func (_u *DocumentMetadataUpdateOne) SetNillableDateMain(v *time.Time) *DocumentMetadataUpdateOne {
	if v != nil {
		_u.SetDateMain(*v)
	}
	return _u
}

// ClearDateMain clears the value of the "date_main" field.
func (_u *DocumentMetadataUpdateOne) ClearDateMain() *DocumentMetadataUpdateOne {
	_u.mutation.ClearDateMain()
	return _u
}

// SetDateStart sets the "date_start" field.
func (_u *DocumentMetadataUpdateOne) SetDateStart(v time.Time) *DocumentMetadataUpdateOne {
	_u.mutation.SetDateStart(v)
	return _u
}

// SetNillableDateStart sets the "date_start" field if the given value is not nil.
func (_u *DocumentMetadataUpdateOne) SetNillableDateStart(v *time.Time) *DocumentMetadataUpdateOne {
	if v != nil {
		_u.SetDateStart(*v)
	}
	return _u
}

// ClearDateStart clears the value of the "date_start" field.
func (_u *DocumentMetadataUpdateOne) ClearDateStart() *DocumentMetadataUpdateOne {
	_u.mutation.ClearDateStart()
	return _u
}

// SetDateEnd sets the "date_end" field.
func (_u *DocumentMetadataUpdateOne) SetDateEnd(v time.Time) *DocumentMetadataUpdateOne {
	_u.mutation.SetDateEnd(v)
	return _u
}

// SetNillableDateEnd sets the "date_end" field if the given value is not nil.
func (_u *DocumentMetadataUpdateOne) SetNillableDateEnd(v *time.Time) *DocumentMetadataUpdateOne {
	if v != nil {
		_u.SetDateEnd(*v)
	}
	return _u
}

// ClearDateEnd clears the value of the "date_end" field.
func (_u *DocumentMetadataUpdateOne) ClearDateEnd() *DocumentMetadataUpdateOne {
	_u.mutation.ClearDateEnd()
	return _u
}

// SetReferenceNumber sets the "reference_number" field.
func (_u *DocumentMetadataUpdateOne) SetReferenceNumber(v string) *DocumentMetadataUpdateOne {
	_u.mutation.SetReferenceNumber(v)
	return _u
}

// SetNillableReferenceNumber sets the "reference_number" field if the given value is not nil.
func (_u *DocumentMetadataUpdateOne) SetNillableReferenceNumber(v *string) *DocumentMetadataUpdateOne {
	if v != nil {
		_u.SetReferenceNumber(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DocumentMetadataUpdateOne) SetAmount(v decimal.Decimal) *DocumentMetadataUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DocumentMetadataUpdateOne) SetNillableAmount(v *decimal.Decimal) *DocumentMetadataUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DocumentMetadataUpdateOne) AddAmount(v decimal.Decimal) *DocumentMetadataUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *DocumentMetadataUpdateOne) ClearAmount() *DocumentMetadataUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DocumentMetadataUpdateOne) SetNotes(v string) *DocumentMetadataUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DocumentMetadataUpdateOne) SetNillableNotes(v *string) *DocumentMetadataUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentMetadataUpdateOne) SetDocument(v *Document) *DocumentMetadataUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentMetadataMutation object of the builder.
func (_u *DocumentMetadataUpdateOne) Mutation() *DocumentMetadataMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentMetadataUpdateOne) ClearDocument() *DocumentMetadataUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocumentMetadataUpdate builder.
func (_u *DocumentMetadataUpdateOne) Where(ps ...predicate.DocumentMetadata) *DocumentMetadataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentMetadataUpdateOne) Select(field string, fields ...string) *DocumentMetadataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentMetadata entity.
func (_u *DocumentMetadataUpdateOne) Save(ctx context.Context) (*DocumentMetadata, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentMetadataUpdateOne) SaveX(ctx context.Context) *DocumentMetadata {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentMetadataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentMetadataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentMetadataUpdateOne) check() error {
	if v, ok := _u.mutation.ReferenceNumber(); ok {
		if err := documentmetadata.ReferenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "reference_number", err: fmt.Errorf(`ent: validator failed for field "DocumentMetadata.reference_number": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentMetadata.document"`)
	}
	return nil
}

func (_u *DocumentMetadataUpdateOne) sqlSave(ctx context.Context) (_node *DocumentMetadata, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentmetadata.Table, documentmetadata.Columns, sqlgraph.NewFieldSpec(documentmetadata.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentMetadata.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentmetadata.FieldID)
		for _, f := range fields {
			if !documentmetadata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentmetadata.FieldID {
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
	if value, ok := _u.mutation.Parties(); ok {
		_spec.SetField(documentmetadata.FieldParties, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateMain(); ok {
		_spec.SetField(documentmetadata.FieldDateMain, field.TypeTime, value)
	}
	if _u.mutation.DateMainCleared() {
		_spec.ClearField(documentmetadata.FieldDateMain, field.TypeTime)
	}
	if value, ok := _u.mutation.DateStart(); ok {
		_spec.SetField(documentmetadata.FieldDateStart, field.TypeTime, value)
	}
	if _u.mutation.DateStartCleared() {
		_spec.ClearField(documentmetadata.FieldDateStart, field.TypeTime)
	}
	if value, ok := _u.mutation.DateEnd(); ok {
		_spec.SetField(documentmetadata.FieldDateEnd, field.TypeTime, value)
	}
	if _u.mutation.DateEndCleared() {
		_spec.ClearField(documentmetadata.FieldDateEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.ReferenceNumber(); ok {
		_spec.SetField(documentmetadata.FieldReferenceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(documentmetadata.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(documentmetadata.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(documentmetadata.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(documentmetadata.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   documentmetadata.DocumentTable,
			Columns: []string{documentmetadata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   documentmetadata.DocumentTable,
			Columns: []string{documentmetadata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentMetadata{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentmetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
