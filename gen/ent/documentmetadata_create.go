// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
	"github.com/jmcarrillo/docuflow/gen/ent/documentmetadata"
	"github.com/shopspring/decimal"
)

// DocumentMetadataCreate is the builder for creating a DocumentMetadata entity.
type DocumentMetadataCreate struct {
	config
	mutation *DocumentMetadataMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentMetadataCreate) SetDocumentID(v uuid.UUID) *DocumentMetadataCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetParties sets the "parties" field.
func (_c *DocumentMetadataCreate) SetParties(v string) *DocumentMetadataCreate {
	_c.mutation.SetParties(v)
	return _c
}

// SetNillableParties sets the "parties" field if the given value is not nil.
func (_c *DocumentMetadataCreate) SetNillableParties(v *string) *DocumentMetadataCreate {
	if v != nil {
		_c.SetParties(*v)
	}
	return _c
}

// SetDateMain sets the "date_main" field.
func (_c *DocumentMetadataCreate) SetDateMain(v time.Time) *DocumentMetadataCreate {
	_c.mutation.SetDateMain(v)
	return _c
}

// SetNillableDateMain sets the "date_main" field if the given value is not nil.
func (_c *DocumentMetadataCreate) SetNillableDateMain(v *time.Time) *DocumentMetadataCreate {
	if v != nil {
		_c.SetDateMain(*v)
	}
	return _c
}

// SetDateStart sets the "date_start" field.
func (_c *DocumentMetadataCreate) SetDateStart(v time.Time) *DocumentMetadataCreate {
	_c.mutation.SetDateStart(v)
	return _c
}

// SetNillableDateStart sets the "date_start" field if the given value is not nil.
func (_c *DocumentMetadataCreate) SetNillableDateStart(v *time.Time) *DocumentMetadataCreate {
	if v != nil {
		_c.SetDateStart(*v)
	}
	return _c
}

// SetDateEnd sets the "date_end" field.
func (_c *DocumentMetadataCreate) SetDateEnd(v time.Time) *DocumentMetadataCreate {
	_c.mutation.SetDateEnd(v)
	return _c
}

// SetNillableDateEnd sets the "date_end" field if the given value is not nil.
func (_c *DocumentMetadataCreate) SetNillableDateEnd(v *time.Time) *DocumentMetadataCreate {
	if v != nil {
		_c.SetDateEnd(*v)
	}
	return _c
}

// SetReferenceNumber sets the "reference_number" field.
func (_c *DocumentMetadataCreate) SetReferenceNumber(v string) *DocumentMetadataCreate {
	_c.mutation.SetReferenceNumber(v)
	return _c
}

// SetNillableReferenceNumber sets the "reference_number" field if the given value is not nil.
func (_c *DocumentMetadataCreate) SetNillableReferenceNumber(v *string) *DocumentMetadataCreate {
	if v != nil {
		_c.SetReferenceNumber(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *DocumentMetadataCreate) SetAmount(v decimal.Decimal) *DocumentMetadataCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *DocumentMetadataCreate) SetNillableAmount(v *decimal.Decimal) *DocumentMetadataCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *DocumentMetadataCreate) SetNotes(v string) *DocumentMetadataCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *DocumentMetadataCreate) SetNillableNotes(v *string) *DocumentMetadataCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentMetadataCreate) SetID(v uuid.UUID) *DocumentMetadataCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentMetadataCreate) SetNillableID(v *uuid.UUID) *DocumentMetadataCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentMetadataCreate) SetDocument(v *Document) *DocumentMetadataCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocumentMetadataMutation object of the builder.
func (_c *DocumentMetadataCreate) Mutation() *DocumentMetadataMutation {
	return _c.mutation
}

// Save creates the DocumentMetadata in the database.
func (_c *DocumentMetadataCreate) Save(ctx context.Context) (*DocumentMetadata, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentMetadataCreate) SaveX(ctx context.Context) *DocumentMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentMetadataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentMetadataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentMetadataCreate) defaults() {
	if _, ok := _c.mutation.Parties(); !ok {
		v := documentmetadata.DefaultParties
		_c.mutation.SetParties(v)
	}
	if _, ok := _c.mutation.ReferenceNumber(); !ok {
		v := documentmetadata.DefaultReferenceNumber
		_c.mutation.SetReferenceNumber(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := documentmetadata.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentmetadata.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentMetadataCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentMetadata.document_id"`)}
	}
	if _, ok := _c.mutation.Parties(); !ok {
		return &ValidationError{Name: "parties", err: errors.New(`ent: missing required field "DocumentMetadata.parties"`)}
	}
	if _, ok := _c.mutation.ReferenceNumber(); !ok {
		return &ValidationError{Name: "reference_number", err: errors.New(`ent: missing required field "DocumentMetadata.reference_number"`)}
	}
	if v, ok := _c.mutation.ReferenceNumber(); ok {
		if err := documentmetadata.ReferenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "reference_number", err: fmt.Errorf(`ent: validator failed for field "DocumentMetadata.reference_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "DocumentMetadata.notes"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentMetadata.document"`)}
	}
	return nil
}

func (_c *DocumentMetadataCreate) sqlSave(ctx context.Context) (*DocumentMetadata, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentMetadataCreate) createSpec() (*DocumentMetadata, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentMetadata{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentmetadata.Table, sqlgraph.NewFieldSpec(documentmetadata.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Parties(); ok {
		_spec.SetField(documentmetadata.FieldParties, field.TypeString, value)
		_node.Parties = value
	}
	if value, ok := _c.mutation.DateMain(); ok {
		_spec.SetField(documentmetadata.FieldDateMain, field.TypeTime, value)
		_node.DateMain = &value
	}
	if value, ok := _c.mutation.DateStart(); ok {
		_spec.SetField(documentmetadata.FieldDateStart, field.TypeTime, value)
		_node.DateStart = &value
	}
	if value, ok := _c.mutation.DateEnd(); ok {
		_spec.SetField(documentmetadata.FieldDateEnd, field.TypeTime, value)
		_node.DateEnd = &value
	}
	if value, ok := _c.mutation.ReferenceNumber(); ok {
		_spec.SetField(documentmetadata.FieldReferenceNumber, field.TypeString, value)
		_node.ReferenceNumber = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(documentmetadata.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(documentmetadata.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentMetadataCreateBulk is the builder for creating many DocumentMetadata entities in bulk.
type DocumentMetadataCreateBulk struct {
	config
	err      error
	builders []*DocumentMetadataCreate
}

// Save creates the DocumentMetadata entities in the database.
func (_c *DocumentMetadataCreateBulk) Save(ctx context.Context) ([]*DocumentMetadata, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentMetadata, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMetadataMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentMetadataCreateBulk) SaveX(ctx context.Context) []*DocumentMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentMetadataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentMetadataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
