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
	"github.com/jmcarrillo/docuflow/gen/ent/documentversion"
)

// DocumentVersionCreate is the builder for creating a DocumentVersion entity.
type DocumentVersionCreate struct {
	config
	mutation *DocumentVersionMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentVersionCreate) SetDocumentID(v uuid.UUID) *DocumentVersionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *DocumentVersionCreate) SetVersionNumber(v int) *DocumentVersionCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_c *DocumentVersionCreate) SetNillableVersionNumber(v *int) *DocumentVersionCreate {
	if v != nil {
		_c.SetVersionNumber(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *DocumentVersionCreate) SetFilePath(v string) *DocumentVersionCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *DocumentVersionCreate) SetFileName(v string) *DocumentVersionCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *DocumentVersionCreate) SetNillableFileName(v *string) *DocumentVersionCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *DocumentVersionCreate) SetMimeType(v string) *DocumentVersionCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *DocumentVersionCreate) SetNillableMimeType(v *string) *DocumentVersionCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetFileHashSha256 sets the "file_hash_sha256" field.
func (_c *DocumentVersionCreate) SetFileHashSha256(v string) *DocumentVersionCreate {
	_c.mutation.SetFileHashSha256(v)
	return _c
}

// SetNillableFileHashSha256 sets the "file_hash_sha256" field if the given value is not nil.
func (_c *DocumentVersionCreate) SetNillableFileHashSha256(v *string) *DocumentVersionCreate {
	if v != nil {
		_c.SetFileHashSha256(*v)
	}
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *DocumentVersionCreate) SetFileSizeBytes(v int64) *DocumentVersionCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_c *DocumentVersionCreate) SetNillableFileSizeBytes(v *int64) *DocumentVersionCreate {
	if v != nil {
		_c.SetFileSizeBytes(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *DocumentVersionCreate) SetUploadedAt(v time.Time) *DocumentVersionCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *DocumentVersionCreate) SetNillableUploadedAt(v *time.Time) *DocumentVersionCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentVersionCreate) SetID(v uuid.UUID) *DocumentVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentVersionCreate) SetNillableID(v *uuid.UUID) *DocumentVersionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentVersionCreate) SetDocument(v *Document) *DocumentVersionCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocumentVersionMutation object of the builder.
func (_c *DocumentVersionCreate) Mutation() *DocumentVersionMutation {
	return _c.mutation
}

// Save creates the DocumentVersion in the database.
func (_c *DocumentVersionCreate) Save(ctx context.Context) (*DocumentVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentVersionCreate) SaveX(ctx context.Context) *DocumentVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentVersionCreate) defaults() {
	if _, ok := _c.mutation.VersionNumber(); !ok {
		v := documentversion.DefaultVersionNumber
		_c.mutation.SetVersionNumber(v)
	}
	if _, ok := _c.mutation.FileName(); !ok {
		v := documentversion.DefaultFileName
		_c.mutation.SetFileName(v)
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		v := documentversion.DefaultMimeType
		_c.mutation.SetMimeType(v)
	}
	if _, ok := _c.mutation.FileHashSha256(); !ok {
		v := documentversion.DefaultFileHashSha256
		_c.mutation.SetFileHashSha256(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := documentversion.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentversion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentVersionCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentVersion.document_id"`)}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "DocumentVersion.version_number"`)}
	}
	if v, ok := _c.mutation.VersionNumber(); ok {
		if err := documentversion.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.version_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "DocumentVersion.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := documentversion.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "DocumentVersion.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := documentversion.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "DocumentVersion.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := documentversion.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileHashSha256(); !ok {
		return &ValidationError{Name: "file_hash_sha256", err: errors.New(`ent: missing required field "DocumentVersion.file_hash_sha256"`)}
	}
	if v, ok := _c.mutation.FileHashSha256(); ok {
		if err := documentversion.FileHashSha256Validator(v); err != nil {
			return &ValidationError{Name: "file_hash_sha256", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_hash_sha256": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "DocumentVersion.uploaded_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentVersion.document"`)}
	}
	return nil
}

func (_c *DocumentVersionCreate) sqlSave(ctx context.Context) (*DocumentVersion, error) {
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

func (_c *DocumentVersionCreate) createSpec() (*DocumentVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentversion.Table, sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(documentversion.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(documentversion.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(documentversion.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(documentversion.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.FileHashSha256(); ok {
		_spec.SetField(documentversion.FieldFileHashSha256, field.TypeString, value)
		_node.FileHashSha256 = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(documentversion.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(documentversion.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentversion.DocumentTable,
			Columns: []string{documentversion.DocumentColumn},
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

// DocumentVersionCreateBulk is the builder for creating many DocumentVersion entities in bulk.
type DocumentVersionCreateBulk struct {
	config
	err      error
	builders []*DocumentVersionCreate
}

// Save creates the DocumentVersion entities in the database.
func (_c *DocumentVersionCreateBulk) Save(ctx context.Context) ([]*DocumentVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentVersionMutation)
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
func (_c *DocumentVersionCreateBulk) SaveX(ctx context.Context) []*DocumentVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
