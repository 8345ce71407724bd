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
	"github.com/jmcarrillo/docuflow/gen/ent/documentversion"
	"github.com/jmcarrillo/docuflow/gen/ent/predicate"
)

// DocumentVersionUpdate is the builder for updating DocumentVersion entities.
type DocumentVersionUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentVersionMutation
}

// Where appends a list predicates to the DocumentVersionUpdate builder.
func (_u *DocumentVersionUpdate) Where(ps ...predicate.DocumentVersion) *DocumentVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentVersionUpdate) SetDocumentID(v uuid.UUID) *DocumentVersionUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentVersionUpdate) SetNillableDocumentID(v *uuid.UUID) *DocumentVersionUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *DocumentVersionUpdate) SetVersionNumber(v int) *DocumentVersionUpdate {
	_u.mutation.ResetVersionNumber()
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *DocumentVersionUpdate) SetNillableVersionNumber(v *int) *DocumentVersionUpdate {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// AddVersionNumber adds value to the "version_number" field.
func (_u *DocumentVersionUpdate) AddVersionNumber(v int) *DocumentVersionUpdate {
	_u.mutation.AddVersionNumber(v)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentVersionUpdate) SetFilePath(v string) *DocumentVersionUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentVersionUpdate) SetNillableFilePath(v *string) *DocumentVersionUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentVersionUpdate) SetFileName(v string) *DocumentVersionUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentVersionUpdate) SetNillableFileName(v *string) *DocumentVersionUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentVersionUpdate) SetMimeType(v string) *DocumentVersionUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentVersionUpdate) SetNillableMimeType(v *string) *DocumentVersionUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileHashSha256 sets the "file_hash_sha256" field.
func (_u *DocumentVersionUpdate) SetFileHashSha256(v string) *DocumentVersionUpdate {
	_u.mutation.SetFileHashSha256(v)
	return _u
}

// SetNillableFileHashSha256 sets the "file_hash_sha256" field if the given value is not nil.
func (_u *DocumentVersionUpdate) SetNillableFileHashSha256(v *string) *DocumentVersionUpdate {
	if v != nil {
		_u.SetFileHashSha256(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *DocumentVersionUpdate) SetFileSizeBytes(v int64) *DocumentVersionUpdate {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *DocumentVersionUpdate) SetNillableFileSizeBytes(v *int64) *DocumentVersionUpdate {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *DocumentVersionUpdate) AddFileSizeBytes(v int64) *DocumentVersionUpdate {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *DocumentVersionUpdate) ClearFileSizeBytes() *DocumentVersionUpdate {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentVersionUpdate) SetUploadedAt(v time.Time) *DocumentVersionUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentVersionUpdate) SetNillableUploadedAt(v *time.Time) *DocumentVersionUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentVersionUpdate) SetDocument(v *Document) *DocumentVersionUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentVersionMutation object of the builder.
func (_u *DocumentVersionUpdate) Mutation() *DocumentVersionMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentVersionUpdate) ClearDocument() *DocumentVersionUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentVersionUpdate) check() error {
	if v, ok := _u.mutation.VersionNumber(); ok {
		if err := documentversion.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.version_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := documentversion.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := documentversion.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := documentversion.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHashSha256(); ok {
		if err := documentversion.FileHashSha256Validator(v); err != nil {
			return &ValidationError{Name: "file_hash_sha256", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_hash_sha256": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentVersion.document"`)
	}
	return nil
}

func (_u *DocumentVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentversion.Table, documentversion.Columns, sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(documentversion.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNumber(); ok {
		_spec.AddField(documentversion.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(documentversion.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(documentversion.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(documentversion.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHashSha256(); ok {
		_spec.SetField(documentversion.FieldFileHashSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(documentversion.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(documentversion.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(documentversion.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(documentversion.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentVersionUpdateOne is the builder for updating a single DocumentVersion entity.
type DocumentVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentVersionMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentVersionUpdateOne) SetDocumentID(v uuid.UUID) *DocumentVersionUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentVersionUpdateOne) SetNillableDocumentID(v *uuid.UUID) *DocumentVersionUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *DocumentVersionUpdateOne) SetVersionNumber(v int) *DocumentVersionUpdateOne {
	_u.mutation.ResetVersionNumber()
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *DocumentVersionUpdateOne) SetNillableVersionNumber(v *int) *DocumentVersionUpdateOne {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// AddVersionNumber adds value to the "version_number" field.
func (_u *DocumentVersionUpdateOne) AddVersionNumber(v int) *DocumentVersionUpdateOne {
	_u.mutation.AddVersionNumber(v)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentVersionUpdateOne) SetFilePath(v string) *DocumentVersionUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentVersionUpdateOne) SetNillableFilePath(v *string) *DocumentVersionUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentVersionUpdateOne) SetFileName(v string) *DocumentVersionUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentVersionUpdateOne) SetNillableFileName(v *string) *DocumentVersionUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentVersionUpdateOne) SetMimeType(v string) *DocumentVersionUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentVersionUpdateOne) SetNillableMimeType(v *string) *DocumentVersionUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileHashSha256 sets the "file_hash_sha256" field.
func (_u *DocumentVersionUpdateOne) SetFileHashSha256(v string) *DocumentVersionUpdateOne {
	_u.mutation.SetFileHashSha256(v)
	return _u
}

// SetNillableFileHashSha256 sets the "file_hash_sha256" field if the given value is not nil.
func (_u *DocumentVersionUpdateOne) SetNillableFileHashSha256(v *string) *DocumentVersionUpdateOne {
	if v != nil {
		_u.SetFileHashSha256(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *DocumentVersionUpdateOne) SetFileSizeBytes(v int64) *DocumentVersionUpdateOne {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *DocumentVersionUpdateOne) SetNillableFileSizeBytes(v *int64) *DocumentVersionUpdateOne {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *DocumentVersionUpdateOne) AddFileSizeBytes(v int64) *DocumentVersionUpdateOne {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *DocumentVersionUpdateOne) ClearFileSizeBytes() *DocumentVersionUpdateOne {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentVersionUpdateOne) SetUploadedAt(v time.Time) *DocumentVersionUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentVersionUpdateOne) SetNillableUploadedAt(v *time.Time) *DocumentVersionUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentVersionUpdateOne) SetDocument(v *Document) *DocumentVersionUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentVersionMutation object of the builder.
func (_u *DocumentVersionUpdateOne) Mutation() *DocumentVersionMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentVersionUpdateOne) ClearDocument() *DocumentVersionUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocumentVersionUpdate builder.
func (_u *DocumentVersionUpdateOne) Where(ps ...predicate.DocumentVersion) *DocumentVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentVersionUpdateOne) Select(field string, fields ...string) *DocumentVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentVersion entity.
func (_u *DocumentVersionUpdateOne) Save(ctx context.Context) (*DocumentVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentVersionUpdateOne) SaveX(ctx context.Context) *DocumentVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentVersionUpdateOne) check() error {
	if v, ok := _u.mutation.VersionNumber(); ok {
		if err := documentversion.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.version_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := documentversion.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := documentversion.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := documentversion.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHashSha256(); ok {
		if err := documentversion.FileHashSha256Validator(v); err != nil {
			return &ValidationError{Name: "file_hash_sha256", err: fmt.Errorf(`ent: validator failed for field "DocumentVersion.file_hash_sha256": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentVersion.document"`)
	}
	return nil
}

func (_u *DocumentVersionUpdateOne) sqlSave(ctx context.Context) (_node *DocumentVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentversion.Table, documentversion.Columns, sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentversion.FieldID)
		for _, f := range fields {
			if !documentversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentversion.FieldID {
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
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(documentversion.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNumber(); ok {
		_spec.AddField(documentversion.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(documentversion.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(documentversion.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(documentversion.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHashSha256(); ok {
		_spec.SetField(documentversion.FieldFileHashSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(documentversion.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(documentversion.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(documentversion.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(documentversion.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
