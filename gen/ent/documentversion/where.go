// Code generated by ent, DO NOT EDIT.

package documentversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmcarrillo/docuflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldDocumentID, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldFilePath, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldFileName, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldMimeType, v))
}

// FileHashSha256 applies equality check predicate on the "file_hash_sha256" field. It's identical to FileHashSha256EQ.
func FileHashSha256(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldFileHashSha256, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldFileSizeBytes, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldUploadedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldDocumentID, vs...))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldVersionNumber, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldFilePath, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldFileName, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldMimeType, v))
}

// FileHashSha256EQ applies the EQ predicate on the "file_hash_sha256" field.
func FileHashSha256EQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldFileHashSha256, v))
}

// FileHashSha256NEQ applies the NEQ predicate on the "file_hash_sha256" field.
func FileHashSha256NEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldFileHashSha256, v))
}

// FileHashSha256In applies the In predicate on the "file_hash_sha256" field.
func FileHashSha256In(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldFileHashSha256, vs...))
}

// FileHashSha256NotIn applies the NotIn predicate on the "file_hash_sha256" field.
func FileHashSha256NotIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldFileHashSha256, vs...))
}

// FileHashSha256GT applies the GT predicate on the "file_hash_sha256" field.
func FileHashSha256GT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldFileHashSha256, v))
}

// FileHashSha256GTE applies the GTE predicate on the "file_hash_sha256" field.
func FileHashSha256GTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldFileHashSha256, v))
}

// FileHashSha256LT applies the LT predicate on the "file_hash_sha256" field.
func FileHashSha256LT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldFileHashSha256, v))
}

// FileHashSha256LTE applies the LTE predicate on the "file_hash_sha256" field.
func FileHashSha256LTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldFileHashSha256, v))
}

// FileHashSha256Contains applies the Contains predicate on the "file_hash_sha256" field.
func FileHashSha256Contains(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContains(FieldFileHashSha256, v))
}

// FileHashSha256HasPrefix applies the HasPrefix predicate on the "file_hash_sha256" field.
func FileHashSha256HasPrefix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasPrefix(FieldFileHashSha256, v))
}

// FileHashSha256HasSuffix applies the HasSuffix predicate on the "file_hash_sha256" field.
func FileHashSha256HasSuffix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasSuffix(FieldFileHashSha256, v))
}

// FileHashSha256EqualFold applies the EqualFold predicate on the "file_hash_sha256" field.
func FileHashSha256EqualFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldFileHashSha256, v))
}

// FileHashSha256ContainsFold applies the ContainsFold predicate on the "file_hash_sha256" field.
func FileHashSha256ContainsFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldFileHashSha256, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v int64) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldFileSizeBytes, v))
}

// FileSizeBytesIsNil applies the IsNil predicate on the "file_size_bytes" field.
func FileSizeBytesIsNil() predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIsNull(FieldFileSizeBytes))
}

// FileSizeBytesNotNil applies the NotNil predicate on the "file_size_bytes" field.
func FileSizeBytesNotNil() predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotNull(FieldFileSizeBytes))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldUploadedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentVersion {
	return predicate.DocumentVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentVersion {
	return predicate.DocumentVersion(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentVersion) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentVersion) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentVersion) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.NotPredicates(p))
}
