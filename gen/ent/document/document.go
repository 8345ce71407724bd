// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTypeID holds the string denoting the type_id field in the database.
	FieldTypeID = "type_id"
	// FieldSuggestedTypeID holds the string denoting the suggested_type_id field in the database.
	FieldSuggestedTypeID = "suggested_type_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldSuggestedScore holds the string denoting the suggested_score field in the database.
	FieldSuggestedScore = "suggested_score"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldIsOcr holds the string denoting the is_ocr field in the database.
	FieldIsOcr = "is_ocr"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumentType holds the string denoting the document_type edge name in mutations.
	EdgeDocumentType = "document_type"
	// EdgeSuggestedType holds the string denoting the suggested_type edge name in mutations.
	EdgeSuggestedType = "suggested_type"
	// EdgeVersions holds the string denoting the versions edge name in mutations.
	EdgeVersions = "versions"
	// EdgeMetadata holds the string denoting the metadata edge name in mutations.
	EdgeMetadata = "metadata"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// DocumentTypeTable is the table that holds the document_type relation/edge.
	DocumentTypeTable = "documents"
	// DocumentTypeInverseTable is the table name for the DocumentType entity.
	// It exists in this package in order to avoid circular dependency with the "documenttype" package.
	DocumentTypeInverseTable = "document_types"
	// DocumentTypeColumn is the table column denoting the document_type relation/edge.
	DocumentTypeColumn = "type_id"
	// SuggestedTypeTable is the table that holds the suggested_type relation/edge.
	SuggestedTypeTable = "documents"
	// SuggestedTypeInverseTable is the table name for the DocumentType entity.
	// It exists in this package in order to avoid circular dependency with the "documenttype" package.
	SuggestedTypeInverseTable = "document_types"
	// SuggestedTypeColumn is the table column denoting the suggested_type relation/edge.
	SuggestedTypeColumn = "suggested_type_id"
	// VersionsTable is the table that holds the versions relation/edge.
	VersionsTable = "document_versions"
	// VersionsInverseTable is the table name for the DocumentVersion entity.
	// It exists in this package in order to avoid circular dependency with the "documentversion" package.
	VersionsInverseTable = "document_versions"
	// VersionsColumn is the table column denoting the versions relation/edge.
	VersionsColumn = "document_id"
	// MetadataTable is the table that holds the metadata relation/edge.
	MetadataTable = "document_metadata"
	// MetadataInverseTable is the table name for the DocumentMetadata entity.
	// It exists in this package in order to avoid circular dependency with the "documentmetadata" package.
	MetadataInverseTable = "document_metadata"
	// MetadataColumn is the table column denoting the metadata relation/edge.
	MetadataColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldTypeID,
	FieldSuggestedTypeID,
	FieldStatus,
	FieldEnabled,
	FieldSuggestedScore,
	FieldExtractedText,
	FieldIsOcr,
	FieldOcrConfidence,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultExtractedText holds the default value on creation for the "extracted_text" field.
	DefaultExtractedText string
	// DefaultIsOcr holds the default value on creation for the "is_ocr" field.
	DefaultIsOcr bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByTypeID orders the results by the type_id field.
func ByTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeID, opts...).ToFunc()
}

// BySuggestedTypeID orders the results by the suggested_type_id field.
func BySuggestedTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedTypeID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// BySuggestedScore orders the results by the suggested_score field.
func BySuggestedScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedScore, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByIsOcr orders the results by the is_ocr field.
func ByIsOcr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOcr, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentTypeField orders the results by document_type field.
func ByDocumentTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentTypeStep(), sql.OrderByField(field, opts...))
	}
}

// BySuggestedTypeField orders the results by suggested_type field.
func BySuggestedTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuggestedTypeStep(), sql.OrderByField(field, opts...))
	}
}

// ByVersionsCount orders the results by versions count.
func ByVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVersionsStep(), opts...)
	}
}

// ByVersions orders the results by versions terms.
func ByVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMetadataField orders the results by metadata field.
func ByMetadataField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMetadataStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentTypeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTypeTable, DocumentTypeColumn),
	)
}
func newSuggestedTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SuggestedTypeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SuggestedTypeTable, SuggestedTypeColumn),
	)
}
func newVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VersionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
	)
}
func newMetadataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MetadataInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, MetadataTable, MetadataColumn),
	)
}
