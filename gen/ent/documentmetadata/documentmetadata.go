// Code generated by ent, DO NOT EDIT.

package documentmetadata

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the documentmetadata type in the database.
	Label = "document_metadata"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldParties holds the string denoting the parties field in the database.
	FieldParties = "parties"
	// FieldDateMain holds the string denoting the date_main field in the database.
	FieldDateMain = "date_main"
	// FieldDateStart holds the string denoting the date_start field in the database.
	FieldDateStart = "date_start"
	// FieldDateEnd holds the string denoting the date_end field in the database.
	FieldDateEnd = "date_end"
	// FieldReferenceNumber holds the string denoting the reference_number field in the database.
	FieldReferenceNumber = "reference_number"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the documentmetadata in the database.
	Table = "document_metadata"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "document_metadata"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for documentmetadata fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldParties,
	FieldDateMain,
	FieldDateStart,
	FieldDateEnd,
	FieldReferenceNumber,
	FieldAmount,
	FieldNotes,
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
	// DefaultParties holds the default value on creation for the "parties" field.
	DefaultParties string
	// DefaultReferenceNumber holds the default value on creation for the "reference_number" field.
	DefaultReferenceNumber string
	// ReferenceNumberValidator is a validator for the "reference_number" field. It is called by the builders before save.
	ReferenceNumberValidator func(string) error
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DocumentMetadata queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByParties orders the results by the parties field.
func ByParties(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParties, opts...).ToFunc()
}

// ByDateMain orders the results by the date_main field.
func ByDateMain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateMain, opts...).ToFunc()
}

// ByDateStart orders the results by the date_start field.
func ByDateStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateStart, opts...).ToFunc()
}

// ByDateEnd orders the results by the date_end field.
func ByDateEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateEnd, opts...).ToFunc()
}

// ByReferenceNumber orders the results by the reference_number field.
func ByReferenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceNumber, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
	)
}
