// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
	"github.com/jmcarrillo/docuflow/gen/ent/documentmetadata"
	"github.com/shopspring/decimal"
)

// DocumentMetadata is the model entity for the DocumentMetadata schema.
type DocumentMetadata struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Parties holds the value of the "parties" field.
	Parties string `json:"parties,omitempty"`
	// DateMain holds the value of the "date_main" field.
	DateMain *time.Time `json:"date_main,omitempty"`
	// DateStart holds the value of the "date_start" field.
	DateStart *time.Time `json:"date_start,omitempty"`
	// DateEnd holds the value of the "date_end" field.
	DateEnd *time.Time `json:"date_end,omitempty"`
	// ReferenceNumber holds the value of the "reference_number" field.
	ReferenceNumber string `json:"reference_number,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount *decimal.Decimal `json:"amount,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentMetadataQuery when eager-loading is set.
	Edges        DocumentMetadataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentMetadataEdges holds the relations/edges for other nodes in the graph.
type DocumentMetadataEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentMetadataEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentMetadata) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentmetadata.FieldAmount:
			values[i] = &sql.NullScanner{S: new(decimal.Decimal)}
		case documentmetadata.FieldParties, documentmetadata.FieldReferenceNumber, documentmetadata.FieldNotes:
			values[i] = new(sql.NullString)
		case documentmetadata.FieldDateMain, documentmetadata.FieldDateStart, documentmetadata.FieldDateEnd:
			values[i] = new(sql.NullTime)
		case documentmetadata.FieldID, documentmetadata.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentMetadata fields.
func (_m *DocumentMetadata) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentmetadata.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentmetadata.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case documentmetadata.FieldParties:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parties", values[i])
			} else if value.Valid {
				_m.Parties = value.String
			}
		case documentmetadata.FieldDateMain:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_main", values[i])
			} else if value.Valid {
				_m.DateMain = new(time.Time)
				*_m.DateMain = value.Time
			}
		case documentmetadata.FieldDateStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_start", values[i])
			} else if value.Valid {
				_m.DateStart = new(time.Time)
				*_m.DateStart = value.Time
			}
		case documentmetadata.FieldDateEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_end", values[i])
			} else if value.Valid {
				_m.DateEnd = new(time.Time)
				*_m.DateEnd = value.Time
			}
		case documentmetadata.FieldReferenceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_number", values[i])
			} else if value.Valid {
				_m.ReferenceNumber = value.String
			}
		case documentmetadata.FieldAmount:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = new(decimal.Decimal)
				*_m.Amount = *value.S.(*decimal.Decimal)
			}
		case documentmetadata.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentMetadata.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentMetadata) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentMetadata entity.
func (_m *DocumentMetadata) QueryDocument() *DocumentQuery {
	return NewDocumentMetadataClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocumentMetadata.
// Note that you need to call DocumentMetadata.Unwrap() before calling this method if this DocumentMetadata
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentMetadata) Update() *DocumentMetadataUpdateOne {
	return NewDocumentMetadataClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentMetadata entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentMetadata) Unwrap() *DocumentMetadata {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentMetadata is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentMetadata) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentMetadata(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("parties=")
	builder.WriteString(_m.Parties)
	builder.WriteString(", ")
	if v := _m.DateMain; v != nil {
		builder.WriteString("date_main=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DateStart; v != nil {
		builder.WriteString("date_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DateEnd; v != nil {
		builder.WriteString("date_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("reference_number=")
	builder.WriteString(_m.ReferenceNumber)
	builder.WriteString(", ")
	if v := _m.Amount; v != nil {
		builder.WriteString("amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// DocumentMetadataSlice is a parsable slice of DocumentMetadata.
type DocumentMetadataSlice []*DocumentMetadata
