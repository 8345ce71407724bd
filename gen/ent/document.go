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
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// TypeID holds the value of the "type_id" field.
	TypeID int `json:"type_id,omitempty"`
	// SuggestedTypeID holds the value of the "suggested_type_id" field.
	SuggestedTypeID *int `json:"suggested_type_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// SuggestedScore holds the value of the "suggested_score" field.
	SuggestedScore *float64 `json:"suggested_score,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText string `json:"extracted_text,omitempty"`
	// IsOcr holds the value of the "is_ocr" field.
	IsOcr bool `json:"is_ocr,omitempty"`
	// OcrConfidence holds the value of the "ocr_confidence" field.
	OcrConfidence *float64 `json:"ocr_confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// DocumentType holds the value of the document_type edge.
	DocumentType *DocumentType `json:"document_type,omitempty"`
	// SuggestedType holds the value of the suggested_type edge.
	SuggestedType *DocumentType `json:"suggested_type,omitempty"`
	// Versions holds the value of the versions edge.
	Versions []*DocumentVersion `json:"versions,omitempty"`
	// Metadata holds the value of the metadata edge.
	Metadata *DocumentMetadata `json:"metadata,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// DocumentTypeOrErr returns the DocumentType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) DocumentTypeOrErr() (*DocumentType, error) {
	if e.DocumentType != nil {
		return e.DocumentType, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documenttype.Label}
	}
	return nil, &NotLoadedError{edge: "document_type"}
}

// SuggestedTypeOrErr returns the SuggestedType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) SuggestedTypeOrErr() (*DocumentType, error) {
	if e.SuggestedType != nil {
		return e.SuggestedType, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: documenttype.Label}
	}
	return nil, &NotLoadedError{edge: "suggested_type"}
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) VersionsOrErr() ([]*DocumentVersion, error) {
	if e.loadedTypes[2] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// MetadataOrErr returns the Metadata value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) MetadataOrErr() (*DocumentMetadata, error) {
	if e.Metadata != nil {
		return e.Metadata, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: documentmetadata.Label}
	}
	return nil, &NotLoadedError{edge: "metadata"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldEnabled, document.FieldIsOcr:
			values[i] = new(sql.NullBool)
		case document.FieldSuggestedScore, document.FieldOcrConfidence:
			values[i] = new(sql.NullFloat64)
		case document.FieldTypeID, document.FieldSuggestedTypeID:
			values[i] = new(sql.NullInt64)
		case document.FieldTitle, document.FieldStatus, document.FieldExtractedText:
			values[i] = new(sql.NullString)
		case document.FieldCreatedAt, document.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case document.FieldTypeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field type_id", values[i])
			} else if value.Valid {
				_m.TypeID = int(value.Int64)
			}
		case document.FieldSuggestedTypeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_type_id", values[i])
			} else if value.Valid {
				_m.SuggestedTypeID = new(int)
				*_m.SuggestedTypeID = int(value.Int64)
			}
		case document.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case document.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case document.FieldSuggestedScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_score", values[i])
			} else if value.Valid {
				_m.SuggestedScore = new(float64)
				*_m.SuggestedScore = value.Float64
			}
		case document.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = value.String
			}
		case document.FieldIsOcr:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_ocr", values[i])
			} else if value.Valid {
				_m.IsOcr = value.Bool
			}
		case document.FieldOcrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_confidence", values[i])
			} else if value.Valid {
				_m.OcrConfidence = new(float64)
				*_m.OcrConfidence = value.Float64
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocumentType queries the "document_type" edge of the Document entity.
func (_m *Document) QueryDocumentType() *DocumentTypeQuery {
	return NewDocumentClient(_m.config).QueryDocumentType(_m)
}

// QuerySuggestedType queries the "suggested_type" edge of the Document entity.
func (_m *Document) QuerySuggestedType() *DocumentTypeQuery {
	return NewDocumentClient(_m.config).QuerySuggestedType(_m)
}

// QueryVersions queries the "versions" edge of the Document entity.
func (_m *Document) QueryVersions() *DocumentVersionQuery {
	return NewDocumentClient(_m.config).QueryVersions(_m)
}

// QueryMetadata queries the "metadata" edge of the Document entity.
func (_m *Document) QueryMetadata() *DocumentMetadataQuery {
	return NewDocumentClient(_m.config).QueryMetadata(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TypeID))
	builder.WriteString(", ")
	if v := _m.SuggestedTypeID; v != nil {
		builder.WriteString("suggested_type_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.SuggestedScore; v != nil {
		builder.WriteString("suggested_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_text=")
	builder.WriteString(_m.ExtractedText)
	builder.WriteString(", ")
	builder.WriteString("is_ocr=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOcr))
	builder.WriteString(", ")
	if v := _m.OcrConfidence; v != nil {
		builder.WriteString("ocr_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
