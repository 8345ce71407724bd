package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentMetadata holds the normalized metadata suggestions for a document.
// All fields are best-effort pipeline output pending human confirmation.
type DocumentMetadata struct{ ent.Schema }

func (DocumentMetadata) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_metadata"},
	}
}

func (DocumentMetadata) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}).Unique(),
		field.String("parties").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("date_main").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("date_start").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("date_end").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("reference_number").Default("").MaxLen(120),
		// decimal round-trips through its string form, so sqlite gets a
		// text column to keep the value exact
		field.Float("amount").
			GoType(decimal.Decimal{}).
			Optional().Nillable().
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(14,2)",
				dialect.SQLite:   "text",
			}),
		field.String("notes").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (DocumentMetadata) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE metadata record -> ONE document
		edge.From("document", Document.Type).
			Ref("metadata").
			Field("document_id").
			Required().
			Unique(),
	}
}
