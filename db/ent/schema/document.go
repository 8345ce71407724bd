package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/jmcarrillo/docuflow/constants"
	"github.com/jmcarrillo/docuflow/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").Default("").MaxLen(255),
		// explicit FKs
		field.Int("type_id"),
		field.Int("suggested_type_id").Optional().Nillable(),
		field.String("status").Default(string(constants.StatusDraft)).
			Validate(utils.EnumValidator(constants.DocStatuses...)),
		field.Bool("enabled").Default(true),
		// classifier suggestion, pending human confirmation
		field.Float("suggested_score").Optional().Nillable(),
		// stage 1 output
		field.String("extracted_text").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_ocr").Default(false),
		field.Float("ocr_confidence").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE declared type
		edge.From("document_type", DocumentType.Type).
			Ref("documents").
			Field("type_id").
			Required().
			Unique(),
		// OPTIONAL suggested type from the classifier
		edge.From("suggested_type", DocumentType.Type).
			Ref("suggested_documents").
			Field("suggested_type_id").
			Unique(),
		// ONE document -> MANY versions
		edge.To("versions", DocumentVersion.Type),
		// ONE document -> ONE metadata record
		edge.To("metadata", DocumentMetadata.Type).Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type_id", "status"),
		index.Fields("created_at"),
	}
}
