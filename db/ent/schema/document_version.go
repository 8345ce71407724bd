package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type DocumentVersion struct{ ent.Schema }

func (DocumentVersion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_versions"},
	}
}

func (DocumentVersion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define a composite unique index
		field.UUID("document_id", uuid.UUID{}),
		field.Int("version_number").Positive().Default(1),
		field.String("file_path").NotEmpty(),
		field.String("file_name").Default("").MaxLen(255),
		field.String("mime_type").Default("").MaxLen(120),
		field.String("file_hash_sha256").Default("").MaxLen(64),
		field.Int64("file_size_bytes").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (DocumentVersion) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY versions -> ONE document
		edge.From("document", Document.Type).
			Ref("versions").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (DocumentVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "version_number").Unique(),
		index.Fields("document_id", "uploaded_at"),
	}
}
