package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type DocumentType struct{ ent.Schema }

func (DocumentType) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_types"},
	}
}

func (DocumentType) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").NotEmpty().MaxLen(24).Unique(),
		field.String("name").NotEmpty().MaxLen(120),
		field.String("description").Default(""),
		field.Bool("is_active").Default(true),
	}
}

func (DocumentType) Edges() []ent.Edge {
	return []ent.Edge{
		// documents declared as this type
		edge.To("documents", Document.Type),
		// documents the classifier suggested this type for
		edge.To("suggested_documents", Document.Type),
	}
}
