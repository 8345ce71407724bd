// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "DRAFT"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "suggested_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_ocr", Type: field.TypeBool, Default: false},
		{Name: "ocr_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "type_id", Type: field.TypeInt},
		{Name: "suggested_type_id", Type: field.TypeInt, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_document_types_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{DocumentTypesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "documents_document_types_suggested_documents",
				Columns:    []*schema.Column{DocumentsColumns[11]},
				RefColumns: []*schema.Column{DocumentTypesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_type_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[2]},
			},
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
		},
	}
	// DocumentMetadataColumns holds the columns for the "document_metadata" table.
	DocumentMetadataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "parties", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "date_main", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "date_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "date_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "reference_number", Type: field.TypeString, Size: 120, Default: ""},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)", "sqlite3": "text"}},
		{Name: "notes", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// DocumentMetadataTable holds the schema information for the "document_metadata" table.
	DocumentMetadataTable = &schema.Table{
		Name:       "document_metadata",
		Columns:    DocumentMetadataColumns,
		PrimaryKey: []*schema.Column{DocumentMetadataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_metadata_documents_metadata",
				Columns:    []*schema.Column{DocumentMetadataColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// DocumentTypesColumns holds the columns for the "document_types" table.
	DocumentTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 24},
		{Name: "name", Type: field.TypeString, Size: 120},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// DocumentTypesTable holds the schema information for the "document_types" table.
	DocumentTypesTable = &schema.Table{
		Name:       "document_types",
		Columns:    DocumentTypesColumns,
		PrimaryKey: []*schema.Column{DocumentTypesColumns[0]},
	}
	// DocumentVersionsColumns holds the columns for the "document_versions" table.
	DocumentVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version_number", Type: field.TypeInt, Default: 1},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "mime_type", Type: field.TypeString, Size: 120, Default: ""},
		{Name: "file_hash_sha256", Type: field.TypeString, Size: 64, Default: ""},
		{Name: "file_size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentVersionsTable holds the schema information for the "document_versions" table.
	DocumentVersionsTable = &schema.Table{
		Name:       "document_versions",
		Columns:    DocumentVersionsColumns,
		PrimaryKey: []*schema.Column{DocumentVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_versions_documents_versions",
				Columns:    []*schema.Column{DocumentVersionsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentversion_document_id_version_number",
				Unique:  true,
				Columns: []*schema.Column{DocumentVersionsColumns[8], DocumentVersionsColumns[1]},
			},
			{
				Name:    "documentversion_document_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentVersionsColumns[8], DocumentVersionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentMetadataTable,
		DocumentTypesTable,
		DocumentVersionsTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = DocumentTypesTable
	DocumentsTable.ForeignKeys[1].RefTable = DocumentTypesTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentMetadataTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentMetadataTable.Annotation = &entsql.Annotation{
		Table: "document_metadata",
	}
	DocumentTypesTable.Annotation = &entsql.Annotation{
		Table: "document_types",
	}
	DocumentVersionsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentVersionsTable.Annotation = &entsql.Annotation{
		Table: "document_versions",
	}
}
