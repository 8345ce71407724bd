// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentMetadata is the predicate function for documentmetadata builders.
type DocumentMetadata func(*sql.Selector)

// DocumentType is the predicate function for documenttype builders.
type DocumentType func(*sql.Selector)

// DocumentVersion is the predicate function for documentversion builders.
type DocumentVersion func(*sql.Selector)
