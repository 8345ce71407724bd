// Code generated by ent, DO NOT EDIT.

package documentmetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmcarrillo/docuflow/gen/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldDocumentID, v))
}

// Parties applies equality check predicate on the "parties" field. It's identical to PartiesEQ.
func Parties(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldParties, v))
}

// DateMain applies equality check predicate on the "date_main" field. It's identical to DateMainEQ.
func DateMain(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldDateMain, v))
}

// DateStart applies equality check predicate on the "date_start" field. It's identical to DateStartEQ.
func DateStart(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldDateStart, v))
}

// DateEnd applies equality check predicate on the "date_end" field. It's identical to DateEndEQ.
func DateEnd(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldDateEnd, v))
}

// ReferenceNumber applies equality check predicate on the "reference_number" field. It's identical to ReferenceNumberEQ.
func ReferenceNumber(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldReferenceNumber, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldAmount, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldNotes, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PartiesEQ applies the EQ predicate on the "parties" field.
func PartiesEQ(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldParties, v))
}

// PartiesNEQ applies the NEQ predicate on the "parties" field.
func PartiesNEQ(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldParties, v))
}

// PartiesIn applies the In predicate on the "parties" field.
func PartiesIn(vs ...string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldParties, vs...))
}

// PartiesNotIn applies the NotIn predicate on the "parties" field.
func PartiesNotIn(vs ...string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldParties, vs...))
}

// PartiesGT applies the GT predicate on the "parties" field.
func PartiesGT(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGT(FieldParties, v))
}

// PartiesGTE applies the GTE predicate on the "parties" field.
func PartiesGTE(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGTE(FieldParties, v))
}

// PartiesLT applies the LT predicate on the "parties" field.
func PartiesLT(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLT(FieldParties, v))
}

// PartiesLTE applies the LTE predicate on the "parties" field.
func PartiesLTE(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLTE(FieldParties, v))
}

// PartiesContains applies the Contains predicate on the "parties" field.
func PartiesContains(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldContains(FieldParties, v))
}

// PartiesHasPrefix applies the HasPrefix predicate on the "parties" field.
func PartiesHasPrefix(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldHasPrefix(FieldParties, v))
}

// PartiesHasSuffix applies the HasSuffix predicate on the "parties" field.
func PartiesHasSuffix(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldHasSuffix(FieldParties, v))
}

// PartiesEqualFold applies the EqualFold predicate on the "parties" field.
func PartiesEqualFold(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEqualFold(FieldParties, v))
}

// PartiesContainsFold applies the ContainsFold predicate on the "parties" field.
func PartiesContainsFold(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldContainsFold(FieldParties, v))
}

// DateMainEQ applies the EQ predicate on the "date_main" field.
func DateMainEQ(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldDateMain, v))
}

// DateMainNEQ applies the NEQ predicate on the "date_main" field.
func DateMainNEQ(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldDateMain, v))
}

// DateMainIn applies the In predicate on the "date_main" field.
func DateMainIn(vs ...time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldDateMain, vs...))
}

// DateMainNotIn applies the NotIn predicate on the "date_main" field.
func DateMainNotIn(vs ...time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldDateMain, vs...))
}

// DateMainGT applies the GT predicate on the "date_main" field.
func DateMainGT(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGT(FieldDateMain, v))
}

// DateMainGTE applies the GTE predicate on the "date_main" field.
func DateMainGTE(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGTE(FieldDateMain, v))
}

// DateMainLT applies the LT predicate on the "date_main" field.
func DateMainLT(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLT(FieldDateMain, v))
}

// DateMainLTE applies the LTE predicate on the "date_main" field.
func DateMainLTE(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLTE(FieldDateMain, v))
}

// DateMainIsNil applies the IsNil predicate on the "date_main" field.
func DateMainIsNil() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIsNull(FieldDateMain))
}

// DateMainNotNil applies the NotNil predicate on the "date_main" field.
func DateMainNotNil() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotNull(FieldDateMain))
}

// DateStartEQ applies the EQ predicate on the "date_start" field.
func DateStartEQ(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldDateStart, v))
}

// DateStartNEQ applies the NEQ predicate on the "date_start" field.
func DateStartNEQ(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldDateStart, v))
}

// DateStartIn applies the In predicate on the "date_start" field.
func DateStartIn(vs ...time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldDateStart, vs...))
}

// DateStartNotIn applies the NotIn predicate on the "date_start" field.
func DateStartNotIn(vs ...time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldDateStart, vs...))
}

// DateStartGT applies the GT predicate on the "date_start" field.
func DateStartGT(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGT(FieldDateStart, v))
}

// DateStartGTE applies the GTE predicate on the "date_start" field.
func DateStartGTE(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGTE(FieldDateStart, v))
}

// DateStartLT applies the LT predicate on the "date_start" field.
func DateStartLT(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLT(FieldDateStart, v))
}

// DateStartLTE applies the LTE predicate on the "date_start" field.
func DateStartLTE(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLTE(FieldDateStart, v))
}

// DateStartIsNil applies the IsNil predicate on the "date_start" field.
func DateStartIsNil() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIsNull(FieldDateStart))
}

// DateStartNotNil applies the NotNil predicate on the "date_start" field.
func DateStartNotNil() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotNull(FieldDateStart))
}

// DateEndEQ applies the EQ predicate on the "date_end" field.
func DateEndEQ(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldDateEnd, v))
}

// DateEndNEQ applies the NEQ predicate on the "date_end" field.
func DateEndNEQ(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldDateEnd, v))
}

// DateEndIn applies the In predicate on the "date_end" field.
func DateEndIn(vs ...time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldDateEnd, vs...))
}

// DateEndNotIn applies the NotIn predicate on the "date_end" field.
func DateEndNotIn(vs ...time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldDateEnd, vs...))
}

// DateEndGT applies the GT predicate on the "date_end" field.
func DateEndGT(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGT(FieldDateEnd, v))
}

// DateEndGTE applies the GTE predicate on the "date_end" field.
func DateEndGTE(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGTE(FieldDateEnd, v))
}

// DateEndLT applies the LT predicate on the "date_end" field.
func DateEndLT(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLT(FieldDateEnd, v))
}

// DateEndLTE applies the LTE predicate on the "date_end" field.
func DateEndLTE(v time.Time) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLTE(FieldDateEnd, v))
}

// DateEndIsNil applies the IsNil predicate on the "date_end" field.
func DateEndIsNil() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIsNull(FieldDateEnd))
}

// DateEndNotNil applies the NotNil predicate on the "date_end" field.
func DateEndNotNil() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotNull(FieldDateEnd))
}

// ReferenceNumberEQ applies the EQ predicate on the "reference_number" field.
func ReferenceNumberEQ(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldReferenceNumber, v))
}

// ReferenceNumberNEQ applies the NEQ predicate on the "reference_number" field.
func ReferenceNumberNEQ(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldReferenceNumber, v))
}

// ReferenceNumberIn applies the In predicate on the "reference_number" field.
func ReferenceNumberIn(vs ...string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldReferenceNumber, vs...))
}

// ReferenceNumberNotIn applies the NotIn predicate on the "reference_number" field.
func ReferenceNumberNotIn(vs ...string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldReferenceNumber, vs...))
}

// ReferenceNumberGT applies the GT predicate on the "reference_number" field.
func ReferenceNumberGT(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGT(FieldReferenceNumber, v))
}

// ReferenceNumberGTE applies the GTE predicate on the "reference_number" field.
func ReferenceNumberGTE(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGTE(FieldReferenceNumber, v))
}

// ReferenceNumberLT applies the LT predicate on the "reference_number" field.
func ReferenceNumberLT(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLT(FieldReferenceNumber, v))
}

// ReferenceNumberLTE applies the LTE predicate on the "reference_number" field.
func ReferenceNumberLTE(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLTE(FieldReferenceNumber, v))
}

// ReferenceNumberContains applies the Contains predicate on the "reference_number" field.
func ReferenceNumberContains(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldContains(FieldReferenceNumber, v))
}

// ReferenceNumberHasPrefix applies the HasPrefix predicate on the "reference_number" field.
func ReferenceNumberHasPrefix(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldHasPrefix(FieldReferenceNumber, v))
}

// ReferenceNumberHasSuffix applies the HasSuffix predicate on the "reference_number" field.
func ReferenceNumberHasSuffix(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldHasSuffix(FieldReferenceNumber, v))
}

// ReferenceNumberEqualFold applies the EqualFold predicate on the "reference_number" field.
func ReferenceNumberEqualFold(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEqualFold(FieldReferenceNumber, v))
}

// ReferenceNumberContainsFold applies the ContainsFold predicate on the "reference_number" field.
func ReferenceNumberContainsFold(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldContainsFold(FieldReferenceNumber, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLTE(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotNull(FieldAmount))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.FieldContainsFold(FieldNotes, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentMetadata {
	return predicate.DocumentMetadata(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentMetadata) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentMetadata) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentMetadata) predicate.DocumentMetadata {
	return predicate.DocumentMetadata(sql.NotPredicates(p))
}
