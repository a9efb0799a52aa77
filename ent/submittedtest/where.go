// Code generated by ent, DO NOT EDIT.

package submittedtest

import (
	"hirehub/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLTE(FieldID, id))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldApplicationID, v))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldCandidateID, v))
}

// VideoKey applies equality check predicate on the "video_key" field. It's identical to VideoKeyEQ.
func VideoKey(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldVideoKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldUpdatedAt, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNotIn(FieldApplicationID, vs...))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNotIn(FieldCandidateID, vs...))
}

// CandidateIDGT applies the GT predicate on the "candidate_id" field.
func CandidateIDGT(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGT(FieldCandidateID, v))
}

// CandidateIDGTE applies the GTE predicate on the "candidate_id" field.
func CandidateIDGTE(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGTE(FieldCandidateID, v))
}

// CandidateIDLT applies the LT predicate on the "candidate_id" field.
func CandidateIDLT(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLT(FieldCandidateID, v))
}

// CandidateIDLTE applies the LTE predicate on the "candidate_id" field.
func CandidateIDLTE(v uuid.UUID) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLTE(FieldCandidateID, v))
}

// VideoKeyEQ applies the EQ predicate on the "video_key" field.
func VideoKeyEQ(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldVideoKey, v))
}

// VideoKeyNEQ applies the NEQ predicate on the "video_key" field.
func VideoKeyNEQ(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNEQ(FieldVideoKey, v))
}

// VideoKeyIn applies the In predicate on the "video_key" field.
func VideoKeyIn(vs ...string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldIn(FieldVideoKey, vs...))
}

// VideoKeyNotIn applies the NotIn predicate on the "video_key" field.
func VideoKeyNotIn(vs ...string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNotIn(FieldVideoKey, vs...))
}

// VideoKeyGT applies the GT predicate on the "video_key" field.
func VideoKeyGT(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGT(FieldVideoKey, v))
}

// VideoKeyGTE applies the GTE predicate on the "video_key" field.
func VideoKeyGTE(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGTE(FieldVideoKey, v))
}

// VideoKeyLT applies the LT predicate on the "video_key" field.
func VideoKeyLT(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLT(FieldVideoKey, v))
}

// VideoKeyLTE applies the LTE predicate on the "video_key" field.
func VideoKeyLTE(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLTE(FieldVideoKey, v))
}

// VideoKeyContains applies the Contains predicate on the "video_key" field.
func VideoKeyContains(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldContains(FieldVideoKey, v))
}

// VideoKeyHasPrefix applies the HasPrefix predicate on the "video_key" field.
func VideoKeyHasPrefix(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldHasPrefix(FieldVideoKey, v))
}

// VideoKeyHasSuffix applies the HasSuffix predicate on the "video_key" field.
func VideoKeyHasSuffix(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldHasSuffix(FieldVideoKey, v))
}

// VideoKeyEqualFold applies the EqualFold predicate on the "video_key" field.
func VideoKeyEqualFold(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEqualFold(FieldVideoKey, v))
}

// VideoKeyContainsFold applies the ContainsFold predicate on the "video_key" field.
func VideoKeyContainsFold(v string) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldContainsFold(FieldVideoKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.SubmittedTest {
	return predicate.SubmittedTest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.JobApplication) predicate.SubmittedTest {
	return predicate.SubmittedTest(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubmittedTest) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubmittedTest) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubmittedTest) predicate.SubmittedTest {
	return predicate.SubmittedTest(sql.NotPredicates(p))
}
