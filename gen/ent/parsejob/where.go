// Code generated by ent, DO NOT EDIT.

package parsejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldID, id))
}

// DocumentURL applies equality check predicate on the "document_url" field. It's identical to DocumentURLEQ.
func DocumentURL(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldDocumentURL, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStatus, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldPageCount, v))
}

// MergedText applies equality check predicate on the "merged_text" field. It's identical to MergedTextEQ.
func MergedText(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldMergedText, v))
}

// WarningCount applies equality check predicate on the "warning_count" field. It's identical to WarningCountEQ.
func WarningCount(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldWarningCount, v))
}

// LineItemCount applies equality check predicate on the "line_item_count" field. It's identical to LineItemCountEQ.
func LineItemCount(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldLineItemCount, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFinishedAt, v))
}

// DocumentURLEQ applies the EQ predicate on the "document_url" field.
func DocumentURLEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldDocumentURL, v))
}

// DocumentURLNEQ applies the NEQ predicate on the "document_url" field.
func DocumentURLNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldDocumentURL, v))
}

// DocumentURLIn applies the In predicate on the "document_url" field.
func DocumentURLIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldDocumentURL, vs...))
}

// DocumentURLNotIn applies the NotIn predicate on the "document_url" field.
func DocumentURLNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldDocumentURL, vs...))
}

// DocumentURLGT applies the GT predicate on the "document_url" field.
func DocumentURLGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldDocumentURL, v))
}

// DocumentURLGTE applies the GTE predicate on the "document_url" field.
func DocumentURLGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldDocumentURL, v))
}

// DocumentURLLT applies the LT predicate on the "document_url" field.
func DocumentURLLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldDocumentURL, v))
}

// DocumentURLLTE applies the LTE predicate on the "document_url" field.
func DocumentURLLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldDocumentURL, v))
}

// DocumentURLContains applies the Contains predicate on the "document_url" field.
func DocumentURLContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldDocumentURL, v))
}

// DocumentURLHasPrefix applies the HasPrefix predicate on the "document_url" field.
func DocumentURLHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldDocumentURL, v))
}

// DocumentURLHasSuffix applies the HasSuffix predicate on the "document_url" field.
func DocumentURLHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldDocumentURL, v))
}

// DocumentURLEqualFold applies the EqualFold predicate on the "document_url" field.
func DocumentURLEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldDocumentURL, v))
}

// DocumentURLContainsFold applies the ContainsFold predicate on the "document_url" field.
func DocumentURLContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldDocumentURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldStatus, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldPageCount, v))
}

// MergedTextEQ applies the EQ predicate on the "merged_text" field.
func MergedTextEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldMergedText, v))
}

// MergedTextNEQ applies the NEQ predicate on the "merged_text" field.
func MergedTextNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldMergedText, v))
}

// MergedTextIn applies the In predicate on the "merged_text" field.
func MergedTextIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldMergedText, vs...))
}

// MergedTextNotIn applies the NotIn predicate on the "merged_text" field.
func MergedTextNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldMergedText, vs...))
}

// MergedTextGT applies the GT predicate on the "merged_text" field.
func MergedTextGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldMergedText, v))
}

// MergedTextGTE applies the GTE predicate on the "merged_text" field.
func MergedTextGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldMergedText, v))
}

// MergedTextLT applies the LT predicate on the "merged_text" field.
func MergedTextLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldMergedText, v))
}

// MergedTextLTE applies the LTE predicate on the "merged_text" field.
func MergedTextLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldMergedText, v))
}

// MergedTextContains applies the Contains predicate on the "merged_text" field.
func MergedTextContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldMergedText, v))
}

// MergedTextHasPrefix applies the HasPrefix predicate on the "merged_text" field.
func MergedTextHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldMergedText, v))
}

// MergedTextHasSuffix applies the HasSuffix predicate on the "merged_text" field.
func MergedTextHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldMergedText, v))
}

// MergedTextIsNil applies the IsNil predicate on the "merged_text" field.
func MergedTextIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldMergedText))
}

// MergedTextNotNil applies the NotNil predicate on the "merged_text" field.
func MergedTextNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldMergedText))
}

// MergedTextEqualFold applies the EqualFold predicate on the "merged_text" field.
func MergedTextEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldMergedText, v))
}

// MergedTextContainsFold applies the ContainsFold predicate on the "merged_text" field.
func MergedTextContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldMergedText, v))
}

// WarningCountEQ applies the EQ predicate on the "warning_count" field.
func WarningCountEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldWarningCount, v))
}

// WarningCountNEQ applies the NEQ predicate on the "warning_count" field.
func WarningCountNEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldWarningCount, v))
}

// WarningCountIn applies the In predicate on the "warning_count" field.
func WarningCountIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldWarningCount, vs...))
}

// WarningCountNotIn applies the NotIn predicate on the "warning_count" field.
func WarningCountNotIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldWarningCount, vs...))
}

// WarningCountGT applies the GT predicate on the "warning_count" field.
func WarningCountGT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldWarningCount, v))
}

// WarningCountGTE applies the GTE predicate on the "warning_count" field.
func WarningCountGTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldWarningCount, v))
}

// WarningCountLT applies the LT predicate on the "warning_count" field.
func WarningCountLT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldWarningCount, v))
}

// WarningCountLTE applies the LTE predicate on the "warning_count" field.
func WarningCountLTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldWarningCount, v))
}

// LineItemCountEQ applies the EQ predicate on the "line_item_count" field.
func LineItemCountEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldLineItemCount, v))
}

// LineItemCountNEQ applies the NEQ predicate on the "line_item_count" field.
func LineItemCountNEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldLineItemCount, v))
}

// LineItemCountIn applies the In predicate on the "line_item_count" field.
func LineItemCountIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldLineItemCount, vs...))
}

// LineItemCountNotIn applies the NotIn predicate on the "line_item_count" field.
func LineItemCountNotIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldLineItemCount, vs...))
}

// LineItemCountGT applies the GT predicate on the "line_item_count" field.
func LineItemCountGT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldLineItemCount, v))
}

// LineItemCountGTE applies the GTE predicate on the "line_item_count" field.
func LineItemCountGTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldLineItemCount, v))
}

// LineItemCountLT applies the LT predicate on the "line_item_count" field.
func LineItemCountLT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldLineItemCount, v))
}

// LineItemCountLTE applies the LTE predicate on the "line_item_count" field.
func LineItemCountLTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldLineItemCount, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldFinishedAt))
}

// HasInvoice applies the HasEdge predicate on the "invoice" edge.
func HasInvoice() predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, InvoiceTable, InvoiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoiceWith applies the HasEdge predicate on the "invoice" edge with a given conditions (other predicates).
func HasInvoiceWith(preds ...predicate.InvoiceRecord) predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := newInvoiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.NotPredicates(p))
}
