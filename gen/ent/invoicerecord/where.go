// Code generated by ent, DO NOT EDIT.

package invoicerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldJobID, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldVendor, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldInvoiceNumber, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldSubtotal, v))
}

// Tax applies equality check predicate on the "tax" field. It's identical to TaxEQ.
func Tax(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldTax, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldTotal, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldJobID, vs...))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContainsFold(FieldVendor, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateContains applies the Contains predicate on the "invoice_date" field.
func InvoiceDateContains(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContains(FieldInvoiceDate, v))
}

// InvoiceDateHasPrefix applies the HasPrefix predicate on the "invoice_date" field.
func InvoiceDateHasPrefix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasPrefix(FieldInvoiceDate, v))
}

// InvoiceDateHasSuffix applies the HasSuffix predicate on the "invoice_date" field.
func InvoiceDateHasSuffix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasSuffix(FieldInvoiceDate, v))
}

// InvoiceDateEqualFold applies the EqualFold predicate on the "invoice_date" field.
func InvoiceDateEqualFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEqualFold(FieldInvoiceDate, v))
}

// InvoiceDateContainsFold applies the ContainsFold predicate on the "invoice_date" field.
func InvoiceDateContainsFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContainsFold(FieldInvoiceDate, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldSubtotal, v))
}

// TaxEQ applies the EQ predicate on the "tax" field.
func TaxEQ(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldTax, v))
}

// TaxNEQ applies the NEQ predicate on the "tax" field.
func TaxNEQ(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldTax, v))
}

// TaxIn applies the In predicate on the "tax" field.
func TaxIn(vs ...float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldTax, vs...))
}

// TaxNotIn applies the NotIn predicate on the "tax" field.
func TaxNotIn(vs ...float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldTax, vs...))
}

// TaxGT applies the GT predicate on the "tax" field.
func TaxGT(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldTax, v))
}

// TaxGTE applies the GTE predicate on the "tax" field.
func TaxGTE(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldTax, v))
}

// TaxLT applies the LT predicate on the "tax" field.
func TaxLT(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldTax, v))
}

// TaxLTE applies the LTE predicate on the "tax" field.
func TaxLTE(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldTax, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldTotal, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotNull(FieldWarnings))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldContainsFold(FieldSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.InvoiceRecord {
	return predicate.InvoiceRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ParseJob) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceRecord) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceRecord) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceRecord) predicate.InvoiceRecord {
	return predicate.InvoiceRecord(sql.NotPredicates(p))
}
