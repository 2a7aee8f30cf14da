// Code generated by ent, DO NOT EDIT.

package parsejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the parsejob type in the database.
	Label = "parse_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentURL holds the string denoting the document_url field in the database.
	FieldDocumentURL = "document_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldMergedText holds the string denoting the merged_text field in the database.
	FieldMergedText = "merged_text"
	// FieldWarningCount holds the string denoting the warning_count field in the database.
	FieldWarningCount = "warning_count"
	// FieldLineItemCount holds the string denoting the line_item_count field in the database.
	FieldLineItemCount = "line_item_count"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeInvoice holds the string denoting the invoice edge name in mutations.
	EdgeInvoice = "invoice"
	// Table holds the table name of the parsejob in the database.
	Table = "parse_jobs"
	// InvoiceTable is the table that holds the invoice relation/edge.
	InvoiceTable = "invoice_records"
	// InvoiceInverseTable is the table name for the InvoiceRecord entity.
	// It exists in this package in order to avoid circular dependency with the "invoicerecord" package.
	InvoiceInverseTable = "invoice_records"
	// InvoiceColumn is the table column denoting the invoice relation/edge.
	InvoiceColumn = "job_id"
)

// Columns holds all SQL columns for parsejob fields.
var Columns = []string{
	FieldID,
	FieldDocumentURL,
	FieldStatus,
	FieldPageCount,
	FieldMergedText,
	FieldWarningCount,
	FieldLineItemCount,
	FieldSummary,
	FieldErrorMessage,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocumentURLValidator is a validator for the "document_url" field. It is called by the builders before save.
	DocumentURLValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultPageCount holds the default value on creation for the "page_count" field.
	DefaultPageCount int
	// DefaultWarningCount holds the default value on creation for the "warning_count" field.
	DefaultWarningCount int
	// DefaultLineItemCount holds the default value on creation for the "line_item_count" field.
	DefaultLineItemCount int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ParseJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentURL orders the results by the document_url field.
func ByDocumentURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByMergedText orders the results by the merged_text field.
func ByMergedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedText, opts...).ToFunc()
}

// ByWarningCount orders the results by the warning_count field.
func ByWarningCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningCount, opts...).ToFunc()
}

// ByLineItemCount orders the results by the line_item_count field.
func ByLineItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineItemCount, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByInvoiceField orders the results by invoice field.
func ByInvoiceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvoiceStep(), sql.OrderByField(field, opts...))
	}
}
func newInvoiceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvoiceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, InvoiceTable, InvoiceColumn),
	)
}
