// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/gen/ent/parsejob"
)

// ParseJob is the model entity for the ParseJob schema.
type ParseJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentURL holds the value of the "document_url" field.
	DocumentURL string `json:"document_url,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// MergedText holds the value of the "merged_text" field.
	MergedText *string `json:"merged_text,omitempty"`
	// WarningCount holds the value of the "warning_count" field.
	WarningCount int `json:"warning_count,omitempty"`
	// LineItemCount holds the value of the "line_item_count" field.
	LineItemCount int `json:"line_item_count,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParseJobQuery when eager-loading is set.
	Edges        ParseJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParseJobEdges holds the relations/edges for other nodes in the graph.
type ParseJobEdges struct {
	// Invoice holds the value of the invoice edge.
	Invoice *InvoiceRecord `json:"invoice,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InvoiceOrErr returns the Invoice value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParseJobEdges) InvoiceOrErr() (*InvoiceRecord, error) {
	if e.Invoice != nil {
		return e.Invoice, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: invoicerecord.Label}
	}
	return nil, &NotLoadedError{edge: "invoice"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParseJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parsejob.FieldPageCount, parsejob.FieldWarningCount, parsejob.FieldLineItemCount:
			values[i] = new(sql.NullInt64)
		case parsejob.FieldDocumentURL, parsejob.FieldStatus, parsejob.FieldMergedText, parsejob.FieldSummary, parsejob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case parsejob.FieldStartedAt, parsejob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case parsejob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParseJob fields.
func (_m *ParseJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parsejob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case parsejob.FieldDocumentURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_url", values[i])
			} else if value.Valid {
				_m.DocumentURL = value.String
			}
		case parsejob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case parsejob.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case parsejob.FieldMergedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merged_text", values[i])
			} else if value.Valid {
				_m.MergedText = new(string)
				*_m.MergedText = value.String
			}
		case parsejob.FieldWarningCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field warning_count", values[i])
			} else if value.Valid {
				_m.WarningCount = int(value.Int64)
			}
		case parsejob.FieldLineItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_item_count", values[i])
			} else if value.Valid {
				_m.LineItemCount = int(value.Int64)
			}
		case parsejob.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case parsejob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case parsejob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case parsejob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParseJob.
// This includes values selected through modifiers, order, etc.
func (_m *ParseJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvoice queries the "invoice" edge of the ParseJob entity.
func (_m *ParseJob) QueryInvoice() *InvoiceRecordQuery {
	return NewParseJobClient(_m.config).QueryInvoice(_m)
}

// Update returns a builder for updating this ParseJob.
// Note that you need to call ParseJob.Unwrap() before calling this method if this ParseJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParseJob) Update() *ParseJobUpdateOne {
	return NewParseJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParseJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParseJob) Unwrap() *ParseJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParseJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParseJob) String() string {
	var builder strings.Builder
	builder.WriteString("ParseJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_url=")
	builder.WriteString(_m.DocumentURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	if v := _m.MergedText; v != nil {
		builder.WriteString("merged_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("warning_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarningCount))
	builder.WriteString(", ")
	builder.WriteString("line_item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineItemCount))
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ParseJobs is a parsable slice of ParseJob.
type ParseJobs []*ParseJob
