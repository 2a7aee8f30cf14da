// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoiceRecordsColumns holds the columns for the "invoice_records" table.
	InvoiceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor", Type: field.TypeString},
		{Name: "invoice_date", Type: field.TypeString},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "subtotal", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "line_items", Type: field.TypeJSON},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
	}
	// InvoiceRecordsTable holds the schema information for the "invoice_records" table.
	InvoiceRecordsTable = &schema.Table{
		Name:       "invoice_records",
		Columns:    InvoiceRecordsColumns,
		PrimaryKey: []*schema.Column{InvoiceRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_records_parse_jobs_invoice",
				Columns:    []*schema.Column{InvoiceRecordsColumns[12]},
				RefColumns: []*schema.Column{ParseJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoicerecord_job_id",
				Unique:  false,
				Columns: []*schema.Column{InvoiceRecordsColumns[12]},
			},
			{
				Name:    "invoicerecord_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{InvoiceRecordsColumns[3]},
			},
			{
				Name:    "invoicerecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceRecordsColumns[11]},
			},
		},
	}
	// ParseJobsColumns holds the columns for the "parse_jobs" table.
	ParseJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_url", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "merged_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "warning_count", Type: field.TypeInt, Default: 0},
		{Name: "line_item_count", Type: field.TypeInt, Default: 0},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ParseJobsTable holds the schema information for the "parse_jobs" table.
	ParseJobsTable = &schema.Table{
		Name:       "parse_jobs",
		Columns:    ParseJobsColumns,
		PrimaryKey: []*schema.Column{ParseJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[2], ParseJobsColumns[9]},
			},
			{
				Name:    "parsejob_document_url",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoiceRecordsTable,
		ParseJobsTable,
	}
)

func init() {
	InvoiceRecordsTable.ForeignKeys[0].RefTable = ParseJobsTable
	InvoiceRecordsTable.Annotation = &entsql.Annotation{
		Table: "invoice_records",
	}
	ParseJobsTable.Annotation = &entsql.Annotation{
		Table: "parse_jobs",
	}
}
