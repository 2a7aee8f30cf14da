// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InvoiceRecord is the predicate function for invoicerecord builders.
type InvoiceRecord func(*sql.Selector)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)
