// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/db/ent/schema"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/gen/ent/parsejob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoicerecordFields := schema.InvoiceRecord{}.Fields()
	_ = invoicerecordFields
	// invoicerecordDescCurrencyCode is the schema descriptor for currency_code field.
	invoicerecordDescCurrencyCode := invoicerecordFields[5].Descriptor()
	// invoicerecord.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	invoicerecord.CurrencyCodeValidator = func() func(string) error {
		validators := invoicerecordDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoicerecordDescCreatedAt is the schema descriptor for created_at field.
	invoicerecordDescCreatedAt := invoicerecordFields[12].Descriptor()
	// invoicerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoicerecord.DefaultCreatedAt = invoicerecordDescCreatedAt.Default.(func() time.Time)
	// invoicerecordDescID is the schema descriptor for id field.
	invoicerecordDescID := invoicerecordFields[0].Descriptor()
	// invoicerecord.DefaultID holds the default value on creation for the id field.
	invoicerecord.DefaultID = invoicerecordDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescDocumentURL is the schema descriptor for document_url field.
	parsejobDescDocumentURL := parsejobFields[1].Descriptor()
	// parsejob.DocumentURLValidator is a validator for the "document_url" field. It is called by the builders before save.
	parsejob.DocumentURLValidator = parsejobDescDocumentURL.Validators[0].(func(string) error)
	// parsejobDescStatus is the schema descriptor for status field.
	parsejobDescStatus := parsejobFields[2].Descriptor()
	// parsejob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	parsejob.StatusValidator = parsejobDescStatus.Validators[0].(func(string) error)
	// parsejobDescPageCount is the schema descriptor for page_count field.
	parsejobDescPageCount := parsejobFields[3].Descriptor()
	// parsejob.DefaultPageCount holds the default value on creation for the page_count field.
	parsejob.DefaultPageCount = parsejobDescPageCount.Default.(int)
	// parsejobDescWarningCount is the schema descriptor for warning_count field.
	parsejobDescWarningCount := parsejobFields[5].Descriptor()
	// parsejob.DefaultWarningCount holds the default value on creation for the warning_count field.
	parsejob.DefaultWarningCount = parsejobDescWarningCount.Default.(int)
	// parsejobDescLineItemCount is the schema descriptor for line_item_count field.
	parsejobDescLineItemCount := parsejobFields[6].Descriptor()
	// parsejob.DefaultLineItemCount holds the default value on creation for the line_item_count field.
	parsejob.DefaultLineItemCount = parsejobDescLineItemCount.Default.(int)
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[9].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
}
