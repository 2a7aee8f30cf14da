// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/gen/ent/parsejob"
	"github.com/parsewell/invoice-parser/gen/ent/predicate"
	"github.com/parsewell/invoice-parser/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInvoiceRecord = "InvoiceRecord"
	TypeParseJob      = "ParseJob"
)

// InvoiceRecordMutation represents an operation that mutates the InvoiceRecord nodes in the graph.
type InvoiceRecordMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	vendor           *string
	invoice_date     *string
	invoice_number   *string
	currency_code    *string
	subtotal         *float64
	addsubtotal      *float64
	tax              *float64
	addtax           *float64
	total            *float64
	addtotal         *float64
	line_items       *[]entity.LineItem
	appendline_items []entity.LineItem
	warnings         *[]entity.Warning
	appendwarnings   []entity.Warning
	summary          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	job              *uuid.UUID
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*InvoiceRecord, error)
	predicates       []predicate.InvoiceRecord
}

var _ ent.Mutation = (*InvoiceRecordMutation)(nil)

// invoicerecordOption allows management of the mutation configuration using functional options.
type invoicerecordOption func(*InvoiceRecordMutation)

// newInvoiceRecordMutation creates new mutation for the InvoiceRecord entity.
func newInvoiceRecordMutation(c config, op Op, opts ...invoicerecordOption) *InvoiceRecordMutation {
	m := &InvoiceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceRecordID sets the ID field of the mutation.
func withInvoiceRecordID(id uuid.UUID) invoicerecordOption {
	return func(m *InvoiceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceRecord
		)
		m.oldValue = func(ctx context.Context) (*InvoiceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceRecord sets the old InvoiceRecord of the mutation.
func withInvoiceRecord(node *InvoiceRecord) invoicerecordOption {
	return func(m *InvoiceRecordMutation) {
		m.oldValue = func(context.Context) (*InvoiceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceRecord entities.
func (m *InvoiceRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *InvoiceRecordMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *InvoiceRecordMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *InvoiceRecordMutation) ResetJobID() {
	m.job = nil
}

// SetVendor sets the "vendor" field.
func (m *InvoiceRecordMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *InvoiceRecordMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *InvoiceRecordMutation) ResetVendor() {
	m.vendor = nil
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceRecordMutation) SetInvoiceDate(s string) {
	m.invoice_date = &s
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceRecordMutation) InvoiceDate() (r string, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldInvoiceDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceRecordMutation) ResetInvoiceDate() {
	m.invoice_date = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceRecordMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceRecordMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceRecordMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *InvoiceRecordMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *InvoiceRecordMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *InvoiceRecordMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetSubtotal sets the "subtotal" field.
func (m *InvoiceRecordMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *InvoiceRecordMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldSubtotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *InvoiceRecordMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *InvoiceRecordMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *InvoiceRecordMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
}

// SetTax sets the "tax" field.
func (m *InvoiceRecordMutation) SetTax(f float64) {
	m.tax = &f
	m.addtax = nil
}

// Tax returns the value of the "tax" field in the mutation.
func (m *InvoiceRecordMutation) Tax() (r float64, exists bool) {
	v := m.tax
	if v == nil {
		return
	}
	return *v, true
}

// OldTax returns the old "tax" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldTax(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTax: %w", err)
	}
	return oldValue.Tax, nil
}

// AddTax adds f to the "tax" field.
func (m *InvoiceRecordMutation) AddTax(f float64) {
	if m.addtax != nil {
		*m.addtax += f
	} else {
		m.addtax = &f
	}
}

// AddedTax returns the value that was added to the "tax" field in this mutation.
func (m *InvoiceRecordMutation) AddedTax() (r float64, exists bool) {
	v := m.addtax
	if v == nil {
		return
	}
	return *v, true
}

// ResetTax resets all changes to the "tax" field.
func (m *InvoiceRecordMutation) ResetTax() {
	m.tax = nil
	m.addtax = nil
}

// SetTotal sets the "total" field.
func (m *InvoiceRecordMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *InvoiceRecordMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *InvoiceRecordMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *InvoiceRecordMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *InvoiceRecordMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetLineItems sets the "line_items" field.
func (m *InvoiceRecordMutation) SetLineItems(ei []entity.LineItem) {
	m.line_items = &ei
	m.appendline_items = nil
}

// LineItems returns the value of the "line_items" field in the mutation.
func (m *InvoiceRecordMutation) LineItems() (r []entity.LineItem, exists bool) {
	v := m.line_items
	if v == nil {
		return
	}
	return *v, true
}

// OldLineItems returns the old "line_items" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldLineItems(ctx context.Context) (v []entity.LineItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineItems: %w", err)
	}
	return oldValue.LineItems, nil
}

// AppendLineItems adds ei to the "line_items" field.
func (m *InvoiceRecordMutation) AppendLineItems(ei []entity.LineItem) {
	m.appendline_items = append(m.appendline_items, ei...)
}

// AppendedLineItems returns the list of values that were appended to the "line_items" field in this mutation.
func (m *InvoiceRecordMutation) AppendedLineItems() ([]entity.LineItem, bool) {
	if len(m.appendline_items) == 0 {
		return nil, false
	}
	return m.appendline_items, true
}

// ResetLineItems resets all changes to the "line_items" field.
func (m *InvoiceRecordMutation) ResetLineItems() {
	m.line_items = nil
	m.appendline_items = nil
}

// SetWarnings sets the "warnings" field.
func (m *InvoiceRecordMutation) SetWarnings(e []entity.Warning) {
	m.warnings = &e
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *InvoiceRecordMutation) Warnings() (r []entity.Warning, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldWarnings(ctx context.Context) (v []entity.Warning, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds e to the "warnings" field.
func (m *InvoiceRecordMutation) AppendWarnings(e []entity.Warning) {
	m.appendwarnings = append(m.appendwarnings, e...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *InvoiceRecordMutation) AppendedWarnings() ([]entity.Warning, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *InvoiceRecordMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[invoicerecord.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *InvoiceRecordMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[invoicerecord.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *InvoiceRecordMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, invoicerecord.FieldWarnings)
}

// SetSummary sets the "summary" field.
func (m *InvoiceRecordMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *InvoiceRecordMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *InvoiceRecordMutation) ResetSummary() {
	m.summary = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvoiceRecord entity.
// If the InvoiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the ParseJob entity.
func (m *InvoiceRecordMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[invoicerecord.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ParseJob entity was cleared.
func (m *InvoiceRecordMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *InvoiceRecordMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *InvoiceRecordMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the InvoiceRecordMutation builder.
func (m *InvoiceRecordMutation) Where(ps ...predicate.InvoiceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceRecord).
func (m *InvoiceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.job != nil {
		fields = append(fields, invoicerecord.FieldJobID)
	}
	if m.vendor != nil {
		fields = append(fields, invoicerecord.FieldVendor)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoicerecord.FieldInvoiceDate)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoicerecord.FieldInvoiceNumber)
	}
	if m.currency_code != nil {
		fields = append(fields, invoicerecord.FieldCurrencyCode)
	}
	if m.subtotal != nil {
		fields = append(fields, invoicerecord.FieldSubtotal)
	}
	if m.tax != nil {
		fields = append(fields, invoicerecord.FieldTax)
	}
	if m.total != nil {
		fields = append(fields, invoicerecord.FieldTotal)
	}
	if m.line_items != nil {
		fields = append(fields, invoicerecord.FieldLineItems)
	}
	if m.warnings != nil {
		fields = append(fields, invoicerecord.FieldWarnings)
	}
	if m.summary != nil {
		fields = append(fields, invoicerecord.FieldSummary)
	}
	if m.created_at != nil {
		fields = append(fields, invoicerecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoicerecord.FieldJobID:
		return m.JobID()
	case invoicerecord.FieldVendor:
		return m.Vendor()
	case invoicerecord.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoicerecord.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoicerecord.FieldCurrencyCode:
		return m.CurrencyCode()
	case invoicerecord.FieldSubtotal:
		return m.Subtotal()
	case invoicerecord.FieldTax:
		return m.Tax()
	case invoicerecord.FieldTotal:
		return m.Total()
	case invoicerecord.FieldLineItems:
		return m.LineItems()
	case invoicerecord.FieldWarnings:
		return m.Warnings()
	case invoicerecord.FieldSummary:
		return m.Summary()
	case invoicerecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoicerecord.FieldJobID:
		return m.OldJobID(ctx)
	case invoicerecord.FieldVendor:
		return m.OldVendor(ctx)
	case invoicerecord.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoicerecord.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoicerecord.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case invoicerecord.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case invoicerecord.FieldTax:
		return m.OldTax(ctx)
	case invoicerecord.FieldTotal:
		return m.OldTotal(ctx)
	case invoicerecord.FieldLineItems:
		return m.OldLineItems(ctx)
	case invoicerecord.FieldWarnings:
		return m.OldWarnings(ctx)
	case invoicerecord.FieldSummary:
		return m.OldSummary(ctx)
	case invoicerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoicerecord.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case invoicerecord.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case invoicerecord.FieldInvoiceDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoicerecord.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoicerecord.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case invoicerecord.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case invoicerecord.FieldTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTax(v)
		return nil
	case invoicerecord.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case invoicerecord.FieldLineItems:
		v, ok := value.([]entity.LineItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineItems(v)
		return nil
	case invoicerecord.FieldWarnings:
		v, ok := value.([]entity.Warning)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case invoicerecord.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case invoicerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsubtotal != nil {
		fields = append(fields, invoicerecord.FieldSubtotal)
	}
	if m.addtax != nil {
		fields = append(fields, invoicerecord.FieldTax)
	}
	if m.addtotal != nil {
		fields = append(fields, invoicerecord.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoicerecord.FieldSubtotal:
		return m.AddedSubtotal()
	case invoicerecord.FieldTax:
		return m.AddedTax()
	case invoicerecord.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoicerecord.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case invoicerecord.FieldTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTax(v)
		return nil
	case invoicerecord.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoicerecord.FieldWarnings) {
		fields = append(fields, invoicerecord.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceRecordMutation) ClearField(name string) error {
	switch name {
	case invoicerecord.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown InvoiceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceRecordMutation) ResetField(name string) error {
	switch name {
	case invoicerecord.FieldJobID:
		m.ResetJobID()
		return nil
	case invoicerecord.FieldVendor:
		m.ResetVendor()
		return nil
	case invoicerecord.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoicerecord.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoicerecord.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case invoicerecord.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case invoicerecord.FieldTax:
		m.ResetTax()
		return nil
	case invoicerecord.FieldTotal:
		m.ResetTotal()
		return nil
	case invoicerecord.FieldLineItems:
		m.ResetLineItems()
		return nil
	case invoicerecord.FieldWarnings:
		m.ResetWarnings()
		return nil
	case invoicerecord.FieldSummary:
		m.ResetSummary()
		return nil
	case invoicerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InvoiceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, invoicerecord.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoicerecord.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, invoicerecord.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case invoicerecord.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceRecordMutation) ClearEdge(name string) error {
	switch name {
	case invoicerecord.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown InvoiceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceRecordMutation) ResetEdge(name string) error {
	switch name {
	case invoicerecord.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown InvoiceRecord edge %s", name)
}

// ParseJobMutation represents an operation that mutates the ParseJob nodes in the graph.
type ParseJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	document_url       *string
	status             *string
	page_count         *int
	addpage_count      *int
	merged_text        *string
	warning_count      *int
	addwarning_count   *int
	line_item_count    *int
	addline_item_count *int
	summary            *string
	error_message      *string
	started_at         *time.Time
	finished_at        *time.Time
	clearedFields      map[string]struct{}
	invoice            *uuid.UUID
	clearedinvoice     bool
	done               bool
	oldValue           func(context.Context) (*ParseJob, error)
	predicates         []predicate.ParseJob
}

var _ ent.Mutation = (*ParseJobMutation)(nil)

// parsejobOption allows management of the mutation configuration using functional options.
type parsejobOption func(*ParseJobMutation)

// newParseJobMutation creates new mutation for the ParseJob entity.
func newParseJobMutation(c config, op Op, opts ...parsejobOption) *ParseJobMutation {
	m := &ParseJobMutation{
		config:        c,
		op:            op,
		typ:           TypeParseJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseJobID sets the ID field of the mutation.
func withParseJobID(id uuid.UUID) parsejobOption {
	return func(m *ParseJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseJob
		)
		m.oldValue = func(ctx context.Context) (*ParseJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseJob sets the old ParseJob of the mutation.
func withParseJob(node *ParseJob) parsejobOption {
	return func(m *ParseJobMutation) {
		m.oldValue = func(context.Context) (*ParseJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseJob entities.
func (m *ParseJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentURL sets the "document_url" field.
func (m *ParseJobMutation) SetDocumentURL(s string) {
	m.document_url = &s
}

// DocumentURL returns the value of the "document_url" field in the mutation.
func (m *ParseJobMutation) DocumentURL() (r string, exists bool) {
	v := m.document_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentURL returns the old "document_url" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldDocumentURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentURL: %w", err)
	}
	return oldValue.DocumentURL, nil
}

// ResetDocumentURL resets all changes to the "document_url" field.
func (m *ParseJobMutation) ResetDocumentURL() {
	m.document_url = nil
}

// SetStatus sets the "status" field.
func (m *ParseJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParseJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ParseJobMutation) ResetStatus() {
	m.status = nil
}

// SetPageCount sets the "page_count" field.
func (m *ParseJobMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *ParseJobMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *ParseJobMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *ParseJobMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *ParseJobMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetMergedText sets the "merged_text" field.
func (m *ParseJobMutation) SetMergedText(s string) {
	m.merged_text = &s
}

// MergedText returns the value of the "merged_text" field in the mutation.
func (m *ParseJobMutation) MergedText() (r string, exists bool) {
	v := m.merged_text
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedText returns the old "merged_text" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldMergedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedText: %w", err)
	}
	return oldValue.MergedText, nil
}

// ClearMergedText clears the value of the "merged_text" field.
func (m *ParseJobMutation) ClearMergedText() {
	m.merged_text = nil
	m.clearedFields[parsejob.FieldMergedText] = struct{}{}
}

// MergedTextCleared returns if the "merged_text" field was cleared in this mutation.
func (m *ParseJobMutation) MergedTextCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldMergedText]
	return ok
}

// ResetMergedText resets all changes to the "merged_text" field.
func (m *ParseJobMutation) ResetMergedText() {
	m.merged_text = nil
	delete(m.clearedFields, parsejob.FieldMergedText)
}

// SetWarningCount sets the "warning_count" field.
func (m *ParseJobMutation) SetWarningCount(i int) {
	m.warning_count = &i
	m.addwarning_count = nil
}

// WarningCount returns the value of the "warning_count" field in the mutation.
func (m *ParseJobMutation) WarningCount() (r int, exists bool) {
	v := m.warning_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningCount returns the old "warning_count" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldWarningCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningCount: %w", err)
	}
	return oldValue.WarningCount, nil
}

// AddWarningCount adds i to the "warning_count" field.
func (m *ParseJobMutation) AddWarningCount(i int) {
	if m.addwarning_count != nil {
		*m.addwarning_count += i
	} else {
		m.addwarning_count = &i
	}
}

// AddedWarningCount returns the value that was added to the "warning_count" field in this mutation.
func (m *ParseJobMutation) AddedWarningCount() (r int, exists bool) {
	v := m.addwarning_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWarningCount resets all changes to the "warning_count" field.
func (m *ParseJobMutation) ResetWarningCount() {
	m.warning_count = nil
	m.addwarning_count = nil
}

// SetLineItemCount sets the "line_item_count" field.
func (m *ParseJobMutation) SetLineItemCount(i int) {
	m.line_item_count = &i
	m.addline_item_count = nil
}

// LineItemCount returns the value of the "line_item_count" field in the mutation.
func (m *ParseJobMutation) LineItemCount() (r int, exists bool) {
	v := m.line_item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLineItemCount returns the old "line_item_count" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldLineItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineItemCount: %w", err)
	}
	return oldValue.LineItemCount, nil
}

// AddLineItemCount adds i to the "line_item_count" field.
func (m *ParseJobMutation) AddLineItemCount(i int) {
	if m.addline_item_count != nil {
		*m.addline_item_count += i
	} else {
		m.addline_item_count = &i
	}
}

// AddedLineItemCount returns the value that was added to the "line_item_count" field in this mutation.
func (m *ParseJobMutation) AddedLineItemCount() (r int, exists bool) {
	v := m.addline_item_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineItemCount resets all changes to the "line_item_count" field.
func (m *ParseJobMutation) ResetLineItemCount() {
	m.line_item_count = nil
	m.addline_item_count = nil
}

// SetSummary sets the "summary" field.
func (m *ParseJobMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ParseJobMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ParseJobMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[parsejob.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ParseJobMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ParseJobMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, parsejob.FieldSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *ParseJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ParseJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ParseJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[parsejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ParseJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ParseJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, parsejob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ParseJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ParseJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ParseJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ParseJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ParseJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ParseJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[parsejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ParseJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ParseJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, parsejob.FieldFinishedAt)
}

// SetInvoiceID sets the "invoice" edge to the InvoiceRecord entity by id.
func (m *ParseJobMutation) SetInvoiceID(id uuid.UUID) {
	m.invoice = &id
}

// ClearInvoice clears the "invoice" edge to the InvoiceRecord entity.
func (m *ParseJobMutation) ClearInvoice() {
	m.clearedinvoice = true
}

// InvoiceCleared reports if the "invoice" edge to the InvoiceRecord entity was cleared.
func (m *ParseJobMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceID returns the "invoice" edge ID in the mutation.
func (m *ParseJobMutation) InvoiceID() (id uuid.UUID, exists bool) {
	if m.invoice != nil {
		return *m.invoice, true
	}
	return
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *ParseJobMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the ParseJobMutation builder.
func (m *ParseJobMutation) Where(ps ...predicate.ParseJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseJob).
func (m *ParseJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document_url != nil {
		fields = append(fields, parsejob.FieldDocumentURL)
	}
	if m.status != nil {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.page_count != nil {
		fields = append(fields, parsejob.FieldPageCount)
	}
	if m.merged_text != nil {
		fields = append(fields, parsejob.FieldMergedText)
	}
	if m.warning_count != nil {
		fields = append(fields, parsejob.FieldWarningCount)
	}
	if m.line_item_count != nil {
		fields = append(fields, parsejob.FieldLineItemCount)
	}
	if m.summary != nil {
		fields = append(fields, parsejob.FieldSummary)
	}
	if m.error_message != nil {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, parsejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldDocumentURL:
		return m.DocumentURL()
	case parsejob.FieldStatus:
		return m.Status()
	case parsejob.FieldPageCount:
		return m.PageCount()
	case parsejob.FieldMergedText:
		return m.MergedText()
	case parsejob.FieldWarningCount:
		return m.WarningCount()
	case parsejob.FieldLineItemCount:
		return m.LineItemCount()
	case parsejob.FieldSummary:
		return m.Summary()
	case parsejob.FieldErrorMessage:
		return m.ErrorMessage()
	case parsejob.FieldStartedAt:
		return m.StartedAt()
	case parsejob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parsejob.FieldDocumentURL:
		return m.OldDocumentURL(ctx)
	case parsejob.FieldStatus:
		return m.OldStatus(ctx)
	case parsejob.FieldPageCount:
		return m.OldPageCount(ctx)
	case parsejob.FieldMergedText:
		return m.OldMergedText(ctx)
	case parsejob.FieldWarningCount:
		return m.OldWarningCount(ctx)
	case parsejob.FieldLineItemCount:
		return m.OldLineItemCount(ctx)
	case parsejob.FieldSummary:
		return m.OldSummary(ctx)
	case parsejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case parsejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case parsejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ParseJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldDocumentURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentURL(v)
		return nil
	case parsejob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case parsejob.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case parsejob.FieldMergedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedText(v)
		return nil
	case parsejob.FieldWarningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningCount(v)
		return nil
	case parsejob.FieldLineItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineItemCount(v)
		return nil
	case parsejob.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case parsejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case parsejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case parsejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseJobMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, parsejob.FieldPageCount)
	}
	if m.addwarning_count != nil {
		fields = append(fields, parsejob.FieldWarningCount)
	}
	if m.addline_item_count != nil {
		fields = append(fields, parsejob.FieldLineItemCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldPageCount:
		return m.AddedPageCount()
	case parsejob.FieldWarningCount:
		return m.AddedWarningCount()
	case parsejob.FieldLineItemCount:
		return m.AddedLineItemCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case parsejob.FieldWarningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWarningCount(v)
		return nil
	case parsejob.FieldLineItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineItemCount(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parsejob.FieldMergedText) {
		fields = append(fields, parsejob.FieldMergedText)
	}
	if m.FieldCleared(parsejob.FieldSummary) {
		fields = append(fields, parsejob.FieldSummary)
	}
	if m.FieldCleared(parsejob.FieldErrorMessage) {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.FieldCleared(parsejob.FieldFinishedAt) {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseJobMutation) ClearField(name string) error {
	switch name {
	case parsejob.FieldMergedText:
		m.ClearMergedText()
		return nil
	case parsejob.FieldSummary:
		m.ClearSummary()
		return nil
	case parsejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case parsejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ParseJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseJobMutation) ResetField(name string) error {
	switch name {
	case parsejob.FieldDocumentURL:
		m.ResetDocumentURL()
		return nil
	case parsejob.FieldStatus:
		m.ResetStatus()
		return nil
	case parsejob.FieldPageCount:
		m.ResetPageCount()
		return nil
	case parsejob.FieldMergedText:
		m.ResetMergedText()
		return nil
	case parsejob.FieldWarningCount:
		m.ResetWarningCount()
		return nil
	case parsejob.FieldLineItemCount:
		m.ResetLineItemCount()
		return nil
	case parsejob.FieldSummary:
		m.ResetSummary()
		return nil
	case parsejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case parsejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case parsejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, parsejob.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parsejob.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, parsejob.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseJobMutation) EdgeCleared(name string) bool {
	switch name {
	case parsejob.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseJobMutation) ClearEdge(name string) error {
	switch name {
	case parsejob.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown ParseJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseJobMutation) ResetEdge(name string) error {
	switch name {
	case parsejob.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown ParseJob edge %s", name)
}
