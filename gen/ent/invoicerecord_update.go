// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/gen/ent/parsejob"
	"github.com/parsewell/invoice-parser/gen/ent/predicate"
	"github.com/parsewell/invoice-parser/internal/entity"
)

// InvoiceRecordUpdate is the builder for updating InvoiceRecord entities.
type InvoiceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceRecordMutation
}

// Where appends a list predicates to the InvoiceRecordUpdate builder.
func (_u *InvoiceRecordUpdate) Where(ps ...predicate.InvoiceRecord) *InvoiceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *InvoiceRecordUpdate) SetJobID(v uuid.UUID) *InvoiceRecordUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableJobID(v *uuid.UUID) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *InvoiceRecordUpdate) SetVendor(v string) *InvoiceRecordUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableVendor(v *string) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceRecordUpdate) SetInvoiceDate(v string) *InvoiceRecordUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableInvoiceDate(v *string) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceRecordUpdate) SetInvoiceNumber(v string) *InvoiceRecordUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableInvoiceNumber(v *string) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceRecordUpdate) SetCurrencyCode(v string) *InvoiceRecordUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableCurrencyCode(v *string) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceRecordUpdate) SetSubtotal(v float64) *InvoiceRecordUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableSubtotal(v *float64) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceRecordUpdate) AddSubtotal(v float64) *InvoiceRecordUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetTax sets the "tax" field.
func (_u *InvoiceRecordUpdate) SetTax(v float64) *InvoiceRecordUpdate {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableTax(v *float64) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *InvoiceRecordUpdate) AddTax(v float64) *InvoiceRecordUpdate {
	_u.mutation.AddTax(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceRecordUpdate) SetTotal(v float64) *InvoiceRecordUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableTotal(v *float64) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceRecordUpdate) AddTotal(v float64) *InvoiceRecordUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *InvoiceRecordUpdate) SetLineItems(v []entity.LineItem) *InvoiceRecordUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *InvoiceRecordUpdate) AppendLineItems(v []entity.LineItem) *InvoiceRecordUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *InvoiceRecordUpdate) SetWarnings(v []entity.Warning) *InvoiceRecordUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *InvoiceRecordUpdate) AppendWarnings(v []entity.Warning) *InvoiceRecordUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *InvoiceRecordUpdate) ClearWarnings() *InvoiceRecordUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InvoiceRecordUpdate) SetSummary(v string) *InvoiceRecordUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableSummary(v *string) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceRecordUpdate) SetCreatedAt(v time.Time) *InvoiceRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceRecordUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ParseJob entity.
func (_u *InvoiceRecordUpdate) SetJob(v *ParseJob) *InvoiceRecordUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the InvoiceRecordMutation object of the builder.
func (_u *InvoiceRecordUpdate) Mutation() *InvoiceRecordMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ParseJob entity.
func (_u *InvoiceRecordUpdate) ClearJob() *InvoiceRecordUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceRecordUpdate) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoicerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "InvoiceRecord.currency_code": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceRecord.job"`)
	}
	return nil
}

func (_u *InvoiceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicerecord.Table, invoicerecord.Columns, sqlgraph.NewFieldSpec(invoicerecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(invoicerecord.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoicerecord.FieldInvoiceDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoicerecord.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoicerecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoicerecord.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoicerecord.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(invoicerecord.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(invoicerecord.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoicerecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoicerecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(invoicerecord.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoicerecord.FieldLineItems, value)
		})
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(invoicerecord.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoicerecord.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(invoicerecord.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(invoicerecord.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoicerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoicerecord.JobTable,
			Columns: []string{invoicerecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoicerecord.JobTable,
			Columns: []string{invoicerecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceRecordUpdateOne is the builder for updating a single InvoiceRecord entity.
type InvoiceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceRecordMutation
}

// SetJobID sets the "job_id" field.
func (_u *InvoiceRecordUpdateOne) SetJobID(v uuid.UUID) *InvoiceRecordUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableJobID(v *uuid.UUID) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *InvoiceRecordUpdateOne) SetVendor(v string) *InvoiceRecordUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableVendor(v *string) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceRecordUpdateOne) SetInvoiceDate(v string) *InvoiceRecordUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableInvoiceDate(v *string) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceRecordUpdateOne) SetInvoiceNumber(v string) *InvoiceRecordUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceRecordUpdateOne) SetCurrencyCode(v string) *InvoiceRecordUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableCurrencyCode(v *string) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceRecordUpdateOne) SetSubtotal(v float64) *InvoiceRecordUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableSubtotal(v *float64) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceRecordUpdateOne) AddSubtotal(v float64) *InvoiceRecordUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetTax sets the "tax" field.
func (_u *InvoiceRecordUpdateOne) SetTax(v float64) *InvoiceRecordUpdateOne {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableTax(v *float64) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *InvoiceRecordUpdateOne) AddTax(v float64) *InvoiceRecordUpdateOne {
	_u.mutation.AddTax(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceRecordUpdateOne) SetTotal(v float64) *InvoiceRecordUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableTotal(v *float64) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceRecordUpdateOne) AddTotal(v float64) *InvoiceRecordUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *InvoiceRecordUpdateOne) SetLineItems(v []entity.LineItem) *InvoiceRecordUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *InvoiceRecordUpdateOne) AppendLineItems(v []entity.LineItem) *InvoiceRecordUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *InvoiceRecordUpdateOne) SetWarnings(v []entity.Warning) *InvoiceRecordUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *InvoiceRecordUpdateOne) AppendWarnings(v []entity.Warning) *InvoiceRecordUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *InvoiceRecordUpdateOne) ClearWarnings() *InvoiceRecordUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InvoiceRecordUpdateOne) SetSummary(v string) *InvoiceRecordUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableSummary(v *string) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceRecordUpdateOne) SetCreatedAt(v time.Time) *InvoiceRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ParseJob entity.
func (_u *InvoiceRecordUpdateOne) SetJob(v *ParseJob) *InvoiceRecordUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the InvoiceRecordMutation object of the builder.
func (_u *InvoiceRecordUpdateOne) Mutation() *InvoiceRecordMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ParseJob entity.
func (_u *InvoiceRecordUpdateOne) ClearJob() *InvoiceRecordUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the InvoiceRecordUpdate builder.
func (_u *InvoiceRecordUpdateOne) Where(ps ...predicate.InvoiceRecord) *InvoiceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceRecordUpdateOne) Select(field string, fields ...string) *InvoiceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceRecord entity.
func (_u *InvoiceRecordUpdateOne) Save(ctx context.Context) (*InvoiceRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceRecordUpdateOne) SaveX(ctx context.Context) *InvoiceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoicerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "InvoiceRecord.currency_code": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceRecord.job"`)
	}
	return nil
}

func (_u *InvoiceRecordUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicerecord.Table, invoicerecord.Columns, sqlgraph.NewFieldSpec(invoicerecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicerecord.FieldID)
		for _, f := range fields {
			if !invoicerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(invoicerecord.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoicerecord.FieldInvoiceDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoicerecord.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoicerecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoicerecord.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoicerecord.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(invoicerecord.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(invoicerecord.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoicerecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoicerecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(invoicerecord.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoicerecord.FieldLineItems, value)
		})
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(invoicerecord.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoicerecord.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(invoicerecord.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(invoicerecord.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoicerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoicerecord.JobTable,
			Columns: []string{invoicerecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoicerecord.JobTable,
			Columns: []string{invoicerecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
