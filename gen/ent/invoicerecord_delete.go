// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/gen/ent/predicate"
)

// InvoiceRecordDelete is the builder for deleting a InvoiceRecord entity.
type InvoiceRecordDelete struct {
	config
	hooks    []Hook
	mutation *InvoiceRecordMutation
}

// Where appends a list predicates to the InvoiceRecordDelete builder.
func (_d *InvoiceRecordDelete) Where(ps ...predicate.InvoiceRecord) *InvoiceRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InvoiceRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InvoiceRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(invoicerecord.Table, sqlgraph.NewFieldSpec(invoicerecord.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InvoiceRecordDeleteOne is the builder for deleting a single InvoiceRecord entity.
type InvoiceRecordDeleteOne struct {
	_d *InvoiceRecordDelete
}

// Where appends a list predicates to the InvoiceRecordDelete builder.
func (_d *InvoiceRecordDeleteOne) Where(ps ...predicate.InvoiceRecord) *InvoiceRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InvoiceRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{invoicerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
