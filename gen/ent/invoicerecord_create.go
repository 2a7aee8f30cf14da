// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/gen/ent/parsejob"
	"github.com/parsewell/invoice-parser/internal/entity"
)

// InvoiceRecordCreate is the builder for creating a InvoiceRecord entity.
type InvoiceRecordCreate struct {
	config
	mutation *InvoiceRecordMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *InvoiceRecordCreate) SetJobID(v uuid.UUID) *InvoiceRecordCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *InvoiceRecordCreate) SetVendor(v string) *InvoiceRecordCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceRecordCreate) SetInvoiceDate(v string) *InvoiceRecordCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceRecordCreate) SetInvoiceNumber(v string) *InvoiceRecordCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *InvoiceRecordCreate) SetCurrencyCode(v string) *InvoiceRecordCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *InvoiceRecordCreate) SetSubtotal(v float64) *InvoiceRecordCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetTax sets the "tax" field.
func (_c *InvoiceRecordCreate) SetTax(v float64) *InvoiceRecordCreate {
	_c.mutation.SetTax(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *InvoiceRecordCreate) SetTotal(v float64) *InvoiceRecordCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetLineItems sets the "line_items" field.
func (_c *InvoiceRecordCreate) SetLineItems(v []entity.LineItem) *InvoiceRecordCreate {
	_c.mutation.SetLineItems(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *InvoiceRecordCreate) SetWarnings(v []entity.Warning) *InvoiceRecordCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *InvoiceRecordCreate) SetSummary(v string) *InvoiceRecordCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceRecordCreate) SetCreatedAt(v time.Time) *InvoiceRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceRecordCreate) SetNillableCreatedAt(v *time.Time) *InvoiceRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceRecordCreate) SetID(v uuid.UUID) *InvoiceRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceRecordCreate) SetNillableID(v *uuid.UUID) *InvoiceRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ParseJob entity.
func (_c *InvoiceRecordCreate) SetJob(v *ParseJob) *InvoiceRecordCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the InvoiceRecordMutation object of the builder.
func (_c *InvoiceRecordCreate) Mutation() *InvoiceRecordMutation {
	return _c.mutation
}

// Save creates the InvoiceRecord in the database.
func (_c *InvoiceRecordCreate) Save(ctx context.Context) (*InvoiceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceRecordCreate) SaveX(ctx context.Context) *InvoiceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoicerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoicerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceRecordCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "InvoiceRecord.job_id"`)}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "InvoiceRecord.vendor"`)}
	}
	if _, ok := _c.mutation.InvoiceDate(); !ok {
		return &ValidationError{Name: "invoice_date", err: errors.New(`ent: missing required field "InvoiceRecord.invoice_date"`)}
	}
	if _, ok := _c.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "InvoiceRecord.invoice_number"`)}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "InvoiceRecord.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := invoicerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "InvoiceRecord.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "InvoiceRecord.subtotal"`)}
	}
	if _, ok := _c.mutation.Tax(); !ok {
		return &ValidationError{Name: "tax", err: errors.New(`ent: missing required field "InvoiceRecord.tax"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "InvoiceRecord.total"`)}
	}
	if _, ok := _c.mutation.LineItems(); !ok {
		return &ValidationError{Name: "line_items", err: errors.New(`ent: missing required field "InvoiceRecord.line_items"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "InvoiceRecord.summary"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InvoiceRecord.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "InvoiceRecord.job"`)}
	}
	return nil
}

func (_c *InvoiceRecordCreate) sqlSave(ctx context.Context) (*InvoiceRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceRecordCreate) createSpec() (*InvoiceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoicerecord.Table, sqlgraph.NewFieldSpec(invoicerecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(invoicerecord.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoicerecord.FieldInvoiceDate, field.TypeString, value)
		_node.InvoiceDate = value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoicerecord.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(invoicerecord.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(invoicerecord.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = value
	}
	if value, ok := _c.mutation.Tax(); ok {
		_spec.SetField(invoicerecord.FieldTax, field.TypeFloat64, value)
		_node.Tax = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(invoicerecord.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.LineItems(); ok {
		_spec.SetField(invoicerecord.FieldLineItems, field.TypeJSON, value)
		_node.LineItems = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(invoicerecord.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(invoicerecord.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoicerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceRecordCreateBulk is the builder for creating many InvoiceRecord entities in bulk.
type InvoiceRecordCreateBulk struct {
	config
	err      error
	builders []*InvoiceRecordCreate
}

// Save creates the InvoiceRecord entities in the database.
func (_c *InvoiceRecordCreateBulk) Save(ctx context.Context) ([]*InvoiceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceRecordCreateBulk) SaveX(ctx context.Context) []*InvoiceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
