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
)

// ParseJobCreate is the builder for creating a ParseJob entity.
type ParseJobCreate struct {
	config
	mutation *ParseJobMutation
	hooks    []Hook
}

// SetDocumentURL sets the "document_url" field.
func (_c *ParseJobCreate) SetDocumentURL(v string) *ParseJobCreate {
	_c.mutation.SetDocumentURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ParseJobCreate) SetStatus(v string) *ParseJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *ParseJobCreate) SetPageCount(v int) *ParseJobCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillablePageCount(v *int) *ParseJobCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetMergedText sets the "merged_text" field.
func (_c *ParseJobCreate) SetMergedText(v string) *ParseJobCreate {
	_c.mutation.SetMergedText(v)
	return _c
}

// SetNillableMergedText sets the "merged_text" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableMergedText(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetMergedText(*v)
	}
	return _c
}

// SetWarningCount sets the "warning_count" field.
func (_c *ParseJobCreate) SetWarningCount(v int) *ParseJobCreate {
	_c.mutation.SetWarningCount(v)
	return _c
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableWarningCount(v *int) *ParseJobCreate {
	if v != nil {
		_c.SetWarningCount(*v)
	}
	return _c
}

// SetLineItemCount sets the "line_item_count" field.
func (_c *ParseJobCreate) SetLineItemCount(v int) *ParseJobCreate {
	_c.mutation.SetLineItemCount(v)
	return _c
}

// SetNillableLineItemCount sets the "line_item_count" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableLineItemCount(v *int) *ParseJobCreate {
	if v != nil {
		_c.SetLineItemCount(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ParseJobCreate) SetSummary(v string) *ParseJobCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableSummary(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ParseJobCreate) SetErrorMessage(v string) *ParseJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableErrorMessage(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ParseJobCreate) SetStartedAt(v time.Time) *ParseJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableStartedAt(v *time.Time) *ParseJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ParseJobCreate) SetFinishedAt(v time.Time) *ParseJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableFinishedAt(v *time.Time) *ParseJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParseJobCreate) SetID(v uuid.UUID) *ParseJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableID(v *uuid.UUID) *ParseJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoiceID sets the "invoice" edge to the InvoiceRecord entity by ID.
func (_c *ParseJobCreate) SetInvoiceID(id uuid.UUID) *ParseJobCreate {
	_c.mutation.SetInvoiceID(id)
	return _c
}

// SetNillableInvoiceID sets the "invoice" edge to the InvoiceRecord entity by ID if the given value is not nil.
func (_c *ParseJobCreate) SetNillableInvoiceID(id *uuid.UUID) *ParseJobCreate {
	if id != nil {
		_c = _c.SetInvoiceID(*id)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the InvoiceRecord entity.
func (_c *ParseJobCreate) SetInvoice(v *InvoiceRecord) *ParseJobCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_c *ParseJobCreate) Mutation() *ParseJobMutation {
	return _c.mutation
}

// Save creates the ParseJob in the database.
func (_c *ParseJobCreate) Save(ctx context.Context) (*ParseJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParseJobCreate) SaveX(ctx context.Context) *ParseJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParseJobCreate) defaults() {
	if _, ok := _c.mutation.PageCount(); !ok {
		v := parsejob.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		v := parsejob.DefaultWarningCount
		_c.mutation.SetWarningCount(v)
	}
	if _, ok := _c.mutation.LineItemCount(); !ok {
		v := parsejob.DefaultLineItemCount
		_c.mutation.SetLineItemCount(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := parsejob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parsejob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParseJobCreate) check() error {
	if _, ok := _c.mutation.DocumentURL(); !ok {
		return &ValidationError{Name: "document_url", err: errors.New(`ent: missing required field "ParseJob.document_url"`)}
	}
	if v, ok := _c.mutation.DocumentURL(); ok {
		if err := parsejob.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "ParseJob.document_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ParseJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := parsejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "ParseJob.page_count"`)}
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		return &ValidationError{Name: "warning_count", err: errors.New(`ent: missing required field "ParseJob.warning_count"`)}
	}
	if _, ok := _c.mutation.LineItemCount(); !ok {
		return &ValidationError{Name: "line_item_count", err: errors.New(`ent: missing required field "ParseJob.line_item_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ParseJob.started_at"`)}
	}
	return nil
}

func (_c *ParseJobCreate) sqlSave(ctx context.Context) (*ParseJob, error) {
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

func (_c *ParseJobCreate) createSpec() (*ParseJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ParseJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parsejob.Table, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentURL(); ok {
		_spec.SetField(parsejob.FieldDocumentURL, field.TypeString, value)
		_node.DocumentURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(parsejob.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.MergedText(); ok {
		_spec.SetField(parsejob.FieldMergedText, field.TypeString, value)
		_node.MergedText = &value
	}
	if value, ok := _c.mutation.WarningCount(); ok {
		_spec.SetField(parsejob.FieldWarningCount, field.TypeInt, value)
		_node.WarningCount = value
	}
	if value, ok := _c.mutation.LineItemCount(); ok {
		_spec.SetField(parsejob.FieldLineItemCount, field.TypeInt, value)
		_node.LineItemCount = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(parsejob.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   parsejob.InvoiceTable,
			Columns: []string{parsejob.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicerecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ParseJobCreateBulk is the builder for creating many ParseJob entities in bulk.
type ParseJobCreateBulk struct {
	config
	err      error
	builders []*ParseJobCreate
}

// Save creates the ParseJob entities in the database.
func (_c *ParseJobCreateBulk) Save(ctx context.Context) ([]*ParseJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParseJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParseJobMutation)
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
func (_c *ParseJobCreateBulk) SaveX(ctx context.Context) []*ParseJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
