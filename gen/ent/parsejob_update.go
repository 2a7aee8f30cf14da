// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/gen/ent/parsejob"
	"github.com/parsewell/invoice-parser/gen/ent/predicate"
)

// ParseJobUpdate is the builder for updating ParseJob entities.
type ParseJobUpdate struct {
	config
	hooks    []Hook
	mutation *ParseJobMutation
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdate) Where(ps ...predicate.ParseJob) *ParseJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentURL sets the "document_url" field.
func (_u *ParseJobUpdate) SetDocumentURL(v string) *ParseJobUpdate {
	_u.mutation.SetDocumentURL(v)
	return _u
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableDocumentURL(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetDocumentURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdate) SetStatus(v string) *ParseJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStatus(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *ParseJobUpdate) SetPageCount(v int) *ParseJobUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillablePageCount(v *int) *ParseJobUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *ParseJobUpdate) AddPageCount(v int) *ParseJobUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetMergedText sets the "merged_text" field.
func (_u *ParseJobUpdate) SetMergedText(v string) *ParseJobUpdate {
	_u.mutation.SetMergedText(v)
	return _u
}

// SetNillableMergedText sets the "merged_text" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableMergedText(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetMergedText(*v)
	}
	return _u
}

// ClearMergedText clears the value of the "merged_text" field.
func (_u *ParseJobUpdate) ClearMergedText() *ParseJobUpdate {
	_u.mutation.ClearMergedText()
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ParseJobUpdate) SetWarningCount(v int) *ParseJobUpdate {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableWarningCount(v *int) *ParseJobUpdate {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ParseJobUpdate) AddWarningCount(v int) *ParseJobUpdate {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetLineItemCount sets the "line_item_count" field.
func (_u *ParseJobUpdate) SetLineItemCount(v int) *ParseJobUpdate {
	_u.mutation.ResetLineItemCount()
	_u.mutation.SetLineItemCount(v)
	return _u
}

// SetNillableLineItemCount sets the "line_item_count" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableLineItemCount(v *int) *ParseJobUpdate {
	if v != nil {
		_u.SetLineItemCount(*v)
	}
	return _u
}

// AddLineItemCount adds value to the "line_item_count" field.
func (_u *ParseJobUpdate) AddLineItemCount(v int) *ParseJobUpdate {
	_u.mutation.AddLineItemCount(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ParseJobUpdate) SetSummary(v string) *ParseJobUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableSummary(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ParseJobUpdate) ClearSummary() *ParseJobUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdate) SetErrorMessage(v string) *ParseJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableErrorMessage(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdate) ClearErrorMessage() *ParseJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdate) SetStartedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStartedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdate) SetFinishedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFinishedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdate) ClearFinishedAt() *ParseJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetInvoiceID sets the "invoice" edge to the InvoiceRecord entity by ID.
func (_u *ParseJobUpdate) SetInvoiceID(id uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetNillableInvoiceID sets the "invoice" edge to the InvoiceRecord entity by ID if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableInvoiceID(id *uuid.UUID) *ParseJobUpdate {
	if id != nil {
		_u = _u.SetInvoiceID(*id)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the InvoiceRecord entity.
func (_u *ParseJobUpdate) SetInvoice(v *InvoiceRecord) *ParseJobUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdate) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the InvoiceRecord entity.
func (_u *ParseJobUpdate) ClearInvoice() *ParseJobUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdate) check() error {
	if v, ok := _u.mutation.DocumentURL(); ok {
		if err := parsejob.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "ParseJob.document_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := parsejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ParseJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentURL(); ok {
		_spec.SetField(parsejob.FieldDocumentURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(parsejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(parsejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MergedText(); ok {
		_spec.SetField(parsejob.FieldMergedText, field.TypeString, value)
	}
	if _u.mutation.MergedTextCleared() {
		_spec.ClearField(parsejob.FieldMergedText, field.TypeString)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(parsejob.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(parsejob.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineItemCount(); ok {
		_spec.SetField(parsejob.FieldLineItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineItemCount(); ok {
		_spec.AddField(parsejob.FieldLineItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(parsejob.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(parsejob.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.InvoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseJobUpdateOne is the builder for updating a single ParseJob entity.
type ParseJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseJobMutation
}

// SetDocumentURL sets the "document_url" field.
func (_u *ParseJobUpdateOne) SetDocumentURL(v string) *ParseJobUpdateOne {
	_u.mutation.SetDocumentURL(v)
	return _u
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableDocumentURL(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetDocumentURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdateOne) SetStatus(v string) *ParseJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStatus(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *ParseJobUpdateOne) SetPageCount(v int) *ParseJobUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillablePageCount(v *int) *ParseJobUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *ParseJobUpdateOne) AddPageCount(v int) *ParseJobUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetMergedText sets the "merged_text" field.
func (_u *ParseJobUpdateOne) SetMergedText(v string) *ParseJobUpdateOne {
	_u.mutation.SetMergedText(v)
	return _u
}

// SetNillableMergedText sets the "merged_text" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableMergedText(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetMergedText(*v)
	}
	return _u
}

// ClearMergedText clears the value of the "merged_text" field.
func (_u *ParseJobUpdateOne) ClearMergedText() *ParseJobUpdateOne {
	_u.mutation.ClearMergedText()
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ParseJobUpdateOne) SetWarningCount(v int) *ParseJobUpdateOne {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableWarningCount(v *int) *ParseJobUpdateOne {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ParseJobUpdateOne) AddWarningCount(v int) *ParseJobUpdateOne {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetLineItemCount sets the "line_item_count" field.
func (_u *ParseJobUpdateOne) SetLineItemCount(v int) *ParseJobUpdateOne {
	_u.mutation.ResetLineItemCount()
	_u.mutation.SetLineItemCount(v)
	return _u
}

// SetNillableLineItemCount sets the "line_item_count" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableLineItemCount(v *int) *ParseJobUpdateOne {
	if v != nil {
		_u.SetLineItemCount(*v)
	}
	return _u
}

// AddLineItemCount adds value to the "line_item_count" field.
func (_u *ParseJobUpdateOne) AddLineItemCount(v int) *ParseJobUpdateOne {
	_u.mutation.AddLineItemCount(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ParseJobUpdateOne) SetSummary(v string) *ParseJobUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableSummary(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ParseJobUpdateOne) ClearSummary() *ParseJobUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdateOne) SetErrorMessage(v string) *ParseJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableErrorMessage(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdateOne) ClearErrorMessage() *ParseJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdateOne) SetStartedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStartedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdateOne) SetFinishedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdateOne) ClearFinishedAt() *ParseJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetInvoiceID sets the "invoice" edge to the InvoiceRecord entity by ID.
func (_u *ParseJobUpdateOne) SetInvoiceID(id uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetNillableInvoiceID sets the "invoice" edge to the InvoiceRecord entity by ID if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableInvoiceID(id *uuid.UUID) *ParseJobUpdateOne {
	if id != nil {
		_u = _u.SetInvoiceID(*id)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the InvoiceRecord entity.
func (_u *ParseJobUpdateOne) SetInvoice(v *InvoiceRecord) *ParseJobUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdateOne) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the InvoiceRecord entity.
func (_u *ParseJobUpdateOne) ClearInvoice() *ParseJobUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdateOne) Where(ps ...predicate.ParseJob) *ParseJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseJobUpdateOne) Select(field string, fields ...string) *ParseJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseJob entity.
func (_u *ParseJobUpdateOne) Save(ctx context.Context) (*ParseJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdateOne) SaveX(ctx context.Context) *ParseJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentURL(); ok {
		if err := parsejob.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "ParseJob.document_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := parsejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ParseJobUpdateOne) sqlSave(ctx context.Context) (_node *ParseJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parsejob.FieldID)
		for _, f := range fields {
			if !parsejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parsejob.FieldID {
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
	if value, ok := _u.mutation.DocumentURL(); ok {
		_spec.SetField(parsejob.FieldDocumentURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(parsejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(parsejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MergedText(); ok {
		_spec.SetField(parsejob.FieldMergedText, field.TypeString, value)
	}
	if _u.mutation.MergedTextCleared() {
		_spec.ClearField(parsejob.FieldMergedText, field.TypeString)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(parsejob.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(parsejob.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineItemCount(); ok {
		_spec.SetField(parsejob.FieldLineItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineItemCount(); ok {
		_spec.AddField(parsejob.FieldLineItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(parsejob.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(parsejob.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.InvoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParseJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
