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
	"github.com/papertalk/papertalk/gen/ent/predicate"
	"github.com/papertalk/papertalk/gen/ent/testpaper"
)

// TestPaperUpdate is the builder for updating TestPaper entities.
type TestPaperUpdate struct {
	config
	hooks    []Hook
	mutation *TestPaperMutation
}

// Where appends a list predicates to the TestPaperUpdate builder.
func (_u *TestPaperUpdate) Where(ps ...predicate.TestPaper) *TestPaperUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *TestPaperUpdate) SetFileURL(v string) *TestPaperUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *TestPaperUpdate) SetNillableFileURL(v *string) *TestPaperUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *TestPaperUpdate) SetContentType(v string) *TestPaperUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *TestPaperUpdate) SetNillableContentType(v *string) *TestPaperUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *TestPaperUpdate) ClearContentType() *TestPaperUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TestPaperUpdate) SetCreatedAt(v time.Time) *TestPaperUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TestPaperUpdate) SetNillableCreatedAt(v *time.Time) *TestPaperUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TestPaperMutation object of the builder.
func (_u *TestPaperUpdate) Mutation() *TestPaperMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestPaperUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestPaperUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestPaperUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestPaperUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestPaperUpdate) check() error {
	if v, ok := _u.mutation.FileURL(); ok {
		if err := testpaper.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "TestPaper.file_url": %w`, err)}
		}
	}
	return nil
}

func (_u *TestPaperUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testpaper.Table, testpaper.Columns, sqlgraph.NewFieldSpec(testpaper.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(testpaper.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(testpaper.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(testpaper.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(testpaper.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testpaper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestPaperUpdateOne is the builder for updating a single TestPaper entity.
type TestPaperUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestPaperMutation
}

// SetFileURL sets the "file_url" field.
func (_u *TestPaperUpdateOne) SetFileURL(v string) *TestPaperUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *TestPaperUpdateOne) SetNillableFileURL(v *string) *TestPaperUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *TestPaperUpdateOne) SetContentType(v string) *TestPaperUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *TestPaperUpdateOne) SetNillableContentType(v *string) *TestPaperUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *TestPaperUpdateOne) ClearContentType() *TestPaperUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TestPaperUpdateOne) SetCreatedAt(v time.Time) *TestPaperUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TestPaperUpdateOne) SetNillableCreatedAt(v *time.Time) *TestPaperUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TestPaperMutation object of the builder.
func (_u *TestPaperUpdateOne) Mutation() *TestPaperMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestPaperUpdate builder.
func (_u *TestPaperUpdateOne) Where(ps ...predicate.TestPaper) *TestPaperUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestPaperUpdateOne) Select(field string, fields ...string) *TestPaperUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestPaper entity.
func (_u *TestPaperUpdateOne) Save(ctx context.Context) (*TestPaper, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestPaperUpdateOne) SaveX(ctx context.Context) *TestPaper {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestPaperUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestPaperUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestPaperUpdateOne) check() error {
	if v, ok := _u.mutation.FileURL(); ok {
		if err := testpaper.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "TestPaper.file_url": %w`, err)}
		}
	}
	return nil
}

func (_u *TestPaperUpdateOne) sqlSave(ctx context.Context) (_node *TestPaper, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testpaper.Table, testpaper.Columns, sqlgraph.NewFieldSpec(testpaper.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestPaper.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testpaper.FieldID)
		for _, f := range fields {
			if !testpaper.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testpaper.FieldID {
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
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(testpaper.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(testpaper.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(testpaper.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(testpaper.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &TestPaper{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testpaper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
