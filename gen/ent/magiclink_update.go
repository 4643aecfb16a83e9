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
	"github.com/papertalk/papertalk/gen/ent/magiclink"
	"github.com/papertalk/papertalk/gen/ent/predicate"
	"github.com/papertalk/papertalk/gen/ent/test"
)

// MagicLinkUpdate is the builder for updating MagicLink entities.
type MagicLinkUpdate struct {
	config
	hooks    []Hook
	mutation *MagicLinkMutation
}

// Where appends a list predicates to the MagicLinkUpdate builder.
func (_u *MagicLinkUpdate) Where(ps ...predicate.MagicLink) *MagicLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *MagicLinkUpdate) SetTestID(v uuid.UUID) *MagicLinkUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *MagicLinkUpdate) SetNillableTestID(v *uuid.UUID) *MagicLinkUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *MagicLinkUpdate) SetToken(v string) *MagicLinkUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *MagicLinkUpdate) SetNillableToken(v *string) *MagicLinkUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *MagicLinkUpdate) SetExpiresAt(v time.Time) *MagicLinkUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *MagicLinkUpdate) SetNillableExpiresAt(v *time.Time) *MagicLinkUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *MagicLinkUpdate) ClearExpiresAt() *MagicLinkUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUsed sets the "used" field.
func (_u *MagicLinkUpdate) SetUsed(v bool) *MagicLinkUpdate {
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *MagicLinkUpdate) SetNillableUsed(v *bool) *MagicLinkUpdate {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *MagicLinkUpdate) SetUsedAt(v time.Time) *MagicLinkUpdate {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *MagicLinkUpdate) SetNillableUsedAt(v *time.Time) *MagicLinkUpdate {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *MagicLinkUpdate) ClearUsedAt() *MagicLinkUpdate {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MagicLinkUpdate) SetCreatedAt(v time.Time) *MagicLinkUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MagicLinkUpdate) SetNillableCreatedAt(v *time.Time) *MagicLinkUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *MagicLinkUpdate) SetTest(v *Test) *MagicLinkUpdate {
	return _u.SetTestID(v.ID)
}

// Mutation returns the MagicLinkMutation object of the builder.
func (_u *MagicLinkUpdate) Mutation() *MagicLinkMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *MagicLinkUpdate) ClearTest() *MagicLinkUpdate {
	_u.mutation.ClearTest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MagicLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MagicLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MagicLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MagicLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MagicLinkUpdate) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := magiclink.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "MagicLink.token": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MagicLink.test"`)
	}
	return nil
}

func (_u *MagicLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(magiclink.Table, magiclink.Columns, sqlgraph.NewFieldSpec(magiclink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(magiclink.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(magiclink.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(magiclink.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(magiclink.FieldUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(magiclink.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(magiclink.FieldUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(magiclink.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   magiclink.TestTable,
			Columns: []string{magiclink.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   magiclink.TestTable,
			Columns: []string{magiclink.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{magiclink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MagicLinkUpdateOne is the builder for updating a single MagicLink entity.
type MagicLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MagicLinkMutation
}

// SetTestID sets the "test_id" field.
func (_u *MagicLinkUpdateOne) SetTestID(v uuid.UUID) *MagicLinkUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *MagicLinkUpdateOne) SetNillableTestID(v *uuid.UUID) *MagicLinkUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *MagicLinkUpdateOne) SetToken(v string) *MagicLinkUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *MagicLinkUpdateOne) SetNillableToken(v *string) *MagicLinkUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *MagicLinkUpdateOne) SetExpiresAt(v time.Time) *MagicLinkUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *MagicLinkUpdateOne) SetNillableExpiresAt(v *time.Time) *MagicLinkUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *MagicLinkUpdateOne) ClearExpiresAt() *MagicLinkUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUsed sets the "used" field.
func (_u *MagicLinkUpdateOne) SetUsed(v bool) *MagicLinkUpdateOne {
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *MagicLinkUpdateOne) SetNillableUsed(v *bool) *MagicLinkUpdateOne {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *MagicLinkUpdateOne) SetUsedAt(v time.Time) *MagicLinkUpdateOne {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *MagicLinkUpdateOne) SetNillableUsedAt(v *time.Time) *MagicLinkUpdateOne {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *MagicLinkUpdateOne) ClearUsedAt() *MagicLinkUpdateOne {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MagicLinkUpdateOne) SetCreatedAt(v time.Time) *MagicLinkUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MagicLinkUpdateOne) SetNillableCreatedAt(v *time.Time) *MagicLinkUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *MagicLinkUpdateOne) SetTest(v *Test) *MagicLinkUpdateOne {
	return _u.SetTestID(v.ID)
}

// Mutation returns the MagicLinkMutation object of the builder.
func (_u *MagicLinkUpdateOne) Mutation() *MagicLinkMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *MagicLinkUpdateOne) ClearTest() *MagicLinkUpdateOne {
	_u.mutation.ClearTest()
	return _u
}

// Where appends a list predicates to the MagicLinkUpdate builder.
func (_u *MagicLinkUpdateOne) Where(ps ...predicate.MagicLink) *MagicLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MagicLinkUpdateOne) Select(field string, fields ...string) *MagicLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MagicLink entity.
func (_u *MagicLinkUpdateOne) Save(ctx context.Context) (*MagicLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MagicLinkUpdateOne) SaveX(ctx context.Context) *MagicLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MagicLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MagicLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MagicLinkUpdateOne) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := magiclink.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "MagicLink.token": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MagicLink.test"`)
	}
	return nil
}

func (_u *MagicLinkUpdateOne) sqlSave(ctx context.Context) (_node *MagicLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(magiclink.Table, magiclink.Columns, sqlgraph.NewFieldSpec(magiclink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MagicLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, magiclink.FieldID)
		for _, f := range fields {
			if !magiclink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != magiclink.FieldID {
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
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(magiclink.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(magiclink.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(magiclink.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(magiclink.FieldUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(magiclink.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(magiclink.FieldUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(magiclink.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   magiclink.TestTable,
			Columns: []string{magiclink.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   magiclink.TestTable,
			Columns: []string{magiclink.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MagicLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{magiclink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
