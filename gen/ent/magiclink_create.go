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
	"github.com/papertalk/papertalk/gen/ent/magiclink"
	"github.com/papertalk/papertalk/gen/ent/test"
)

// MagicLinkCreate is the builder for creating a MagicLink entity.
type MagicLinkCreate struct {
	config
	mutation *MagicLinkMutation
	hooks    []Hook
}

// SetTestID sets the "test_id" field.
func (_c *MagicLinkCreate) SetTestID(v uuid.UUID) *MagicLinkCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetToken sets the "token" field.
func (_c *MagicLinkCreate) SetToken(v string) *MagicLinkCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *MagicLinkCreate) SetExpiresAt(v time.Time) *MagicLinkCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *MagicLinkCreate) SetNillableExpiresAt(v *time.Time) *MagicLinkCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetUsed sets the "used" field.
func (_c *MagicLinkCreate) SetUsed(v bool) *MagicLinkCreate {
	_c.mutation.SetUsed(v)
	return _c
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_c *MagicLinkCreate) SetNillableUsed(v *bool) *MagicLinkCreate {
	if v != nil {
		_c.SetUsed(*v)
	}
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *MagicLinkCreate) SetUsedAt(v time.Time) *MagicLinkCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *MagicLinkCreate) SetNillableUsedAt(v *time.Time) *MagicLinkCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MagicLinkCreate) SetCreatedAt(v time.Time) *MagicLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MagicLinkCreate) SetNillableCreatedAt(v *time.Time) *MagicLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MagicLinkCreate) SetID(v uuid.UUID) *MagicLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MagicLinkCreate) SetNillableID(v *uuid.UUID) *MagicLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTest sets the "test" edge to the Test entity.
func (_c *MagicLinkCreate) SetTest(v *Test) *MagicLinkCreate {
	return _c.SetTestID(v.ID)
}

// Mutation returns the MagicLinkMutation object of the builder.
func (_c *MagicLinkCreate) Mutation() *MagicLinkMutation {
	return _c.mutation
}

// Save creates the MagicLink in the database.
func (_c *MagicLinkCreate) Save(ctx context.Context) (*MagicLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MagicLinkCreate) SaveX(ctx context.Context) *MagicLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MagicLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MagicLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MagicLinkCreate) defaults() {
	if _, ok := _c.mutation.Used(); !ok {
		v := magiclink.DefaultUsed
		_c.mutation.SetUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := magiclink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := magiclink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MagicLinkCreate) check() error {
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "MagicLink.test_id"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "MagicLink.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := magiclink.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "MagicLink.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Used(); !ok {
		return &ValidationError{Name: "used", err: errors.New(`ent: missing required field "MagicLink.used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MagicLink.created_at"`)}
	}
	if len(_c.mutation.TestIDs()) == 0 {
		return &ValidationError{Name: "test", err: errors.New(`ent: missing required edge "MagicLink.test"`)}
	}
	return nil
}

func (_c *MagicLinkCreate) sqlSave(ctx context.Context) (*MagicLink, error) {
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

func (_c *MagicLinkCreate) createSpec() (*MagicLink, *sqlgraph.CreateSpec) {
	var (
		_node = &MagicLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(magiclink.Table, sqlgraph.NewFieldSpec(magiclink.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(magiclink.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(magiclink.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.Used(); ok {
		_spec.SetField(magiclink.FieldUsed, field.TypeBool, value)
		_node.Used = value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(magiclink.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(magiclink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TestIDs(); len(nodes) > 0 {
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
		_node.TestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MagicLinkCreateBulk is the builder for creating many MagicLink entities in bulk.
type MagicLinkCreateBulk struct {
	config
	err      error
	builders []*MagicLinkCreate
}

// Save creates the MagicLink entities in the database.
func (_c *MagicLinkCreateBulk) Save(ctx context.Context) ([]*MagicLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MagicLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MagicLinkMutation)
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
func (_c *MagicLinkCreateBulk) SaveX(ctx context.Context) []*MagicLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MagicLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MagicLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
