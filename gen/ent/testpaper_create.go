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
	"github.com/papertalk/papertalk/gen/ent/testpaper"
)

// TestPaperCreate is the builder for creating a TestPaper entity.
type TestPaperCreate struct {
	config
	mutation *TestPaperMutation
	hooks    []Hook
}

// SetFileURL sets the "file_url" field.
func (_c *TestPaperCreate) SetFileURL(v string) *TestPaperCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *TestPaperCreate) SetContentType(v string) *TestPaperCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *TestPaperCreate) SetNillableContentType(v *string) *TestPaperCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestPaperCreate) SetCreatedAt(v time.Time) *TestPaperCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestPaperCreate) SetNillableCreatedAt(v *time.Time) *TestPaperCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestPaperCreate) SetID(v uuid.UUID) *TestPaperCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestPaperCreate) SetNillableID(v *uuid.UUID) *TestPaperCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TestPaperMutation object of the builder.
func (_c *TestPaperCreate) Mutation() *TestPaperMutation {
	return _c.mutation
}

// Save creates the TestPaper in the database.
func (_c *TestPaperCreate) Save(ctx context.Context) (*TestPaper, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestPaperCreate) SaveX(ctx context.Context) *TestPaper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestPaperCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestPaperCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestPaperCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testpaper.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testpaper.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestPaperCreate) check() error {
	if _, ok := _c.mutation.FileURL(); !ok {
		return &ValidationError{Name: "file_url", err: errors.New(`ent: missing required field "TestPaper.file_url"`)}
	}
	if v, ok := _c.mutation.FileURL(); ok {
		if err := testpaper.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "TestPaper.file_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestPaper.created_at"`)}
	}
	return nil
}

func (_c *TestPaperCreate) sqlSave(ctx context.Context) (*TestPaper, error) {
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

func (_c *TestPaperCreate) createSpec() (*TestPaper, *sqlgraph.CreateSpec) {
	var (
		_node = &TestPaper{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testpaper.Table, sqlgraph.NewFieldSpec(testpaper.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(testpaper.FieldFileURL, field.TypeString, value)
		_node.FileURL = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(testpaper.FieldContentType, field.TypeString, value)
		_node.ContentType = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testpaper.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TestPaperCreateBulk is the builder for creating many TestPaper entities in bulk.
type TestPaperCreateBulk struct {
	config
	err      error
	builders []*TestPaperCreate
}

// Save creates the TestPaper entities in the database.
func (_c *TestPaperCreateBulk) Save(ctx context.Context) ([]*TestPaper, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestPaper, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestPaperMutation)
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
func (_c *TestPaperCreateBulk) SaveX(ctx context.Context) []*TestPaper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestPaperCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestPaperCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
