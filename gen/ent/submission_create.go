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
	"github.com/papertalk/papertalk/gen/ent/organization"
	"github.com/papertalk/papertalk/gen/ent/submission"
	"github.com/papertalk/papertalk/gen/ent/test"
	"github.com/papertalk/papertalk/gen/ent/user"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetTestID sets the "test_id" field.
func (_c *SubmissionCreate) SetTestID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *SubmissionCreate) SetOrganizationID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *SubmissionCreate) SetStudentID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStudentID(v *uuid.UUID) *SubmissionCreate {
	if v != nil {
		_c.SetStudentID(*v)
	}
	return _c
}

// SetMagicLinkID sets the "magic_link_id" field.
func (_c *SubmissionCreate) SetMagicLinkID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetMagicLinkID(v)
	return _c
}

// SetNillableMagicLinkID sets the "magic_link_id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableMagicLinkID(v *uuid.UUID) *SubmissionCreate {
	if v != nil {
		_c.SetMagicLinkID(*v)
	}
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *SubmissionCreate) SetStudentName(v string) *SubmissionCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetStudentEmail sets the "student_email" field.
func (_c *SubmissionCreate) SetStudentEmail(v string) *SubmissionCreate {
	_c.mutation.SetStudentEmail(v)
	return _c
}

// SetImageUrls sets the "image_urls" field.
func (_c *SubmissionCreate) SetImageUrls(v []string) *SubmissionCreate {
	_c.mutation.SetImageUrls(v)
	return _c
}

// SetMergedImageURL sets the "merged_image_url" field.
func (_c *SubmissionCreate) SetMergedImageURL(v string) *SubmissionCreate {
	_c.mutation.SetMergedImageURL(v)
	return _c
}

// SetNillableMergedImageURL sets the "merged_image_url" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableMergedImageURL(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetMergedImageURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v string) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *SubmissionCreate) SetProcessingStatus(v string) *SubmissionCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableProcessingStatus(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetAiFeedback sets the "ai_feedback" field.
func (_c *SubmissionCreate) SetAiFeedback(v string) *SubmissionCreate {
	_c.mutation.SetAiFeedback(v)
	return _c
}

// SetNillableAiFeedback sets the "ai_feedback" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableAiFeedback(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetAiFeedback(*v)
	}
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *SubmissionCreate) SetFinalScore(v int) *SubmissionCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableFinalScore(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetFinalScore(*v)
	}
	return _c
}

// SetAudioURL sets the "audio_url" field.
func (_c *SubmissionCreate) SetAudioURL(v string) *SubmissionCreate {
	_c.mutation.SetAudioURL(v)
	return _c
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableAudioURL(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetAudioURL(*v)
	}
	return _c
}

// SetAudioError sets the "audio_error" field.
func (_c *SubmissionCreate) SetAudioError(v string) *SubmissionCreate {
	_c.mutation.SetAudioError(v)
	return _c
}

// SetNillableAudioError sets the "audio_error" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableAudioError(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetAudioError(*v)
	}
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *SubmissionCreate) SetSubmittedBy(v string) *SubmissionCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSubmittedBy(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetSubmittedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableID(v *uuid.UUID) *SubmissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTest sets the "test" edge to the Test entity.
func (_c *SubmissionCreate) SetTest(v *Test) *SubmissionCreate {
	return _c.SetTestID(v.ID)
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *SubmissionCreate) SetOrganization(v *Organization) *SubmissionCreate {
	return _c.SetOrganizationID(v.ID)
}

// SetStudent sets the "student" edge to the User entity.
func (_c *SubmissionCreate) SetStudent(v *User) *SubmissionCreate {
	return _c.SetStudentID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := submission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := submission.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.SubmittedBy(); !ok {
		v := submission.DefaultSubmittedBy
		_c.mutation.SetSubmittedBy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := submission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "Submission.test_id"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Submission.organization_id"`)}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "Submission.student_name"`)}
	}
	if v, ok := _c.mutation.StudentName(); ok {
		if err := submission.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "Submission.student_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentEmail(); !ok {
		return &ValidationError{Name: "student_email", err: errors.New(`ent: missing required field "Submission.student_email"`)}
	}
	if v, ok := _c.mutation.StudentEmail(); ok {
		if err := submission.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`ent: validator failed for field "Submission.student_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageUrls(); !ok {
		return &ValidationError{Name: "image_urls", err: errors.New(`ent: missing required field "Submission.image_urls"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "Submission.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := submission.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Submission.processing_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FinalScore(); ok {
		if err := submission.FinalScoreValidator(v); err != nil {
			return &ValidationError{Name: "final_score", err: fmt.Errorf(`ent: validator failed for field "Submission.final_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedBy(); !ok {
		return &ValidationError{Name: "submitted_by", err: errors.New(`ent: missing required field "Submission.submitted_by"`)}
	}
	if v, ok := _c.mutation.SubmittedBy(); ok {
		if err := submission.SubmittedByValidator(v); err != nil {
			return &ValidationError{Name: "submitted_by", err: fmt.Errorf(`ent: validator failed for field "Submission.submitted_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Submission.updated_at"`)}
	}
	if len(_c.mutation.TestIDs()) == 0 {
		return &ValidationError{Name: "test", err: errors.New(`ent: missing required edge "Submission.test"`)}
	}
	if len(_c.mutation.OrganizationIDs()) == 0 {
		return &ValidationError{Name: "organization", err: errors.New(`ent: missing required edge "Submission.organization"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MagicLinkID(); ok {
		_spec.SetField(submission.FieldMagicLinkID, field.TypeUUID, value)
		_node.MagicLinkID = &value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(submission.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.StudentEmail(); ok {
		_spec.SetField(submission.FieldStudentEmail, field.TypeString, value)
		_node.StudentEmail = value
	}
	if value, ok := _c.mutation.ImageUrls(); ok {
		_spec.SetField(submission.FieldImageUrls, field.TypeJSON, value)
		_node.ImageUrls = value
	}
	if value, ok := _c.mutation.MergedImageURL(); ok {
		_spec.SetField(submission.FieldMergedImageURL, field.TypeString, value)
		_node.MergedImageURL = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(submission.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.AiFeedback(); ok {
		_spec.SetField(submission.FieldAiFeedback, field.TypeString, value)
		_node.AiFeedback = &value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(submission.FieldFinalScore, field.TypeInt, value)
		_node.FinalScore = &value
	}
	if value, ok := _c.mutation.AudioURL(); ok {
		_spec.SetField(submission.FieldAudioURL, field.TypeString, value)
		_node.AudioURL = &value
	}
	if value, ok := _c.mutation.AudioError(); ok {
		_spec.SetField(submission.FieldAudioError, field.TypeString, value)
		_node.AudioError = &value
	}
	if value, ok := _c.mutation.SubmittedBy(); ok {
		_spec.SetField(submission.FieldSubmittedBy, field.TypeString, value)
		_node.SubmittedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.TestTable,
			Columns: []string{submission.TestColumn},
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
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.OrganizationTable,
			Columns: []string{submission.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrganizationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.StudentTable,
			Columns: []string{submission.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StudentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
