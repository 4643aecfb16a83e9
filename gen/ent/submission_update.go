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
	"github.com/papertalk/papertalk/gen/ent/organization"
	"github.com/papertalk/papertalk/gen/ent/predicate"
	"github.com/papertalk/papertalk/gen/ent/submission"
	"github.com/papertalk/papertalk/gen/ent/test"
	"github.com/papertalk/papertalk/gen/ent/user"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *SubmissionUpdate) SetTestID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTestID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *SubmissionUpdate) SetOrganizationID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableOrganizationID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SubmissionUpdate) SetStudentID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStudentID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// ClearStudentID clears the value of the "student_id" field.
func (_u *SubmissionUpdate) ClearStudentID() *SubmissionUpdate {
	_u.mutation.ClearStudentID()
	return _u
}

// SetMagicLinkID sets the "magic_link_id" field.
func (_u *SubmissionUpdate) SetMagicLinkID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetMagicLinkID(v)
	return _u
}

// SetNillableMagicLinkID sets the "magic_link_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableMagicLinkID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetMagicLinkID(*v)
	}
	return _u
}

// ClearMagicLinkID clears the value of the "magic_link_id" field.
func (_u *SubmissionUpdate) ClearMagicLinkID() *SubmissionUpdate {
	_u.mutation.ClearMagicLinkID()
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *SubmissionUpdate) SetStudentName(v string) *SubmissionUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStudentName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetStudentEmail sets the "student_email" field.
func (_u *SubmissionUpdate) SetStudentEmail(v string) *SubmissionUpdate {
	_u.mutation.SetStudentEmail(v)
	return _u
}

// SetNillableStudentEmail sets the "student_email" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStudentEmail(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStudentEmail(*v)
	}
	return _u
}

// SetImageUrls sets the "image_urls" field.
func (_u *SubmissionUpdate) SetImageUrls(v []string) *SubmissionUpdate {
	_u.mutation.SetImageUrls(v)
	return _u
}

// AppendImageUrls appends value to the "image_urls" field.
func (_u *SubmissionUpdate) AppendImageUrls(v []string) *SubmissionUpdate {
	_u.mutation.AppendImageUrls(v)
	return _u
}

// SetMergedImageURL sets the "merged_image_url" field.
func (_u *SubmissionUpdate) SetMergedImageURL(v string) *SubmissionUpdate {
	_u.mutation.SetMergedImageURL(v)
	return _u
}

// SetNillableMergedImageURL sets the "merged_image_url" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableMergedImageURL(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetMergedImageURL(*v)
	}
	return _u
}

// ClearMergedImageURL clears the value of the "merged_image_url" field.
func (_u *SubmissionUpdate) ClearMergedImageURL() *SubmissionUpdate {
	_u.mutation.ClearMergedImageURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v string) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *SubmissionUpdate) SetProcessingStatus(v string) *SubmissionUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableProcessingStatus(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetAiFeedback sets the "ai_feedback" field.
func (_u *SubmissionUpdate) SetAiFeedback(v string) *SubmissionUpdate {
	_u.mutation.SetAiFeedback(v)
	return _u
}

// SetNillableAiFeedback sets the "ai_feedback" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAiFeedback(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAiFeedback(*v)
	}
	return _u
}

// ClearAiFeedback clears the value of the "ai_feedback" field.
func (_u *SubmissionUpdate) ClearAiFeedback() *SubmissionUpdate {
	_u.mutation.ClearAiFeedback()
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *SubmissionUpdate) SetFinalScore(v int) *SubmissionUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableFinalScore(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *SubmissionUpdate) AddFinalScore(v int) *SubmissionUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// ClearFinalScore clears the value of the "final_score" field.
func (_u *SubmissionUpdate) ClearFinalScore() *SubmissionUpdate {
	_u.mutation.ClearFinalScore()
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *SubmissionUpdate) SetAudioURL(v string) *SubmissionUpdate {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAudioURL(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *SubmissionUpdate) ClearAudioURL() *SubmissionUpdate {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetAudioError sets the "audio_error" field.
func (_u *SubmissionUpdate) SetAudioError(v string) *SubmissionUpdate {
	_u.mutation.SetAudioError(v)
	return _u
}

// SetNillableAudioError sets the "audio_error" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAudioError(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAudioError(*v)
	}
	return _u
}

// ClearAudioError clears the value of the "audio_error" field.
func (_u *SubmissionUpdate) ClearAudioError() *SubmissionUpdate {
	_u.mutation.ClearAudioError()
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *SubmissionUpdate) SetSubmittedBy(v string) *SubmissionUpdate {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmittedBy(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubmissionUpdate) SetCreatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableCreatedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *SubmissionUpdate) SetTest(v *Test) *SubmissionUpdate {
	return _u.SetTestID(v.ID)
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *SubmissionUpdate) SetOrganization(v *Organization) *SubmissionUpdate {
	return _u.SetOrganizationID(v.ID)
}

// SetStudent sets the "student" edge to the User entity.
func (_u *SubmissionUpdate) SetStudent(v *User) *SubmissionUpdate {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *SubmissionUpdate) ClearTest() *SubmissionUpdate {
	_u.mutation.ClearTest()
	return _u
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *SubmissionUpdate) ClearOrganization() *SubmissionUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearStudent clears the "student" edge to the User entity.
func (_u *SubmissionUpdate) ClearStudent() *SubmissionUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := submission.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "Submission.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentEmail(); ok {
		if err := submission.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`ent: validator failed for field "Submission.student_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := submission.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Submission.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinalScore(); ok {
		if err := submission.FinalScoreValidator(v); err != nil {
			return &ValidationError{Name: "final_score", err: fmt.Errorf(`ent: validator failed for field "Submission.final_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedBy(); ok {
		if err := submission.SubmittedByValidator(v); err != nil {
			return &ValidationError{Name: "submitted_by", err: fmt.Errorf(`ent: validator failed for field "Submission.submitted_by": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.test"`)
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.organization"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MagicLinkID(); ok {
		_spec.SetField(submission.FieldMagicLinkID, field.TypeUUID, value)
	}
	if _u.mutation.MagicLinkIDCleared() {
		_spec.ClearField(submission.FieldMagicLinkID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(submission.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentEmail(); ok {
		_spec.SetField(submission.FieldStudentEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageUrls(); ok {
		_spec.SetField(submission.FieldImageUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImageUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldImageUrls, value)
		})
	}
	if value, ok := _u.mutation.MergedImageURL(); ok {
		_spec.SetField(submission.FieldMergedImageURL, field.TypeString, value)
	}
	if _u.mutation.MergedImageURLCleared() {
		_spec.ClearField(submission.FieldMergedImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(submission.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiFeedback(); ok {
		_spec.SetField(submission.FieldAiFeedback, field.TypeString, value)
	}
	if _u.mutation.AiFeedbackCleared() {
		_spec.ClearField(submission.FieldAiFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(submission.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(submission.FieldFinalScore, field.TypeInt, value)
	}
	if _u.mutation.FinalScoreCleared() {
		_spec.ClearField(submission.FieldFinalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(submission.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(submission.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.AudioError(); ok {
		_spec.SetField(submission.FieldAudioError, field.TypeString, value)
	}
	if _u.mutation.AudioErrorCleared() {
		_spec.ClearField(submission.FieldAudioError, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(submission.FieldSubmittedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrganizationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetTestID sets the "test_id" field.
func (_u *SubmissionUpdateOne) SetTestID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTestID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *SubmissionUpdateOne) SetOrganizationID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SubmissionUpdateOne) SetStudentID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStudentID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// ClearStudentID clears the value of the "student_id" field.
func (_u *SubmissionUpdateOne) ClearStudentID() *SubmissionUpdateOne {
	_u.mutation.ClearStudentID()
	return _u
}

// SetMagicLinkID sets the "magic_link_id" field.
func (_u *SubmissionUpdateOne) SetMagicLinkID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetMagicLinkID(v)
	return _u
}

// SetNillableMagicLinkID sets the "magic_link_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableMagicLinkID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetMagicLinkID(*v)
	}
	return _u
}

// ClearMagicLinkID clears the value of the "magic_link_id" field.
func (_u *SubmissionUpdateOne) ClearMagicLinkID() *SubmissionUpdateOne {
	_u.mutation.ClearMagicLinkID()
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *SubmissionUpdateOne) SetStudentName(v string) *SubmissionUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStudentName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetStudentEmail sets the "student_email" field.
func (_u *SubmissionUpdateOne) SetStudentEmail(v string) *SubmissionUpdateOne {
	_u.mutation.SetStudentEmail(v)
	return _u
}

// SetNillableStudentEmail sets the "student_email" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStudentEmail(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStudentEmail(*v)
	}
	return _u
}

// SetImageUrls sets the "image_urls" field.
func (_u *SubmissionUpdateOne) SetImageUrls(v []string) *SubmissionUpdateOne {
	_u.mutation.SetImageUrls(v)
	return _u
}

// AppendImageUrls appends value to the "image_urls" field.
func (_u *SubmissionUpdateOne) AppendImageUrls(v []string) *SubmissionUpdateOne {
	_u.mutation.AppendImageUrls(v)
	return _u
}

// SetMergedImageURL sets the "merged_image_url" field.
func (_u *SubmissionUpdateOne) SetMergedImageURL(v string) *SubmissionUpdateOne {
	_u.mutation.SetMergedImageURL(v)
	return _u
}

// SetNillableMergedImageURL sets the "merged_image_url" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableMergedImageURL(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetMergedImageURL(*v)
	}
	return _u
}

// ClearMergedImageURL clears the value of the "merged_image_url" field.
func (_u *SubmissionUpdateOne) ClearMergedImageURL() *SubmissionUpdateOne {
	_u.mutation.ClearMergedImageURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v string) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *SubmissionUpdateOne) SetProcessingStatus(v string) *SubmissionUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableProcessingStatus(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetAiFeedback sets the "ai_feedback" field.
func (_u *SubmissionUpdateOne) SetAiFeedback(v string) *SubmissionUpdateOne {
	_u.mutation.SetAiFeedback(v)
	return _u
}

// SetNillableAiFeedback sets the "ai_feedback" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAiFeedback(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAiFeedback(*v)
	}
	return _u
}

// ClearAiFeedback clears the value of the "ai_feedback" field.
func (_u *SubmissionUpdateOne) ClearAiFeedback() *SubmissionUpdateOne {
	_u.mutation.ClearAiFeedback()
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *SubmissionUpdateOne) SetFinalScore(v int) *SubmissionUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableFinalScore(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *SubmissionUpdateOne) AddFinalScore(v int) *SubmissionUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// ClearFinalScore clears the value of the "final_score" field.
func (_u *SubmissionUpdateOne) ClearFinalScore() *SubmissionUpdateOne {
	_u.mutation.ClearFinalScore()
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *SubmissionUpdateOne) SetAudioURL(v string) *SubmissionUpdateOne {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAudioURL(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *SubmissionUpdateOne) ClearAudioURL() *SubmissionUpdateOne {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetAudioError sets the "audio_error" field.
func (_u *SubmissionUpdateOne) SetAudioError(v string) *SubmissionUpdateOne {
	_u.mutation.SetAudioError(v)
	return _u
}

// SetNillableAudioError sets the "audio_error" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAudioError(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAudioError(*v)
	}
	return _u
}

// ClearAudioError clears the value of the "audio_error" field.
func (_u *SubmissionUpdateOne) ClearAudioError() *SubmissionUpdateOne {
	_u.mutation.ClearAudioError()
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *SubmissionUpdateOne) SetSubmittedBy(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmittedBy(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubmissionUpdateOne) SetCreatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableCreatedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *SubmissionUpdateOne) SetTest(v *Test) *SubmissionUpdateOne {
	return _u.SetTestID(v.ID)
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *SubmissionUpdateOne) SetOrganization(v *Organization) *SubmissionUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// SetStudent sets the "student" edge to the User entity.
func (_u *SubmissionUpdateOne) SetStudent(v *User) *SubmissionUpdateOne {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *SubmissionUpdateOne) ClearTest() *SubmissionUpdateOne {
	_u.mutation.ClearTest()
	return _u
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *SubmissionUpdateOne) ClearOrganization() *SubmissionUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearStudent clears the "student" edge to the User entity.
func (_u *SubmissionUpdateOne) ClearStudent() *SubmissionUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := submission.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "Submission.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentEmail(); ok {
		if err := submission.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`ent: validator failed for field "Submission.student_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := submission.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Submission.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinalScore(); ok {
		if err := submission.FinalScoreValidator(v); err != nil {
			return &ValidationError{Name: "final_score", err: fmt.Errorf(`ent: validator failed for field "Submission.final_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedBy(); ok {
		if err := submission.SubmittedByValidator(v); err != nil {
			return &ValidationError{Name: "submitted_by", err: fmt.Errorf(`ent: validator failed for field "Submission.submitted_by": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.test"`)
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.organization"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.MagicLinkID(); ok {
		_spec.SetField(submission.FieldMagicLinkID, field.TypeUUID, value)
	}
	if _u.mutation.MagicLinkIDCleared() {
		_spec.ClearField(submission.FieldMagicLinkID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(submission.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentEmail(); ok {
		_spec.SetField(submission.FieldStudentEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageUrls(); ok {
		_spec.SetField(submission.FieldImageUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImageUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldImageUrls, value)
		})
	}
	if value, ok := _u.mutation.MergedImageURL(); ok {
		_spec.SetField(submission.FieldMergedImageURL, field.TypeString, value)
	}
	if _u.mutation.MergedImageURLCleared() {
		_spec.ClearField(submission.FieldMergedImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(submission.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiFeedback(); ok {
		_spec.SetField(submission.FieldAiFeedback, field.TypeString, value)
	}
	if _u.mutation.AiFeedbackCleared() {
		_spec.ClearField(submission.FieldAiFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(submission.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(submission.FieldFinalScore, field.TypeInt, value)
	}
	if _u.mutation.FinalScoreCleared() {
		_spec.ClearField(submission.FieldFinalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(submission.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(submission.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.AudioError(); ok {
		_spec.SetField(submission.FieldAudioError, field.TypeString, value)
	}
	if _u.mutation.AudioErrorCleared() {
		_spec.ClearField(submission.FieldAudioError, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(submission.FieldSubmittedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrganizationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
