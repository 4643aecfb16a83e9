// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/papertalk/papertalk/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTestID, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOrganizationID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentID, v))
}

// MagicLinkID applies equality check predicate on the "magic_link_id" field. It's identical to MagicLinkIDEQ.
func MagicLinkID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldMagicLinkID, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentName, v))
}

// StudentEmail applies equality check predicate on the "student_email" field. It's identical to StudentEmailEQ.
func StudentEmail(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentEmail, v))
}

// MergedImageURL applies equality check predicate on the "merged_image_url" field. It's identical to MergedImageURLEQ.
func MergedImageURL(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldMergedImageURL, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldProcessingStatus, v))
}

// AiFeedback applies equality check predicate on the "ai_feedback" field. It's identical to AiFeedbackEQ.
func AiFeedback(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAiFeedback, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFinalScore, v))
}

// AudioURL applies equality check predicate on the "audio_url" field. It's identical to AudioURLEQ.
func AudioURL(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAudioURL, v))
}

// AudioError applies equality check predicate on the "audio_error" field. It's identical to AudioErrorEQ.
func AudioError(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAudioError, v))
}

// SubmittedBy applies equality check predicate on the "submitted_by" field. It's identical to SubmittedByEQ.
func SubmittedBy(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTestID, vs...))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDIsNil applies the IsNil predicate on the "student_id" field.
func StudentIDIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldStudentID))
}

// StudentIDNotNil applies the NotNil predicate on the "student_id" field.
func StudentIDNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldStudentID))
}

// MagicLinkIDEQ applies the EQ predicate on the "magic_link_id" field.
func MagicLinkIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldMagicLinkID, v))
}

// MagicLinkIDNEQ applies the NEQ predicate on the "magic_link_id" field.
func MagicLinkIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldMagicLinkID, v))
}

// MagicLinkIDIn applies the In predicate on the "magic_link_id" field.
func MagicLinkIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldMagicLinkID, vs...))
}

// MagicLinkIDNotIn applies the NotIn predicate on the "magic_link_id" field.
func MagicLinkIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldMagicLinkID, vs...))
}

// MagicLinkIDGT applies the GT predicate on the "magic_link_id" field.
func MagicLinkIDGT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldMagicLinkID, v))
}

// MagicLinkIDGTE applies the GTE predicate on the "magic_link_id" field.
func MagicLinkIDGTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldMagicLinkID, v))
}

// MagicLinkIDLT applies the LT predicate on the "magic_link_id" field.
func MagicLinkIDLT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldMagicLinkID, v))
}

// MagicLinkIDLTE applies the LTE predicate on the "magic_link_id" field.
func MagicLinkIDLTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldMagicLinkID, v))
}

// MagicLinkIDIsNil applies the IsNil predicate on the "magic_link_id" field.
func MagicLinkIDIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldMagicLinkID))
}

// MagicLinkIDNotNil applies the NotNil predicate on the "magic_link_id" field.
func MagicLinkIDNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldMagicLinkID))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldStudentName, v))
}

// StudentEmailEQ applies the EQ predicate on the "student_email" field.
func StudentEmailEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentEmail, v))
}

// StudentEmailNEQ applies the NEQ predicate on the "student_email" field.
func StudentEmailNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStudentEmail, v))
}

// StudentEmailIn applies the In predicate on the "student_email" field.
func StudentEmailIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStudentEmail, vs...))
}

// StudentEmailNotIn applies the NotIn predicate on the "student_email" field.
func StudentEmailNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStudentEmail, vs...))
}

// StudentEmailGT applies the GT predicate on the "student_email" field.
func StudentEmailGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStudentEmail, v))
}

// StudentEmailGTE applies the GTE predicate on the "student_email" field.
func StudentEmailGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStudentEmail, v))
}

// StudentEmailLT applies the LT predicate on the "student_email" field.
func StudentEmailLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStudentEmail, v))
}

// StudentEmailLTE applies the LTE predicate on the "student_email" field.
func StudentEmailLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStudentEmail, v))
}

// StudentEmailContains applies the Contains predicate on the "student_email" field.
func StudentEmailContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldStudentEmail, v))
}

// StudentEmailHasPrefix applies the HasPrefix predicate on the "student_email" field.
func StudentEmailHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldStudentEmail, v))
}

// StudentEmailHasSuffix applies the HasSuffix predicate on the "student_email" field.
func StudentEmailHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldStudentEmail, v))
}

// StudentEmailEqualFold applies the EqualFold predicate on the "student_email" field.
func StudentEmailEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldStudentEmail, v))
}

// StudentEmailContainsFold applies the ContainsFold predicate on the "student_email" field.
func StudentEmailContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldStudentEmail, v))
}

// MergedImageURLEQ applies the EQ predicate on the "merged_image_url" field.
func MergedImageURLEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldMergedImageURL, v))
}

// MergedImageURLNEQ applies the NEQ predicate on the "merged_image_url" field.
func MergedImageURLNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldMergedImageURL, v))
}

// MergedImageURLIn applies the In predicate on the "merged_image_url" field.
func MergedImageURLIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldMergedImageURL, vs...))
}

// MergedImageURLNotIn applies the NotIn predicate on the "merged_image_url" field.
func MergedImageURLNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldMergedImageURL, vs...))
}

// MergedImageURLGT applies the GT predicate on the "merged_image_url" field.
func MergedImageURLGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldMergedImageURL, v))
}

// MergedImageURLGTE applies the GTE predicate on the "merged_image_url" field.
func MergedImageURLGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldMergedImageURL, v))
}

// MergedImageURLLT applies the LT predicate on the "merged_image_url" field.
func MergedImageURLLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldMergedImageURL, v))
}

// MergedImageURLLTE applies the LTE predicate on the "merged_image_url" field.
func MergedImageURLLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldMergedImageURL, v))
}

// MergedImageURLContains applies the Contains predicate on the "merged_image_url" field.
func MergedImageURLContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldMergedImageURL, v))
}

// MergedImageURLHasPrefix applies the HasPrefix predicate on the "merged_image_url" field.
func MergedImageURLHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldMergedImageURL, v))
}

// MergedImageURLHasSuffix applies the HasSuffix predicate on the "merged_image_url" field.
func MergedImageURLHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldMergedImageURL, v))
}

// MergedImageURLIsNil applies the IsNil predicate on the "merged_image_url" field.
func MergedImageURLIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldMergedImageURL))
}

// MergedImageURLNotNil applies the NotNil predicate on the "merged_image_url" field.
func MergedImageURLNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldMergedImageURL))
}

// MergedImageURLEqualFold applies the EqualFold predicate on the "merged_image_url" field.
func MergedImageURLEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldMergedImageURL, v))
}

// MergedImageURLContainsFold applies the ContainsFold predicate on the "merged_image_url" field.
func MergedImageURLContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldMergedImageURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldStatus, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// AiFeedbackEQ applies the EQ predicate on the "ai_feedback" field.
func AiFeedbackEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAiFeedback, v))
}

// AiFeedbackNEQ applies the NEQ predicate on the "ai_feedback" field.
func AiFeedbackNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldAiFeedback, v))
}

// AiFeedbackIn applies the In predicate on the "ai_feedback" field.
func AiFeedbackIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldAiFeedback, vs...))
}

// AiFeedbackNotIn applies the NotIn predicate on the "ai_feedback" field.
func AiFeedbackNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldAiFeedback, vs...))
}

// AiFeedbackGT applies the GT predicate on the "ai_feedback" field.
func AiFeedbackGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldAiFeedback, v))
}

// AiFeedbackGTE applies the GTE predicate on the "ai_feedback" field.
func AiFeedbackGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldAiFeedback, v))
}

// AiFeedbackLT applies the LT predicate on the "ai_feedback" field.
func AiFeedbackLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldAiFeedback, v))
}

// AiFeedbackLTE applies the LTE predicate on the "ai_feedback" field.
func AiFeedbackLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldAiFeedback, v))
}

// AiFeedbackContains applies the Contains predicate on the "ai_feedback" field.
func AiFeedbackContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldAiFeedback, v))
}

// AiFeedbackHasPrefix applies the HasPrefix predicate on the "ai_feedback" field.
func AiFeedbackHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldAiFeedback, v))
}

// AiFeedbackHasSuffix applies the HasSuffix predicate on the "ai_feedback" field.
func AiFeedbackHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldAiFeedback, v))
}

// AiFeedbackIsNil applies the IsNil predicate on the "ai_feedback" field.
func AiFeedbackIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldAiFeedback))
}

// AiFeedbackNotNil applies the NotNil predicate on the "ai_feedback" field.
func AiFeedbackNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldAiFeedback))
}

// AiFeedbackEqualFold applies the EqualFold predicate on the "ai_feedback" field.
func AiFeedbackEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldAiFeedback, v))
}

// AiFeedbackContainsFold applies the ContainsFold predicate on the "ai_feedback" field.
func AiFeedbackContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldAiFeedback, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldFinalScore, v))
}

// FinalScoreIsNil applies the IsNil predicate on the "final_score" field.
func FinalScoreIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldFinalScore))
}

// FinalScoreNotNil applies the NotNil predicate on the "final_score" field.
func FinalScoreNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldFinalScore))
}

// AudioURLEQ applies the EQ predicate on the "audio_url" field.
func AudioURLEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAudioURL, v))
}

// AudioURLNEQ applies the NEQ predicate on the "audio_url" field.
func AudioURLNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldAudioURL, v))
}

// AudioURLIn applies the In predicate on the "audio_url" field.
func AudioURLIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldAudioURL, vs...))
}

// AudioURLNotIn applies the NotIn predicate on the "audio_url" field.
func AudioURLNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldAudioURL, vs...))
}

// AudioURLGT applies the GT predicate on the "audio_url" field.
func AudioURLGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldAudioURL, v))
}

// AudioURLGTE applies the GTE predicate on the "audio_url" field.
func AudioURLGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldAudioURL, v))
}

// AudioURLLT applies the LT predicate on the "audio_url" field.
func AudioURLLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldAudioURL, v))
}

// AudioURLLTE applies the LTE predicate on the "audio_url" field.
func AudioURLLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldAudioURL, v))
}

// AudioURLContains applies the Contains predicate on the "audio_url" field.
func AudioURLContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldAudioURL, v))
}

// AudioURLHasPrefix applies the HasPrefix predicate on the "audio_url" field.
func AudioURLHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldAudioURL, v))
}

// AudioURLHasSuffix applies the HasSuffix predicate on the "audio_url" field.
func AudioURLHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldAudioURL, v))
}

// AudioURLIsNil applies the IsNil predicate on the "audio_url" field.
func AudioURLIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldAudioURL))
}

// AudioURLNotNil applies the NotNil predicate on the "audio_url" field.
func AudioURLNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldAudioURL))
}

// AudioURLEqualFold applies the EqualFold predicate on the "audio_url" field.
func AudioURLEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldAudioURL, v))
}

// AudioURLContainsFold applies the ContainsFold predicate on the "audio_url" field.
func AudioURLContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldAudioURL, v))
}

// AudioErrorEQ applies the EQ predicate on the "audio_error" field.
func AudioErrorEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAudioError, v))
}

// AudioErrorNEQ applies the NEQ predicate on the "audio_error" field.
func AudioErrorNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldAudioError, v))
}

// AudioErrorIn applies the In predicate on the "audio_error" field.
func AudioErrorIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldAudioError, vs...))
}

// AudioErrorNotIn applies the NotIn predicate on the "audio_error" field.
func AudioErrorNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldAudioError, vs...))
}

// AudioErrorGT applies the GT predicate on the "audio_error" field.
func AudioErrorGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldAudioError, v))
}

// AudioErrorGTE applies the GTE predicate on the "audio_error" field.
func AudioErrorGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldAudioError, v))
}

// AudioErrorLT applies the LT predicate on the "audio_error" field.
func AudioErrorLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldAudioError, v))
}

// AudioErrorLTE applies the LTE predicate on the "audio_error" field.
func AudioErrorLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldAudioError, v))
}

// AudioErrorContains applies the Contains predicate on the "audio_error" field.
func AudioErrorContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldAudioError, v))
}

// AudioErrorHasPrefix applies the HasPrefix predicate on the "audio_error" field.
func AudioErrorHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldAudioError, v))
}

// AudioErrorHasSuffix applies the HasSuffix predicate on the "audio_error" field.
func AudioErrorHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldAudioError, v))
}

// AudioErrorIsNil applies the IsNil predicate on the "audio_error" field.
func AudioErrorIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldAudioError))
}

// AudioErrorNotNil applies the NotNil predicate on the "audio_error" field.
func AudioErrorNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldAudioError))
}

// AudioErrorEqualFold applies the EqualFold predicate on the "audio_error" field.
func AudioErrorEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldAudioError, v))
}

// AudioErrorContainsFold applies the ContainsFold predicate on the "audio_error" field.
func AudioErrorContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldAudioError, v))
}

// SubmittedByEQ applies the EQ predicate on the "submitted_by" field.
func SubmittedByEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmittedByNEQ applies the NEQ predicate on the "submitted_by" field.
func SubmittedByNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmittedBy, v))
}

// SubmittedByIn applies the In predicate on the "submitted_by" field.
func SubmittedByIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmittedBy, vs...))
}

// SubmittedByNotIn applies the NotIn predicate on the "submitted_by" field.
func SubmittedByNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmittedBy, vs...))
}

// SubmittedByGT applies the GT predicate on the "submitted_by" field.
func SubmittedByGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmittedBy, v))
}

// SubmittedByGTE applies the GTE predicate on the "submitted_by" field.
func SubmittedByGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmittedBy, v))
}

// SubmittedByLT applies the LT predicate on the "submitted_by" field.
func SubmittedByLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmittedBy, v))
}

// SubmittedByLTE applies the LTE predicate on the "submitted_by" field.
func SubmittedByLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmittedBy, v))
}

// SubmittedByContains applies the Contains predicate on the "submitted_by" field.
func SubmittedByContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmittedBy, v))
}

// SubmittedByHasPrefix applies the HasPrefix predicate on the "submitted_by" field.
func SubmittedByHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmittedBy, v))
}

// SubmittedByHasSuffix applies the HasSuffix predicate on the "submitted_by" field.
func SubmittedByHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmittedBy, v))
}

// SubmittedByEqualFold applies the EqualFold predicate on the "submitted_by" field.
func SubmittedByEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmittedBy, v))
}

// SubmittedByContainsFold applies the ContainsFold predicate on the "submitted_by" field.
func SubmittedByContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmittedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTest applies the HasEdge predicate on the "test" edge.
func HasTest() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TestTable, TestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestWith applies the HasEdge predicate on the "test" edge with a given conditions (other predicates).
func HasTestWith(preds ...predicate.Test) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newTestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStudent applies the HasEdge predicate on the "student" edge.
func HasStudent() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentWith applies the HasEdge predicate on the "student" edge with a given conditions (other predicates).
func HasStudentWith(preds ...predicate.User) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newStudentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
