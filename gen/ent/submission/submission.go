// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldMagicLinkID holds the string denoting the magic_link_id field in the database.
	FieldMagicLinkID = "magic_link_id"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// FieldStudentEmail holds the string denoting the student_email field in the database.
	FieldStudentEmail = "student_email"
	// FieldImageUrls holds the string denoting the image_urls field in the database.
	FieldImageUrls = "image_urls"
	// FieldMergedImageURL holds the string denoting the merged_image_url field in the database.
	FieldMergedImageURL = "merged_image_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldAiFeedback holds the string denoting the ai_feedback field in the database.
	FieldAiFeedback = "ai_feedback"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldAudioURL holds the string denoting the audio_url field in the database.
	FieldAudioURL = "audio_url"
	// FieldAudioError holds the string denoting the audio_error field in the database.
	FieldAudioError = "audio_error"
	// FieldSubmittedBy holds the string denoting the submitted_by field in the database.
	FieldSubmittedBy = "submitted_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTest holds the string denoting the test edge name in mutations.
	EdgeTest = "test"
	// EdgeOrganization holds the string denoting the organization edge name in mutations.
	EdgeOrganization = "organization"
	// EdgeStudent holds the string denoting the student edge name in mutations.
	EdgeStudent = "student"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
	// TestTable is the table that holds the test relation/edge.
	TestTable = "submissions"
	// TestInverseTable is the table name for the Test entity.
	// It exists in this package in order to avoid circular dependency with the "test" package.
	TestInverseTable = "tests"
	// TestColumn is the table column denoting the test relation/edge.
	TestColumn = "test_id"
	// OrganizationTable is the table that holds the organization relation/edge.
	OrganizationTable = "submissions"
	// OrganizationInverseTable is the table name for the Organization entity.
	// It exists in this package in order to avoid circular dependency with the "organization" package.
	OrganizationInverseTable = "organizations"
	// OrganizationColumn is the table column denoting the organization relation/edge.
	OrganizationColumn = "organization_id"
	// StudentTable is the table that holds the student relation/edge.
	StudentTable = "submissions"
	// StudentInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	StudentInverseTable = "users"
	// StudentColumn is the table column denoting the student relation/edge.
	StudentColumn = "student_id"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldTestID,
	FieldOrganizationID,
	FieldStudentID,
	FieldMagicLinkID,
	FieldStudentName,
	FieldStudentEmail,
	FieldImageUrls,
	FieldMergedImageURL,
	FieldStatus,
	FieldProcessingStatus,
	FieldAiFeedback,
	FieldFinalScore,
	FieldAudioURL,
	FieldAudioError,
	FieldSubmittedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	StudentNameValidator func(string) error
	// StudentEmailValidator is a validator for the "student_email" field. It is called by the builders before save.
	StudentEmailValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	ProcessingStatusValidator func(string) error
	// FinalScoreValidator is a validator for the "final_score" field. It is called by the builders before save.
	FinalScoreValidator func(int) error
	// DefaultSubmittedBy holds the default value on creation for the "submitted_by" field.
	DefaultSubmittedBy string
	// SubmittedByValidator is a validator for the "submitted_by" field. It is called by the builders before save.
	SubmittedByValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByMagicLinkID orders the results by the magic_link_id field.
func ByMagicLinkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMagicLinkID, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}

// ByStudentEmail orders the results by the student_email field.
func ByStudentEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentEmail, opts...).ToFunc()
}

// ByMergedImageURL orders the results by the merged_image_url field.
func ByMergedImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedImageURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByAiFeedback orders the results by the ai_feedback field.
func ByAiFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiFeedback, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByAudioURL orders the results by the audio_url field.
func ByAudioURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioURL, opts...).ToFunc()
}

// ByAudioError orders the results by the audio_error field.
func ByAudioError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioError, opts...).ToFunc()
}

// BySubmittedBy orders the results by the submitted_by field.
func BySubmittedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTestField orders the results by test field.
func ByTestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestStep(), sql.OrderByField(field, opts...))
	}
}

// ByOrganizationField orders the results by organization field.
func ByOrganizationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrganizationStep(), sql.OrderByField(field, opts...))
	}
}

// ByStudentField orders the results by student field.
func ByStudentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudentStep(), sql.OrderByField(field, opts...))
	}
}
func newTestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TestTable, TestColumn),
	)
}
func newOrganizationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrganizationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
	)
}
func newStudentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
	)
}
