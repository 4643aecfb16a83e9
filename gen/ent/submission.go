// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/papertalk/papertalk/gen/ent/organization"
	"github.com/papertalk/papertalk/gen/ent/submission"
	"github.com/papertalk/papertalk/gen/ent/test"
	"github.com/papertalk/papertalk/gen/ent/user"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TestID holds the value of the "test_id" field.
	TestID uuid.UUID `json:"test_id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID uuid.UUID `json:"organization_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID *uuid.UUID `json:"student_id,omitempty"`
	// MagicLinkID holds the value of the "magic_link_id" field.
	MagicLinkID *uuid.UUID `json:"magic_link_id,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName string `json:"student_name,omitempty"`
	// StudentEmail holds the value of the "student_email" field.
	StudentEmail string `json:"student_email,omitempty"`
	// ImageUrls holds the value of the "image_urls" field.
	ImageUrls []string `json:"image_urls,omitempty"`
	// MergedImageURL holds the value of the "merged_image_url" field.
	MergedImageURL *string `json:"merged_image_url,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// AiFeedback holds the value of the "ai_feedback" field.
	AiFeedback *string `json:"ai_feedback,omitempty"`
	// FinalScore holds the value of the "final_score" field.
	FinalScore *int `json:"final_score,omitempty"`
	// AudioURL holds the value of the "audio_url" field.
	AudioURL *string `json:"audio_url,omitempty"`
	// AudioError holds the value of the "audio_error" field.
	AudioError *string `json:"audio_error,omitempty"`
	// SubmittedBy holds the value of the "submitted_by" field.
	SubmittedBy string `json:"submitted_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmissionQuery when eager-loading is set.
	Edges        SubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmissionEdges holds the relations/edges for other nodes in the graph.
type SubmissionEdges struct {
	// Test holds the value of the test edge.
	Test *Test `json:"test,omitempty"`
	// Organization holds the value of the organization edge.
	Organization *Organization `json:"organization,omitempty"`
	// Student holds the value of the student edge.
	Student *User `json:"student,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TestOrErr returns the Test value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) TestOrErr() (*Test, error) {
	if e.Test != nil {
		return e.Test, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: test.Label}
	}
	return nil, &NotLoadedError{edge: "test"}
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) OrganizationOrErr() (*Organization, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: organization.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// StudentOrErr returns the Student value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) StudentOrErr() (*User, error) {
	if e.Student != nil {
		return e.Student, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "student"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldStudentID, submission.FieldMagicLinkID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case submission.FieldImageUrls:
			values[i] = new([]byte)
		case submission.FieldFinalScore:
			values[i] = new(sql.NullInt64)
		case submission.FieldStudentName, submission.FieldStudentEmail, submission.FieldMergedImageURL, submission.FieldStatus, submission.FieldProcessingStatus, submission.FieldAiFeedback, submission.FieldAudioURL, submission.FieldAudioError, submission.FieldSubmittedBy:
			values[i] = new(sql.NullString)
		case submission.FieldCreatedAt, submission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case submission.FieldID, submission.FieldTestID, submission.FieldOrganizationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case submission.FieldTestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value != nil {
				_m.TestID = *value
			}
		case submission.FieldOrganizationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value != nil {
				_m.OrganizationID = *value
			}
		case submission.FieldStudentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = new(uuid.UUID)
				*_m.StudentID = *value.S.(*uuid.UUID)
			}
		case submission.FieldMagicLinkID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field magic_link_id", values[i])
			} else if value.Valid {
				_m.MagicLinkID = new(uuid.UUID)
				*_m.MagicLinkID = *value.S.(*uuid.UUID)
			}
		case submission.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = value.String
			}
		case submission.FieldStudentEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_email", values[i])
			} else if value.Valid {
				_m.StudentEmail = value.String
			}
		case submission.FieldImageUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImageUrls); err != nil {
					return fmt.Errorf("unmarshal field image_urls: %w", err)
				}
			}
		case submission.FieldMergedImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merged_image_url", values[i])
			} else if value.Valid {
				_m.MergedImageURL = new(string)
				*_m.MergedImageURL = value.String
			}
		case submission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case submission.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = value.String
			}
		case submission.FieldAiFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_feedback", values[i])
			} else if value.Valid {
				_m.AiFeedback = new(string)
				*_m.AiFeedback = value.String
			}
		case submission.FieldFinalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = new(int)
				*_m.FinalScore = int(value.Int64)
			}
		case submission.FieldAudioURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_url", values[i])
			} else if value.Valid {
				_m.AudioURL = new(string)
				*_m.AudioURL = value.String
			}
		case submission.FieldAudioError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_error", values[i])
			} else if value.Valid {
				_m.AudioError = new(string)
				*_m.AudioError = value.String
			}
		case submission.FieldSubmittedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_by", values[i])
			} else if value.Valid {
				_m.SubmittedBy = value.String
			}
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTest queries the "test" edge of the Submission entity.
func (_m *Submission) QueryTest() *TestQuery {
	return NewSubmissionClient(_m.config).QueryTest(_m)
}

// QueryOrganization queries the "organization" edge of the Submission entity.
func (_m *Submission) QueryOrganization() *OrganizationQuery {
	return NewSubmissionClient(_m.config).QueryOrganization(_m)
}

// QueryStudent queries the "student" edge of the Submission entity.
func (_m *Submission) QueryStudent() *UserQuery {
	return NewSubmissionClient(_m.config).QueryStudent(_m)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestID))
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrganizationID))
	builder.WriteString(", ")
	if v := _m.StudentID; v != nil {
		builder.WriteString("student_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MagicLinkID; v != nil {
		builder.WriteString("magic_link_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("student_name=")
	builder.WriteString(_m.StudentName)
	builder.WriteString(", ")
	builder.WriteString("student_email=")
	builder.WriteString(_m.StudentEmail)
	builder.WriteString(", ")
	builder.WriteString("image_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageUrls))
	builder.WriteString(", ")
	if v := _m.MergedImageURL; v != nil {
		builder.WriteString("merged_image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(_m.ProcessingStatus)
	builder.WriteString(", ")
	if v := _m.AiFeedback; v != nil {
		builder.WriteString("ai_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalScore; v != nil {
		builder.WriteString("final_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AudioURL; v != nil {
		builder.WriteString("audio_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AudioError; v != nil {
		builder.WriteString("audio_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("submitted_by=")
	builder.WriteString(_m.SubmittedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
