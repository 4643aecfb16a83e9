// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/papertalk/papertalk/db/ent/schema"
	"github.com/papertalk/papertalk/gen/ent/course"
	"github.com/papertalk/papertalk/gen/ent/magiclink"
	"github.com/papertalk/papertalk/gen/ent/organization"
	"github.com/papertalk/papertalk/gen/ent/submission"
	"github.com/papertalk/papertalk/gen/ent/test"
	"github.com/papertalk/papertalk/gen/ent/testpaper"
	"github.com/papertalk/papertalk/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescName is the schema descriptor for name field.
	courseDescName := courseFields[3].Descriptor()
	// course.NameValidator is a validator for the "name" field. It is called by the builders before save.
	course.NameValidator = courseDescName.Validators[0].(func(string) error)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[5].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseFields[6].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.DefaultID holds the default value on creation for the id field.
	course.DefaultID = courseDescID.Default.(func() uuid.UUID)
	magiclinkFields := schema.MagicLink{}.Fields()
	_ = magiclinkFields
	// magiclinkDescToken is the schema descriptor for token field.
	magiclinkDescToken := magiclinkFields[2].Descriptor()
	// magiclink.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	magiclink.TokenValidator = magiclinkDescToken.Validators[0].(func(string) error)
	// magiclinkDescUsed is the schema descriptor for used field.
	magiclinkDescUsed := magiclinkFields[4].Descriptor()
	// magiclink.DefaultUsed holds the default value on creation for the used field.
	magiclink.DefaultUsed = magiclinkDescUsed.Default.(bool)
	// magiclinkDescCreatedAt is the schema descriptor for created_at field.
	magiclinkDescCreatedAt := magiclinkFields[6].Descriptor()
	// magiclink.DefaultCreatedAt holds the default value on creation for the created_at field.
	magiclink.DefaultCreatedAt = magiclinkDescCreatedAt.Default.(func() time.Time)
	// magiclinkDescID is the schema descriptor for id field.
	magiclinkDescID := magiclinkFields[0].Descriptor()
	// magiclink.DefaultID holds the default value on creation for the id field.
	magiclink.DefaultID = magiclinkDescID.Default.(func() uuid.UUID)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[2].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[3].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationFields[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() uuid.UUID)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescStudentName is the schema descriptor for student_name field.
	submissionDescStudentName := submissionFields[5].Descriptor()
	// submission.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	submission.StudentNameValidator = submissionDescStudentName.Validators[0].(func(string) error)
	// submissionDescStudentEmail is the schema descriptor for student_email field.
	submissionDescStudentEmail := submissionFields[6].Descriptor()
	// submission.StudentEmailValidator is a validator for the "student_email" field. It is called by the builders before save.
	submission.StudentEmailValidator = submissionDescStudentEmail.Validators[0].(func(string) error)
	// submissionDescStatus is the schema descriptor for status field.
	submissionDescStatus := submissionFields[9].Descriptor()
	// submission.DefaultStatus holds the default value on creation for the status field.
	submission.DefaultStatus = submissionDescStatus.Default.(string)
	// submission.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	submission.StatusValidator = submissionDescStatus.Validators[0].(func(string) error)
	// submissionDescProcessingStatus is the schema descriptor for processing_status field.
	submissionDescProcessingStatus := submissionFields[10].Descriptor()
	// submission.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	submission.DefaultProcessingStatus = submissionDescProcessingStatus.Default.(string)
	// submission.ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	submission.ProcessingStatusValidator = submissionDescProcessingStatus.Validators[0].(func(string) error)
	// submissionDescFinalScore is the schema descriptor for final_score field.
	submissionDescFinalScore := submissionFields[12].Descriptor()
	// submission.FinalScoreValidator is a validator for the "final_score" field. It is called by the builders before save.
	submission.FinalScoreValidator = func() func(int) error {
		validators := submissionDescFinalScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(final_score int) error {
			for _, fn := range fns {
				if err := fn(final_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// submissionDescSubmittedBy is the schema descriptor for submitted_by field.
	submissionDescSubmittedBy := submissionFields[15].Descriptor()
	// submission.DefaultSubmittedBy holds the default value on creation for the submitted_by field.
	submission.DefaultSubmittedBy = submissionDescSubmittedBy.Default.(string)
	// submission.SubmittedByValidator is a validator for the "submitted_by" field. It is called by the builders before save.
	submission.SubmittedByValidator = submissionDescSubmittedBy.Validators[0].(func(string) error)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[16].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionFields[17].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionFields[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
	testFields := schema.Test{}.Fields()
	_ = testFields
	// testDescName is the schema descriptor for name field.
	testDescName := testFields[4].Descriptor()
	// test.NameValidator is a validator for the "name" field. It is called by the builders before save.
	test.NameValidator = testDescName.Validators[0].(func(string) error)
	// testDescCreatedAt is the schema descriptor for created_at field.
	testDescCreatedAt := testFields[5].Descriptor()
	// test.DefaultCreatedAt holds the default value on creation for the created_at field.
	test.DefaultCreatedAt = testDescCreatedAt.Default.(func() time.Time)
	// testDescUpdatedAt is the schema descriptor for updated_at field.
	testDescUpdatedAt := testFields[6].Descriptor()
	// test.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	test.DefaultUpdatedAt = testDescUpdatedAt.Default.(func() time.Time)
	// test.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	test.UpdateDefaultUpdatedAt = testDescUpdatedAt.UpdateDefault.(func() time.Time)
	// testDescID is the schema descriptor for id field.
	testDescID := testFields[0].Descriptor()
	// test.DefaultID holds the default value on creation for the id field.
	test.DefaultID = testDescID.Default.(func() uuid.UUID)
	testpaperFields := schema.TestPaper{}.Fields()
	_ = testpaperFields
	// testpaperDescFileURL is the schema descriptor for file_url field.
	testpaperDescFileURL := testpaperFields[1].Descriptor()
	// testpaper.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	testpaper.FileURLValidator = testpaperDescFileURL.Validators[0].(func(string) error)
	// testpaperDescCreatedAt is the schema descriptor for created_at field.
	testpaperDescCreatedAt := testpaperFields[3].Descriptor()
	// testpaper.DefaultCreatedAt holds the default value on creation for the created_at field.
	testpaper.DefaultCreatedAt = testpaperDescCreatedAt.Default.(func() time.Time)
	// testpaperDescID is the schema descriptor for id field.
	testpaperDescID := testpaperFields[0].Descriptor()
	// testpaper.DefaultID holds the default value on creation for the id field.
	testpaper.DefaultID = testpaperDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[4].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
