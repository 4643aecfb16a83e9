package utils

import (
	"github.com/google/uuid"
	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/gen/ent"
	"github.com/papertalk/papertalk/internal/entity"
)

func ToSubmission(e *ent.Submission) *entity.Submission {
	return &entity.Submission{
		ID:               e.ID,
		TestID:           e.TestID,
		OrganizationID:   e.OrganizationID,
		StudentID:        e.StudentID,
		MagicLinkID:      e.MagicLinkID,
		StudentName:      e.StudentName,
		StudentEmail:     e.StudentEmail,
		ImageURLs:        e.ImageUrls,
		MergedImageURL:   e.MergedImageURL,
		Status:           constants.SubmissionStatus(e.Status),
		ProcessingStatus: constants.ProcessingStatus(e.ProcessingStatus),
		AIFeedback:       e.AiFeedback,
		FinalScore:       e.FinalScore,
		AudioURL:         e.AudioURL,
		AudioError:       e.AudioError,
		SubmittedBy:      constants.SubmittedBy(e.SubmittedBy),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToTest(e *ent.Test) *entity.Test {
	return &entity.Test{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		CourseID:       e.CourseID,
		TeacherID:      e.TeacherID,
		Name:           e.Name,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToTestPaper(e *ent.TestPaper, testID uuid.UUID) *entity.TestPaper {
	return &entity.TestPaper{
		ID:          e.ID,
		TestID:      testID,
		FileURL:     e.FileURL,
		ContentType: e.ContentType,
		CreatedAt:   e.CreatedAt,
	}
}

func ToMagicLink(e *ent.MagicLink) *entity.MagicLink {
	return &entity.MagicLink{
		ID:        e.ID,
		TestID:    e.TestID,
		Token:     e.Token,
		ExpiresAt: e.ExpiresAt,
		Used:      e.Used,
		UsedAt:    e.UsedAt,
		CreatedAt: e.CreatedAt,
	}
}

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		Email:          e.Email,
		Name:           e.Name,
		Role:           constants.UserRole(e.Role),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToOrganization(e *ent.Organization) *entity.Organization {
	return &entity.Organization{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
