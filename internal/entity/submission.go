package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/papertalk/papertalk/constants"
)

// Submission is one student's answer sheet for a test, together with the
// grading state machine that moves it from captured images to published
// feedback.
type Submission struct {
	ID               uuid.UUID
	TestID           uuid.UUID
	OrganizationID   uuid.UUID
	StudentID        *uuid.UUID
	MagicLinkID      *uuid.UUID
	StudentName      string
	StudentEmail     string
	ImageURLs        []string
	MergedImageURL   *string
	Status           constants.SubmissionStatus
	ProcessingStatus constants.ProcessingStatus
	AIFeedback       *string
	FinalScore       *int
	AudioURL         *string
	AudioError       *string
	SubmittedBy      constants.SubmittedBy
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// GradingRefs returns the material handed to the grader: the merged file
// when a merger produced one, otherwise the raw captured pages.
func (s *Submission) GradingRefs() []string {
	if s.MergedImageURL != nil && *s.MergedImageURL != "" {
		return []string{*s.MergedImageURL}
	}
	return s.ImageURLs
}
