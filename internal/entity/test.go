package entity

import (
	"time"

	"github.com/google/uuid"
)

type Test struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	CourseID       uuid.UUID
	TeacherID      uuid.UUID
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TestPaper struct {
	ID          uuid.UUID
	TestID      uuid.UUID
	FileURL     string
	ContentType *string
	CreatedAt   time.Time
}

type Course struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	TeacherID      uuid.UUID
	Name           string
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
