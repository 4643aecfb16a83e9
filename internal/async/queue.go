package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one submission's grading work. MaterialRefs point at the files
// handed to the grader, merged file first when one exists.
type Job struct {
	SubmissionID uuid.UUID
	MaterialRefs []string
	SubmittedAt  time.Time
	TraceID      string
}

// Processor grades a single job. Implementations must be safe for
// concurrent use.
type Processor interface {
	Process(ctx context.Context, job Job) error
}

// Stats is a point-in-time snapshot for introspection endpoints.
type Stats struct {
	Pending  int `json:"pending"`
	InFlight int `json:"inFlight"`
	Deferred int `json:"deferred"`
	Capacity int `json:"capacity"`
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Stats() Stats
	Shutdown(ctx context.Context)
}
