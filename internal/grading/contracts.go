package grading

import (
	"context"
	"fmt"
	"strings"
)

// Request carries everything the grader needs for one submission.
// MaterialRefs are ordered: question paper first when the test has one,
// then the student's answer files.
type Request struct {
	StudentName  string
	MaterialRefs []string
	// PreviousFeedback is set on a re-grade so the model can improve on
	// the earlier pass instead of starting cold.
	PreviousFeedback string
}

// Result is the model's output. Score is nil when the feedback carried
// no recognizable score marker; that is still a successful grade.
type Result struct {
	Feedback string
	Score    *int
}

type Grader interface {
	Grade(ctx context.Context, req Request) (Result, error)
}

// Fetcher resolves a material reference to its bytes and reported
// content type.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (data []byte, contentType string, err error)
}

// UpstreamError is a failed call to the grading provider. Status is the
// HTTP status, or 0 for network-level failures.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("grading provider status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("grading provider unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Transient reports whether the failure is worth another attempt:
// rate limiting, temporary overload, or a network error.
func (e *UpstreamError) Transient() bool {
	if e.Status == 429 || e.Status == 503 {
		return true
	}
	if strings.Contains(strings.ToLower(e.Message), "overload") {
		return true
	}
	return e.Status == 0 && e.Err != nil
}
