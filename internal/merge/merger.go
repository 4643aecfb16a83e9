// Package merge defines the port for combining a submission's captured
// pages into a single document before grading.
package merge

import (
	"context"

	"github.com/google/uuid"
)

type Merger interface {
	// Merge combines refs into one document and returns its reference.
	// An empty reference with a nil error means no merge was produced
	// and grading should use the raw pages.
	Merge(ctx context.Context, testID uuid.UUID, studentEmail string, refs []string) (string, error)
}

// Passthrough never merges. Single-page submissions and deployments
// without a merge backend use it.
type Passthrough struct{}

func (Passthrough) Merge(context.Context, uuid.UUID, string, []string) (string, error) {
	return "", nil
}
