// Package batch is the capture agent's local outbox: submissions are
// recorded on disk immediately and uploaded to the server in batches
// whenever connectivity allows.
package batch

import (
	"context"
	"time"

	"github.com/papertalk/papertalk/constants"
)

// SchemaVersion guards the persisted layout. A store that finds a
// different version discards its contents rather than guessing at a
// migration; the outbox only holds not-yet-synced work plus a short
// tail of synced history.
const SchemaVersion = 1

// PendingSubmission is one locally captured submission and its sync
// lifecycle.
type PendingSubmission struct {
	ID             string
	StudentName    string
	StudentEmail   string
	ImageURLs      []string
	MagicLinkToken string
	CreatedAt      time.Time
	SyncStatus     constants.SyncStatus
	ServerID       string
	ErrorMessage   string
	RetryCount     int
}

// Store persists the full outbox. Save replaces the stored set
// atomically; partial writes must not be observable.
type Store interface {
	Load(ctx context.Context) ([]PendingSubmission, error)
	Save(ctx context.Context, items []PendingSubmission) error
	Close() error
}
