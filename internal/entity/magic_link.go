package entity

import (
	"time"

	"github.com/google/uuid"
)

type MagicLink struct {
	ID        uuid.UUID
	TestID    uuid.UUID
	Token     string
	ExpiresAt *time.Time
	Used      bool
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Expired reports whether the link is past its expiry. Links without an
// expiry never expire.
func (l *MagicLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}
