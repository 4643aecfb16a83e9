package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/papertalk/papertalk/constants"
)

const (
	defaultBatchSize     = 5
	defaultRetention     = time.Hour
	defaultSyncedKeep    = 10
	defaultRetryAttempts = 3
)

// Capture is the input for a newly captured submission.
type Capture struct {
	StudentName    string
	StudentEmail   string
	ImageURLs      []string
	MagicLinkToken string
}

// Manager owns the outbox: an in-memory working set backed by a Store.
// Every mutation persists before returning so a crash never loses a
// captured submission.
type Manager struct {
	mu         sync.Mutex
	store      Store
	logger     *slog.Logger
	batchSize  int
	retention  time.Duration
	syncedKeep int
	maxRetries int
	now        func() time.Time

	items  []PendingSubmission
	loaded bool
}

type ManagerOption func(*Manager)

// WithBatchSize sets how many pending submissions accumulate before
// ShouldSync reports true.
func WithBatchSize(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.batchSize = n
		}
	}
}

// WithRetention sets how long synced submissions are kept before the
// read-path sweep removes them.
func WithRetention(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.retention = d
		}
	}
}

// WithMaxRetries caps how many delivery attempts a failed submission
// gets before it is parked and no longer offered for sync.
func WithMaxRetries(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.maxRetries = n
		}
	}
}

// WithClock overrides time for tests.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(store Store, logger *slog.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		store:      store,
		logger:     logger,
		batchSize:  defaultBatchSize,
		retention:  defaultRetention,
		syncedKeep: defaultSyncedKeep,
		maxRetries: defaultRetryAttempts,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BatchSize reports the configured sync threshold.
func (m *Manager) BatchSize() int { return m.batchSize }

// MaxRetries reports the per-submission delivery attempt cap.
func (m *Manager) MaxRetries() int { return m.maxRetries }

// Add records a captured submission as pending and persists it.
func (m *Manager) Add(ctx context.Context, c Capture) (PendingSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return PendingSubmission{}, err
	}

	now := m.now()
	sub := PendingSubmission{
		ID:             fmt.Sprintf("local_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
		StudentName:    c.StudentName,
		StudentEmail:   c.StudentEmail,
		ImageURLs:      append([]string(nil), c.ImageURLs...),
		MagicLinkToken: c.MagicLinkToken,
		CreatedAt:      now,
		SyncStatus:     constants.SyncPending,
	}
	m.items = append(m.items, sub)
	if err := m.persist(ctx); err != nil {
		kept := m.items[:0]
		for _, it := range m.items {
			if it.ID != sub.ID {
				kept = append(kept, it)
			}
		}
		m.items = kept
		return PendingSubmission{}, err
	}

	m.logger.Info("outbox.add",
		"local_id", sub.ID,
		"student_email", sub.StudentEmail,
		"pages", len(sub.ImageURLs),
	)
	return sub, nil
}

// PendingCount returns the number of submissions still waiting for
// their first delivery attempt.
func (m *Manager) PendingCount(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	m.sweepSynced(ctx)

	n := 0
	for _, it := range m.items {
		if it.SyncStatus == constants.SyncPending {
			n++
		}
	}
	return n, nil
}

// ListSyncable returns submissions eligible for delivery, oldest first:
// pending ones plus failed ones that have attempts left. Parked
// failures (retry budget spent) are excluded.
func (m *Manager) ListSyncable(ctx context.Context) ([]PendingSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	m.sweepSynced(ctx)

	var out []PendingSubmission
	for _, it := range m.items {
		switch it.SyncStatus {
		case constants.SyncPending:
			out = append(out, it)
		case constants.SyncError:
			if it.RetryCount < m.maxRetries {
				out = append(out, it)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ShouldSync reports whether enough pending submissions have
// accumulated to justify a batch upload.
func (m *Manager) ShouldSync(ctx context.Context) (bool, error) {
	n, err := m.PendingCount(ctx)
	if err != nil {
		return false, err
	}
	return n >= m.batchSize, nil
}

// MarkSyncing transitions the given submissions to syncing. Unknown
// IDs are ignored.
func (m *Manager) MarkSyncing(ctx context.Context, ids []string) error {
	return m.update(ctx, func() {
		want := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			want[id] = struct{}{}
		}
		for i := range m.items {
			if _, ok := want[m.items[i].ID]; ok {
				m.items[i].SyncStatus = constants.SyncSyncing
			}
		}
	})
}

// MarkSynced records a successful delivery together with the ID the
// server assigned.
func (m *Manager) MarkSynced(ctx context.Context, localID, serverID string) error {
	return m.update(ctx, func() {
		for i := range m.items {
			if m.items[i].ID == localID {
				m.items[i].SyncStatus = constants.SyncSynced
				m.items[i].ServerID = serverID
				m.items[i].ErrorMessage = ""
				m.items[i].RetryCount = 0
			}
		}
	})
}

// MarkError records a failed delivery attempt and spends one retry.
func (m *Manager) MarkError(ctx context.Context, localID, message string) error {
	return m.update(ctx, func() {
		for i := range m.items {
			if m.items[i].ID == localID {
				m.items[i].SyncStatus = constants.SyncError
				m.items[i].ErrorMessage = message
				m.items[i].RetryCount++
				if m.items[i].RetryCount >= m.maxRetries {
					m.logger.Warn("outbox.parked",
						"local_id", localID,
						"attempts", m.items[i].RetryCount,
						"error", message,
					)
				}
			}
		}
	})
}

// RemoveSynced drops delivered submissions from the outbox.
func (m *Manager) RemoveSynced(ctx context.Context) error {
	return m.update(ctx, func() {
		kept := m.items[:0]
		for _, it := range m.items {
			if it.SyncStatus != constants.SyncSynced {
				kept = append(kept, it)
			}
		}
		m.items = kept
	})
}

// Snapshot returns a copy of the full outbox, oldest first.
func (m *Manager) Snapshot(ctx context.Context) ([]PendingSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	out := append([]PendingSubmission(nil), m.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ClearAll empties the outbox, delivered or not.
func (m *Manager) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.loaded = true
	return m.store.Save(ctx, nil)
}

func (m *Manager) update(ctx context.Context, mutate func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return err
	}
	mutate()
	return m.persist(ctx)
}

func (m *Manager) ensureLoaded(ctx context.Context) error {
	if m.loaded {
		return nil
	}
	items, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load outbox: %w", err)
	}
	m.items = items
	m.loaded = true
	return nil
}

// sweepSynced drops delivered submissions past the retention window.
// Runs on the read path so a long-idle agent still trims itself.
func (m *Manager) sweepSynced(ctx context.Context) {
	cutoff := m.now().Add(-m.retention)
	kept := m.items[:0]
	removed := 0
	for _, it := range m.items {
		if it.SyncStatus == constants.SyncSynced && it.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	if removed == 0 {
		return
	}
	m.items = kept
	if err := m.store.Save(ctx, m.items); err != nil {
		m.logger.Warn("outbox.sweep_persist_failed", "error", err)
	}
	m.logger.Debug("outbox.sweep", "removed", removed)
}

// persist writes the working set through. If the store rejects the
// write, undelivered submissions are never sacrificed: only the synced
// tail is trimmed to its most recent entries and the save retried.
func (m *Manager) persist(ctx context.Context) error {
	if err := m.store.Save(ctx, m.items); err == nil {
		return nil
	} else {
		m.logger.Warn("outbox.save_failed", "error", err, "items", len(m.items))
	}

	var unsynced, synced []PendingSubmission
	for _, it := range m.items {
		if it.SyncStatus == constants.SyncSynced {
			synced = append(synced, it)
		} else {
			unsynced = append(unsynced, it)
		}
	}
	sort.SliceStable(synced, func(i, j int) bool { return synced[i].CreatedAt.Before(synced[j].CreatedAt) })
	if len(synced) > m.syncedKeep {
		synced = synced[len(synced)-m.syncedKeep:]
	}
	m.items = append(unsynced, synced...)

	if err := m.store.Save(ctx, m.items); err != nil {
		return fmt.Errorf("save outbox: %w", err)
	}
	return nil
}
