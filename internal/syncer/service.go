// Package syncer uploads the capture agent's outbox to the grading
// server in batches, retrying failed items with a bounded budget.
package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/batch"
	"github.com/papertalk/papertalk/internal/protocol"
)

const (
	defaultInterval  = 30 * time.Second
	defaultHTTPWait  = 60 * time.Second
	bulkEndpointPath = "/api/submissions/bulk"
)

// Service drives batch uploads against the server's bulk endpoint. A
// single sync runs at a time; overlapping triggers are dropped, not
// queued.
type Service struct {
	outbox    *batch.Manager
	serverURL string
	client    *http.Client
	logger    *slog.Logger
	interval  time.Duration

	mu      sync.Mutex
	syncing bool

	trigger chan struct{}
}

type Option func(*Service)

// WithInterval sets the periodic sync cadence for Run.
func WithInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithHTTPClient overrides the upload client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.client = c
		}
	}
}

func New(outbox *batch.Manager, serverURL string, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		outbox:    outbox,
		serverURL: serverURL,
		client:    &http.Client{Timeout: defaultHTTPWait},
		logger:    logger,
		interval:  defaultInterval,
		trigger:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncPending uploads one batch if the outbox has accumulated enough
// pending work or holds retryable failures. Below the threshold it is
// a no-op so pages trickle in without chatty single uploads.
func (s *Service) SyncPending(ctx context.Context) error {
	return s.syncOnce(ctx, false)
}

// ForceSync uploads whatever is syncable right now, ignoring the
// batch-size gate. Used for manual flushes and shutdown drains.
func (s *Service) ForceSync(ctx context.Context) error {
	return s.syncOnce(ctx, true)
}

// TriggerSync requests an out-of-band sync from the Run loop, for
// capture and connectivity-regained style events. The batch-size gate
// still applies; only ForceSync bypasses it. Non-blocking; a trigger
// that arrives while one is queued is merged with it.
func (s *Service) TriggerSync() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run performs a startup sync and then keeps syncing on a fixed
// interval and on TriggerSync events until ctx is done.
func (s *Service) Run(ctx context.Context) {
	if err := s.SyncPending(ctx); err != nil {
		s.logger.Warn("sync.startup_failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.SyncPending(ctx); err != nil {
				s.logger.Warn("sync.interval_failed", "error", err)
			}
		case <-s.trigger:
			if err := s.SyncPending(ctx); err != nil {
				s.logger.Warn("sync.triggered_failed", "error", err)
			}
		}
	}
}

func (s *Service) syncOnce(ctx context.Context, force bool) error {
	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()
		s.logger.Debug("sync.skip", "reason", "already_running")
		return nil
	}
	s.syncing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()
	}()

	syncable, err := s.outbox.ListSyncable(ctx)
	if err != nil {
		return err
	}
	if len(syncable) == 0 {
		return nil
	}

	if !force {
		ready, err := s.outbox.ShouldSync(ctx)
		if err != nil {
			return err
		}
		hasFailures := false
		for _, it := range syncable {
			if it.SyncStatus == constants.SyncError {
				hasFailures = true
				break
			}
		}
		if !ready && !hasFailures {
			return nil
		}
	}

	items := syncable
	if size := s.outbox.BatchSize(); len(items) > size {
		items = items[:size]
	}
	return s.upload(ctx, items)
}

func (s *Service) upload(ctx context.Context, items []batch.PendingSubmission) error {
	start := time.Now()

	req := protocol.BulkSubmissionRequest{
		Submissions: make([]protocol.SubmissionPayload, 0, len(items)),
		LocalIDs:    make([]string, 0, len(items)),
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		req.Submissions = append(req.Submissions, protocol.SubmissionPayload{
			StudentName:    it.StudentName,
			StudentEmail:   it.StudentEmail,
			ImageURLs:      it.ImageURLs,
			MagicLinkToken: it.MagicLinkToken,
		})
		req.LocalIDs = append(req.LocalIDs, it.ID)
		ids = append(ids, it.ID)
	}

	if err := s.outbox.MarkSyncing(ctx, ids); err != nil {
		return err
	}

	results, err := s.postBulk(ctx, req)
	if err != nil {
		s.logger.Warn("sync.batch_failed", "items", len(ids), "error", err)
		for _, id := range ids {
			if merr := s.outbox.MarkError(ctx, id, err.Error()); merr != nil {
				return merr
			}
		}
		return err
	}

	synced := 0
	byID := make(map[string]protocol.BulkItemResult, len(results))
	for _, r := range results {
		byID[r.LocalID] = r
	}
	for _, id := range ids {
		r, ok := byID[id]
		switch {
		case ok && r.Success && r.ServerID != "":
			if err := s.outbox.MarkSynced(ctx, id, r.ServerID); err != nil {
				return err
			}
			synced++
		case ok:
			msg := r.Error
			if msg == "" {
				msg = "sync failed"
			}
			if err := s.outbox.MarkError(ctx, id, msg); err != nil {
				return err
			}
		default:
			if err := s.outbox.MarkError(ctx, id, "no result returned for submission"); err != nil {
				return err
			}
		}
	}

	if err := s.outbox.RemoveSynced(ctx); err != nil {
		return err
	}

	s.logger.Info("sync.batch_done",
		"items", len(ids),
		"synced", synced,
		"failed", len(ids)-synced,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *Service) postBulk(ctx context.Context, req protocol.BulkSubmissionRequest) ([]protocol.BulkItemResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode batch: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.serverURL+bulkEndpointPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("bulk upload: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read bulk response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var errResp protocol.ErrorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("bulk upload status %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("bulk upload status %d", resp.StatusCode)
	}

	var results []protocol.BulkItemResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode bulk response: %w", err)
	}
	return results, nil
}
