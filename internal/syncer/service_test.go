package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/batch"
	"github.com/papertalk/papertalk/internal/protocol"
)

type bulkServer struct {
	t *testing.T

	mu       sync.Mutex
	requests []protocol.BulkSubmissionRequest
	respond  func(req protocol.BulkSubmissionRequest) (int, any)

	srv *httptest.Server
}

func newBulkServer(t *testing.T) *bulkServer {
	t.Helper()
	b := &bulkServer{t: t}
	b.respond = func(req protocol.BulkSubmissionRequest) (int, any) {
		results := make([]protocol.BulkItemResult, 0, len(req.LocalIDs))
		for i, id := range req.LocalIDs {
			results = append(results, protocol.BulkItemResult{
				LocalID:  id,
				Success:  true,
				ServerID: fmt.Sprintf("srv-%d", i),
			})
		}
		return http.StatusOK, results
	}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/submissions/bulk", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req protocol.BulkSubmissionRequest
		require.NoError(t, json.Unmarshal(raw, &req))

		b.mu.Lock()
		b.requests = append(b.requests, req)
		respond := b.respond
		b.mu.Unlock()

		status, body := respond(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *bulkServer) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOutbox(t *testing.T, opts ...batch.ManagerOption) *batch.Manager {
	t.Helper()
	return batch.NewManager(batch.NewMemoryStore(), testLogger(), opts...)
}

func addCaptures(t *testing.T, m *batch.Manager, n int) []batch.PendingSubmission {
	t.Helper()
	out := make([]batch.PendingSubmission, 0, n)
	for i := 0; i < n; i++ {
		sub, err := m.Add(context.Background(), batch.Capture{
			StudentName:    fmt.Sprintf("Student %d", i),
			StudentEmail:   fmt.Sprintf("s%d@school.test", i),
			ImageURLs:      []string{fmt.Sprintf("submissions/page-%d.jpg", i)},
			MagicLinkToken: "tok-abc",
		})
		require.NoError(t, err)
		out = append(out, sub)
	}
	return out
}

func TestSyncPending_BelowThresholdIsNoop(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(5))
	addCaptures(t, outbox, 3)

	svc := New(outbox, server.srv.URL, testLogger())
	require.NoError(t, svc.SyncPending(context.Background()))
	assert.Zero(t, server.requestCount())
}

func TestSyncPending_UploadsBatchAndReconciles(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(2))
	subs := addCaptures(t, outbox, 3)
	ctx := context.Background()

	svc := New(outbox, server.srv.URL, testLogger())
	require.NoError(t, svc.SyncPending(ctx))

	require.Equal(t, 1, server.requestCount())
	req := server.requests[0]
	require.Len(t, req.Submissions, 2, "batch is capped at the batch size")
	assert.Equal(t, []string{subs[0].ID, subs[1].ID}, req.LocalIDs, "oldest first")
	assert.Equal(t, "Student 0", req.Submissions[0].StudentName)

	// Synced items are removed; the third capture is still pending.
	left, err := outbox.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, subs[2].ID, left[0].ID)
	assert.Equal(t, constants.SyncPending, left[0].SyncStatus)
}

func TestSyncPending_PerItemFailureMarksError(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(2))
	subs := addCaptures(t, outbox, 2)
	ctx := context.Background()

	server.respond = func(req protocol.BulkSubmissionRequest) (int, any) {
		return http.StatusOK, []protocol.BulkItemResult{
			{LocalID: req.LocalIDs[0], Success: true, ServerID: "srv-0"},
			{LocalID: req.LocalIDs[1], Success: false, Error: "You have already submitted this test"},
		}
	}

	svc := New(outbox, server.srv.URL, testLogger())
	require.NoError(t, svc.SyncPending(ctx))

	left, err := outbox.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, subs[1].ID, left[0].ID)
	assert.Equal(t, constants.SyncError, left[0].SyncStatus)
	assert.Equal(t, "You have already submitted this test", left[0].ErrorMessage)
	assert.Equal(t, 1, left[0].RetryCount)
}

func TestSyncPending_TransportFailureMarksWholeBatch(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(2))
	addCaptures(t, outbox, 2)
	ctx := context.Background()

	server.respond = func(protocol.BulkSubmissionRequest) (int, any) {
		return http.StatusInternalServerError, protocol.ErrorResponse{Error: "Internal server error"}
	}

	svc := New(outbox, server.srv.URL, testLogger())
	err := svc.SyncPending(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Internal server error")

	left, err := outbox.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, left, 2)
	for _, it := range left {
		assert.Equal(t, constants.SyncError, it.SyncStatus)
		assert.Equal(t, 1, it.RetryCount)
	}
}

func TestSyncPending_RetriesErrorsBelowThreshold(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(5))
	subs := addCaptures(t, outbox, 1)
	ctx := context.Background()

	// One failed attempt leaves a retryable error item; the gate must
	// not hold it hostage to the batch size.
	require.NoError(t, outbox.MarkError(ctx, subs[0].ID, "network error"))

	svc := New(outbox, server.srv.URL, testLogger())
	require.NoError(t, svc.SyncPending(ctx))

	require.Equal(t, 1, server.requestCount())
	left, err := outbox.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestSyncPending_ExhaustedRetriesAreNotResent(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(5), batch.WithMaxRetries(2))
	subs := addCaptures(t, outbox, 1)
	ctx := context.Background()

	require.NoError(t, outbox.MarkError(ctx, subs[0].ID, "boom"))
	require.NoError(t, outbox.MarkError(ctx, subs[0].ID, "boom"))

	svc := New(outbox, server.srv.URL, testLogger())
	require.NoError(t, svc.SyncPending(ctx))
	require.NoError(t, svc.ForceSync(ctx))
	assert.Zero(t, server.requestCount())
}

func TestForceSync_BypassesGate(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(5))
	addCaptures(t, outbox, 1)
	ctx := context.Background()

	svc := New(outbox, server.srv.URL, testLogger())
	require.NoError(t, svc.SyncPending(ctx))
	assert.Zero(t, server.requestCount(), "below threshold, no errors")

	require.NoError(t, svc.ForceSync(ctx))
	require.Equal(t, 1, server.requestCount())

	left, err := outbox.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestRun_TriggerSyncRespectsBatchGate(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(3))
	addCaptures(t, outbox, 1)

	svc := New(outbox, server.srv.URL, testLogger(), WithInterval(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Run(ctx)
	}()

	// A single capture is below the batch size; the trigger must not
	// produce a one-item upload.
	svc.TriggerSync()
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, server.requestCount())

	// Once the threshold is reached the next trigger uploads a full batch.
	addCaptures(t, outbox, 2)
	svc.TriggerSync()
	require.Eventually(t, func() bool { return server.requestCount() == 1 }, time.Second, 10*time.Millisecond)
	require.Len(t, server.requests[0].Submissions, 3)

	cancel()
	<-done
}

func TestSyncPending_MissingResultMarksError(t *testing.T) {
	server := newBulkServer(t)
	outbox := newOutbox(t, batch.WithBatchSize(1))
	subs := addCaptures(t, outbox, 1)
	ctx := context.Background()

	server.respond = func(protocol.BulkSubmissionRequest) (int, any) {
		return http.StatusOK, []protocol.BulkItemResult{}
	}

	svc := New(outbox, server.srv.URL, testLogger())
	require.NoError(t, svc.SyncPending(ctx))

	left, err := outbox.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, subs[0].ID, left[0].ID)
	assert.Equal(t, constants.SyncError, left[0].SyncStatus)
}
