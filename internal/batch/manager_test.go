package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertalk/papertalk/constants"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testManager(t *testing.T, store Store, opts ...ManagerOption) *Manager {
	t.Helper()
	if store == nil {
		store = NewMemoryStore()
	}
	return NewManager(store, testLogger(), opts...)
}

func addN(t *testing.T, m *Manager, n int) []PendingSubmission {
	t.Helper()
	out := make([]PendingSubmission, 0, n)
	for i := 0; i < n; i++ {
		sub, err := m.Add(context.Background(), Capture{
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

func TestManager_AddAssignsLocalIDAndPersists(t *testing.T) {
	store := NewMemoryStore()
	m := testManager(t, store)

	sub, err := m.Add(context.Background(), Capture{
		StudentName:    "Ada",
		StudentEmail:   "ada@school.test",
		ImageURLs:      []string{"submissions/p1.jpg", "submissions/p2.jpg"},
		MagicLinkToken: "tok-abc",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sub.ID, "local_"))
	assert.Equal(t, constants.SyncPending, sub.SyncStatus)

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, sub.ID, stored[0].ID)
	assert.Equal(t, []string{"submissions/p1.jpg", "submissions/p2.jpg"}, stored[0].ImageURLs)
}

func TestManager_ShouldSyncAtBatchSize(t *testing.T) {
	m := testManager(t, nil, WithBatchSize(3))
	ctx := context.Background()

	addN(t, m, 2)
	ok, err := m.ShouldSync(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	addN(t, m, 1)
	ok, err = m.ShouldSync(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestManager_SyncLifecycle(t *testing.T) {
	m := testManager(t, nil)
	ctx := context.Background()
	subs := addN(t, m, 2)

	require.NoError(t, m.MarkSyncing(ctx, []string{subs[0].ID, subs[1].ID}))
	n, err := m.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "syncing items are no longer pending")

	require.NoError(t, m.MarkSynced(ctx, subs[0].ID, "srv-1"))
	require.NoError(t, m.MarkError(ctx, subs[1].ID, "upload failed"))

	all, err := m.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, constants.SyncSynced, all[0].SyncStatus)
	assert.Equal(t, "srv-1", all[0].ServerID)
	assert.Equal(t, constants.SyncError, all[1].SyncStatus)
	assert.Equal(t, "upload failed", all[1].ErrorMessage)
	assert.Equal(t, 1, all[1].RetryCount)

	require.NoError(t, m.RemoveSynced(ctx))
	all, err = m.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, subs[1].ID, all[0].ID)
}

func TestManager_ListSyncableIncludesRetryableErrors(t *testing.T) {
	m := testManager(t, nil, WithMaxRetries(2))
	ctx := context.Background()
	subs := addN(t, m, 3)

	require.NoError(t, m.MarkSyncing(ctx, []string{subs[0].ID, subs[1].ID}))
	require.NoError(t, m.MarkError(ctx, subs[0].ID, "boom"))

	// Second failure exhausts the retry budget and parks the item.
	require.NoError(t, m.MarkError(ctx, subs[1].ID, "boom"))
	require.NoError(t, m.MarkError(ctx, subs[1].ID, "boom"))

	syncable, err := m.ListSyncable(ctx)
	require.NoError(t, err)
	require.Len(t, syncable, 2)
	assert.Equal(t, subs[0].ID, syncable[0].ID)
	assert.Equal(t, subs[2].ID, syncable[1].ID)
}

func TestManager_SweepRemovesOldSynced(t *testing.T) {
	now := time.Now()
	clock := now
	m := testManager(t, nil, WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	subs := addN(t, m, 2)
	require.NoError(t, m.MarkSynced(ctx, subs[0].ID, "srv-1"))

	clock = now.Add(2 * time.Hour)
	all, err := m.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2, "snapshot does not sweep")

	n, err := m.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err = m.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "aged synced item swept on read")
	assert.Equal(t, subs[1].ID, all[0].ID)
}

func TestManager_SaveFailureEvictsOnlySynced(t *testing.T) {
	store := NewMemoryStore()
	m := testManager(t, store)
	ctx := context.Background()

	subs := addN(t, m, 14)
	for i := 0; i < 12; i++ {
		require.NoError(t, m.MarkSynced(ctx, subs[i].ID, fmt.Sprintf("srv-%d", i)))
	}

	store.FailNextSave = errors.New("disk full")
	require.NoError(t, m.MarkSyncing(ctx, []string{subs[12].ID}))

	all, err := m.Snapshot(ctx)
	require.NoError(t, err)

	var pending, synced int
	for _, it := range all {
		switch it.SyncStatus {
		case constants.SyncSynced:
			synced++
		default:
			pending++
		}
	}
	assert.Equal(t, 2, pending, "undelivered items survive eviction")
	assert.Equal(t, 10, synced, "synced tail trimmed to the keep limit")

	// The newest synced entries are the ones kept.
	ids := make(map[string]bool)
	for _, it := range all {
		ids[it.ID] = true
	}
	assert.False(t, ids[subs[0].ID])
	assert.True(t, ids[subs[11].ID])
}

func TestManager_ClearAll(t *testing.T) {
	store := NewMemoryStore()
	m := testManager(t, store)
	ctx := context.Background()

	addN(t, m, 3)
	require.NoError(t, m.ClearAll(ctx))

	all, err := m.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
