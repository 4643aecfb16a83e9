package batch

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertalk/papertalk/constants"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	items := []PendingSubmission{
		{
			ID:             "local_1_aaaa",
			StudentName:    "Ada",
			StudentEmail:   "ada@school.test",
			ImageURLs:      []string{"submissions/p1.jpg", "submissions/p2.jpg"},
			MagicLinkToken: "tok-abc",
			CreatedAt:      created,
			SyncStatus:     constants.SyncPending,
		},
		{
			ID:             "local_2_bbbb",
			StudentName:    "Grace",
			StudentEmail:   "grace@school.test",
			ImageURLs:      []string{"submissions/p3.jpg"},
			MagicLinkToken: "tok-abc",
			CreatedAt:      created.Add(time.Minute),
			SyncStatus:     constants.SyncError,
			ErrorMessage:   "upload failed",
			RetryCount:     2,
		},
	}
	require.NoError(t, s.Save(ctx, items))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestSQLiteStore_SaveReplacesPreviousContents(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	first := []PendingSubmission{{
		ID: "local_1_aaaa", StudentName: "Ada", StudentEmail: "ada@school.test",
		ImageURLs: []string{"submissions/p1.jpg"}, MagicLinkToken: "tok-abc",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond), SyncStatus: constants.SyncPending,
	}}
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, nil))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteStore_SchemaVersionMismatchResets(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "outbox.db")
	ctx := context.Background()

	s, err := OpenSQLiteStore(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, []PendingSubmission{{
		ID: "local_1_aaaa", StudentName: "Ada", StudentEmail: "ada@school.test",
		ImageURLs: []string{"submissions/p1.jpg"}, MagicLinkToken: "tok-abc",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond), SyncStatus: constants.SyncPending,
	}}))

	_, err = s.db.ExecContext(ctx, `UPDATE outbox_meta SET value = ? WHERE key = 'schema_version'`, SchemaVersion+1)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := OpenSQLiteStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "mismatched schema starts fresh")
}

func TestManager_WithSQLiteStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "outbox.db")
	ctx := context.Background()

	s, err := OpenSQLiteStore(ctx, dsn)
	require.NoError(t, err)
	m := NewManager(s, testLogger())
	sub, err := m.Add(ctx, Capture{
		StudentName: "Ada", StudentEmail: "ada@school.test",
		ImageURLs: []string{"submissions/p1.jpg"}, MagicLinkToken: "tok-abc",
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := OpenSQLiteStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })

	m2 := NewManager(s2, testLogger())
	syncable, err := m2.ListSyncable(ctx)
	require.NoError(t, err)
	require.Len(t, syncable, 1)
	assert.Equal(t, sub.ID, syncable[0].ID)
}
