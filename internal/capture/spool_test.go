package capture

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertalk/papertalk/internal/batch"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSpoolFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCapture = `{
  "studentName": "Ada",
  "studentEmail": "ada@school.test",
  "imageUrls": ["submissions/p1.jpg"],
  "magicLinkToken": "tok-abc"
}`

func TestScanOnce_RecordsAndRemovesFiles(t *testing.T) {
	dir := t.TempDir()
	outbox := batch.NewManager(batch.NewMemoryStore(), testLogger())

	path := writeSpoolFile(t, dir, "ada.json", validCapture)
	writeSpoolFile(t, dir, "notes.txt", "ignore me")

	captured := 0
	spool := NewSpool(dir, outbox, testLogger(), func() { captured++ })
	require.NoError(t, spool.ScanOnce(context.Background()))

	assert.Equal(t, 1, captured)
	assert.NoFileExists(t, path)

	items, err := outbox.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ada@school.test", items[0].StudentEmail)
	assert.Equal(t, []string{"submissions/p1.jpg"}, items[0].ImageURLs)
}

func TestScanOnce_QuarantinesBadFiles(t *testing.T) {
	dir := t.TempDir()
	outbox := batch.NewManager(batch.NewMemoryStore(), testLogger())

	bad := writeSpoolFile(t, dir, "bad.json", "{not json")
	incomplete := writeSpoolFile(t, dir, "incomplete.json", `{"studentName": "Ada"}`)

	spool := NewSpool(dir, outbox, testLogger(), nil)
	require.NoError(t, spool.ScanOnce(context.Background()))

	assert.NoFileExists(t, bad)
	assert.FileExists(t, bad+".err")
	assert.FileExists(t, incomplete+".err")

	items, err := outbox.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRun_PicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	outbox := batch.NewManager(batch.NewMemoryStore(), testLogger())

	spool := NewSpool(dir, outbox, testLogger(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- spool.Run(ctx) }()

	// Let the watcher attach before dropping the file.
	time.Sleep(100 * time.Millisecond)
	writeSpoolFile(t, dir, "grace.json", validCapture)

	require.Eventually(t, func() bool {
		items, err := outbox.Snapshot(context.Background())
		return err == nil && len(items) == 1
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
