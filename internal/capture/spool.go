// Package capture feeds the agent's outbox from a spool directory.
// Scanning software at the exam venue drops one JSON file per student;
// the spool watcher picks each file up, records it locally, and removes
// it. Network state never blocks a capture.
package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/papertalk/papertalk/internal/batch"
)

// spoolFile is the on-disk capture format.
type spoolFile struct {
	StudentName    string   `json:"studentName"`
	StudentEmail   string   `json:"studentEmail"`
	ImageURLs      []string `json:"imageUrls"`
	MagicLinkToken string   `json:"magicLinkToken"`
}

// Spool watches a directory for capture files and appends them to the
// outbox. Files that cannot be parsed are renamed aside with a .err
// suffix so they do not wedge the watcher.
type Spool struct {
	dir    string
	outbox *batch.Manager
	logger *slog.Logger

	// onCapture fires after each successful capture, typically wired to
	// the sync service's trigger.
	onCapture func()
}

func NewSpool(dir string, outbox *batch.Manager, logger *slog.Logger, onCapture func()) *Spool {
	if logger == nil {
		logger = slog.Default()
	}
	if onCapture == nil {
		onCapture = func() {}
	}
	return &Spool{dir: dir, outbox: outbox, logger: logger, onCapture: onCapture}
}

// ScanOnce processes every capture file currently in the spool.
func (s *Spool) ScanOnce(ctx context.Context) error {
	var paths []string
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && isCaptureFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan spool: %w", err)
	}
	for _, p := range paths {
		s.processFile(ctx, p)
	}
	return nil
}

// Run scans the spool once and then watches it until ctx is done.
func (s *Spool) Run(ctx context.Context) error {
	if err := s.ScanOnce(ctx); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create spool watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(s.dir); err != nil {
		return fmt.Errorf("watch spool dir: %w", err)
	}
	s.logger.Info("capture.watching", "dir", s.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if !isCaptureFile(e.Name) {
				continue
			}
			// Give the producer a moment to finish writing.
			time.Sleep(50 * time.Millisecond)
			s.processFile(ctx, e.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("capture.watch_error", "error", err)
		}
	}
}

func (s *Spool) processFile(ctx context.Context, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		s.logger.Warn("capture.read_failed", "file", path, "error", err)
		return
	}

	var sf spoolFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		s.quarantine(path, fmt.Errorf("invalid json: %w", err))
		return
	}
	if sf.StudentName == "" || sf.StudentEmail == "" || sf.MagicLinkToken == "" || len(sf.ImageURLs) == 0 {
		s.quarantine(path, fmt.Errorf("missing required fields"))
		return
	}

	sub, err := s.outbox.Add(ctx, batch.Capture{
		StudentName:    sf.StudentName,
		StudentEmail:   sf.StudentEmail,
		ImageURLs:      sf.ImageURLs,
		MagicLinkToken: sf.MagicLinkToken,
	})
	if err != nil {
		// Leave the file in place; the next scan retries it.
		s.logger.Error("capture.record_failed", "file", path, "error", err)
		return
	}

	if err := os.Remove(path); err != nil {
		s.logger.Warn("capture.cleanup_failed", "file", path, "error", err)
	}
	s.logger.Info("capture.ok", "file", filepath.Base(path), "local_id", sub.ID)
	s.onCapture()
}

func (s *Spool) quarantine(path string, cause error) {
	s.logger.Warn("capture.rejected", "file", path, "error", cause)
	if err := os.Rename(path, path+".err"); err != nil {
		s.logger.Warn("capture.quarantine_failed", "file", path, "error", err)
	}
}

func isCaptureFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
