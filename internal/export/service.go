package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes
// for grade exports.
type Service struct {
	subs   repository.SubmissionRepository
	tests  repository.TestRepository
	logger *slog.Logger
}

func NewService(subs repository.SubmissionRepository, tests repository.TestRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{subs: subs, tests: tests, logger: logger}
}

// ExportGradesXLSX returns an XLSX workbook of every submission for a
// test, ordered as stored. Drafts export with their draft score so a
// teacher can review offline.
func (s *Service) ExportGradesXLSX(ctx context.Context, testID uuid.UUID) ([]byte, error) {
	start := time.Now()

	test, err := s.tests.GetByID(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("load test: %w", err)
	}
	subs, err := s.subs.ListByTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Grades"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Student Name",
		"Student Email",
		"Score",
		"Status",
		"Submitted By",
		"Submitted At",
		"Feedback",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sub := range subs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, sub.StudentName)
		write(2, sub.StudentEmail)

		if sub.FinalScore != nil {
			write(3, *sub.FinalScore)
		} else {
			write(3, "")
		}

		status := string(sub.Status)
		if sub.Status != constants.SubmissionGraded {
			status = string(sub.ProcessingStatus)
		}
		write(4, status)

		write(5, string(sub.SubmittedBy))
		write(6, sub.CreatedAt.UTC().Format(time.RFC3339))

		feedback := ""
		if sub.AIFeedback != nil {
			feedback = truncate(*sub.AIFeedback, 500)
		}
		write(7, feedback)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 30)
	_ = f.SetColWidth(sheet, "C", "C", 8)
	_ = f.SetColWidth(sheet, "D", "E", 16)
	_ = f.SetColWidth(sheet, "F", "F", 22)
	_ = f.SetColWidth(sheet, "G", "G", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"test_id", testID.String(),
		"test", test.Name,
		"rows", len(subs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
