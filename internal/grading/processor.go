package grading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/async"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/repository"
)

// Processor runs one queued submission through the grader: loads the
// current row, assembles the material (question paper first), calls the
// provider, and persists the draft feedback.
type Processor struct {
	subs   repository.SubmissionRepository
	tests  repository.TestRepository
	grader Grader
	logger *slog.Logger
}

func NewProcessor(
	subs repository.SubmissionRepository,
	tests repository.TestRepository,
	grader Grader,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		subs:   subs,
		tests:  tests,
		grader: grader,
		logger: logger,
	}
}

func (p *Processor) Process(ctx context.Context, job async.Job) error {
	start := time.Now()
	p.logger.Info("process.start", "submission_id", job.SubmissionID)

	sub, err := p.subs.GetByID(ctx, job.SubmissionID)
	if err != nil {
		return fmt.Errorf("load submission: %w", err)
	}

	if err := p.subs.SetProcessingStatus(ctx, sub.ID, constants.ProcessingAI); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	refs := sub.GradingRefs()
	paper, err := p.tests.GetPaper(ctx, sub.TestID)
	switch {
	case err == nil:
		refs = append([]string{paper.FileURL}, refs...)
	case errors.Is(err, common.ErrNotFound):
		// grading proceeds on answers alone
	default:
		return fmt.Errorf("load test paper: %w", err)
	}

	req := Request{
		StudentName:  sub.StudentName,
		MaterialRefs: refs,
	}
	if sub.AIFeedback != nil {
		req.PreviousFeedback = *sub.AIFeedback
	}

	res, err := p.grader.Grade(ctx, req)
	if err != nil {
		return err
	}

	if err := p.subs.SaveGradingResult(ctx, sub.ID, res.Feedback, res.Score); err != nil {
		return fmt.Errorf("save grading result: %w", err)
	}

	p.logger.Info("process.ok",
		"submission_id", sub.ID,
		"has_score", res.Score != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
