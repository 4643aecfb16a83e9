// Package ingest accepts submissions from every entry path: magic-link
// uploads, authenticated teacher uploads, bulk batches from capture
// agents, and re-grade requests.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/async"
	"github.com/papertalk/papertalk/internal/auth"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/entity"
	"github.com/papertalk/papertalk/internal/merge"
	"github.com/papertalk/papertalk/internal/protocol"
	"github.com/papertalk/papertalk/internal/repository"
)

type Service struct {
	subs   repository.SubmissionRepository
	tests  repository.TestRepository
	links  repository.MagicLinkRepository
	users  repository.UserRepository
	merger merge.Merger
	queue  async.Queue
	logger *slog.Logger
	now    func() time.Time
}

func NewService(
	subs repository.SubmissionRepository,
	tests repository.TestRepository,
	links repository.MagicLinkRepository,
	users repository.UserRepository,
	merger merge.Merger,
	queue async.Queue,
	logger *slog.Logger,
) *Service {
	return &Service{
		subs:   subs,
		tests:  tests,
		links:  links,
		users:  users,
		merger: merger,
		queue:  queue,
		logger: logger,
		now:    time.Now,
	}
}

// CreateFromMagicLink handles a student upload. The link must exist and
// be unexpired; a link already marked used stays valid so several
// students can share one link.
func (s *Service) CreateFromMagicLink(ctx context.Context, payload protocol.SubmissionPayload) (*entity.Submission, error) {
	link, err := s.links.GetByToken(ctx, payload.MagicLinkToken)
	if err != nil {
		return nil, err
	}
	if link.Expired(s.now()) {
		return nil, common.ErrLinkExpired
	}
	return s.create(ctx, link, payload)
}

// CreateBulk processes a capture-agent batch one item at a time. A bad
// magic link, a duplicate, or any other business-rule failure marks
// that item's result and never stops the rest of the batch.
func (s *Service) CreateBulk(ctx context.Context, req protocol.BulkSubmissionRequest) ([]protocol.BulkItemResult, error) {
	links := make(map[string]*entity.MagicLink, len(req.Submissions))
	results := make([]protocol.BulkItemResult, 0, len(req.Submissions))
	for i, sub := range req.Submissions {
		localID := req.LocalIDs[i]

		link, seen := links[sub.MagicLinkToken]
		if !seen {
			var err error
			link, err = s.links.GetByToken(ctx, sub.MagicLinkToken)
			if err != nil {
				results = append(results, protocol.BulkItemResult{
					LocalID: localID,
					Error:   userFacingError(err),
				})
				continue
			}
			links[sub.MagicLinkToken] = link
		}
		if link.Expired(s.now()) {
			results = append(results, protocol.BulkItemResult{
				LocalID: localID,
				Error:   userFacingError(common.ErrLinkExpired),
			})
			continue
		}

		created, err := s.create(ctx, link, sub)
		if err != nil {
			results = append(results, protocol.BulkItemResult{
				LocalID: localID,
				Error:   userFacingError(err),
			})
			continue
		}
		results = append(results, protocol.BulkItemResult{
			LocalID:  localID,
			Success:  true,
			ServerID: created.ID.String(),
		})
	}
	return results, nil
}

// CreateForTeacher handles an authenticated upload on behalf of a
// student. With Override set, an existing submission for the same
// student is replaced and re-graded instead of rejected.
func (s *Service) CreateForTeacher(ctx context.Context, id auth.Identity, req protocol.TeacherSubmissionRequest) (*entity.Submission, error) {
	testID, err := uuid.Parse(req.TestID)
	if err != nil {
		return nil, common.NewAppError("INVALID_TEST_ID", "testId is not a valid id", common.ErrInvalidInput)
	}
	test, err := s.tests.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test.OrganizationID != id.OrganizationID {
		return nil, common.ErrForbidden
	}

	existing, err := s.subs.FindByTestAndEmail(ctx, test.ID, req.StudentEmail)
	switch {
	case err == nil && !req.Override:
		return nil, common.ErrDuplicateSubmission
	case err == nil:
		replaced, oerr := s.subs.Override(ctx, existing.ID, &repository.CreateSubmissionRequest{
			StudentName: req.StudentName,
			ImageURLs:   req.ImageURLs,
			SubmittedBy: constants.SubmittedByTeacher,
		})
		if oerr != nil {
			return nil, oerr
		}
		return replaced, s.dispatch(ctx, replaced)
	case !errors.Is(err, common.ErrNotFound):
		return nil, err
	}

	created, err := s.subs.Create(ctx, &repository.CreateSubmissionRequest{
		TestID:         test.ID,
		OrganizationID: test.OrganizationID,
		StudentID:      s.lookupStudent(ctx, req.StudentEmail),
		StudentName:    req.StudentName,
		StudentEmail:   req.StudentEmail,
		ImageURLs:      req.ImageURLs,
		SubmittedBy:    constants.SubmittedByTeacher,
	})
	if err != nil {
		return nil, err
	}
	s.tryMerge(ctx, created)
	return created, s.dispatch(ctx, created)
}

// Retrigger re-runs grading for a submission that is not yet finalized.
func (s *Service) Retrigger(ctx context.Context, id auth.Identity, submissionID uuid.UUID) error {
	sub, err := s.subs.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub.OrganizationID != id.OrganizationID {
		return common.ErrForbidden
	}
	if sub.Status == constants.SubmissionGraded {
		return common.NewAppError("ALREADY_GRADED",
			"cannot re-grade a finalized submission", common.ErrValidation)
	}
	return s.dispatch(ctx, sub)
}

// MarkFailed is wired as the grading queue's failure handler: it puts a
// dropped or permanently failed submission back to pending so a teacher
// can retrigger it.
func (s *Service) MarkFailed(job async.Job, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Error("grading abandoned, resetting submission",
		"submission_id", job.SubmissionID, "error", cause)
	if err := s.subs.SetProcessingStatus(ctx, job.SubmissionID, constants.ProcessingPending); err != nil {
		s.logger.Error("failed to reset submission after grading failure",
			"submission_id", job.SubmissionID, "error", err)
	}
}

func (s *Service) create(ctx context.Context, link *entity.MagicLink, payload protocol.SubmissionPayload) (*entity.Submission, error) {
	if _, err := s.subs.FindByTestAndEmail(ctx, link.TestID, payload.StudentEmail); err == nil {
		return nil, common.ErrDuplicateSubmission
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	test, err := s.tests.GetByID(ctx, link.TestID)
	if err != nil {
		return nil, err
	}

	linkID := link.ID
	created, err := s.subs.Create(ctx, &repository.CreateSubmissionRequest{
		TestID:         test.ID,
		OrganizationID: test.OrganizationID,
		StudentID:      s.lookupStudent(ctx, payload.StudentEmail),
		MagicLinkID:    &linkID,
		StudentName:    payload.StudentName,
		StudentEmail:   payload.StudentEmail,
		ImageURLs:      payload.ImageURLs,
		SubmittedBy:    constants.SubmittedByStudent,
	})
	if err != nil {
		return nil, err
	}

	if !link.Used {
		// Analytics only; never blocks later submissions on this link.
		_ = s.links.MarkUsed(ctx, link.ID)
		link.Used = true
	}

	s.tryMerge(ctx, created)
	return created, s.dispatch(ctx, created)
}

// tryMerge asks the merger for a combined document. Failures degrade to
// grading the raw pages.
func (s *Service) tryMerge(ctx context.Context, sub *entity.Submission) {
	merged, err := s.merger.Merge(ctx, sub.TestID, sub.StudentEmail, sub.ImageURLs)
	if err != nil {
		s.logger.Warn("image merge failed, grading raw pages",
			"submission_id", sub.ID, "error", err)
		return
	}
	if merged == "" {
		return
	}
	if err := s.subs.SetMergedImageURL(ctx, sub.ID, merged); err != nil {
		s.logger.Warn("failed to record merged image", "submission_id", sub.ID, "error", err)
		return
	}
	sub.MergedImageURL = &merged
}

// dispatch marks the submission as grading and hands it to the queue.
// If the queue refuses, the submission drops back to pending.
func (s *Service) dispatch(ctx context.Context, sub *entity.Submission) error {
	if err := s.subs.SetProcessingStatus(ctx, sub.ID, constants.ProcessingAI); err != nil {
		return err
	}
	err := s.queue.Enqueue(ctx, async.Job{
		SubmissionID: sub.ID,
		MaterialRefs: sub.GradingRefs(),
		SubmittedAt:  s.now(),
		TraceID:      common.RequestIDFromContext(ctx),
	})
	if err != nil {
		s.logger.Error("failed to enqueue submission", "submission_id", sub.ID, "error", err)
		if rerr := s.subs.SetProcessingStatus(ctx, sub.ID, constants.ProcessingPending); rerr != nil {
			s.logger.Error("failed to reset submission after enqueue failure",
				"submission_id", sub.ID, "error", rerr)
		}
		return common.WrapError(common.ErrInternal, "failed to queue submission for grading", err)
	}
	return nil
}

func (s *Service) lookupStudent(ctx context.Context, email string) *uuid.UUID {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}
	return &u.ID
}

func userFacingError(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateSubmission):
		return "You have already submitted this test"
	case errors.Is(err, common.ErrLinkExpired):
		return "Magic link expired"
	case errors.Is(err, common.ErrLinkInvalid):
		return "Invalid magic link"
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Failed to create submission"
}
