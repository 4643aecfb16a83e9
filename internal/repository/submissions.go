package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/gen/ent"
	"github.com/papertalk/papertalk/gen/ent/submission"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/entity"
	"github.com/papertalk/papertalk/internal/utils"
)

// CreateSubmissionRequest wraps parameters for creating a submission.
type CreateSubmissionRequest struct {
	TestID         uuid.UUID
	OrganizationID uuid.UUID
	StudentID      *uuid.UUID
	MagicLinkID    *uuid.UUID
	StudentName    string
	StudentEmail   string
	ImageURLs      []string
	SubmittedBy    constants.SubmittedBy
}

type SubmissionRepository interface {
	Create(ctx context.Context, req *CreateSubmissionRequest) (*entity.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error)
	FindByTestAndEmail(ctx context.Context, testID uuid.UUID, email string) (*entity.Submission, error)
	ListByTest(ctx context.Context, testID uuid.UUID) ([]*entity.Submission, error)
	// Override replaces an existing submission's content in place and
	// resets its grading state. Used for teacher re-uploads.
	Override(ctx context.Context, id uuid.UUID, req *CreateSubmissionRequest) (*entity.Submission, error)
	SetProcessingStatus(ctx context.Context, id uuid.UUID, status constants.ProcessingStatus) error
	SetMergedImageURL(ctx context.Context, id uuid.UUID, url string) error
	SaveGradingResult(ctx context.Context, id uuid.UUID, feedback string, score *int) error
	SaveFeedback(ctx context.Context, id uuid.UUID, feedback string, score *int) error
	Finalize(ctx context.Context, id uuid.UUID, audioURL, audioError *string) error
}

type submissionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubmissionRepository(client *ent.Client, logger *slog.Logger) SubmissionRepository {
	return &submissionRepository{
		client: client,
		logger: logger,
	}
}

func (r *submissionRepository) Create(ctx context.Context, req *CreateSubmissionRequest) (*entity.Submission, error) {
	builder := r.client.Submission.Create().
		SetTestID(req.TestID).
		SetOrganizationID(req.OrganizationID).
		SetStudentName(req.StudentName).
		SetStudentEmail(req.StudentEmail).
		SetImageUrls(req.ImageURLs).
		SetSubmittedBy(string(req.SubmittedBy)).
		SetNillableStudentID(req.StudentID).
		SetNillableMagicLinkID(req.MagicLinkID)

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create submission", "test_id", req.TestID, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to create submission", err)
	}
	return utils.ToSubmission(rec), nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	rec, err := r.client.Submission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrDatabase, "failed to load submission", err)
	}
	return utils.ToSubmission(rec), nil
}

func (r *submissionRepository) FindByTestAndEmail(ctx context.Context, testID uuid.UUID, email string) (*entity.Submission, error) {
	rec, err := r.client.Submission.Query().
		Where(
			submission.TestID(testID),
			submission.StudentEmail(email),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrDatabase, "failed to look up submission", err)
	}
	return utils.ToSubmission(rec), nil
}

func (r *submissionRepository) ListByTest(ctx context.Context, testID uuid.UUID) ([]*entity.Submission, error) {
	recs, err := r.client.Submission.Query().
		Where(submission.TestID(testID)).
		Order(submission.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list submissions", "test_id", testID, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to list submissions", err)
	}

	result := make([]*entity.Submission, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToSubmission(rec)
	}
	return result, nil
}

func (r *submissionRepository) Override(ctx context.Context, id uuid.UUID, req *CreateSubmissionRequest) (*entity.Submission, error) {
	rec, err := r.client.Submission.UpdateOneID(id).
		SetStudentName(req.StudentName).
		SetImageUrls(req.ImageURLs).
		SetSubmittedBy(string(req.SubmittedBy)).
		SetStatus(string(constants.SubmissionPending)).
		SetProcessingStatus(string(constants.ProcessingPending)).
		ClearMergedImageURL().
		ClearAiFeedback().
		ClearFinalScore().
		ClearAudioURL().
		ClearAudioError().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to override submission", "submission_id", id, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to override submission", err)
	}
	return utils.ToSubmission(rec), nil
}

func (r *submissionRepository) SetProcessingStatus(ctx context.Context, id uuid.UUID, status constants.ProcessingStatus) error {
	err := r.client.Submission.UpdateOneID(id).
		SetProcessingStatus(string(status)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "failed to update processing status", err)
	}
	return nil
}

func (r *submissionRepository) SetMergedImageURL(ctx context.Context, id uuid.UUID, url string) error {
	err := r.client.Submission.UpdateOneID(id).
		SetMergedImageURL(url).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "failed to set merged image url", err)
	}
	return nil
}

func (r *submissionRepository) SaveGradingResult(ctx context.Context, id uuid.UUID, feedback string, score *int) error {
	builder := r.client.Submission.UpdateOneID(id).
		SetAiFeedback(feedback).
		SetProcessingStatus(string(constants.ProcessingReady))
	if score != nil {
		builder = builder.SetFinalScore(*score)
	} else {
		builder = builder.ClearFinalScore()
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "failed to save grading result", err)
	}
	return nil
}

func (r *submissionRepository) SaveFeedback(ctx context.Context, id uuid.UUID, feedback string, score *int) error {
	builder := r.client.Submission.UpdateOneID(id).
		SetAiFeedback(feedback).
		SetNillableFinalScore(score)
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "failed to save feedback", err)
	}
	return nil
}

func (r *submissionRepository) Finalize(ctx context.Context, id uuid.UUID, audioURL, audioError *string) error {
	err := r.client.Submission.UpdateOneID(id).
		SetStatus(string(constants.SubmissionGraded)).
		SetProcessingStatus(string(constants.ProcessingCompleted)).
		SetNillableAudioURL(audioURL).
		SetNillableAudioError(audioError).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "failed to finalize submission", err)
	}
	return nil
}

// IsNotFound reports whether err is the repository's not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}
