package grading

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/async"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/entity"
	"github.com/papertalk/papertalk/internal/repository"
)

type fakeSubmissionRepo struct {
	repository.SubmissionRepository

	sub      *entity.Submission
	statuses []constants.ProcessingStatus
	feedback string
	score    *int
	saved    bool
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Submission, error) {
	if r.sub == nil || r.sub.ID != id {
		return nil, common.ErrNotFound
	}
	return r.sub, nil
}

func (r *fakeSubmissionRepo) SetProcessingStatus(_ context.Context, _ uuid.UUID, s constants.ProcessingStatus) error {
	r.statuses = append(r.statuses, s)
	return nil
}

func (r *fakeSubmissionRepo) SaveGradingResult(_ context.Context, _ uuid.UUID, feedback string, score *int) error {
	r.saved = true
	r.feedback = feedback
	r.score = score
	return nil
}

type fakeTestRepo struct {
	repository.TestRepository
	paper *entity.TestPaper
}

func (r *fakeTestRepo) GetPaper(_ context.Context, _ uuid.UUID) (*entity.TestPaper, error) {
	if r.paper == nil {
		return nil, common.ErrNotFound
	}
	return r.paper, nil
}

type fakeGrader struct {
	req Request
	res Result
	err error
}

func (g *fakeGrader) Grade(_ context.Context, req Request) (Result, error) {
	g.req = req
	return g.res, g.err
}

func TestProcessor_PaperComesFirst(t *testing.T) {
	sub := &entity.Submission{
		ID:          uuid.New(),
		TestID:      uuid.New(),
		StudentName: "Ada",
		ImageURLs:   []string{"answers/1.jpg", "answers/2.jpg"},
	}
	subs := &fakeSubmissionRepo{sub: sub}
	tests := &fakeTestRepo{paper: &entity.TestPaper{FileURL: "papers/quiz.pdf"}}
	score := 80
	grader := &fakeGrader{res: Result{Feedback: "fine\nSCORE: 80", Score: &score}}

	p := NewProcessor(subs, tests, grader, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, p.Process(context.Background(), async.Job{SubmissionID: sub.ID}))

	assert.Equal(t, []string{"papers/quiz.pdf", "answers/1.jpg", "answers/2.jpg"}, grader.req.MaterialRefs)
	assert.Equal(t, []constants.ProcessingStatus{constants.ProcessingAI}, subs.statuses)
	require.True(t, subs.saved)
	require.NotNil(t, subs.score)
	assert.Equal(t, 80, *subs.score)
}

func TestProcessor_MergedFileReplacesPages(t *testing.T) {
	merged := "merged/all.pdf"
	sub := &entity.Submission{
		ID:             uuid.New(),
		TestID:         uuid.New(),
		StudentName:    "Ada",
		ImageURLs:      []string{"answers/1.jpg", "answers/2.jpg"},
		MergedImageURL: &merged,
	}
	subs := &fakeSubmissionRepo{sub: sub}
	grader := &fakeGrader{res: Result{Feedback: "ok"}}

	p := NewProcessor(subs, &fakeTestRepo{}, grader, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, p.Process(context.Background(), async.Job{SubmissionID: sub.ID}))

	assert.Equal(t, []string{"merged/all.pdf"}, grader.req.MaterialRefs)
}

func TestProcessor_RegradePassesPreviousFeedback(t *testing.T) {
	prev := "Question 1: wrong\nSCORE: 20"
	sub := &entity.Submission{
		ID:          uuid.New(),
		TestID:      uuid.New(),
		StudentName: "Ada",
		ImageURLs:   []string{"answers/1.jpg"},
		AIFeedback:  &prev,
	}
	subs := &fakeSubmissionRepo{sub: sub}
	grader := &fakeGrader{res: Result{Feedback: "better\nSCORE: 60"}}

	p := NewProcessor(subs, &fakeTestRepo{}, grader, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, p.Process(context.Background(), async.Job{SubmissionID: sub.ID}))

	assert.Equal(t, prev, grader.req.PreviousFeedback)
}

func TestProcessor_GraderErrorPropagates(t *testing.T) {
	sub := &entity.Submission{ID: uuid.New(), TestID: uuid.New(), ImageURLs: []string{"a.jpg"}}
	subs := &fakeSubmissionRepo{sub: sub}
	grader := &fakeGrader{err: &UpstreamError{Status: 503, Message: "unavailable"}}

	p := NewProcessor(subs, &fakeTestRepo{}, grader, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := p.Process(context.Background(), async.Job{SubmissionID: sub.ID})

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.True(t, uerr.Transient())
	assert.False(t, subs.saved)
}
