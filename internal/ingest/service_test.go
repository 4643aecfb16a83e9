package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/async"
	"github.com/papertalk/papertalk/internal/auth"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/entity"
	"github.com/papertalk/papertalk/internal/merge"
	"github.com/papertalk/papertalk/internal/protocol"
	"github.com/papertalk/papertalk/internal/repository"
)

type memSubmissions struct {
	repository.SubmissionRepository

	rows       map[uuid.UUID]*entity.Submission
	statuses   map[uuid.UUID][]constants.ProcessingStatus
	overridden []uuid.UUID
}

func newMemSubmissions() *memSubmissions {
	return &memSubmissions{
		rows:     make(map[uuid.UUID]*entity.Submission),
		statuses: make(map[uuid.UUID][]constants.ProcessingStatus),
	}
}

func (m *memSubmissions) Create(_ context.Context, req *repository.CreateSubmissionRequest) (*entity.Submission, error) {
	sub := &entity.Submission{
		ID:               uuid.New(),
		TestID:           req.TestID,
		OrganizationID:   req.OrganizationID,
		StudentID:        req.StudentID,
		MagicLinkID:      req.MagicLinkID,
		StudentName:      req.StudentName,
		StudentEmail:     req.StudentEmail,
		ImageURLs:        req.ImageURLs,
		Status:           constants.SubmissionPending,
		ProcessingStatus: constants.ProcessingPending,
		SubmittedBy:      req.SubmittedBy,
		CreatedAt:        time.Now(),
	}
	m.rows[sub.ID] = sub
	return sub, nil
}

func (m *memSubmissions) GetByID(_ context.Context, id uuid.UUID) (*entity.Submission, error) {
	sub, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return sub, nil
}

func (m *memSubmissions) FindByTestAndEmail(_ context.Context, testID uuid.UUID, email string) (*entity.Submission, error) {
	for _, sub := range m.rows {
		if sub.TestID == testID && sub.StudentEmail == email {
			return sub, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memSubmissions) Override(_ context.Context, id uuid.UUID, req *repository.CreateSubmissionRequest) (*entity.Submission, error) {
	sub, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	sub.StudentName = req.StudentName
	sub.ImageURLs = req.ImageURLs
	sub.SubmittedBy = req.SubmittedBy
	sub.Status = constants.SubmissionPending
	sub.ProcessingStatus = constants.ProcessingPending
	sub.MergedImageURL = nil
	sub.AIFeedback = nil
	sub.FinalScore = nil
	m.overridden = append(m.overridden, id)
	return sub, nil
}

func (m *memSubmissions) SetProcessingStatus(_ context.Context, id uuid.UUID, status constants.ProcessingStatus) error {
	sub, ok := m.rows[id]
	if !ok {
		return common.ErrNotFound
	}
	sub.ProcessingStatus = status
	m.statuses[id] = append(m.statuses[id], status)
	return nil
}

func (m *memSubmissions) SetMergedImageURL(_ context.Context, id uuid.UUID, url string) error {
	sub, ok := m.rows[id]
	if !ok {
		return common.ErrNotFound
	}
	sub.MergedImageURL = &url
	return nil
}

type memTests struct {
	repository.TestRepository
	tests map[uuid.UUID]*entity.Test
}

func (m *memTests) GetByID(_ context.Context, id uuid.UUID) (*entity.Test, error) {
	t, ok := m.tests[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return t, nil
}

type memLinks struct {
	repository.MagicLinkRepository
	links  map[string]*entity.MagicLink
	marked []uuid.UUID
}

func (m *memLinks) GetByToken(_ context.Context, token string) (*entity.MagicLink, error) {
	l, ok := m.links[token]
	if !ok {
		return nil, common.ErrLinkInvalid
	}
	return l, nil
}

func (m *memLinks) MarkUsed(_ context.Context, id uuid.UUID) error {
	m.marked = append(m.marked, id)
	return nil
}

type memUsers struct {
	repository.UserRepository
	byEmail map[string]*entity.User
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

type fakeQueue struct {
	jobs []async.Job
	err  error
}

func (q *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}
func (q *fakeQueue) Stats() async.Stats       { return async.Stats{} }
func (q *fakeQueue) Shutdown(context.Context) {}

type fixture struct {
	svc   *Service
	subs  *memSubmissions
	tests *memTests
	links *memLinks
	users *memUsers
	queue *fakeQueue

	orgID  uuid.UUID
	testID uuid.UUID
	link   *entity.MagicLink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	orgID := uuid.New()
	testID := uuid.New()
	link := &entity.MagicLink{ID: uuid.New(), TestID: testID, Token: "tok-abc"}

	f := &fixture{
		subs: newMemSubmissions(),
		tests: &memTests{tests: map[uuid.UUID]*entity.Test{
			testID: {ID: testID, OrganizationID: orgID, Name: "Midterm"},
		}},
		links:  &memLinks{links: map[string]*entity.MagicLink{"tok-abc": link}},
		users:  &memUsers{byEmail: map[string]*entity.User{}},
		queue:  &fakeQueue{},
		orgID:  orgID,
		testID: testID,
		link:   link,
	}
	f.svc = NewService(f.subs, f.tests, f.links, f.users, merge.Passthrough{},
		f.queue, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func payload(email string) protocol.SubmissionPayload {
	return protocol.SubmissionPayload{
		StudentName:    "Ada Lovelace",
		StudentEmail:   email,
		ImageURLs:      []string{"captures/p1.jpg", "captures/p2.jpg"},
		MagicLinkToken: "tok-abc",
	}
}

func TestCreateFromMagicLink(t *testing.T) {
	f := newFixture(t)

	sub, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	require.NoError(t, err)

	assert.Equal(t, f.testID, sub.TestID)
	assert.Equal(t, f.orgID, sub.OrganizationID)
	assert.Equal(t, constants.SubmittedByStudent, sub.SubmittedBy)
	assert.Equal(t, constants.ProcessingAI, sub.ProcessingStatus)

	require.Len(t, f.queue.jobs, 1)
	assert.Equal(t, sub.ID, f.queue.jobs[0].SubmissionID)
	assert.Equal(t, []string{"captures/p1.jpg", "captures/p2.jpg"}, f.queue.jobs[0].MaterialRefs)

	// first use marks the link, for analytics only
	assert.Equal(t, []uuid.UUID{f.link.ID}, f.links.marked)
}

func TestCreateFromMagicLink_UsedLinkStillValid(t *testing.T) {
	f := newFixture(t)
	f.link.Used = true

	_, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	require.NoError(t, err)
	assert.Empty(t, f.links.marked)
}

func TestCreateFromMagicLink_Expired(t *testing.T) {
	f := newFixture(t)
	past := time.Now().Add(-time.Hour)
	f.link.ExpiresAt = &past

	_, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	assert.ErrorIs(t, err, common.ErrLinkExpired)
	assert.Empty(t, f.queue.jobs)
}

func TestCreateFromMagicLink_Duplicate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	require.NoError(t, err)

	_, err = f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	assert.ErrorIs(t, err, common.ErrDuplicateSubmission)
}

func TestCreateFromMagicLink_LinksStudentAccount(t *testing.T) {
	f := newFixture(t)
	student := &entity.User{ID: uuid.New(), Email: "ada@school.edu"}
	f.users.byEmail[student.Email] = student

	sub, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	require.NoError(t, err)
	require.NotNil(t, sub.StudentID)
	assert.Equal(t, student.ID, *sub.StudentID)
}

func TestCreateFromMagicLink_EnqueueFailureResetsStatus(t *testing.T) {
	f := newFixture(t)
	f.queue.err = async.ErrQueueClosed

	sub, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	require.Error(t, err)
	require.NotNil(t, sub)

	stored := f.subs.rows[sub.ID]
	assert.Equal(t, constants.ProcessingPending, stored.ProcessingStatus)
	assert.Equal(t,
		[]constants.ProcessingStatus{constants.ProcessingAI, constants.ProcessingPending},
		f.subs.statuses[sub.ID])
}

func TestCreateBulk(t *testing.T) {
	f := newFixture(t)

	// bob already submitted
	_, err := f.svc.CreateFromMagicLink(context.Background(), payload("bob@school.edu"))
	require.NoError(t, err)
	f.queue.jobs = nil

	req := protocol.BulkSubmissionRequest{
		Submissions: []protocol.SubmissionPayload{
			payload("ada@school.edu"),
			payload("bob@school.edu"),
			payload("eve@school.edu"),
		},
		LocalIDs: []string{"local-1", "local-2", "local-3"},
	}
	results, err := f.svc.CreateBulk(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.NotEmpty(t, results[0].ServerID)
	assert.Equal(t, "local-1", results[0].LocalID)

	assert.False(t, results[1].Success)
	assert.Equal(t, "You have already submitted this test", results[1].Error)
	assert.Empty(t, results[1].ServerID)

	assert.True(t, results[2].Success)
	assert.Len(t, f.queue.jobs, 2)
}

func TestCreateBulk_InvalidLinkFailsOnlyThatItem(t *testing.T) {
	f := newFixture(t)

	bad := payload("ada@school.edu")
	bad.MagicLinkToken = "tok-nope"
	req := protocol.BulkSubmissionRequest{
		Submissions: []protocol.SubmissionPayload{payload("bob@school.edu"), bad},
		LocalIDs:    []string{"local-1", "local-2"},
	}

	results, err := f.svc.CreateBulk(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Success)
	assert.NotEmpty(t, results[0].ServerID)

	assert.False(t, results[1].Success)
	assert.Equal(t, "Invalid magic link", results[1].Error)
	assert.Empty(t, results[1].ServerID)

	assert.Len(t, f.subs.rows, 1, "the valid sibling is still created")
	require.Len(t, f.queue.jobs, 1)
}

func TestCreateBulk_ExpiredLinkFailsOnlyThatItem(t *testing.T) {
	f := newFixture(t)
	past := time.Now().Add(-time.Hour)
	stale := &entity.MagicLink{ID: uuid.New(), TestID: f.testID, Token: "tok-old", ExpiresAt: &past}
	f.links.links["tok-old"] = stale

	late := payload("eve@school.edu")
	late.MagicLinkToken = "tok-old"
	req := protocol.BulkSubmissionRequest{
		Submissions: []protocol.SubmissionPayload{late, payload("bob@school.edu")},
		LocalIDs:    []string{"local-1", "local-2"},
	}

	results, err := f.svc.CreateBulk(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.False(t, results[0].Success)
	assert.Equal(t, "Magic link expired", results[0].Error)

	assert.True(t, results[1].Success)
	assert.Len(t, f.subs.rows, 1)
	require.Len(t, f.queue.jobs, 1)
}

func TestCreateForTeacher_Override(t *testing.T) {
	f := newFixture(t)
	teacher := auth.Identity{UserID: uuid.New(), OrganizationID: f.orgID, Role: constants.RoleTeacher}

	_, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	require.NoError(t, err)
	f.queue.jobs = nil

	req := protocol.TeacherSubmissionRequest{
		TestID:       f.testID.String(),
		StudentName:  "Ada L.",
		StudentEmail: "ada@school.edu",
		ImageURLs:    []string{"rescans/p1.jpg"},
	}

	// without override the duplicate is rejected
	_, err = f.svc.CreateForTeacher(context.Background(), teacher, req)
	assert.ErrorIs(t, err, common.ErrDuplicateSubmission)

	req.Override = true
	sub, err := f.svc.CreateForTeacher(context.Background(), teacher, req)
	require.NoError(t, err)

	assert.Len(t, f.subs.overridden, 1)
	assert.Equal(t, []string{"rescans/p1.jpg"}, sub.ImageURLs)
	assert.Equal(t, constants.SubmittedByTeacher, sub.SubmittedBy)
	require.Len(t, f.queue.jobs, 1)
	assert.Equal(t, sub.ID, f.queue.jobs[0].SubmissionID)
}

func TestCreateForTeacher_WrongOrganization(t *testing.T) {
	f := newFixture(t)
	outsider := auth.Identity{UserID: uuid.New(), OrganizationID: uuid.New(), Role: constants.RoleTeacher}

	_, err := f.svc.CreateForTeacher(context.Background(), outsider, protocol.TeacherSubmissionRequest{
		TestID:       f.testID.String(),
		StudentName:  "Ada",
		StudentEmail: "ada@school.edu",
		ImageURLs:    []string{"p1.jpg"},
	})
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestRetrigger(t *testing.T) {
	f := newFixture(t)
	teacher := auth.Identity{UserID: uuid.New(), OrganizationID: f.orgID, Role: constants.RoleTeacher}

	sub, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	require.NoError(t, err)
	f.queue.jobs = nil

	require.NoError(t, f.svc.Retrigger(context.Background(), teacher, sub.ID))
	require.Len(t, f.queue.jobs, 1)

	// finalized submissions stay finalized
	f.subs.rows[sub.ID].Status = constants.SubmissionGraded
	err = f.svc.Retrigger(context.Background(), teacher, sub.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMarkFailedResetsToPending(t *testing.T) {
	f := newFixture(t)

	sub, err := f.svc.CreateFromMagicLink(context.Background(), payload("ada@school.edu"))
	require.NoError(t, err)

	f.svc.MarkFailed(async.Job{SubmissionID: sub.ID}, errors.New("provider rejected the material"))
	assert.Equal(t, constants.ProcessingPending, f.subs.rows[sub.ID].ProcessingStatus)
}
