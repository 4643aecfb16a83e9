package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
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
	"github.com/papertalk/papertalk/internal/export"
	"github.com/papertalk/papertalk/internal/ingest"
	"github.com/papertalk/papertalk/internal/merge"
	"github.com/papertalk/papertalk/internal/protocol"
	"github.com/papertalk/papertalk/internal/repository"
)

type stubSubmissions struct {
	repository.SubmissionRepository

	rows map[uuid.UUID]*entity.Submission
}

func newStubSubmissions() *stubSubmissions {
	return &stubSubmissions{rows: make(map[uuid.UUID]*entity.Submission)}
}

func (m *stubSubmissions) Create(_ context.Context, req *repository.CreateSubmissionRequest) (*entity.Submission, error) {
	sub := &entity.Submission{
		ID:               uuid.New(),
		TestID:           req.TestID,
		OrganizationID:   req.OrganizationID,
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

func (m *stubSubmissions) GetByID(_ context.Context, id uuid.UUID) (*entity.Submission, error) {
	sub, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return sub, nil
}

func (m *stubSubmissions) FindByTestAndEmail(_ context.Context, testID uuid.UUID, email string) (*entity.Submission, error) {
	for _, sub := range m.rows {
		if sub.TestID == testID && sub.StudentEmail == email {
			return sub, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *stubSubmissions) ListByTest(_ context.Context, testID uuid.UUID) ([]*entity.Submission, error) {
	var out []*entity.Submission
	for _, sub := range m.rows {
		if sub.TestID == testID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *stubSubmissions) SetProcessingStatus(_ context.Context, id uuid.UUID, status constants.ProcessingStatus) error {
	sub, ok := m.rows[id]
	if !ok {
		return common.ErrNotFound
	}
	sub.ProcessingStatus = status
	return nil
}

func (m *stubSubmissions) SetMergedImageURL(_ context.Context, id uuid.UUID, url string) error {
	m.rows[id].MergedImageURL = &url
	return nil
}

func (m *stubSubmissions) SaveFeedback(_ context.Context, id uuid.UUID, feedback string, score *int) error {
	sub, ok := m.rows[id]
	if !ok {
		return common.ErrNotFound
	}
	sub.AIFeedback = &feedback
	sub.FinalScore = score
	return nil
}

func (m *stubSubmissions) Finalize(_ context.Context, id uuid.UUID, audioURL, audioError *string) error {
	sub, ok := m.rows[id]
	if !ok {
		return common.ErrNotFound
	}
	sub.Status = constants.SubmissionGraded
	sub.ProcessingStatus = constants.ProcessingCompleted
	sub.AudioURL = audioURL
	sub.AudioError = audioError
	return nil
}

type stubTests struct {
	repository.TestRepository
	tests map[uuid.UUID]*entity.Test
}

func (m *stubTests) GetByID(_ context.Context, id uuid.UUID) (*entity.Test, error) {
	t, ok := m.tests[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return t, nil
}

type stubLinks struct {
	repository.MagicLinkRepository
	links map[string]*entity.MagicLink
}

func (m *stubLinks) GetByToken(_ context.Context, token string) (*entity.MagicLink, error) {
	l, ok := m.links[token]
	if !ok {
		return nil, common.ErrLinkInvalid
	}
	return l, nil
}

func (m *stubLinks) MarkUsed(context.Context, uuid.UUID) error { return nil }

type stubUsers struct{ repository.UserRepository }

func (stubUsers) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, common.ErrNotFound
}

type stubQueue struct{ jobs []async.Job }

func (q *stubQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}
func (q *stubQueue) Stats() async.Stats {
	return async.Stats{Pending: 1, InFlight: 2, Capacity: 10}
}
func (q *stubQueue) Shutdown(context.Context) {}

type stubSpeech struct {
	audio []byte
	err   error
}

func (s *stubSpeech) Synthesize(context.Context, string) ([]byte, error) {
	return s.audio, s.err
}

type stubStore struct {
	put map[string][]byte
}

func (s *stubStore) Fetch(context.Context, string) ([]byte, string, error) {
	return nil, "", errors.New("not implemented")
}
func (s *stubStore) Put(_ context.Context, ref string, data []byte, _ string) (string, error) {
	if s.put == nil {
		s.put = make(map[string][]byte)
	}
	s.put[ref] = data
	return ref, nil
}

type env struct {
	srv    *httptest.Server
	subs   *stubSubmissions
	queue  *stubQueue
	speech *stubSpeech
	store  *stubStore

	orgID  uuid.UUID
	testID uuid.UUID
}

const (
	teacherToken  = "teacher-token"
	studentToken  = "student-token"
	outsiderToken = "outsider-token"
)

func newEnv(t *testing.T) *env {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orgID := uuid.New()
	testID := uuid.New()

	subs := newStubSubmissions()
	tests := &stubTests{tests: map[uuid.UUID]*entity.Test{
		testID: {ID: testID, OrganizationID: orgID, Name: "Midterm"},
	}}
	links := &stubLinks{links: map[string]*entity.MagicLink{
		"tok-abc": {ID: uuid.New(), TestID: testID, Token: "tok-abc"},
	}}
	queue := &stubQueue{}
	speech := &stubSpeech{audio: []byte("mp3-bytes")}
	store := &stubStore{}

	ingestSvc := ingest.NewService(subs, tests, links, stubUsers{}, merge.Passthrough{}, queue, logger)
	exportSvc := export.NewService(subs, tests, logger)

	h := NewHandlers(logger, ingestSvc, subs, tests, exportSvc, queue, speech, store,
		func(context.Context) error { return nil })

	authenticator := auth.TokenMap{
		teacherToken:  {UserID: uuid.New(), OrganizationID: orgID, Role: constants.RoleTeacher},
		studentToken:  {UserID: uuid.New(), OrganizationID: orgID, Role: constants.RoleStudent},
		outsiderToken: {UserID: uuid.New(), OrganizationID: uuid.New(), Role: constants.RoleTeacher},
	}

	srv := httptest.NewServer(NewRouter(h, authenticator, 30*time.Second))
	t.Cleanup(srv.Close)

	return &env{srv: srv, subs: subs, queue: queue, speech: speech, store: store, orgID: orgID, testID: testID}
}

func (e *env) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(bs)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func studentPayload(email string) map[string]any {
	return map[string]any{
		"studentName":    "Ada Lovelace",
		"studentEmail":   email,
		"imageUrls":      []string{"captures/p1.jpg"},
		"magicLinkToken": "tok-abc",
	}
}

func TestCreateSubmissionEndpoint(t *testing.T) {
	e := newEnv(t)

	resp := e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("ada@school.edu"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, string(constants.ProcessingAI), body["processingStatus"])
	assert.Len(t, e.queue.jobs, 1)

	// second upload for the same student is a conflict
	resp = e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("ada@school.edu"))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[protocol.ErrorResponse](t, resp)
	assert.Equal(t, "You have already submitted this test", errBody.Error)
}

func TestCreateSubmissionEndpoint_InvalidLink(t *testing.T) {
	e := newEnv(t)
	p := studentPayload("ada@school.edu")
	p["magicLinkToken"] = "tok-nope"

	resp := e.do(t, http.MethodPost, "/api/submissions", "", p)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid magic link", decode[protocol.ErrorResponse](t, resp).Error)
}

func TestBulkEndpoint(t *testing.T) {
	e := newEnv(t)

	req := map[string]any{
		"submissions": []map[string]any{
			studentPayload("ada@school.edu"),
			studentPayload("bob@school.edu"),
		},
		"localIds": []string{"local-1", "local-2"},
	}
	resp := e.do(t, http.MethodPost, "/api/submissions/bulk", "", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := decode[[]protocol.BulkItemResult](t, resp)
	require.Len(t, results, 2)
	for i, res := range results {
		assert.True(t, res.Success, "item %d", i)
		assert.NotEmpty(t, res.ServerID)
	}
	assert.Len(t, e.queue.jobs, 2)
}

func TestBulkEndpoint_StructuralErrors(t *testing.T) {
	e := newEnv(t)

	// empty submissions array fails the schema
	resp := e.do(t, http.MethodPost, "/api/submissions/bulk", "", map[string]any{
		"submissions": []map[string]any{},
		"localIds":    []string{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// length mismatch between submissions and localIds
	resp = e.do(t, http.MethodPost, "/api/submissions/bulk", "", map[string]any{
		"submissions": []map[string]any{studentPayload("ada@school.edu")},
		"localIds":    []string{"a", "b"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request: localIds must match submissions length",
		decode[protocol.ErrorResponse](t, resp).Error)
}

func TestBulkEndpoint_InvalidLinkFailsOnlyThatItem(t *testing.T) {
	e := newEnv(t)
	bad := studentPayload("eve@school.edu")
	bad["magicLinkToken"] = "tok-nope"

	resp := e.do(t, http.MethodPost, "/api/submissions/bulk", "", map[string]any{
		"submissions": []map[string]any{studentPayload("ada@school.edu"), bad},
		"localIds":    []string{"local-1", "local-2"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := decode[[]protocol.BulkItemResult](t, resp)
	require.Len(t, results, 2)

	assert.True(t, results[0].Success)
	assert.NotEmpty(t, results[0].ServerID)

	assert.False(t, results[1].Success)
	assert.Equal(t, "Invalid magic link", results[1].Error)

	assert.Len(t, e.queue.jobs, 1, "only the valid sibling is enqueued")
}

func TestAuthGuards(t *testing.T) {
	e := newEnv(t)
	subID := uuid.New().String()

	resp := e.do(t, http.MethodPost, "/api/submissions/"+subID+"/retrigger", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodPost, "/api/submissions/"+subID+"/retrigger", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestFinalizeEndpoint(t *testing.T) {
	e := newEnv(t)

	resp := e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("ada@school.edu"))
	created := decode[map[string]any](t, resp)
	subID := uuid.MustParse(created["id"].(string))

	feedback := "Question 1: solid\nMarks Awarded: 5/5\n\nSCORE: 90"
	score := 90
	e.subs.rows[subID].AIFeedback = &feedback
	e.subs.rows[subID].FinalScore = &score
	e.subs.rows[subID].ProcessingStatus = constants.ProcessingReady

	resp = e.do(t, http.MethodPost, "/api/submissions/"+subID.String()+"/finalize", teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, string(constants.SubmissionGraded), body["status"])
	assert.Equal(t, "audio/"+subID.String()+".mp3", body["audioUrl"])
	assert.Contains(t, e.store.put, "audio/"+subID.String()+".mp3")
}

func TestFinalizeEndpoint_AudioFailureStillFinalizes(t *testing.T) {
	e := newEnv(t)
	e.speech.err = errors.New("voice service down")

	resp := e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("ada@school.edu"))
	created := decode[map[string]any](t, resp)
	subID := uuid.MustParse(created["id"].(string))

	feedback := "fine work\nSCORE: 70"
	e.subs.rows[subID].AIFeedback = &feedback

	resp = e.do(t, http.MethodPost, "/api/submissions/"+subID.String()+"/finalize", teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, string(constants.SubmissionGraded), body["status"])
	assert.Nil(t, body["audioUrl"])
	assert.Contains(t, body["audioError"], "voice service down")
}

func TestFinalizeEndpoint_WrongOrganization(t *testing.T) {
	e := newEnv(t)

	resp := e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("ada@school.edu"))
	created := decode[map[string]any](t, resp)
	subID := created["id"].(string)

	resp = e.do(t, http.MethodPost, "/api/submissions/"+subID+"/finalize", outsiderToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestSaveFeedbackEndpoint_UpdatedMarks(t *testing.T) {
	e := newEnv(t)

	resp := e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("ada@school.edu"))
	created := decode[map[string]any](t, resp)
	subID := uuid.MustParse(created["id"].(string))

	feedback := "Question 1: decent attempt\nMarks Awarded: 3/10\n\nSCORE: 3"
	e.subs.rows[subID].AIFeedback = &feedback

	resp = e.do(t, http.MethodPut, "/api/submissions/"+subID.String()+"/feedback", teacherToken,
		protocol.FeedbackUpdateRequest{UpdatedMarks: map[string]int{"All Questions-Q1": 8}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Contains(t, body["feedback"], "Marks Awarded: 8/10")
	assert.Equal(t, float64(8), body["score"])
}

func TestQueueStatsEndpoint(t *testing.T) {
	e := newEnv(t)

	resp := e.do(t, http.MethodGet, "/api/queue/stats", teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decode[async.Stats](t, resp)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.InFlight)
	assert.Equal(t, 10, stats.Capacity)
}

func TestListSubmissionsEndpoint(t *testing.T) {
	e := newEnv(t)

	e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("ada@school.edu")).Body.Close()
	e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("bob@school.edu")).Body.Close()

	resp := e.do(t, http.MethodGet, "/api/submissions?testId="+e.testID.String(), teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	subs := decode[[]map[string]any](t, resp)
	assert.Len(t, subs, 2)

	resp = e.do(t, http.MethodGet, "/api/submissions?testId="+e.testID.String(), outsiderToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthEndpoint(t *testing.T) {
	e := newEnv(t)
	resp := e.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])
}

func TestExportEndpoint(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodPost, "/api/submissions", "", studentPayload("ada@school.edu")).Body.Close()

	resp := e.do(t, http.MethodGet, fmt.Sprintf("/api/tests/%s/export", e.testID), teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// xlsx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
