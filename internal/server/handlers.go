package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/async"
	"github.com/papertalk/papertalk/internal/auth"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/entity"
	"github.com/papertalk/papertalk/internal/export"
	"github.com/papertalk/papertalk/internal/grading"
	"github.com/papertalk/papertalk/internal/ingest"
	"github.com/papertalk/papertalk/internal/protocol"
	"github.com/papertalk/papertalk/internal/repository"
	"github.com/papertalk/papertalk/internal/storage"
	"github.com/papertalk/papertalk/internal/tts"
)

type Handlers struct {
	log     *slog.Logger
	ingest  *ingest.Service
	subs    repository.SubmissionRepository
	tests   repository.TestRepository
	export  *export.Service
	queue   async.Queue
	speech  tts.Synthesizer
	store   storage.Store
	healthy func(ctx context.Context) error
}

func NewHandlers(
	logger *slog.Logger,
	ingestSvc *ingest.Service,
	subs repository.SubmissionRepository,
	tests repository.TestRepository,
	exportSvc *export.Service,
	queue async.Queue,
	speech tts.Synthesizer,
	store storage.Store,
	healthy func(ctx context.Context) error,
) *Handlers {
	return &Handlers{
		log:     logger,
		ingest:  ingestSvc,
		subs:    subs,
		tests:   tests,
		export:  exportSvc,
		queue:   queue,
		speech:  speech,
		store:   store,
		healthy: healthy,
	}
}

// submissionResponse is the submission shape returned to clients.
type submissionResponse struct {
	ID               string    `json:"id"`
	TestID           string    `json:"testId"`
	StudentName      string    `json:"studentName"`
	StudentEmail     string    `json:"studentEmail"`
	Status           string    `json:"status"`
	ProcessingStatus string    `json:"processingStatus"`
	Score            *int      `json:"score,omitempty"`
	Feedback         *string   `json:"feedback,omitempty"`
	AudioURL         *string   `json:"audioUrl,omitempty"`
	AudioError       *string   `json:"audioError,omitempty"`
	SubmittedBy      string    `json:"submittedBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toResponse(sub *entity.Submission) submissionResponse {
	return submissionResponse{
		ID:               sub.ID.String(),
		TestID:           sub.TestID.String(),
		StudentName:      sub.StudentName,
		StudentEmail:     sub.StudentEmail,
		Status:           string(sub.Status),
		ProcessingStatus: string(sub.ProcessingStatus),
		Score:            sub.FinalScore,
		Feedback:         sub.AIFeedback,
		AudioURL:         sub.AudioURL,
		AudioError:       sub.AudioError,
		SubmittedBy:      string(sub.SubmittedBy),
		CreatedAt:        sub.CreatedAt,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.healthy(r.Context()); err != nil {
		h.writeError(w, r, http.StatusServiceUnavailable, "database unreachable", nil)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateSubmission is the public magic-link upload path.
func (h *Handlers) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var payload protocol.SubmissionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid json body", nil)
		return
	}
	if payload.StudentName == "" || payload.StudentEmail == "" ||
		len(payload.ImageURLs) == 0 || payload.MagicLinkToken == "" {
		h.writeError(w, r, http.StatusBadRequest,
			"studentName, studentEmail, imageUrls and magicLinkToken are required", nil)
		return
	}

	sub, err := h.ingest.CreateFromMagicLink(r.Context(), payload)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toResponse(sub))
}

// CreateBulk accepts a capture-agent batch. Only structural problems
// fail the whole request; per-item failures ride back in the results.
func (h *Handlers) CreateBulk(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "unreadable body", nil)
		return
	}
	if err := protocol.ValidateBulkRequest(raw); err != nil {
		h.writeError(w, r, http.StatusBadRequest,
			"Invalid request: submissions array required", []string{err.Error()})
		return
	}

	var req protocol.BulkSubmissionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid json body", nil)
		return
	}
	if len(req.LocalIDs) != len(req.Submissions) {
		h.writeError(w, r, http.StatusBadRequest,
			"Invalid request: localIds must match submissions length", nil)
		return
	}

	results, err := h.ingest.CreateBulk(r.Context(), req)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

func (h *Handlers) CreateForTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r, constants.PermSubmissionGrade)
	if !ok {
		return
	}

	var req protocol.TeacherSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid json body", nil)
		return
	}
	if req.TestID == "" || req.StudentName == "" || req.StudentEmail == "" || len(req.ImageURLs) == 0 {
		h.writeError(w, r, http.StatusBadRequest,
			"testId, studentName, studentEmail and imageUrls are required", nil)
		return
	}

	sub, err := h.ingest.CreateForTeacher(r.Context(), id, req)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toResponse(sub))
}

func (h *Handlers) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r, constants.PermSubmissionView)
	if !ok {
		return
	}
	testID, err := uuid.Parse(r.URL.Query().Get("testId"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "testId query parameter is required", nil)
		return
	}
	if !h.testInOrg(w, r, testID, id) {
		return
	}

	subs, err := h.subs.ListByTest(r.Context(), testID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]submissionResponse, len(subs))
	for i, sub := range subs {
		out[i] = toResponse(sub)
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) Retrigger(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r, constants.PermSubmissionGrade)
	if !ok {
		return
	}
	subID, err := uuid.Parse(chi.URLParam(r, "submissionID"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid submission id", nil)
		return
	}
	if err := h.ingest.Retrigger(r.Context(), id, subID); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// Finalize publishes a reviewed submission. Audio narration is
// generated on the way out; a narration failure is recorded on the row
// but never blocks publication.
func (h *Handlers) Finalize(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r, constants.PermSubmissionGrade)
	if !ok {
		return
	}
	sub, ok := h.loadScoped(w, r, id)
	if !ok {
		return
	}
	if sub.AIFeedback == nil || *sub.AIFeedback == "" {
		h.writeError(w, r, http.StatusBadRequest, "submission has no feedback to finalize", nil)
		return
	}

	if err := h.subs.SetProcessingStatus(r.Context(), sub.ID, constants.ProcessingAudio); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	var audioURL, audioErr *string
	audio, err := h.speech.Synthesize(r.Context(), *sub.AIFeedback)
	if err == nil {
		ref := fmt.Sprintf("audio/%s.mp3", sub.ID)
		stored, perr := h.store.Put(r.Context(), ref, audio, "audio/mpeg")
		if perr != nil {
			err = perr
		} else {
			audioURL = &stored
		}
	}
	if err != nil {
		h.log.Warn("audio generation failed, finalizing without narration",
			"submission_id", sub.ID, "error", err)
		msg := err.Error()
		audioErr = &msg
	}

	if err := h.subs.Finalize(r.Context(), sub.ID, audioURL, audioErr); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	final, err := h.subs.GetByID(r.Context(), sub.ID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toResponse(final))
}

// SaveFeedback stores a teacher's review. With updatedMarks the marks
// are patched into the existing text and the score recomputed; a plain
// feedback body replaces the text wholesale.
func (h *Handlers) SaveFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r, constants.PermSubmissionGrade)
	if !ok {
		return
	}
	sub, ok := h.loadScoped(w, r, id)
	if !ok {
		return
	}

	var req protocol.FeedbackUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid json body", nil)
		return
	}

	var text string
	switch {
	case len(req.UpdatedMarks) > 0:
		if sub.AIFeedback == nil {
			h.writeError(w, r, http.StatusBadRequest, "submission has no feedback to update", nil)
			return
		}
		parsed := grading.ParseGradeFeedback(*sub.AIFeedback)
		text = grading.ReconstructFeedback(parsed, req.UpdatedMarks)
	case req.Feedback != "":
		text = req.Feedback
	default:
		h.writeError(w, r, http.StatusBadRequest, "feedback or updatedMarks is required", nil)
		return
	}

	if err := h.subs.SaveFeedback(r.Context(), sub.ID, text, grading.ExtractScore(text)); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	updated, err := h.subs.GetByID(r.Context(), sub.ID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toResponse(updated))
}

func (h *Handlers) ExportGrades(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r, constants.PermTestView)
	if !ok {
		return
	}
	testID, err := uuid.Parse(chi.URLParam(r, "testID"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid test id", nil)
		return
	}
	if !h.testInOrg(w, r, testID, id) {
		return
	}

	data, err := h.export.ExportGradesXLSX(r.Context(), testID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="grades-%s.xlsx"`, testID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handlers) QueueStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.identity(w, r, constants.PermSubmissionView); !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, h.queue.Stats())
}

func (h *Handlers) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ctx := common.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(ww, r.WithContext(ctx))
		h.log.Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	})
}

// identity pulls the authenticated caller and enforces a permission.
func (h *Handlers) identity(w http.ResponseWriter, r *http.Request, permission string) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "authentication required", nil)
		return auth.Identity{}, false
	}
	if !id.Can(permission) {
		h.writeError(w, r, http.StatusForbidden, "insufficient permissions", nil)
		return auth.Identity{}, false
	}
	return id, true
}

// loadScoped loads the routed submission and checks organization scope.
func (h *Handlers) loadScoped(w http.ResponseWriter, r *http.Request, id auth.Identity) (*entity.Submission, bool) {
	subID, err := uuid.Parse(chi.URLParam(r, "submissionID"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid submission id", nil)
		return nil, false
	}
	sub, err := h.subs.GetByID(r.Context(), subID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return nil, false
	}
	if sub.OrganizationID != id.OrganizationID {
		h.writeError(w, r, http.StatusForbidden, "submission belongs to another organization", nil)
		return nil, false
	}
	return sub, true
}

func (h *Handlers) testInOrg(w http.ResponseWriter, r *http.Request, testID uuid.UUID, id auth.Identity) bool {
	test, err := h.tests.GetByID(r.Context(), testID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return false
	}
	if test.OrganizationID != id.OrganizationID {
		h.writeError(w, r, http.StatusForbidden, "test belongs to another organization", nil)
		return false
	}
	return true
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, details []string) {
	if status >= 500 {
		h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", msg)
	}
	h.writeJSON(w, status, protocol.ErrorResponse{Error: msg, Details: details})
}

// writeDomainError maps service-layer sentinels onto HTTP statuses.
func (h *Handlers) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrLinkInvalid):
		h.writeError(w, r, http.StatusBadRequest, "Invalid magic link", nil)
	case errors.Is(err, common.ErrLinkExpired):
		h.writeError(w, r, http.StatusBadRequest, "Magic link expired", nil)
	case errors.Is(err, common.ErrDuplicateSubmission):
		h.writeError(w, r, http.StatusConflict, "You have already submitted this test", nil)
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidInput):
		h.writeError(w, r, http.StatusBadRequest, userMessage(err), nil)
	case errors.Is(err, common.ErrNotFound):
		h.writeError(w, r, http.StatusNotFound, "not found", nil)
	case errors.Is(err, common.ErrUnauthorized):
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, common.ErrForbidden):
		h.writeError(w, r, http.StatusForbidden, "forbidden", nil)
	default:
		h.log.Error("unhandled domain error", "method", r.Method, "path", r.URL.Path, "error", err)
		h.writeError(w, r, http.StatusInternalServerError, "internal error", nil)
	}
}

func userMessage(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "invalid request"
}
