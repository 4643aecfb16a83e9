package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/papertalk/papertalk/internal/auth"
)

// NewRouter wires the public submission endpoints and the
// token-protected teacher surface.
func NewRouter(h *Handlers, authenticator auth.Authenticator, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(h.requestLogger)

	r.Get("/healthz", h.Health)

	// Public: magic-link uploads and capture-agent batches.
	r.Route("/api/submissions", func(r chi.Router) {
		r.Post("/", h.CreateSubmission)
		r.Post("/bulk", h.CreateBulk)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(authenticator))
			r.Get("/", h.ListSubmissions)
			r.Post("/{submissionID}/retrigger", h.Retrigger)
			r.Post("/{submissionID}/finalize", h.Finalize)
			r.Put("/{submissionID}/feedback", h.SaveFeedback)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(authenticator))
		r.Post("/api/teacher/submissions", h.CreateForTeacher)
		r.Get("/api/tests/{testID}/export", h.ExportGrades)
		r.Get("/api/queue/stats", h.QueueStats)
	})

	return r
}
