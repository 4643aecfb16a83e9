package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrQueueClosed is returned by Enqueue after Shutdown has started.
	ErrQueueClosed = errors.New("grading queue is shut down")
	// ErrQueueFull is handed to the failure handler when a job is
	// dropped after its deferred admission retry also found no room.
	ErrQueueFull = errors.New("grading queue is full")
)

// transienter matches provider errors that are worth another attempt
// (rate limits, temporary overload, network failures).
type transienter interface{ Transient() bool }

func isTransient(err error) bool {
	var t transienter
	return errors.As(err, &t) && t.Transient()
}

// FailureHandler observes jobs the queue gives up on: admission drops,
// permanent provider errors, and jobs that exhausted their requeues.
type FailureHandler func(job Job, err error)

// GradingQueue runs submissions through a Processor with a hard cap on
// concurrency and on total queued work. Enqueue is idempotent per
// submission. A full queue defers admission once before dropping, and a
// transient processing failure requeues the job after a delay, a bounded
// number of times.
type GradingQueue struct {
	proc   Processor
	logger *slog.Logger

	maxConcurrent  int
	maxQueueSize   int
	timeout        time.Duration
	admissionDelay time.Duration
	requeueDelay   time.Duration
	maxRequeues    int
	onFailure      FailureHandler

	mu       sync.Mutex
	pending  []Job
	inFlight map[uuid.UUID]struct{}
	deferred map[uuid.UUID]struct{}
	requeues map[uuid.UUID]int
	timers   map[*time.Timer]struct{}
	closed   bool
	wg       sync.WaitGroup
}

type Option func(*GradingQueue)

func WithMaxConcurrent(n int) Option {
	return func(q *GradingQueue) {
		if n > 0 {
			q.maxConcurrent = n
		}
	}
}
func WithMaxQueueSize(n int) Option {
	return func(q *GradingQueue) {
		if n > 0 {
			q.maxQueueSize = n
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *GradingQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}
func WithAdmissionRetryDelay(d time.Duration) Option {
	return func(q *GradingQueue) {
		if d > 0 {
			q.admissionDelay = d
		}
	}
}
func WithRequeueDelay(d time.Duration) Option {
	return func(q *GradingQueue) {
		if d > 0 {
			q.requeueDelay = d
		}
	}
}
func WithMaxRequeues(n int) Option {
	return func(q *GradingQueue) {
		if n >= 0 {
			q.maxRequeues = n
		}
	}
}
func WithFailureHandler(h FailureHandler) Option {
	return func(q *GradingQueue) {
		q.onFailure = h
	}
}

func NewGradingQueue(proc Processor, logger *slog.Logger, opts ...Option) *GradingQueue {
	q := &GradingQueue{
		proc:           proc,
		logger:         logger,
		maxConcurrent:  2,
		maxQueueSize:   10,
		timeout:        5 * time.Minute,
		admissionDelay: 5 * time.Second,
		requeueDelay:   10 * time.Second,
		maxRequeues:    5,
		inFlight:       make(map[uuid.UUID]struct{}),
		deferred:       make(map[uuid.UUID]struct{}),
		requeues:       make(map[uuid.UUID]int),
		timers:         make(map[*time.Timer]struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

// Enqueue admits a job for grading. A submission already pending, in
// flight, or awaiting deferred admission is ignored. When the queue is
// full the job waits one admission delay and tries once more; if still
// full it is dropped through the failure handler.
func (q *GradingQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}

	if q.tracked(job.SubmissionID) {
		q.logger.Debug("duplicate enqueue ignored", "submission_id", job.SubmissionID)
		q.mu.Unlock()
		return nil
	}

	if q.size() >= q.maxQueueSize {
		q.deferred[job.SubmissionID] = struct{}{}
		q.schedule(q.admissionDelay, func() { q.retryAdmission(job) })
		q.logger.Warn("queue full, deferring admission",
			"submission_id", job.SubmissionID, "retry_in", q.admissionDelay)
		q.mu.Unlock()
		return nil
	}

	q.admit(job)
	q.mu.Unlock()
	return nil
}

func (q *GradingQueue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return Stats{
		Pending:  len(q.pending),
		InFlight: len(q.inFlight),
		Deferred: len(q.deferred),
		Capacity: q.maxQueueSize,
	}
}

// Shutdown stops admission, cancels pending delays, and waits for
// in-flight jobs until ctx expires. Jobs still pending are abandoned.
func (q *GradingQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	for t := range q.timers {
		t.Stop()
	}
	q.timers = make(map[*time.Timer]struct{})
	abandoned := len(q.pending) + len(q.deferred)
	q.pending = nil
	q.deferred = make(map[uuid.UUID]struct{})
	q.mu.Unlock()

	if abandoned > 0 {
		q.logger.Warn("abandoning queued jobs on shutdown", "count", abandoned)
	}

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

// tracked reports whether the submission is anywhere in the queue's
// lifecycle. Callers hold q.mu.
func (q *GradingQueue) tracked(id uuid.UUID) bool {
	if _, ok := q.inFlight[id]; ok {
		return true
	}
	if _, ok := q.deferred[id]; ok {
		return true
	}
	for _, p := range q.pending {
		if p.SubmissionID == id {
			return true
		}
	}
	return false
}

func (q *GradingQueue) size() int {
	return len(q.pending) + len(q.inFlight)
}

// admit appends the job and starts workers up to the concurrency cap.
// Callers hold q.mu.
func (q *GradingQueue) admit(job Job) {
	q.pending = append(q.pending, job)
	q.logger.Info("queued submission for grading",
		"submission_id", job.SubmissionID,
		"pending", len(q.pending), "in_flight", len(q.inFlight))
	q.advance()
}

// advance launches pending jobs while concurrency allows. Callers hold
// q.mu.
func (q *GradingQueue) advance() {
	for len(q.inFlight) < q.maxConcurrent && len(q.pending) > 0 {
		job := q.pending[0]
		q.pending = q.pending[1:]
		q.inFlight[job.SubmissionID] = struct{}{}
		q.wg.Add(1)
		go q.run(job)
	}
}

func (q *GradingQueue) run(job Job) {
	defer q.wg.Done()

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	err := q.proc.Process(ctx, job)
	cancel()

	q.mu.Lock()
	delete(q.inFlight, job.SubmissionID)

	var failed error
	switch {
	case err == nil:
		delete(q.requeues, job.SubmissionID)
		q.logger.Info("graded submission",
			"submission_id", job.SubmissionID,
			"elapsed_ms", time.Since(start).Milliseconds())
	case isTransient(err) && !q.closed && q.requeues[job.SubmissionID] < q.maxRequeues:
		q.requeues[job.SubmissionID]++
		attempt := q.requeues[job.SubmissionID]
		q.schedule(q.requeueDelay, func() { q.readmit(job) })
		q.logger.Warn("transient grading failure, requeueing",
			"submission_id", job.SubmissionID,
			"attempt", attempt, "max", q.maxRequeues,
			"retry_in", q.requeueDelay, "error", err)
	default:
		delete(q.requeues, job.SubmissionID)
		failed = err
		q.logger.Error("grading failed",
			"submission_id", job.SubmissionID, "error", err)
	}

	q.advance()
	q.mu.Unlock()

	if failed != nil && q.onFailure != nil {
		q.onFailure(job, failed)
	}
}

// retryAdmission is the one deferred attempt for a job that found the
// queue full.
func (q *GradingQueue) retryAdmission(job Job) {
	q.mu.Lock()
	delete(q.deferred, job.SubmissionID)
	if q.closed {
		q.mu.Unlock()
		return
	}
	if q.size() >= q.maxQueueSize {
		q.logger.Error("queue still full, dropping submission",
			"submission_id", job.SubmissionID)
		q.mu.Unlock()
		if q.onFailure != nil {
			q.onFailure(job, ErrQueueFull)
		}
		return
	}
	q.admit(job)
	q.mu.Unlock()
}

// readmit returns a transiently failed job to the head of the line.
func (q *GradingQueue) readmit(job Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || q.tracked(job.SubmissionID) {
		// The submission re-entered the queue on its own while the
		// requeue timer was pending. Its stale retry counter must not
		// outlive this attempt.
		delete(q.requeues, job.SubmissionID)
		return
	}
	// Requeued work skips the admission check: the job already held a
	// slot and gives priority over new arrivals.
	q.pending = append([]Job{job}, q.pending...)
	q.logger.Info("requeued submission", "submission_id", job.SubmissionID)
	q.advance()
}

// schedule runs fn after d and keeps the timer stoppable by Shutdown.
// Callers hold q.mu.
func (q *GradingQueue) schedule(d time.Duration, fn func()) {
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		q.mu.Lock()
		delete(q.timers, t)
		q.mu.Unlock()
		fn()
	})
	q.timers[t] = struct{}{}
}
