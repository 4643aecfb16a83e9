package async

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	mu        sync.Mutex
	calls     map[uuid.UUID]int
	active    int
	maxActive int
	block     chan struct{}
	results   map[uuid.UUID][]error
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{
		calls:   make(map[uuid.UUID]int),
		results: make(map[uuid.UUID][]error),
	}
}

func (p *fakeProcessor) failWith(id uuid.UUID, errs ...error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results[id] = errs
}

func (p *fakeProcessor) Process(_ context.Context, job Job) error {
	p.mu.Lock()
	p.active++
	if p.active > p.maxActive {
		p.maxActive = p.active
	}
	p.calls[job.SubmissionID]++
	call := p.calls[job.SubmissionID]
	block := p.block
	p.mu.Unlock()

	if block != nil {
		<-block
	}

	p.mu.Lock()
	p.active--
	var err error
	if errs := p.results[job.SubmissionID]; call <= len(errs) {
		err = errs[call-1]
	}
	p.mu.Unlock()
	return err
}

func (p *fakeProcessor) callCount(id uuid.UUID) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[id]
}

type transientErr struct{ msg string }

func (e transientErr) Error() string   { return e.msg }
func (e transientErr) Transient() bool { return true }

type failureRecorder struct {
	mu    sync.Mutex
	drops []Job
	errs  []error
}

func (r *failureRecorder) handle(job Job, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drops = append(r.drops, job)
	r.errs = append(r.errs, err)
}

func (r *failureRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drops)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func job(id uuid.UUID) Job {
	return Job{SubmissionID: id, MaterialRefs: []string{"s3://answers/1.jpg"}, SubmittedAt: time.Now()}
}

func TestGradingQueue_EnqueueIsIdempotent(t *testing.T) {
	proc := newFakeProcessor()
	proc.block = make(chan struct{})
	q := NewGradingQueue(proc, testLogger())
	defer q.Shutdown(context.Background())

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), job(id)))
	require.NoError(t, q.Enqueue(context.Background(), job(id)))
	require.NoError(t, q.Enqueue(context.Background(), job(id)))

	require.Eventually(t, func() bool {
		return q.Stats().InFlight == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, q.Stats().Pending)

	close(proc.block)
	require.Eventually(t, func() bool {
		return q.Stats().InFlight == 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, proc.callCount(id))
}

func TestGradingQueue_ConcurrencyCap(t *testing.T) {
	proc := newFakeProcessor()
	proc.block = make(chan struct{})
	q := NewGradingQueue(proc, testLogger(), WithMaxConcurrent(2), WithMaxQueueSize(10))
	defer q.Shutdown(context.Background())

	for i := 0; i < 6; i++ {
		require.NoError(t, q.Enqueue(context.Background(), job(uuid.New())))
	}

	require.Eventually(t, func() bool {
		return q.Stats().InFlight == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 4, q.Stats().Pending)

	close(proc.block)
	require.Eventually(t, func() bool {
		s := q.Stats()
		return s.InFlight == 0 && s.Pending == 0
	}, time.Second, 5*time.Millisecond)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.LessOrEqual(t, proc.maxActive, 2)
	assert.Len(t, proc.calls, 6)
}

func TestGradingQueue_FullQueueDefersThenDrops(t *testing.T) {
	proc := newFakeProcessor()
	proc.block = make(chan struct{})

	rec := &failureRecorder{}
	q := NewGradingQueue(proc, testLogger(),
		WithMaxConcurrent(1),
		WithMaxQueueSize(2),
		WithAdmissionRetryDelay(20*time.Millisecond),
		WithFailureHandler(rec.handle),
	)
	// Unblock the processor before the deferred Shutdown runs, or the
	// drain would wait on the in-flight job forever.
	defer q.Shutdown(context.Background())
	defer close(proc.block)

	// Fill the queue: one in flight, one pending.
	require.NoError(t, q.Enqueue(context.Background(), job(uuid.New())))
	require.NoError(t, q.Enqueue(context.Background(), job(uuid.New())))
	require.Eventually(t, func() bool {
		s := q.Stats()
		return s.InFlight == 1 && s.Pending == 1
	}, time.Second, 5*time.Millisecond)

	overflow := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), job(overflow)))
	assert.Equal(t, 1, q.Stats().Deferred)

	// The retry finds the queue still full and drops the job.
	require.Eventually(t, func() bool {
		return rec.count() == 1
	}, time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, overflow, rec.drops[0].SubmissionID)
	assert.ErrorIs(t, rec.errs[0], ErrQueueFull)
	assert.Equal(t, 0, proc.callCount(overflow))
}

func TestGradingQueue_DeferredAdmissionSucceedsWhenRoomOpens(t *testing.T) {
	proc := newFakeProcessor()
	proc.block = make(chan struct{})

	rec := &failureRecorder{}
	q := NewGradingQueue(proc, testLogger(),
		WithMaxConcurrent(1),
		WithMaxQueueSize(1),
		WithAdmissionRetryDelay(30*time.Millisecond),
		WithFailureHandler(rec.handle),
	)
	defer q.Shutdown(context.Background())

	first := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), job(first)))
	require.Eventually(t, func() bool {
		return q.Stats().InFlight == 1
	}, time.Second, 5*time.Millisecond)

	second := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), job(second)))
	require.Equal(t, 1, q.Stats().Deferred)

	// Free the slot before the admission retry fires.
	proc.mu.Lock()
	close(proc.block)
	proc.block = nil
	proc.mu.Unlock()

	require.Eventually(t, func() bool {
		return proc.callCount(second) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestGradingQueue_TransientFailureRequeues(t *testing.T) {
	proc := newFakeProcessor()
	id := uuid.New()
	proc.failWith(id, transientErr{"model overloaded"})

	rec := &failureRecorder{}
	q := NewGradingQueue(proc, testLogger(),
		WithRequeueDelay(10*time.Millisecond),
		WithFailureHandler(rec.handle),
	)
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), job(id)))

	// First attempt fails transiently, second succeeds.
	require.Eventually(t, func() bool {
		return proc.callCount(id) == 2
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return q.Stats().InFlight == 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestGradingQueue_TransientRetriesAreBounded(t *testing.T) {
	proc := newFakeProcessor()
	id := uuid.New()
	errs := make([]error, 10)
	for i := range errs {
		errs[i] = transientErr{fmt.Sprintf("overloaded %d", i)}
	}
	proc.failWith(id, errs...)

	rec := &failureRecorder{}
	q := NewGradingQueue(proc, testLogger(),
		WithRequeueDelay(5*time.Millisecond),
		WithMaxRequeues(2),
		WithFailureHandler(rec.handle),
	)
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), job(id)))

	require.Eventually(t, func() bool {
		return rec.count() == 1
	}, time.Second, 5*time.Millisecond)
	// Initial attempt plus two requeues.
	assert.Equal(t, 3, proc.callCount(id))
}

func TestGradingQueue_PermanentFailureReportsImmediately(t *testing.T) {
	proc := newFakeProcessor()
	id := uuid.New()
	proc.failWith(id, fmt.Errorf("invalid material"))

	rec := &failureRecorder{}
	q := NewGradingQueue(proc, testLogger(), WithFailureHandler(rec.handle))
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), job(id)))

	require.Eventually(t, func() bool {
		return rec.count() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, proc.callCount(id))
	assert.EqualError(t, rec.errs[0], "invalid material")
}

func TestGradingQueue_ReadmitOfTrackedJobClearsRetryCounter(t *testing.T) {
	proc := newFakeProcessor()
	proc.block = make(chan struct{})
	q := NewGradingQueue(proc, testLogger())
	defer q.Shutdown(context.Background())
	defer close(proc.block)

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), job(id)))
	require.Eventually(t, func() bool {
		return q.Stats().InFlight == 1
	}, time.Second, 5*time.Millisecond)

	// A stale requeue timer fires after the submission was enqueued
	// again on its own.
	q.mu.Lock()
	q.requeues[id] = 2
	q.mu.Unlock()

	q.readmit(job(id))

	q.mu.Lock()
	_, leaked := q.requeues[id]
	q.mu.Unlock()
	assert.False(t, leaked, "stale retry counter must be cleared")
	assert.Equal(t, 0, q.Stats().Pending, "tracked job is not queued twice")
}

func TestGradingQueue_EnqueueAfterShutdown(t *testing.T) {
	proc := newFakeProcessor()
	q := NewGradingQueue(proc, testLogger())
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), job(uuid.New()))
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestGradingQueue_ShutdownWaitsForInFlight(t *testing.T) {
	proc := newFakeProcessor()
	proc.block = make(chan struct{})
	q := NewGradingQueue(proc, testLogger())

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), job(id)))
	require.Eventually(t, func() bool {
		return q.Stats().InFlight == 1
	}, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Shutdown(context.Background())
	}()

	select {
	case <-done:
		t.Fatal("shutdown returned while a job was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(proc.block)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shutdown did not finish after jobs drained")
	}
	assert.Equal(t, 1, proc.callCount(id))
}
