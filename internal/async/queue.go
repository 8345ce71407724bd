// Package async runs pipeline jobs on a bounded in-process worker pool, so
// gRPC handlers can accept work without blocking on OCR.
package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (trace, retry).
type Job struct {
	DocumentID  uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Runner is what a worker invokes per job; pipeline.Processor satisfies it.
type Runner interface {
	Process(ctx context.Context, documentID uuid.UUID) error
}

var ErrQueueFull = errors.New("async: queue full")

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// ProcessorQueue is a fixed pool of workers draining a buffered channel.
type ProcessorQueue struct {
	runner  Runner
	logger  *slog.Logger
	workers int
	size    int
	timeout time.Duration

	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewProcessorQueue(runner Runner, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		runner:  runner,
		logger:  logger,
		workers: 4,
		size:    256,
		timeout: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.size)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		start := time.Now()
		err := q.runner.Process(ctx, job.DocumentID)
		cancel()
		if err != nil {
			q.logger.Error("async.job.failed",
				"worker", id,
				"document_id", job.DocumentID,
				"queued_ms", start.Sub(job.SubmittedAt).Milliseconds(),
				"err", err,
			)
			continue
		}
		q.logger.Info("async.job.ok",
			"worker", id,
			"document_id", job.DocumentID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Enqueue submits a job without blocking; a full queue is an error the caller
// can surface as backpressure.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errors.New("async: queue shut down")
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Shutdown stops intake and waits for in-flight jobs, or until ctx expires.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("async.shutdown.timeout")
	}
}
