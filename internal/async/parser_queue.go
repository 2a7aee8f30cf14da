package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/parsewell/invoice-parser/internal/common"
	"github.com/parsewell/invoice-parser/internal/pipeline"
)

type ParserQueue struct {
	pipe    *pipeline.Pipeline
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ParserQueue)

func WithWorkers(n int) Option {
	return func(q *ParserQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ParserQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ParserQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewParserQueue(pipe *pipeline.Pipeline, logger *slog.Logger, opts ...Option) *ParserQueue {
	q := &ParserQueue{
		pipe:    pipe,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ParserQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					if job.TraceID != "" {
						ctx = common.WithTraceID(ctx, job.TraceID)
					}
					jobID, _, err := q.pipe.Run(ctx, job.DocumentURL)
					cancel()

					if err != nil {
						q.logger.Error("parse failed", "worker_id", workerID, "job_id", jobID, "document_url", job.DocumentURL, "error", err)
					} else {
						q.logger.Info("parsed document successfully", "worker_id", workerID, "job_id", jobID, "document_url", job.DocumentURL)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ParserQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_url", job.DocumentURL)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for parsing", "document_url", job.DocumentURL)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_url", job.DocumentURL)
		q.ch <- job
	}
	return nil
}

func (q *ParserQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
