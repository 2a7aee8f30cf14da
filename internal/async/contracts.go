package async

import (
	"context"
	"time"
)

// Job is one queued parse request.
type Job struct {
	DocumentURL string
	TraceID     string
	SubmittedAt time.Time
}

// Queue accepts parse jobs for background processing.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
