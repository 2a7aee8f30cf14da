package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/constants"
	"github.com/parsewell/invoice-parser/gen/ent"
	"github.com/parsewell/invoice-parser/internal/entity"
)

type ParseJobRepository interface {
	Start(ctx context.Context, documentURL string) (*ent.ParseJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID, pageCount int) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, mergedText string, result *entity.ParseResult) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error)
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, documentURL string) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetDocumentURL(documentURL).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "document_url", documentURL, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "document_url", documentURL)
	return job, nil
}

func (r *parseJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID, pageCount int) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		SetPageCount(pageCount).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job mark(RUNNING) failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *parseJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, mergedText string, result *entity.ParseResult) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetMergedText(mergedText).
		SetWarningCount(len(result.Warnings)).
		SetLineItemCount(len(result.Invoice.LineItems)).
		SetSummary(result.Summary).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (PARSED)", "job_id", jobID,
		"warnings", len(result.Warnings), "line_items", len(result.Invoice.LineItems))
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error) {
	job, err := r.ent.ParseJob.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return toParseJob(job), nil
}

func toParseJob(job *ent.ParseJob) *entity.ParseJob {
	return &entity.ParseJob{
		ID:            job.ID,
		DocumentURL:   job.DocumentURL,
		Status:        job.Status,
		PageCount:     job.PageCount,
		WarningCount:  job.WarningCount,
		LineItemCount: job.LineItemCount,
		ErrorMessage:  job.ErrorMessage,
		Summary:       job.Summary,
		StartedAt:     job.StartedAt,
		FinishedAt:    job.FinishedAt,
	}
}
