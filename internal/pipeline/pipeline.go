// Package pipeline orchestrates a full parse: fetch pages, extract per-page
// text, merge, parse fields, normalize, run anomaly rules, persist.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parsewell/invoice-parser/internal/anomaly"
	"github.com/parsewell/invoice-parser/internal/common"
	"github.com/parsewell/invoice-parser/internal/entity"
	"github.com/parsewell/invoice-parser/internal/parse"
	"github.com/parsewell/invoice-parser/internal/provider"
	"github.com/parsewell/invoice-parser/internal/repository"
	"github.com/parsewell/invoice-parser/internal/trace"
)

// Pipeline wires the stages together. All collaborators are injected; the
// Observer is advisory and never affects results.
type Pipeline struct {
	Logger    *slog.Logger
	Jobs      repository.ParseJobRepository
	Invoices  repository.InvoiceRepository
	Pages     provider.PageImageSource
	Extractor provider.PageExtractor
	Observer  trace.Observer
}

func New(jobs repository.ParseJobRepository, invoices repository.InvoiceRepository,
	pages provider.PageImageSource, extractor provider.PageExtractor,
	observer trace.Observer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = trace.Nop{}
	}
	return &Pipeline{
		Logger:    logger,
		Jobs:      jobs,
		Invoices:  invoices,
		Pages:     pages,
		Extractor: extractor,
		Observer:  observer,
	}
}

// Run executes one parse request end to end. On provider transport failure
// the job is marked FAILED and the error returned; extraction itself never
// fails, sparse input just yields sentinel fields and warnings.
func (p *Pipeline) Run(ctx context.Context, documentURL string) (uuid.UUID, *entity.ParseResult, error) {
	start := time.Now()
	p.Logger.Info("pipeline.run.start", "document_url", documentURL)

	job, err := p.Jobs.Start(ctx, documentURL)
	if err != nil {
		return uuid.Nil, nil, common.WrapError(err, "start parse job")
	}
	ctx = common.WithRequestID(ctx, job.ID.String())

	pages, err := p.fetchPages(ctx, documentURL)
	if err != nil {
		return p.fail(ctx, job.ID, common.WrapError(err, "fetch pages"))
	}
	if err := p.Jobs.MarkRunning(ctx, job.ID, len(pages)); err != nil {
		return p.fail(ctx, job.ID, common.WrapError(err, "mark job running"))
	}

	responses, err := p.extractPages(ctx, documentURL, pages)
	if err != nil {
		// Transport errors are fatal for the whole request.
		return p.fail(ctx, job.ID, common.WrapError(common.ErrTransport, err.Error()))
	}

	mergedText := p.mergePages(ctx, responses)
	invoice := p.parseInvoice(ctx, mergedText)
	warnings, summary := p.checkAnomalies(ctx, invoice)

	result := &entity.ParseResult{
		RequestID: job.ID.String(),
		Invoice:   invoice,
		Warnings:  warnings,
		Summary:   summary,
	}

	if _, err := p.Invoices.SaveResult(ctx, job.ID, result); err != nil {
		return p.fail(ctx, job.ID, common.WrapError(err, "save invoice record"))
	}
	if err := p.Jobs.FinishSuccess(ctx, job.ID, mergedText, result); err != nil {
		return p.fail(ctx, job.ID, common.WrapError(err, "finish parse job"))
	}

	p.Logger.Info("pipeline.run.ok",
		"job_id", job.ID,
		"pages", len(pages),
		"line_items", len(invoice.LineItems),
		"warnings", len(warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return job.ID, result, nil
}

func (p *Pipeline) fetchPages(ctx context.Context, documentURL string) ([]provider.PageImage, error) {
	ctx, end := p.Observer.StartSpan(ctx, "pipeline.pages", "document_url", documentURL)
	defer end()
	return p.Pages.Pages(ctx, documentURL)
}

func (p *Pipeline) extractPages(ctx context.Context, documentURL string, pages []provider.PageImage) ([]provider.ChatResponse, error) {
	ctx, end := p.Observer.StartSpan(ctx, "pipeline.extract", "pages", len(pages))
	defer end()
	return p.Extractor.ExtractPages(ctx, documentURL, pages)
}

func (p *Pipeline) mergePages(ctx context.Context, responses []provider.ChatResponse) string {
	_, end := p.Observer.StartSpan(ctx, "pipeline.merge", "pages", len(responses))
	defer end()
	return provider.MergePages(responses)
}

func (p *Pipeline) parseInvoice(ctx context.Context, mergedText string) entity.Invoice {
	_, end := p.Observer.StartSpan(ctx, "pipeline.parse", "text_len", len(mergedText))
	defer end()
	invoice := parse.ExtractInvoice(mergedText)
	parse.ApplyComputedFallback(&invoice)
	parse.Normalize(&invoice)
	return invoice
}

func (p *Pipeline) checkAnomalies(ctx context.Context, invoice entity.Invoice) ([]entity.Warning, string) {
	ctx, end := p.Observer.StartSpan(ctx, "pipeline.anomaly", "line_items", len(invoice.LineItems))
	defer end()
	warnings, summary := anomaly.Check(invoice)
	for _, w := range warnings {
		p.Observer.Event(ctx, "pipeline.anomaly.warning", "code", w.Code)
	}
	return warnings, summary
}

func (p *Pipeline) fail(ctx context.Context, jobID uuid.UUID, cause error) (uuid.UUID, *entity.ParseResult, error) {
	p.Logger.Error("pipeline.run.failed", "job_id", jobID, "error", cause)
	if err := p.Jobs.FinishFailure(ctx, jobID, cause.Error()); err != nil {
		p.Logger.Error("pipeline.fail.mark_failed", "job_id", jobID, "error", err)
	}
	return jobID, nil, cause
}
