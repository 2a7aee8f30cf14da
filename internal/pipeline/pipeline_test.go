package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsewell/invoice-parser/constants"
	"github.com/parsewell/invoice-parser/gen/ent"
	"github.com/parsewell/invoice-parser/internal/common"
	"github.com/parsewell/invoice-parser/internal/entity"
	"github.com/parsewell/invoice-parser/internal/provider"
	"github.com/parsewell/invoice-parser/internal/trace"
)

type fakeJobRepo struct {
	jobID      uuid.UUID
	startedURL string
	pageCount  int
	status     string
	mergedText string
	failureMsg string
	result     *entity.ParseResult
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobID: uuid.New()}
}

func (f *fakeJobRepo) Start(_ context.Context, documentURL string) (*ent.ParseJob, error) {
	f.startedURL = documentURL
	f.status = string(constants.JobStatusQueued)
	return &ent.ParseJob{ID: f.jobID, DocumentURL: documentURL, Status: f.status}, nil
}

func (f *fakeJobRepo) MarkRunning(_ context.Context, _ uuid.UUID, pageCount int) error {
	f.status = string(constants.JobStatusRunning)
	f.pageCount = pageCount
	return nil
}

func (f *fakeJobRepo) FinishSuccess(_ context.Context, _ uuid.UUID, mergedText string, result *entity.ParseResult) error {
	f.status = string(constants.JobStatusParsed)
	f.mergedText = mergedText
	f.result = result
	return nil
}

func (f *fakeJobRepo) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.status = string(constants.JobStatusFailed)
	f.failureMsg = message
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, jobID uuid.UUID) (*entity.ParseJob, error) {
	return &entity.ParseJob{ID: jobID, Status: f.status}, nil
}

type fakeInvoiceRepo struct {
	savedJobID uuid.UUID
	saved      *entity.ParseResult
}

func (f *fakeInvoiceRepo) SaveResult(_ context.Context, jobID uuid.UUID, result *entity.ParseResult) (*entity.InvoiceRecord, error) {
	f.savedJobID = jobID
	f.saved = result
	return &entity.InvoiceRecord{ID: uuid.New(), JobID: jobID, Invoice: result.Invoice}, nil
}

func (f *fakeInvoiceRepo) GetByID(context.Context, uuid.UUID) (*entity.InvoiceRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeInvoiceRepo) ListInvoices(context.Context, *time.Time, *time.Time) ([]*entity.InvoiceRecord, error) {
	return nil, nil
}

type failingExtractor struct{}

func (failingExtractor) ExtractPages(context.Context, string, []provider.PageImage) ([]provider.ChatResponse, error) {
	return nil, errors.New("connection refused")
}

type recordingObserver struct {
	spans  []string
	events []string
}

func (o *recordingObserver) StartSpan(ctx context.Context, name string, _ ...any) (context.Context, trace.EndFunc) {
	o.spans = append(o.spans, name)
	return ctx, func() {}
}

func (o *recordingObserver) Event(_ context.Context, name string, _ ...any) {
	o.events = append(o.events, name)
}

func newTestPipeline(jobs *fakeJobRepo, invoices *fakeInvoiceRepo, extractor provider.PageExtractor, obs trace.Observer) *Pipeline {
	return New(jobs, invoices, provider.MockSource{}, extractor, obs, nil)
}

func TestRunCleanDocument(t *testing.T) {
	jobs := newFakeJobRepo()
	invoices := &fakeInvoiceRepo{}
	extractor := provider.NewClient(provider.Config{}, nil) // mock mode
	p := newTestPipeline(jobs, invoices, extractor, nil)

	jobID, result, err := p.Run(context.Background(), "https://docs.example.com/invoice.png")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, jobs.jobID, jobID)

	assert.Equal(t, string(constants.JobStatusParsed), jobs.status)
	assert.Equal(t, 2, jobs.pageCount)
	assert.NotEmpty(t, jobs.mergedText)

	inv := result.Invoice
	assert.Equal(t, "Alpine Office Supplies", inv.Vendor)
	assert.Equal(t, "INV-1041", inv.InvoiceNumber)
	assert.Equal(t, "2025-11-14", inv.InvoiceDate)
	assert.Equal(t, 197.00, inv.Subtotal)
	assert.Equal(t, 15.76, inv.Tax)
	assert.Equal(t, 212.76, inv.Total)
	require.Len(t, inv.LineItems, 5)
	assert.Equal(t, "Copy Paper A4 (Case)", inv.LineItems[0].Description)
	assert.Equal(t, "USB-C Hub", inv.LineItems[4].Description)

	assert.Empty(t, result.Warnings)
	assert.Equal(t, "The invoice from Alpine Office Supplies (INV-1041) was parsed successfully. No anomalies were detected.", result.Summary)

	assert.Equal(t, jobs.jobID, invoices.savedJobID)
	require.NotNil(t, invoices.saved)
}

func TestRunAnomalousDocument(t *testing.T) {
	jobs := newFakeJobRepo()
	invoices := &fakeInvoiceRepo{}
	extractor := provider.NewClient(provider.Config{}, nil)
	p := newTestPipeline(jobs, invoices, extractor, nil)

	_, result, err := p.Run(context.Background(), "https://docs.example.com/anomaly.png")
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Warnings, 2)
	assert.Equal(t, string(constants.WarningSubtotalMismatch), result.Warnings[0].Code)
	assert.Equal(t, string(constants.WarningPriceOutlier), result.Warnings[1].Code)

	want := "The invoice was parsed successfully. Two anomalies were detected:\n" +
		"- The subtotal does not match the sum of line items.\n" +
		"- One line item has a significantly higher unit price than others.\n" +
		"\n" +
		"This may indicate a calculation error or incorrect entry."
	assert.Equal(t, want, result.Summary)
}

func TestRunTransportFailure(t *testing.T) {
	jobs := newFakeJobRepo()
	invoices := &fakeInvoiceRepo{}
	p := newTestPipeline(jobs, invoices, failingExtractor{}, nil)

	jobID, result, err := p.Run(context.Background(), "https://docs.example.com/invoice.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTransport))
	assert.Nil(t, result)
	assert.Equal(t, jobs.jobID, jobID)

	assert.Equal(t, string(constants.JobStatusFailed), jobs.status)
	assert.NotEmpty(t, jobs.failureMsg)
	assert.Nil(t, invoices.saved)
}

func TestRunEmitsSpans(t *testing.T) {
	jobs := newFakeJobRepo()
	obs := &recordingObserver{}
	extractor := provider.NewClient(provider.Config{}, nil)
	p := newTestPipeline(jobs, &fakeInvoiceRepo{}, extractor, obs)

	_, _, err := p.Run(context.Background(), "https://docs.example.com/anomaly.png")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"pipeline.pages",
		"pipeline.extract",
		"pipeline.merge",
		"pipeline.parse",
		"pipeline.anomaly",
	}, obs.spans)
	assert.Equal(t, []string{
		"pipeline.anomaly.warning",
		"pipeline.anomaly.warning",
	}, obs.events)
}
