package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	parserpb "github.com/parsewell/invoice-parser/gen/proto/parser/v1"
	"github.com/parsewell/invoice-parser/internal/pipeline"
	"github.com/parsewell/invoice-parser/internal/repository"
	"github.com/parsewell/invoice-parser/internal/utils"
)

type ParserService struct {
	parserpb.UnimplementedParserServiceServer
	pipe        *pipeline.Pipeline
	jobRepo     repository.ParseJobRepository
	invoiceRepo repository.InvoiceRepository
	logger      *slog.Logger
}

func NewParserService(pipe *pipeline.Pipeline, jobRepo repository.ParseJobRepository,
	invoiceRepo repository.InvoiceRepository, logger *slog.Logger) *ParserService {
	return &ParserService{
		pipe:        pipe,
		jobRepo:     jobRepo,
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (s *ParserService) ParseDocument(ctx context.Context, req *parserpb.ParseDocumentRequest) (*parserpb.ParseDocumentResponse, error) {
	documentURL := strings.TrimSpace(req.GetDocumentUrl())
	if documentURL == "" {
		s.logger.Error("parse request missing document_url")
		return nil, status.Error(codes.InvalidArgument, "document_url is required")
	}

	jobID, result, err := s.pipe.Run(ctx, documentURL)
	if err != nil {
		s.logger.Error("parse document failed", "document_url", documentURL, "job_id", jobID, "error", err)
		return nil, status.Errorf(codes.Unavailable, "parse document: %v", err)
	}

	return &parserpb.ParseDocumentResponse{
		JobId:    jobID.String(),
		Invoice:  utils.ToPBInvoice(&result.Invoice),
		Warnings: utils.ToPBWarnings(result.Warnings),
		Summary:  result.Summary,
	}, nil
}

func (s *ParserService) GetParseJob(ctx context.Context, req *parserpb.GetParseJobRequest) (*parserpb.GetParseJobResponse, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		s.logger.Error("invalid job_id format", "job_id", req.GetJobId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		s.logger.Error("failed to get parse job", "job_id", jobID, "error", err)
		return nil, status.Errorf(codes.NotFound, "parse job %s not found", jobID)
	}
	return &parserpb.GetParseJobResponse{Job: utils.ToPBParseJob(job)}, nil
}

func (s *ParserService) ListInvoices(ctx context.Context, req *parserpb.ListInvoicesRequest) (*parserpb.ListInvoicesResponse, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	s.logger.Info("listing invoices", "from_date", fromDate, "to_date", toDate)
	recs, err := s.invoiceRepo.ListInvoices(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list invoices", "error", err)
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}
	s.logger.Info("invoices listed successfully", "count", len(recs))

	out := make([]*parserpb.InvoiceRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBInvoiceRecord(r))
	}
	return &parserpb.ListInvoicesResponse{Invoices: out}, nil
}
