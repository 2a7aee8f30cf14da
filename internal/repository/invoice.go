package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/internal/entity"
)

type InvoiceRepository interface {
	SaveResult(ctx context.Context, jobID uuid.UUID, result *entity.ParseResult) (*entity.InvoiceRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceRecord, error)
	ListInvoices(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.InvoiceRecord, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) SaveResult(ctx context.Context, jobID uuid.UUID, result *entity.ParseResult) (*entity.InvoiceRecord, error) {
	inv := result.Invoice
	rec, err := r.client.InvoiceRecord.
		Create().
		SetJobID(jobID).
		SetVendor(inv.Vendor).
		SetInvoiceDate(inv.InvoiceDate).
		SetInvoiceNumber(inv.InvoiceNumber).
		SetCurrencyCode(inv.Currency).
		SetSubtotal(inv.Subtotal).
		SetTax(inv.Tax).
		SetTotal(inv.Total).
		SetLineItems(inv.LineItems).
		SetWarnings(result.Warnings).
		SetSummary(result.Summary).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save invoice record", "job_id", jobID, "error", err)
		return nil, err
	}
	return toInvoiceRecord(rec), nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceRecord, error) {
	rec, err := r.client.InvoiceRecord.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceRecord(rec), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.InvoiceRecord, error) {
	q := r.client.InvoiceRecord.Query()
	if fromDate != nil {
		q = q.Where(invoicerecord.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoicerecord.CreatedAtLTE(*toDate))
	}
	recs, err := q.Order(invoicerecord.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.InvoiceRecord, len(recs))
	for i, rec := range recs {
		result[i] = toInvoiceRecord(rec)
	}
	return result, nil
}

func toInvoiceRecord(rec *ent.InvoiceRecord) *entity.InvoiceRecord {
	return &entity.InvoiceRecord{
		ID:    rec.ID,
		JobID: rec.JobID,
		Invoice: entity.Invoice{
			Vendor:        rec.Vendor,
			InvoiceDate:   rec.InvoiceDate,
			InvoiceNumber: rec.InvoiceNumber,
			Currency:      rec.CurrencyCode,
			Subtotal:      rec.Subtotal,
			Tax:           rec.Tax,
			Total:         rec.Total,
			LineItems:     rec.LineItems,
		},
		Warnings:  rec.Warnings,
		Summary:   rec.Summary,
		CreatedAt: rec.CreatedAt,
	}
}
