package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/parsewell/invoice-parser/internal/entity"
	"github.com/parsewell/invoice-parser/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoiceRepo repository.InvoiceRepository
	logger      *slog.Logger
}

func NewService(repo repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoiceRepo: repo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.invoiceRepo.ListInvoices(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Created",
		"Vendor",
		"Invoice #",
		"Invoice Date",
		"Currency",
		"Subtotal",
		"Tax",
		"Total",
		"Line Items",
		"Warnings",
		"Summary",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.CreatedAt.UTC().Format("2006-01-02"))
		write(2, r.Invoice.Vendor)
		write(3, r.Invoice.InvoiceNumber)
		write(4, r.Invoice.InvoiceDate)
		write(5, r.Invoice.Currency)
		write(6, fmt.Sprintf("%.2f", r.Invoice.Subtotal))
		write(7, fmt.Sprintf("%.2f", r.Invoice.Tax))
		write(8, fmt.Sprintf("%.2f", r.Invoice.Total))
		write(9, len(r.Invoice.LineItems))
		write(10, len(r.Warnings))
		write(11, truncate(r.Summary, 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // created
	_ = f.SetColWidth(sheet, "B", "B", 28) // vendor
	_ = f.SetColWidth(sheet, "C", "D", 14) // number / date
	_ = f.SetColWidth(sheet, "F", "H", 12) // amounts
	_ = f.SetColWidth(sheet, "K", "K", 60) // summary

	if err := s.addWarningsSheet(f, recs); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// addWarningsSheet writes one row per warning across all exported invoices.
func (s *Service) addWarningsSheet(f *excelize.File, recs []*entity.InvoiceRecord) error {
	const sheet = "Warnings"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Invoice #", "Vendor", "Code", "Message"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		for _, w := range r.Warnings {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, r.Invoice.InvoiceNumber)
			write(2, r.Invoice.Vendor)
			write(3, w.Code)
			write(4, w.Message)
			row++
		}
	}

	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "D", "D", 72)
	return nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
