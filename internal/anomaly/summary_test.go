package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parsewell/invoice-parser/constants"
	"github.com/parsewell/invoice-parser/internal/entity"
)

func TestSummaryNoWarnings(t *testing.T) {
	inv := entity.Invoice{Vendor: "Alpine Office Supplies", InvoiceNumber: "INV-1041"}
	got := BuildSummary(inv, nil)
	assert.Equal(t, "The invoice from Alpine Office Supplies (INV-1041) was parsed successfully. No anomalies were detected.", got)
}

func TestSummarySingleWarning(t *testing.T) {
	got := BuildSummary(entity.Invoice{}, []entity.Warning{
		{Code: string(constants.WarningSubtotalMismatch)},
	})
	want := "The invoice was parsed successfully. One anomaly was detected:\n" +
		"- The subtotal does not match the sum of line items.\n" +
		"\n" +
		"This may indicate a calculation error or incorrect entry."
	assert.Equal(t, want, got)
}

func TestSummaryTwoWarnings(t *testing.T) {
	got := BuildSummary(entity.Invoice{}, []entity.Warning{
		{Code: string(constants.WarningSubtotalMismatch)},
		{Code: string(constants.WarningPriceOutlier)},
	})
	want := "The invoice was parsed successfully. Two anomalies were detected:\n" +
		"- The subtotal does not match the sum of line items.\n" +
		"- One line item has a significantly higher unit price than others.\n" +
		"\n" +
		"This may indicate a calculation error or incorrect entry."
	assert.Equal(t, want, got)
}

func TestSummaryMissingFieldsList(t *testing.T) {
	got := BuildSummary(entity.Invoice{}, []entity.Warning{
		{
			Code:    string(constants.WarningMissingFields),
			Details: map[string]any{"fields": []string{"vendor", "total"}},
		},
	})
	want := "The invoice was parsed successfully. One anomaly was detected:\n" +
		"- Required fields are missing: ['vendor', 'total'].\n" +
		"\n" +
		"This may indicate a calculation error or incorrect entry."
	assert.Equal(t, want, got)
}

func TestSummaryManyWarningsUsesDigits(t *testing.T) {
	warnings := []entity.Warning{
		{Code: string(constants.WarningSubtotalMismatch)},
		{Code: string(constants.WarningPriceOutlier)},
		{Code: string(constants.WarningPriceOutlier)},
		{Code: string(constants.WarningMissingFields), Details: map[string]any{"fields": []string{"total"}}},
	}
	got := BuildSummary(entity.Invoice{}, warnings)
	assert.Contains(t, got, "4 anomalies were detected:")
}
