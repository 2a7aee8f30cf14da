package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsewell/invoice-parser/constants"
	"github.com/parsewell/invoice-parser/internal/entity"
)

func items(amounts ...float64) []entity.LineItem {
	out := make([]entity.LineItem, len(amounts))
	for i, a := range amounts {
		out[i] = entity.LineItem{Description: "Item", Quantity: 1, UnitPrice: a, Amount: a}
	}
	return out
}

func cleanInvoice() entity.Invoice {
	return entity.Invoice{
		Vendor:        "Alpine Office Supplies",
		InvoiceDate:   "2025-11-14",
		InvoiceNumber: "INV-1041",
		Currency:      "USD",
		Subtotal:      197.00,
		Tax:           15.76,
		Total:         212.76,
		LineItems:     items(20, 35, 42, 45, 55),
	}
}

func TestCheckCleanInvoice(t *testing.T) {
	warnings, summary := Check(cleanInvoice())
	assert.Empty(t, warnings)
	assert.Equal(t, "The invoice from Alpine Office Supplies (INV-1041) was parsed successfully. No anomalies were detected.", summary)
}

func TestSubtotalMismatch(t *testing.T) {
	// Stated 412.00 against a line sum of 392.00.
	inv := cleanInvoice()
	inv.LineItems = append(items(20, 35, 42, 45),
		entity.LineItem{Description: "Premium Support", Quantity: 1, UnitPrice: 250, Amount: 250})
	inv.Subtotal = 412.00

	warnings, _ := Check(inv)
	require.NotEmpty(t, warnings)

	w := warnings[0]
	assert.Equal(t, string(constants.WarningSubtotalMismatch), w.Code)
	assert.Equal(t, "Subtotal mismatch: lines sum to $392.00 but subtotal is $412.00", w.Message)
	assert.Equal(t, 392.00, w.Details["expected"])
	assert.Equal(t, 412.00, w.Details["stated"])
	assert.Equal(t, 20.00, w.Details["difference"])
}

func TestSubtotalWithinTolerance(t *testing.T) {
	inv := cleanInvoice()
	inv.Subtotal = 197.004

	warnings, _ := Check(inv)
	assert.Empty(t, warnings)
}

func TestPriceOutlier(t *testing.T) {
	inv := entity.Invoice{
		Vendor:      "Alpine Office Supplies",
		InvoiceDate: "2025-11-15",
		Total:       444.96,
		Subtotal:    392.00,
		LineItems: []entity.LineItem{
			{Description: "Copy Paper A4 (Case)", Quantity: 2, UnitPrice: 10, Amount: 20},
			{Description: "Ink Cartridge Black", Quantity: 1, UnitPrice: 35, Amount: 35},
			{Description: "Desk Organizer", Quantity: 1, UnitPrice: 42, Amount: 42},
			{Description: "Wireless Mouse", Quantity: 1, UnitPrice: 45, Amount: 45},
			{Description: "Premium Support", Quantity: 1, UnitPrice: 250, Amount: 250},
		},
	}

	warnings, _ := Check(inv)
	require.Len(t, warnings, 1)

	w := warnings[0]
	assert.Equal(t, string(constants.WarningPriceOutlier), w.Code)
	assert.Equal(t, `High unit price outlier: "Premium Support" = $250 vs median $42`, w.Message)
	assert.Equal(t, "Premium Support", w.Details["item"])
	assert.Equal(t, 250.00, w.Details["unit_price"])
	assert.Equal(t, 42.00, w.Details["median"])
	assert.Equal(t, 6.0, w.Details["ratio"])
}

func TestPriceOutlierNeedsThreeItems(t *testing.T) {
	inv := entity.Invoice{
		Vendor:      "Acme",
		InvoiceDate: "2025-01-01",
		Total:       1001.00,
		Subtotal:    1001.00,
		LineItems:   items(1, 1000),
	}
	warnings, _ := Check(inv)
	assert.Empty(t, warnings)
}

func TestPriceOutlierEvenItemCountMedian(t *testing.T) {
	// Sorted prices [10, 20, 30, 500]: median is 25, 500 > 125.
	inv := entity.Invoice{
		Vendor:      "Acme",
		InvoiceDate: "2025-01-01",
		Total:       560.00,
		Subtotal:    560.00,
		LineItems:   items(10, 500, 20, 30),
	}
	warnings, _ := Check(inv)
	require.Len(t, warnings, 1)
	assert.Equal(t, 25.00, warnings[0].Details["median"])
	assert.Equal(t, 20.0, warnings[0].Details["ratio"])
}

func TestMissingFields(t *testing.T) {
	inv := entity.Invoice{
		Vendor:      "",
		InvoiceDate: "2025-11-14",
		Total:       0,
	}
	warnings, _ := Check(inv)
	require.Len(t, warnings, 1)

	w := warnings[0]
	assert.Equal(t, string(constants.WarningMissingFields), w.Code)
	assert.Equal(t, "Missing required fields: vendor, total", w.Message)
	assert.Equal(t, []string{"vendor", "total"}, w.Details["fields"])
}

func TestWarningsOrderIsStable(t *testing.T) {
	inv := entity.Invoice{
		Vendor:    "",
		Subtotal:  999.00,
		Total:     0,
		LineItems: items(10, 20, 30, 500),
	}
	warnings, _ := Check(inv)
	require.Len(t, warnings, 3)
	assert.Equal(t, string(constants.WarningSubtotalMismatch), warnings[0].Code)
	assert.Equal(t, string(constants.WarningPriceOutlier), warnings[1].Code)
	assert.Equal(t, string(constants.WarningMissingFields), warnings[2].Code)
}
