package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `# Alpine Office Supplies
123 Mountain View Road, Denver, CO 80202

# INVOICE

Invoice #: INV-1041
Date: 2025-11-14
Due Date: 2025-12-14

\begin{tabular}{lrrr}
Description & Qty & Unit Price & Amount\\
Copy Paper A4 (Case) & 2 & $10.00 & $20.00\\
Ink Cartridge Black & 1 & $35.00 & $35.00\\
Desk Organizer & 1 & $42.00 & $42.00\\
\end{tabular}

Subtotal: $97.00
Tax (8%): $7.76
TOTAL: $104.76`

func TestExtractInvoiceFields(t *testing.T) {
	inv := ExtractInvoice(sampleText)

	assert.Equal(t, "Alpine Office Supplies", inv.Vendor)
	assert.Equal(t, "INV-1041", inv.InvoiceNumber)
	assert.Equal(t, "2025-11-14", inv.InvoiceDate)
	assert.Equal(t, "USD", inv.Currency)
	assert.Equal(t, 97.00, inv.Subtotal)
	assert.Equal(t, 7.76, inv.Tax)
	assert.Equal(t, 104.76, inv.Total)
	assert.Len(t, inv.LineItems, 3)
}

func TestExtractInvoiceSentinels(t *testing.T) {
	inv := ExtractInvoice("")

	assert.Equal(t, SentinelParsed, inv.Vendor)
	assert.Equal(t, SentinelParsed, inv.InvoiceNumber)
	assert.Equal(t, SentinelParsed, inv.InvoiceDate)
	assert.Equal(t, "USD", inv.Currency)
	assert.Zero(t, inv.Subtotal)
	assert.Zero(t, inv.Tax)
	assert.Zero(t, inv.Total)
	assert.Empty(t, inv.LineItems)
}

func TestVendorSkipsGenericHeadings(t *testing.T) {
	inv := ExtractInvoice("# INVOICE\n\n# Evergreen Paper Corp\n")
	assert.Equal(t, "Evergreen Paper Corp", inv.Vendor)
}

func TestVendorFallsBackToCompanyLine(t *testing.T) {
	inv := ExtractInvoice("INVOICE\nNorthwind Trading LLC\n123 Any Street\n")
	assert.Equal(t, "Northwind Trading LLC", inv.Vendor)
}

func TestVendorIgnoresContinuationMarker(t *testing.T) {
	inv := ExtractInvoice("CONTINUED ON NEXT PAGE...\nGranite Supplies\n")
	assert.Equal(t, "Granite Supplies", inv.Vendor)
}

func TestVendorHeadingStripsEmphasis(t *testing.T) {
	inv := ExtractInvoice("# Alpine Office Supplies**\n")
	assert.Equal(t, "Alpine Office Supplies", inv.Vendor)
}

func TestAmountsTolerateCellDelimiters(t *testing.T) {
	inv := ExtractInvoice("Subtotal: & & $1,234.56\nTax (10%): & $123.46\nTOTAL: & & $1,358.02")
	assert.Equal(t, 1234.56, inv.Subtotal)
	assert.Equal(t, 123.46, inv.Tax)
	assert.Equal(t, 1358.02, inv.Total)
}

func TestSubtotalMulticolumnVariant(t *testing.T) {
	inv := ExtractInvoice(`\multicolumn{3}{r}{Subtotal: $88.00}`)
	assert.Equal(t, 88.00, inv.Subtotal)
}

func TestTotalDoesNotMatchInsideSubtotal(t *testing.T) {
	inv := ExtractInvoice("Subtotal: $50.00\n")
	assert.Equal(t, 50.00, inv.Subtotal)
	assert.Zero(t, inv.Total)
}

func TestDateRequiresLineStart(t *testing.T) {
	// "Due Date:" must not satisfy the date pattern on its own.
	inv := ExtractInvoice("Due Date: 2025-12-14\nDate: 2025-11-14\n")
	require.Equal(t, "2025-11-14", inv.InvoiceDate)
}

func TestParseAmountStripsSeparators(t *testing.T) {
	v, err := parseAmount("1,250.75")
	require.NoError(t, err)
	assert.Equal(t, 1250.75, v)

	_, err = parseAmount("12.5.0")
	assert.Error(t, err)
}
