package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLineItemsDelimitedRows(t *testing.T) {
	text := `Description & Qty & Unit Price & Amount\\
Copy Paper A4 (Case) & 2 & $10.00 & $20.00\\
Ink Cartridge Black & 1 & $35.00 & $35.00\\`

	items := ExtractLineItems(text)
	require.Len(t, items, 2)

	assert.Equal(t, "Copy Paper A4 (Case)", items[0].Description)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 10.00, items[0].UnitPrice)
	assert.Equal(t, 20.00, items[0].Amount)

	assert.Equal(t, "Ink Cartridge Black", items[1].Description)
}

func TestExtractLineItemsPreservesRowOrder(t *testing.T) {
	text := `First Item & 1 & $1.00 & $1.00\\
Second Item & 1 & $2.00 & $2.00\\
Third Item & 1 & $3.00 & $3.00\\`

	items := ExtractLineItems(text)
	require.Len(t, items, 3)
	assert.Equal(t, "First Item", items[0].Description)
	assert.Equal(t, "Second Item", items[1].Description)
	assert.Equal(t, "Third Item", items[2].Description)
}

func TestExtractLineItemsStripsEmphasis(t *testing.T) {
	items := ExtractLineItems(`**Wireless Mouse** & 1 & $45.00 & $45.00\\`)
	require.Len(t, items, 1)
	assert.Equal(t, "Wireless Mouse", items[0].Description)
}

func TestExtractLineItemsPipeTableFallback(t *testing.T) {
	text := `| Widget | 2 | $5.00 | $10.00 |
| Gadget | 1 | $7.50 | $7.50 |`

	items := ExtractLineItems(text)
	require.Len(t, items, 2)
	assert.Equal(t, "Widget", items[0].Description)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Gadget", items[1].Description)
}

func TestExtractLineItemsPipeTableNotMergedWithDelimited(t *testing.T) {
	// When the delimited grammar matches, pipe rows are ignored entirely.
	text := `Real Item & 1 & $9.00 & $9.00\\
| Stray Pipe Row | 1 | $1.00 | $1.00 |`

	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Real Item", items[0].Description)
}

func TestExtractLineItemsDropsHeaderRows(t *testing.T) {
	items := ExtractLineItems(`| Description | 1 | 1.00 | 1.00 |
| Widget | 2 | $5.00 | $10.00 |`)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Description)
}

func TestExtractLineItemsDropsUnparsableRows(t *testing.T) {
	text := `Bad Amount & 1 & $5.00 & $5.00.00\\
Good Item & 1 & $5.00 & $5.00\\`

	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Good Item", items[0].Description)
}

func TestExtractLineItemsEmptyText(t *testing.T) {
	assert.Empty(t, ExtractLineItems(""))
}
