package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsewell/invoice-parser/internal/entity"
)

func TestNormalizeDefaultsAndRounding(t *testing.T) {
	inv := entity.Invoice{
		Subtotal: 10.006,
		Tax:      1.2345,
		Total:    11.239,
		LineItems: []entity.LineItem{
			{UnitPrice: 3.333, Amount: 9.999},
		},
	}
	Normalize(&inv)

	assert.Equal(t, "USD", inv.Currency)
	assert.Equal(t, 10.01, inv.Subtotal)
	assert.Equal(t, 1.23, inv.Tax)
	assert.Equal(t, 11.24, inv.Total)
	assert.Equal(t, 3.33, inv.LineItems[0].UnitPrice)
	assert.Equal(t, 10.00, inv.LineItems[0].Amount)
}

func TestNormalizeKeepsExplicitCurrency(t *testing.T) {
	inv := entity.Invoice{Currency: "EUR"}
	Normalize(&inv)
	assert.Equal(t, "EUR", inv.Currency)
}

func TestNormalizeClampsBoundingBoxes(t *testing.T) {
	inv := entity.Invoice{
		LineItems: []entity.LineItem{
			{BBox: entity.BoundingBox{X: -0.5, Y: 1.5, W: 0.25, H: 2.0, Page: 0}},
		},
	}
	Normalize(&inv)

	bb := inv.LineItems[0].BBox
	assert.Equal(t, 0.0, bb.X)
	assert.Equal(t, 1.0, bb.Y)
	assert.Equal(t, 0.25, bb.W)
	assert.Equal(t, 1.0, bb.H)
	assert.Equal(t, 1, bb.Page)
}

func TestNormalizeIdempotent(t *testing.T) {
	inv := entity.Invoice{
		Vendor:   "Acme",
		Subtotal: 19.995,
		Tax:      1.6,
		Total:    21.6,
		LineItems: []entity.LineItem{
			{Description: "Thing", Quantity: 2, UnitPrice: 9.9975, Amount: 19.995,
				BBox: entity.BoundingBox{X: 0.1, Y: 0.2, W: 0.3, H: 0.4, Page: 2}},
		},
	}
	Normalize(&inv)
	once := inv
	Normalize(&inv)
	assert.Equal(t, once, inv)
}

func TestApplyComputedFallbackSubtotal(t *testing.T) {
	inv := entity.Invoice{
		Tax: 1.50,
		LineItems: []entity.LineItem{
			{Amount: 10.00},
			{Amount: 5.25},
		},
	}
	ApplyComputedFallback(&inv)

	assert.Equal(t, 15.25, inv.Subtotal)
	assert.Equal(t, 16.75, inv.Total)
}

func TestApplyComputedFallbackKeepsStatedValues(t *testing.T) {
	inv := entity.Invoice{
		Subtotal: 100.00,
		Total:    108.00,
		LineItems: []entity.LineItem{
			{Amount: 50.00},
		},
	}
	ApplyComputedFallback(&inv)

	assert.Equal(t, 100.00, inv.Subtotal)
	assert.Equal(t, 108.00, inv.Total)
}

func TestApplyComputedFallbackNoItems(t *testing.T) {
	inv := entity.Invoice{}
	ApplyComputedFallback(&inv)
	require.Zero(t, inv.Subtotal)
	require.Zero(t, inv.Total)
}
