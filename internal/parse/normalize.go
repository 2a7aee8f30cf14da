package parse

import (
	"math"

	"github.com/parsewell/invoice-parser/internal/entity"
)

// Normalize canonicalizes an invoice in place: currency defaults to USD,
// amounts round to 2 decimals, bounding boxes clamp to [0,1] with a 1-based
// page. Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(inv *entity.Invoice) {
	if inv.Currency == "" {
		inv.Currency = "USD"
	}

	inv.Subtotal = Round2(inv.Subtotal)
	inv.Tax = Round2(inv.Tax)
	inv.Total = Round2(inv.Total)

	for i := range inv.LineItems {
		li := &inv.LineItems[i]
		li.UnitPrice = Round2(li.UnitPrice)
		li.Amount = Round2(li.Amount)

		li.BBox.X = clamp01(li.BBox.X)
		li.BBox.Y = clamp01(li.BBox.Y)
		li.BBox.W = clamp01(li.BBox.W)
		li.BBox.H = clamp01(li.BBox.H)
		if li.BBox.Page < 1 {
			li.BBox.Page = 1
		}
	}
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
