package parse

import "github.com/parsewell/invoice-parser/internal/entity"

// ApplyComputedFallback fills subtotal and total from line-item arithmetic
// when extraction yielded the 0.0 sentinel. Runs once, after extraction and
// before normalization.
func ApplyComputedFallback(inv *entity.Invoice) {
	if inv.Subtotal == 0 && len(inv.LineItems) > 0 {
		sum := 0.0
		for _, li := range inv.LineItems {
			sum += li.Amount
		}
		inv.Subtotal = Round2(sum)
	}
	if inv.Total == 0 && inv.Subtotal > 0 {
		inv.Total = Round2(inv.Subtotal + inv.Tax)
	}
}
