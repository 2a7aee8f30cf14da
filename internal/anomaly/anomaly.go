// Package anomaly runs the post-extraction consistency rules and renders the
// human-readable summary. Rules are pure functions of a normalized invoice
// and always run in fixed order: subtotal mismatch, price outlier, missing
// fields.
package anomaly

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/parsewell/invoice-parser/constants"
	"github.com/parsewell/invoice-parser/internal/entity"
)

// outlierRatio is the multiple of the median unit price above which a line
// item is flagged.
const outlierRatio = 5.0

// mismatchTolerance absorbs float rounding when comparing the stated
// subtotal against the line-item sum.
const mismatchTolerance = 0.005

// Check evaluates all rules against a normalized invoice and returns the
// warnings in rule order plus the rendered summary.
func Check(inv entity.Invoice) ([]entity.Warning, string) {
	var warnings []entity.Warning

	if w, ok := subtotalMismatch(inv); ok {
		warnings = append(warnings, w)
	}
	warnings = append(warnings, priceOutliers(inv)...)
	if w, ok := missingFields(inv); ok {
		warnings = append(warnings, w)
	}

	return warnings, BuildSummary(inv, warnings)
}

func subtotalMismatch(inv entity.Invoice) (entity.Warning, bool) {
	sum := 0.0
	for _, li := range inv.LineItems {
		sum += li.Amount
	}
	expected := round2(sum)
	if math.Abs(inv.Subtotal-expected) <= mismatchTolerance {
		return entity.Warning{}, false
	}
	return entity.Warning{
		Code: string(constants.WarningSubtotalMismatch),
		Message: fmt.Sprintf("Subtotal mismatch: lines sum to $%.2f but subtotal is $%.2f",
			expected, inv.Subtotal),
		Details: map[string]any{
			"expected":   expected,
			"stated":     inv.Subtotal,
			"difference": round2(inv.Subtotal - expected),
		},
	}, true
}

func priceOutliers(inv entity.Invoice) []entity.Warning {
	// The median is meaningless on tiny samples; the rule needs at least 3
	// items before it fires.
	if len(inv.LineItems) < 3 {
		return nil
	}
	med := round2(medianUnitPrice(inv.LineItems))

	var warnings []entity.Warning
	for _, li := range inv.LineItems {
		if li.UnitPrice <= outlierRatio*med {
			continue
		}
		var ratio any
		if med != 0 {
			ratio = round1(li.UnitPrice / med)
		}
		warnings = append(warnings, entity.Warning{
			Code: string(constants.WarningPriceOutlier),
			Message: fmt.Sprintf(`High unit price outlier: "%s" = $%.0f vs median $%.0f`,
				li.Description, li.UnitPrice, med),
			Details: map[string]any{
				"item":       li.Description,
				"unit_price": li.UnitPrice,
				"median":     med,
				"ratio":      ratio,
			},
		})
	}
	return warnings
}

func missingFields(inv entity.Invoice) (entity.Warning, bool) {
	var missing []string
	if inv.Vendor == "" {
		missing = append(missing, "vendor")
	}
	if inv.InvoiceDate == "" {
		missing = append(missing, "date")
	}
	if inv.Total == 0 {
		missing = append(missing, "total")
	}
	if len(missing) == 0 {
		return entity.Warning{}, false
	}
	return entity.Warning{
		Code:    string(constants.WarningMissingFields),
		Message: "Missing required fields: " + strings.Join(missing, ", "),
		Details: map[string]any{"fields": missing},
	}, true
}

func medianUnitPrice(items []entity.LineItem) float64 {
	prices := make([]float64, len(items))
	for i, li := range items {
		prices[i] = li.UnitPrice
	}
	sort.Float64s(prices)
	mid := len(prices) / 2
	if len(prices)%2 == 1 {
		return prices[mid]
	}
	return (prices[mid-1] + prices[mid]) / 2
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
