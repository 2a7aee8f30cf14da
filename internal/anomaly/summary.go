package anomaly

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parsewell/invoice-parser/constants"
	"github.com/parsewell/invoice-parser/internal/entity"
)

// Per-warning summary sentences, keyed by warning code. Wording is part of
// the output contract and must not drift.
var summaryLines = map[string]string{
	string(constants.WarningSubtotalMismatch): "- The subtotal does not match the sum of line items.",
	string(constants.WarningPriceOutlier):     "- One line item has a significantly higher unit price than others.",
	string(constants.WarningMissingFields):    "- Required fields are missing: %s.",
}

var countWords = map[int]string{1: "One", 2: "Two", 3: "Three"}

// BuildSummary renders the fixed-format result summary for an invoice and
// its warnings.
func BuildSummary(inv entity.Invoice, warnings []entity.Warning) string {
	if len(warnings) == 0 {
		return fmt.Sprintf("The invoice from %s (%s) was parsed successfully. No anomalies were detected.",
			inv.Vendor, inv.InvoiceNumber)
	}

	count := countWords[len(warnings)]
	if count == "" {
		count = strconv.Itoa(len(warnings))
	}
	noun := "anomalies were"
	if len(warnings) == 1 {
		noun = "anomaly was"
	}

	lines := []string{fmt.Sprintf("The invoice was parsed successfully. %s %s detected:", count, noun)}
	for _, w := range warnings {
		line := summaryLines[w.Code]
		if w.Code == string(constants.WarningMissingFields) {
			fields, _ := w.Details["fields"].([]string)
			line = fmt.Sprintf(line, bracketList(fields))
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", "This may indicate a calculation error or incorrect entry.")
	return strings.Join(lines, "\n")
}

// bracketList renders ["vendor", "total"] as "['vendor', 'total']".
func bracketList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
