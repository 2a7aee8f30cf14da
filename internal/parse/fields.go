// Package parse recovers an Invoice from the merged provider text. Inputs
// are unstructured and vary per provider quirk, so every field is extracted
// by an ordered cascade of patterns with first-match-wins semantics; a field
// with no match gets its sentinel default and extraction never fails.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/parsewell/invoice-parser/internal/entity"
)

// SentinelParsed marks a string field the extractor could not recover.
const SentinelParsed = "(parsed)"

// stringRule is one step of a field cascade: a pattern plus an accept
// function deciding whether a given match yields the field value. Rules are
// evaluated in order; within a rule, matches are scanned in text order.
type stringRule struct {
	re     *regexp.Regexp
	accept func(groups []string) (string, bool)
}

func scanFirst(rules []stringRule, text string) (string, bool) {
	for _, r := range rules {
		for _, m := range r.re.FindAllStringSubmatch(text, -1) {
			if v, ok := r.accept(m); ok {
				return v, true
			}
		}
	}
	return "", false
}

var genericHeadings = map[string]struct{}{
	"INVOICE":  {},
	"BILL TO":  {},
	"BILL TO:": {},
}

var companyKeywords = []string{"SUPPLIES", "CORP", "INC", "LLC", "LTD", "COMPANY"}

var vendorRules = []stringRule{
	// Markdown-style heading, skipping generic section headings.
	{
		re: regexp.MustCompile(`#\s+([A-Z][^\n]+)`),
		accept: func(m []string) (string, bool) {
			cand := strings.Trim(strings.TrimSpace(m[1]), "*")
			if _, generic := genericHeadings[strings.ToUpper(cand)]; generic {
				return "", false
			}
			return cand, true
		},
	},
	// Standalone short line containing a company-type keyword.
	{
		re: regexp.MustCompile(`(?m)^([A-Za-z][^\n]{2,50})$`),
		accept: func(m []string) (string, bool) {
			cand := strings.TrimSpace(m[1])
			upper := strings.ToUpper(cand)
			if _, generic := genericHeadings[upper]; generic {
				return "", false
			}
			if upper == "CONTINUED ON NEXT PAGE..." {
				return "", false
			}
			for _, kw := range companyKeywords {
				if strings.Contains(upper, kw) {
					return cand, true
				}
			}
			return "", false
		},
	},
}

var invoiceNumberRules = []stringRule{
	{
		re: regexp.MustCompile(`(INV-\d+)`),
		accept: func(m []string) (string, bool) {
			return m[1], true
		},
	},
}

var invoiceDateRules = []stringRule{
	{
		re: regexp.MustCompile(`(?i)(?:^|\n)\s*Date:?\s*(\d{4}[-/]\d{2}[-/]\d{2})`),
		accept: func(m []string) (string, bool) {
			return m[1], true
		},
	},
}

// Amount cascades. The "(?:&\s*)*" run tolerates table-cell delimiters
// between the label and the numeral; the subtotal cascade additionally
// accepts the wrapped LaTeX multicolumn cell the provider emits for some
// layouts.
var subtotalRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Subtotal:?\s*(?:&\s*)*\$?([\d,.]+)`),
	regexp.MustCompile(`(?i)multicolumn\{[^}]*\}\{[^}]*\}\{Subtotal:?\s*\$?([\d,.]+)`),
}

var taxRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Tax\s*\([^)]*\):?\s*(?:&\s*)*\$?([\d,.]+)`),
}

var totalRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bTOTAL:?\s*(?:&\s*)*\$?([\d,.]+)`),
}

// scanAmount returns the first rule match that parses to a non-zero amount.
// A parsed zero is indistinguishable from the 0.0 sentinel, so the cascade
// keeps looking; unparsable numerals never fail, they fall through.
func scanAmount(rules []*regexp.Regexp, text string) float64 {
	for _, re := range rules {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, err := parseAmount(m[1]); err == nil && v != 0 {
			return v
		}
	}
	return 0
}

func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	return strconv.ParseFloat(s, 64)
}

// ExtractInvoice recovers all scalar fields and line items from the merged
// text. It is total: absent matches yield sentinel defaults, never errors.
func ExtractInvoice(text string) entity.Invoice {
	inv := entity.Invoice{
		Vendor:        SentinelParsed,
		InvoiceDate:   SentinelParsed,
		InvoiceNumber: SentinelParsed,
		Currency:      "USD",
		Subtotal:      scanAmount(subtotalRules, text),
		Tax:           scanAmount(taxRules, text),
		Total:         scanAmount(totalRules, text),
		LineItems:     ExtractLineItems(text),
	}
	if v, ok := scanFirst(vendorRules, text); ok {
		inv.Vendor = v
	}
	if v, ok := scanFirst(invoiceNumberRules, text); ok {
		inv.InvoiceNumber = v
	}
	if v, ok := scanFirst(invoiceDateRules, text); ok {
		inv.InvoiceDate = v
	}
	return inv
}
