package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/parsewell/invoice-parser/internal/entity"
)

// Two table grammars, tried in fixed priority. Grammar 1 covers the
// provider's LaTeX tabular rows:
//
//	Copy Paper A4 (Case) & 2 & $10.00 & $20.00\\
//
// Grammar 2 covers markdown pipe tables with the same four columns and is
// attempted only when grammar 1 yields zero rows; the two are never merged.
var (
	delimRowRe = regexp.MustCompile(`([A-Za-z][^&\n]+?)\s*&\s*(\d+)\s*&\s*\$?([\d,.]+)\s*&\s*\$?([\d,.]+)`)
	pipeRowRe  = regexp.MustCompile(`\|\s*(.+?)\s*\|\s*(\d+)\s*\|\s*\$?([\d,.]+)\s*\|\s*\$?([\d,.]+)\s*\|`)
)

var headerTokens = map[string]struct{}{
	"description": {},
	"qty":         {},
	"unit price":  {},
	"amount":      {},
}

// ExtractLineItems returns the ordered line-item rows found in the merged
// text. Row order equals match order: page order, then top-to-bottom within
// a page.
func ExtractLineItems(text string) []entity.LineItem {
	items := matchRows(delimRowRe, text, true)
	if len(items) == 0 {
		items = matchRows(pipeRowRe, text, false)
	}
	return items
}

func matchRows(re *regexp.Regexp, text string, stripStars bool) []entity.LineItem {
	var items []entity.LineItem
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		desc := strings.TrimSpace(m[1])
		if stripStars {
			desc = strings.Trim(desc, "*")
		}
		if isHeaderOrSeparator(desc) {
			continue
		}
		// A row with an unparsable numeral is dropped, never the whole
		// extraction.
		qty, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		unitPrice, err := parseAmount(m[3])
		if err != nil {
			continue
		}
		amount, err := parseAmount(m[4])
		if err != nil {
			continue
		}
		items = append(items, entity.LineItem{
			Description: desc,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			Amount:      amount,
		})
	}
	return items
}

func isHeaderOrSeparator(desc string) bool {
	d := strings.ToLower(strings.TrimSpace(desc))
	if d == "" {
		return true
	}
	if _, ok := headerTokens[d]; ok {
		return true
	}
	return strings.Trim(d, "-") == ""
}
