package entity

// BoundingBox locates a line item on its source page image. Coordinates are
// normalized to [0,1] after normalization; page is 1-based. Informational
// only, never consulted by anomaly rules.
type BoundingBox struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	Page int     `json:"page"`
}

// LineItem is one row of an invoice's itemized charges.
type LineItem struct {
	Description string      `json:"description"`
	Quantity    int         `json:"quantity"`
	UnitPrice   float64     `json:"unit_price"`
	Amount      float64     `json:"amount"`
	BBox        BoundingBox `json:"bbox"`
}

// Invoice is the canonical record produced by a parse request. Field names,
// value types, and 2-decimal rounding are a locked compatibility contract.
type Invoice struct {
	Vendor        string     `json:"vendor"`
	InvoiceDate   string     `json:"invoice_date"`
	InvoiceNumber string     `json:"invoice_number"`
	Currency      string     `json:"currency"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	LineItems     []LineItem `json:"line_items"`
}

// Warning is one anomaly-rule finding. Details carries rule-specific
// auxiliary values (expected/stated sums, outlier ratios, missing fields).
type Warning struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// ParseResult is what one parse request yields: either this, fully formed,
// or a fatal error. Never a partial invoice.
type ParseResult struct {
	RequestID string    `json:"request_id"`
	Invoice   Invoice   `json:"invoice"`
	Warnings  []Warning `json:"warnings"`
	Summary   string    `json:"summary"`
}
