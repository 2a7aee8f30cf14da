package constants

// WarningCode identifies one anomaly rule. Codes and their relative order
// are part of the response contract consumed by downstream agents.
type WarningCode string

const (
	WarningSubtotalMismatch WarningCode = "SUBTOTAL_MISMATCH"
	WarningPriceOutlier     WarningCode = "PRICE_OUTLIER"
	WarningMissingFields    WarningCode = "MISSING_FIELDS"
)
