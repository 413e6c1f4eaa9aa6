// Package analytics is the filtering and aggregation core behind the
// dashboard: it derives the table subset, the chart subset, per-category
// totals and the top-N ranking from an extraction result. Every function
// is pure and recomputed in full per call; at the expected volume (tens to
// low hundreds of rows) there is nothing to cache.
package analytics

import (
	"github.com/shopspring/decimal"

	"foliolens/internal/currency"
	"foliolens/internal/models"
)

// Row pairs an immutable transaction with its amount converted to the
// display currency. The conversion happens once, before both the table and
// the chart paths.
type Row struct {
	models.Transaction

	// Converted carries the same sign as Amount; conversion is a scalar
	// multiply.
	Converted decimal.Decimal
}

// ConvertAll derives display rows for every transaction of a result,
// preserving document order.
func ConvertAll(result *models.AnalysisResult, display models.DisplayCurrency, rates currency.Rates) []Row {
	rows := make([]Row, len(result.Transactions))
	for i, tx := range result.Transactions {
		rows[i] = Row{
			Transaction: tx,
			Converted:   currency.Convert(tx.Amount, result.DetectedCurrency, display, rates),
		}
	}
	return rows
}

// ConvertTotal converts the document-reported total for display. The total
// is never recomputed from the rows; the document figure stays
// authoritative.
func ConvertTotal(result *models.AnalysisResult, display models.DisplayCurrency, rates currency.Rates) decimal.Decimal {
	return currency.Convert(result.TotalAmount, result.DetectedCurrency, display, rates)
}
