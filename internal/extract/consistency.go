package extract

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"foliolens/internal/models"
)

// consistencyTolerance is the absolute difference (in document currency
// units) between the transaction sum and the reported total above which a
// warning is logged.
var consistencyTolerance = decimal.NewFromInt(1)

// CheckConsistency compares the sum of transaction amounts against the
// document-reported total. A mismatch beyond the tolerance is a logged
// warning, not an error: the document total stays authoritative for
// display and is never silently "fixed" by resumming.
func CheckConsistency(result *models.AnalysisResult, log *logrus.Logger) bool {
	sum := result.TransactionSum()
	diff := sum.Sub(result.TotalAmount).Abs()

	if diff.GreaterThan(consistencyTolerance) {
		log.WithFields(logrus.Fields{
			"transaction_sum": sum.StringFixed(2),
			"reported_total":  result.TotalAmount.StringFixed(2),
			"difference":      diff.StringFixed(2),
		}).Warn("Transaction sum differs from document-reported total; keeping the document total")
		return false
	}
	return true
}
