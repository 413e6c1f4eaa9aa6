package models

import (
	"errors"
	"fmt"
)

// ErrNoTransactions is returned when the extraction service produced a
// result without a single transaction.
var ErrNoTransactions = errors.New("analysis result contains no transactions")

// Validate checks an extraction result against the structured-output
// contract instead of trusting the service's conformance. It rejects
// results with no transactions and transactions missing required fields or
// carrying a category outside the closed set.
func Validate(r *AnalysisResult) error {
	if r == nil {
		return errors.New("analysis result is nil")
	}
	if len(r.Transactions) == 0 {
		return ErrNoTransactions
	}
	for i, tx := range r.Transactions {
		if err := validateTransaction(tx); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}

func validateTransaction(tx Transaction) error {
	if tx.Date == "" {
		return errors.New("missing date")
	}
	if tx.OriginalDescription == "" && tx.CleanName == "" {
		return errors.New("missing description")
	}
	if !ValidCategory(tx.Category) {
		return fmt.Errorf("category %q is not in the allowed set", tx.Category)
	}
	return nil
}
