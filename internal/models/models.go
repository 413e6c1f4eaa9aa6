// Package models defines the core data structures shared across the
// application: the extracted folio transactions, the analysis result
// returned by the extraction service, and the filter state driving the
// dashboard views.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a single folio line item as reported by the extraction
// service. Instances are immutable once received; display paths derive a
// converted copy and never mutate the original.
type Transaction struct {
	// Date is the charge date in display format DD/MM/YYYY, kept as the
	// raw string the extraction reported.
	Date string `json:"date" csv:"Date"`

	// OriginalDescription is the line text exactly as printed on the folio.
	OriginalDescription string `json:"originalDescription" csv:"Original Description"`

	// CleanName is the normalized merchant label derived from the
	// description by the extraction service.
	CleanName string `json:"cleanName" csv:"Merchant"`

	// Amount is signed; negative means credit or discount.
	Amount decimal.Decimal `json:"amount" csv:"Amount"`

	Currency string   `json:"currency" csv:"Currency"`
	Category Category `json:"category" csv:"Category"`
}

// AnalysisResult is the structured response of the extraction service for
// one folio document. Transactions keep document order; TotalAmount is the
// document-reported total and stays authoritative even when it disagrees
// with the transaction sum.
type AnalysisResult struct {
	HotelName          string `json:"hotelName"`
	HotelAddress       string `json:"hotelAddress"`
	GuestName          string `json:"guestName"`
	RoomNumber         string `json:"roomNumber"`
	CheckInDate        string `json:"checkInDate"`
	CheckOutDate       string `json:"checkOutDate"`
	ConfirmationNumber string `json:"confirmationNumber"`

	// DetectedCurrency is the code/symbol found in the document, distinct
	// from whatever display currency the user selects.
	DetectedCurrency string `json:"detectedCurrency"`
	CurrencySymbol   string `json:"currencySymbol"`

	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Transactions []Transaction   `json:"transactions"`
}

// TransactionSum returns the signed sum of all transaction amounts.
// Used only for the consistency check against TotalAmount, never to
// replace it.
func (r *AnalysisResult) TransactionSum() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range r.Transactions {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// DisplayCurrency is the currency the user wants amounts rendered in.
type DisplayCurrency string

const (
	DisplayMXN DisplayCurrency = "MXN"
	DisplayUSD DisplayCurrency = "USD"
)

// ParseDisplayCurrency normalizes a user-supplied currency code.
// MXN is the default for empty input.
func ParseDisplayCurrency(s string) (DisplayCurrency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "MXN":
		return DisplayMXN, nil
	case "USD":
		return DisplayUSD, nil
	default:
		return "", fmt.Errorf("unsupported display currency %q (want MXN or USD)", s)
	}
}

// FilterState holds the transient table filters. It is owned by the caller
// (CLI flags or HTTP query params) and passed by value into the pure filter
// functions; there is no hidden shared state.
type FilterState struct {
	// SearchTerm matches CleanName or OriginalDescription case-insensitively.
	SearchTerm string

	// Category is a category value or the CategoryAll sentinel.
	Category string

	// StartDate and EndDate use the input format YYYY-MM-DD; empty means
	// the bound is unset.
	StartDate string
	EndDate   string
}

// HasDateBound reports whether either bound of the date range is set.
func (f FilterState) HasDateBound() bool {
	return f.StartDate != "" || f.EndDate != ""
}
