// Package currency converts extracted amounts between the detected document
// currency and the user's display currency using static exchange rates.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"foliolens/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Rates holds the static conversion rates. They are configuration
// constants, never fetched live.
type Rates struct {
	MXNToUSD decimal.Decimal
	USDToMXN decimal.Decimal
}

// DefaultRates returns the built-in rates. USDToMXN is the reciprocal of
// MXNToUSD so a conversion round-trip stays within floating tolerance.
func DefaultRates() Rates {
	mxnToUSD := decimal.NewFromFloat(0.058)
	return Rates{
		MXNToUSD: mxnToUSD,
		USDToMXN: decimal.NewFromInt(1).DivRound(mxnToUSD, 10),
	}
}

// Convert maps an amount in the detected document currency to the display
// currency. Matching is substring-based because the extraction reports
// whatever code or symbol it found ("MXN", "$ MXN", "USD", ...). Anything
// unrecognized passes through unchanged, an implicit 1:1 assumption the
// original carries knowingly. Sign is always preserved: conversion is a
// pure scalar multiply.
func Convert(amount decimal.Decimal, detectedCurrency string, display models.DisplayCurrency, rates Rates) decimal.Decimal {
	detected := strings.ToUpper(detectedCurrency)
	switch {
	case strings.Contains(detected, "MXN") && display == models.DisplayUSD:
		return amount.Mul(rates.MXNToUSD)
	case strings.Contains(detected, "USD") && display == models.DisplayMXN:
		return amount.Mul(rates.USDToMXN)
	default:
		if !strings.Contains(detected, string(display)) && detected != "" {
			log.WithFields(logrus.Fields{
				"detected": detectedCurrency,
				"display":  display,
			}).Debug("No rate for currency pair, passing amount through 1:1")
		}
		return amount
	}
}
