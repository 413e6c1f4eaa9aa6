// Package extract is the boundary to the hosted multimodal model that
// turns a folio PDF into a structured AnalysisResult. Everything the model
// returns is re-validated locally; the document-reported total is trusted
// over the transaction sum.
package extract

import (
	"context"
	"errors"

	"foliolens/internal/models"
)

var (
	// ErrExtractionFailed wraps every transport or model failure; callers
	// show one generic message and keep the detail in the logs.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrEmptyResponse signals that the model returned no usable text. It
	// is treated as a hard failure, equivalent to a transport error.
	ErrEmptyResponse = errors.New("extraction returned no usable text")
)

// Client extracts an analysis result from raw PDF bytes. The Gemini
// implementation lives in this package; tests substitute their own.
type Client interface {
	Analyze(ctx context.Context, pdf []byte) (*models.AnalysisResult, error)
}
