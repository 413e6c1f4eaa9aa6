package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"foliolens/internal/models"
)

// GeminiClient implements Client against the Google Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *logrus.Logger
}

// NewGeminiClient creates a Gemini-backed extraction client.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration, logger *logrus.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if logger == nil {
		logger = logrus.New()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
		log:     logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Analyze sends the folio PDF inline with the fixed prompt and the
// structured-output schema, then decodes and validates the response.
func (c *GeminiClient) Analyze(ctx context.Context, pdf []byte) (*models.AnalysisResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = analysisSchema()

	c.log.WithFields(logrus.Fields{
		"model":      c.model,
		"size_bytes": len(pdf),
	}).Info("Sending folio to extraction model")

	resp, err := m.GenerateContent(ctx,
		genai.Text(extractionPrompt),
		genai.Blob{MIMEType: "application/pdf", Data: pdf},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	result, err := decodeResult(raw)
	if err != nil {
		c.log.WithError(err).Error("Model response did not decode to an analysis result")
		return nil, err
	}

	if err := models.Validate(result); err != nil {
		return nil, fmt.Errorf("extraction result failed validation: %w", err)
	}

	CheckConsistency(result, c.log)

	c.log.WithFields(logrus.Fields{
		"hotel": result.HotelName,
		"count": len(result.Transactions),
	}).Info("Extraction completed")

	return result, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// decodeResult parses the model's JSON into an AnalysisResult. Despite the
// schema, models occasionally wrap output in Markdown fences, so those are
// stripped first.
func decodeResult(raw string) (*models.AnalysisResult, error) {
	clean := stripFences(raw)

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return nil, fmt.Errorf("could not parse model response as JSON: %w", err)
	}
	return &result, nil
}

// stripFences removes ```json ... ``` wrappers and keeps the outermost
// JSON object if stray text surrounds it.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
