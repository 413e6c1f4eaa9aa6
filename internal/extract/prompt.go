package extract

import (
	"github.com/google/generative-ai-go/genai"

	"foliolens/internal/models"
)

// extractionPrompt is the fixed instruction set sent with every folio.
// The structured-output schema does the heavy lifting; the prompt pins the
// conventions the schema cannot express.
const extractionPrompt = `You are an expert hotel folio auditor. Analyze the attached hotel folio statement (PDF) and extract every transaction line.

Rules:
- Extract ALL itemized charges and credits, in document order.
- "date" must use DD/MM/YYYY format.
- "originalDescription" is the line text exactly as printed.
- "cleanName" is a short normalized merchant/service label for the line.
- "amount" is a number, negative for credits and discounts.
- Assign each line one category from the allowed set; never invent labels.
- "totalAmount" is the total printed on the document, not your own sum.
- "detectedCurrency" is the currency code or symbol found in the document.`

// analysisSchema constrains the model response to the AnalysisResult
// shape, with the category field enumerated to the closed set.
func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"hotelName":          {Type: genai.TypeString},
			"hotelAddress":       {Type: genai.TypeString},
			"guestName":          {Type: genai.TypeString},
			"roomNumber":         {Type: genai.TypeString},
			"checkInDate":        {Type: genai.TypeString},
			"checkOutDate":       {Type: genai.TypeString},
			"confirmationNumber": {Type: genai.TypeString},
			"detectedCurrency":   {Type: genai.TypeString},
			"currencySymbol":     {Type: genai.TypeString},
			"totalAmount":        {Type: genai.TypeNumber},
			"transactions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date":                {Type: genai.TypeString, Description: "DD/MM/YYYY"},
						"originalDescription": {Type: genai.TypeString},
						"cleanName":           {Type: genai.TypeString},
						"amount":              {Type: genai.TypeNumber},
						"currency":            {Type: genai.TypeString},
						"category": {
							Type: genai.TypeString,
							Enum: models.CategoryValues(),
						},
					},
					Required: []string{"date", "originalDescription", "cleanName", "amount", "category"},
				},
			},
		},
		Required: []string{"hotelName", "detectedCurrency", "totalAmount", "transactions"},
	}
}
