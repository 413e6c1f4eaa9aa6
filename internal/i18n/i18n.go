// Package i18n holds the static Spanish/English label sets. Switching
// language only re-labels already-fetched values; it never triggers a new
// extraction.
package i18n

import (
	"strings"

	"foliolens/internal/models"
)

// Lang selects one of the two supported label sets.
type Lang string

const (
	LangES Lang = "es"
	LangEN Lang = "en"
)

// ParseLang normalizes a user-supplied language code. Spanish is the
// default, matching the original UI.
func ParseLang(s string) Lang {
	if strings.EqualFold(strings.TrimSpace(s), string(LangEN)) {
		return LangEN
	}
	return LangES
}

// Labels is one complete label set.
type Labels struct {
	Title          string `json:"title"`
	UploadPrompt   string `json:"uploadPrompt"`
	Analyzing      string `json:"analyzing"`
	ErrGeneric     string `json:"errGeneric"`
	ErrNotPDF      string `json:"errNotPDF"`
	ErrNotFound    string `json:"errNotFound"`
	Total          string `json:"total"`
	ColDate        string `json:"colDate"`
	ColMerchant    string `json:"colMerchant"`
	ColDescription string `json:"colDescription"`
	ColCategory    string `json:"colCategory"`
	ColAmount      string `json:"colAmount"`
}

var labels = map[Lang]Labels{
	LangES: {
		Title:          "Análisis de Estado de Cuenta",
		UploadPrompt:   "Sube tu estado de cuenta del hotel (PDF, máx. 10MB)",
		Analyzing:      "Analizando documento...",
		ErrGeneric:     "Hubo un error al analizar el documento. Inténtalo de nuevo.",
		ErrNotPDF:      "Solo se aceptan archivos PDF.",
		ErrNotFound:    "No se encontró el análisis solicitado.",
		Total:          "Total",
		ColDate:        "Fecha",
		ColMerchant:    "Comercio",
		ColDescription: "Descripción Original",
		ColCategory:    "Categoría",
		ColAmount:      "Monto",
	},
	LangEN: {
		Title:          "Folio Statement Analysis",
		UploadPrompt:   "Upload your hotel folio statement (PDF, max 10MB)",
		Analyzing:      "Analyzing document...",
		ErrGeneric:     "There was an error analyzing the document. Please try again.",
		ErrNotPDF:      "Only PDF files are accepted.",
		ErrNotFound:    "The requested analysis was not found.",
		Total:          "Total",
		ColDate:        "Date",
		ColMerchant:    "Merchant",
		ColDescription: "Original Description",
		ColCategory:    "Category",
		ColAmount:      "Amount",
	},
}

// ForLang returns the label set for a language.
func ForLang(l Lang) Labels {
	if set, ok := labels[l]; ok {
		return set
	}
	return labels[LangES]
}

// CategoryLabel returns the localized half of a category's compound label,
// via the category lookup table rather than splitting the value on "/".
func CategoryLabel(c models.Category, l Lang) string {
	info := models.LookupCategory(c)
	if l == LangEN {
		return info.LabelEN
	}
	return info.LabelES
}
