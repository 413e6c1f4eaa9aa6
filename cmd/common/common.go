// Package common contains shared functionality for command handlers.
package common

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foliolens/internal/i18n"
	"foliolens/internal/models"
)

// FilterFlags holds the filter and rendering options shared by the export
// and report commands.
type FilterFlags struct {
	Search   string
	Category string
	From     string
	To       string
	Currency string
	Lang     string
}

// Register adds the shared filter flags to a command.
func (f *FilterFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Search, "search", "", "Free-text search over merchant and description")
	cmd.Flags().StringVar(&f.Category, "category", models.CategoryAll, "Category filter (exact value or All)")
	cmd.Flags().StringVar(&f.From, "from", "", "Start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.To, "to", "", "End date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.Currency, "currency", "", "Display currency (MXN or USD)")
	cmd.Flags().StringVar(&f.Lang, "lang", "", "Label language (es or en)")
}

// FilterState converts the flags into the filter state for the table path.
func (f *FilterFlags) FilterState() models.FilterState {
	return models.FilterState{
		SearchTerm: f.Search,
		Category:   f.Category,
		StartDate:  f.From,
		EndDate:    f.To,
	}
}

// Display resolves the display currency flag, falling back to the
// configured default.
func (f *FilterFlags) Display(defaultCurrency string) (models.DisplayCurrency, error) {
	s := f.Currency
	if s == "" {
		s = defaultCurrency
	}
	return models.ParseDisplayCurrency(s)
}

// Labels resolves the label set, falling back to the configured default
// language.
func (f *FilterFlags) Labels(defaultLang string) i18n.Labels {
	s := f.Lang
	if s == "" {
		s = defaultLang
	}
	return i18n.ForLang(i18n.ParseLang(s))
}

// LoadResult reads a previously written analysis result from a JSON file.
func LoadResult(path string) (*models.AnalysisResult, error) {
	if path == "" {
		return nil, fmt.Errorf("an analysis result file is required (-i)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading analysis result: %w", err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("error parsing analysis result: %w", err)
	}
	if err := models.Validate(&result); err != nil {
		return nil, fmt.Errorf("analysis result is not usable: %w", err)
	}
	return &result, nil
}
