package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"foliolens/internal/currency"
	"foliolens/internal/models"
)

func testRows() []Row {
	txs := []models.Transaction{
		{Date: "01/06/2025", OriginalDescription: "ROOM CHARGE NIGHT 1", CleanName: "Room", Amount: decimal.NewFromInt(1200), Category: models.CategoryRoom},
		{Date: "02/06/2025", OriginalDescription: "RESTAURANTE LA PALAPA", CleanName: "La Palapa", Amount: decimal.NewFromInt(450), Category: models.CategoryFoodBeverage},
		{Date: "03/06/2025", OriginalDescription: "IVA 16%", CleanName: "IVA", Amount: decimal.NewFromInt(264), Category: models.CategoryTaxes},
		{Date: "not-a-date", OriginalDescription: "LATE ADJUSTMENT", CleanName: "Adjustment", Amount: decimal.NewFromInt(10), Category: models.CategoryOther},
		{Date: "05/06/2025", OriginalDescription: "PROMO DESCUENTO", CleanName: "Descuento", Amount: decimal.NewFromInt(-100), Category: models.CategoryDiscounts},
	}
	rows := make([]Row, len(txs))
	for i, tx := range txs {
		rows[i] = Row{Transaction: tx, Converted: tx.Amount}
	}
	return rows
}

func names(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.CleanName
	}
	return out
}

func TestFilterForTableSearch(t *testing.T) {
	rows := testRows()

	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{"Empty search matches all", "", []string{"Room", "La Palapa", "IVA", "Adjustment", "Descuento"}},
		{"Case-insensitive clean name", "palapa", []string{"La Palapa"}},
		{"Matches original description too", "room charge", []string{"Room"}},
		{"No match", "spa", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterForTable(rows, models.FilterState{SearchTerm: tc.search})
			if tc.expected == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.expected, names(got))
			}
		})
	}
}

func TestFilterForTableCategory(t *testing.T) {
	rows := testRows()

	tests := []struct {
		name     string
		category string
		expected []string
	}{
		{"All sentinel", models.CategoryAll, []string{"Room", "La Palapa", "IVA", "Adjustment", "Descuento"}},
		{"Empty behaves like All", "", []string{"Room", "La Palapa", "IVA", "Adjustment", "Descuento"}},
		{"Exact category", string(models.CategoryTaxes), []string{"IVA"}},
		{"Localized half does not match", "Taxes", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterForTable(rows, models.FilterState{Category: tc.category})
			if tc.expected == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.expected, names(got))
			}
		})
	}
}

func TestFilterForTableDateRange(t *testing.T) {
	rows := testRows()

	tests := []struct {
		name     string
		from, to string
		expected []string
	}{
		{"No bounds includes unparseable", "", "", []string{"Room", "La Palapa", "IVA", "Adjustment", "Descuento"}},
		{"Inclusive bounds", "2025-06-02", "2025-06-03", []string{"La Palapa", "IVA"}},
		{"Start only excludes unparseable", "2025-06-03", "", []string{"IVA", "Descuento"}},
		{"End only excludes unparseable", "", "2025-06-01", []string{"Room"}},
		{"Range excludes everything outside", "2025-06-06", "2025-06-30", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterForTable(rows, models.FilterState{StartDate: tc.from, EndDate: tc.to})
			if tc.expected == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.expected, names(got))
			}
		})
	}
}

func TestFilterForTableCombined(t *testing.T) {
	rows := testRows()
	got := FilterForTable(rows, models.FilterState{
		SearchTerm: "a",
		Category:   string(models.CategoryFoodBeverage),
		StartDate:  "2025-06-01",
		EndDate:    "2025-06-30",
	})
	assert.Equal(t, []string{"La Palapa"}, names(got))
}

func TestFilterForChartsIgnoresSearchAndCategory(t *testing.T) {
	// The chart subset depends on the date range only; there is no way to
	// pass search or category here at all, which is the point.
	rows := testRows()
	got := FilterForCharts(rows, "", "")
	assert.Equal(t, names(rows), names(got))
}

func TestFilterForChartsDateRange(t *testing.T) {
	rows := testRows()

	tests := []struct {
		name     string
		from, to string
		expected []string
	}{
		{"Default-open includes unparseable date", "", "", []string{"Room", "La Palapa", "IVA", "Adjustment", "Descuento"}},
		{"Any bound fails closed on unparseable date", "2025-06-01", "", []string{"Room", "La Palapa", "IVA", "Descuento"}},
		{"End bound alone also fails closed", "", "2025-06-30", []string{"Room", "La Palapa", "IVA", "Descuento"}},
		{"Both bounds", "2025-06-02", "2025-06-05", []string{"La Palapa", "IVA", "Descuento"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterForCharts(rows, tc.from, tc.to)
			assert.Equal(t, tc.expected, names(got))
		})
	}
}

func TestFiltersPreserveOrderAndInput(t *testing.T) {
	rows := testRows()
	before := names(rows)

	_ = FilterForTable(rows, models.FilterState{SearchTerm: "a", StartDate: "2025-06-01"})
	_ = FilterForCharts(rows, "2025-06-01", "2025-06-30")

	// Inputs are never mutated or reordered.
	assert.Equal(t, before, names(rows))
}

func TestConvertAll(t *testing.T) {
	result := &models.AnalysisResult{
		DetectedCurrency: "MXN",
		TotalAmount:      decimal.NewFromInt(1000),
		Transactions: []models.Transaction{
			{Date: "01/06/2025", CleanName: "Room", Amount: decimal.NewFromInt(1000), Category: models.CategoryRoom},
			{Date: "02/06/2025", CleanName: "Descuento", Amount: decimal.NewFromInt(-100), Category: models.CategoryDiscounts},
		},
	}
	rates := currency.Rates{
		MXNToUSD: decimal.NewFromFloat(0.058),
		USDToMXN: decimal.NewFromFloat(17.2414),
	}

	rows := ConvertAll(result, models.DisplayUSD, rates)
	assert.Len(t, rows, 2)
	assert.True(t, rows[0].Converted.Equal(decimal.NewFromFloat(58.0)),
		"got %s", rows[0].Converted)
	assert.True(t, rows[1].Converted.Equal(decimal.NewFromFloat(-5.8)),
		"got %s", rows[1].Converted)
	// Original amounts untouched.
	assert.True(t, result.Transactions[0].Amount.Equal(decimal.NewFromInt(1000)))

	total := ConvertTotal(result, models.DisplayUSD, rates)
	assert.True(t, total.Equal(decimal.NewFromFloat(58.0)))
}
