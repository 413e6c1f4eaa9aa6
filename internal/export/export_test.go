package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foliolens/internal/analytics"
	"foliolens/internal/i18n"
	"foliolens/internal/models"
)

func sampleRows() []analytics.Row {
	return []analytics.Row{
		{
			Transaction: models.Transaction{
				Date:                "01/06/2025",
				OriginalDescription: `BAR "EL PATIO"`,
				CleanName:           `O"Brien's Bar`,
				Amount:              decimal.NewFromFloat(345.5),
				Category:            models.CategoryFoodBeverage,
			},
			Converted: decimal.NewFromFloat(20.04),
		},
		{
			Transaction: models.Transaction{
				Date:                "02/06/2025",
				OriginalDescription: "ROOM CHARGE",
				CleanName:           "Room",
				Amount:              decimal.NewFromInt(1200),
				Category:            models.CategoryRoom,
			},
			Converted: decimal.NewFromFloat(69.6),
		},
	}
}

func TestLocalizedStartsWithBOM(t *testing.T) {
	data := Localized(nil, "USD", i18n.ForLang(i18n.LangEN))
	assert.True(t, strings.HasPrefix(string(data), "\uFEFF"))
}

func TestLocalizedHeader(t *testing.T) {
	t.Run("English", func(t *testing.T) {
		data := Localized(nil, "USD", i18n.ForLang(i18n.LangEN))
		first := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")[0]
		assert.Equal(t, "Date,Merchant,Original Description,Category,Amount,Currency", first)
	})

	t.Run("Spanish", func(t *testing.T) {
		data := Localized(nil, "MXN", i18n.ForLang(i18n.LangES))
		first := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")[0]
		assert.Equal(t, "Fecha,Comercio,Descripción Original,Categoría,Monto,Currency", first)
	})
}

func TestLocalizedRows(t *testing.T) {
	data := Localized(sampleRows(), "USD", i18n.ForLang(i18n.LangEN))
	lines := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, `01/06/2025,"O""Brien's Bar","BAR ""EL PATIO""",Alimentos y Bebidas/Food & Beverage,20.04,USD`, lines[1])
	assert.Equal(t, `02/06/2025,"Room","ROOM CHARGE",Habitación/Room,69.60,USD`, lines[2])
}

// A standard CSV parser must reconstruct the quoted fields, embedded
// quotes included.
func TestLocalizedRoundTrip(t *testing.T) {
	data := Localized(sampleRows(), "USD", i18n.ForLang(i18n.LangEN))

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\uFEFF")))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, `O"Brien's Bar`, records[1][1])
	assert.Equal(t, `BAR "EL PATIO"`, records[1][2])
	assert.Equal(t, "20.04", records[1][4])
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name     string
		hotel    string
		expected string
	}{
		{"Simple name", "Hotel Playa Azul", "hotel_playa_azul_export.csv"},
		{"Accents and punctuation replaced", "Gran Hotel México, S.A.", "gran_hotel_m_xico_s_a_export.csv"},
		{"Empty name falls back", "", "folio_export.csv"},
		{"Only symbols falls back", "***", "folio_export.csv"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExportFileName(tc.hotel))
		})
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	txs := []models.Transaction{
		{Date: "01/06/2025", OriginalDescription: "ROOM CHARGE", CleanName: "Room", Amount: decimal.NewFromInt(1200), Currency: "MXN", Category: models.CategoryRoom},
		{Date: "02/06/2025", OriginalDescription: "IVA 16%", CleanName: "IVA", Amount: decimal.NewFromFloat(192.5), Currency: "MXN", Category: models.CategoryTaxes},
	}

	out, err := MarshalCanonical(txs)
	require.NoError(t, err)
	assert.Contains(t, out, "Date,Original Description,Merchant,Amount,Currency,Category")

	back, err := UnmarshalCanonical(out)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, txs[0].CleanName, back[0].CleanName)
	assert.True(t, back[1].Amount.Equal(txs[1].Amount))
	assert.Equal(t, models.CategoryTaxes, back[1].Category)
}

func TestWriteCanonical(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.csv")

	txs := []models.Transaction{
		{Date: "01/06/2025", OriginalDescription: "ROOM", CleanName: "Room", Amount: decimal.NewFromInt(100), Currency: "MXN", Category: models.CategoryRoom},
	}
	require.NoError(t, WriteCanonical(txs, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Room")

	assert.Error(t, WriteCanonical(nil, filepath.Join(dir, "nil.csv")))
}
