// Package export produces the two CSV renditions of an analysis: the
// localized spreadsheet export the dashboard offers for download, and a
// canonical struct-tagged CSV for machine use.
package export

import (
	"regexp"
	"strings"

	"foliolens/internal/analytics"
	"foliolens/internal/i18n"
)

// utf8BOM makes spreadsheet tools detect the encoding correctly.
const utf8BOM = "\uFEFF"

// Localized serializes the currently filtered table rows as the
// user-facing CSV. The two free-text fields (merchant and original
// description) are quote-wrapped with internal quotes doubled; date,
// category, amount and currency are emitted bare because they cannot
// contain commas by construction. Amounts are the converted values at
// exactly two decimals.
func Localized(rows []analytics.Row, currencyCode string, labels i18n.Labels) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)

	header := []string{
		labels.ColDate,
		labels.ColMerchant,
		labels.ColDescription,
		labels.ColCategory,
		labels.ColAmount,
		"Currency",
	}
	b.WriteString(strings.Join(header, ","))

	for _, row := range rows {
		fields := []string{
			row.Date,
			quote(row.CleanName),
			quote(row.OriginalDescription),
			string(row.Category),
			row.Converted.StringFixed(2),
			currencyCode,
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(fields, ","))
	}

	return []byte(b.String())
}

// quote wraps a free-text field in double quotes, doubling internal quotes
// so a standard CSV parser reconstructs the original string.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// ExportFileName derives the download filename from the hotel name:
// lowercased, non-alphanumeric runs replaced, suffixed "_export.csv".
func ExportFileName(hotelName string) string {
	name := nonAlnum.ReplaceAllString(strings.ToLower(hotelName), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "folio"
	}
	return name + "_export.csv"
}
