// Package dateutils provides the two date parsers used by the dashboard
// filters: the display format the extraction service reports transaction
// dates in, and the input format of the date-range pickers.
package dateutils

import (
	"strconv"
	"strings"
	"time"
)

// Layout descriptions, for messages and docs. Parsing does not go through
// time.Parse: the original behavior is split-on-separator with calendar
// normalization (31/02/2025 rolls over to March), which time.Parse rejects.
const (
	DisplayLayout = "DD/MM/YYYY"
	InputLayout   = "YYYY-MM-DD"
)

// ParseDisplayDate parses a transaction date in DD/MM/YYYY format.
// It returns ok=false on anything that does not split into exactly three
// numeric components; it never panics. Callers decide how a failed parse
// interacts with range filtering (see the analytics package).
func ParseDisplayDate(s string) (time.Time, bool) {
	day, month, year, ok := splitNumeric(s, "/")
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ParseInputDate parses a date-range bound in YYYY-MM-DD format, with the
// same null-safety contract as ParseDisplayDate.
func ParseInputDate(s string) (time.Time, bool) {
	year, month, day, ok := splitNumeric(s, "-")
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// splitNumeric splits s on sep and requires exactly three integer parts.
func splitNumeric(s, sep string) (int, int, int, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}
