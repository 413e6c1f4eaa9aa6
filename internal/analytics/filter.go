package analytics

import (
	"strings"
	"time"

	"foliolens/internal/dateutils"
	"foliolens/internal/models"
)

// FilterForTable returns the subsequence of rows shown in the transaction
// table. A row passes when the search term matches its clean name or
// original description case-insensitively, the category filter is the All
// sentinel or an exact match, and its date satisfies the table range
// predicate. Input order is preserved.
func FilterForTable(rows []Row, fs models.FilterState) []Row {
	search := strings.ToLower(fs.SearchTerm)
	bounds := parseBounds(fs.StartDate, fs.EndDate)

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if search != "" &&
			!strings.Contains(strings.ToLower(row.CleanName), search) &&
			!strings.Contains(strings.ToLower(row.OriginalDescription), search) {
			continue
		}
		if fs.Category != "" && fs.Category != models.CategoryAll && fs.Category != string(row.Category) {
			continue
		}
		if !tableDateInRange(row.Date, bounds) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FilterForCharts returns the subsequence feeding the chart aggregation.
// Only the date range applies here, never the search term or the category
// filter, so the distribution view stays stable while the user drills
// into table rows.
func FilterForCharts(rows []Row, startDate, endDate string) []Row {
	bounds := parseBounds(startDate, endDate)

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if !chartDateInRange(row.Date, bounds) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// dateBounds holds the parsed range. A bound counts as set as soon as its
// string is non-empty, even if it failed to parse; only a successfully
// parsed bound takes part in the comparison.
type dateBounds struct {
	anySet         bool
	start, end     time.Time
	startOK, endOK bool
}

func parseBounds(startDate, endDate string) dateBounds {
	var b dateBounds
	b.anySet = startDate != "" || endDate != ""
	if startDate != "" {
		b.start, b.startOK = dateutils.ParseInputDate(startDate)
	}
	if endDate != "" {
		b.end, b.endOK = dateutils.ParseInputDate(endDate)
	}
	return b
}

// tableDateInRange is the table path's date predicate: with no bound set
// every row passes; once either bound is set a row must carry a parseable
// date inside [start, end] inclusive, and unparseable dates are excluded
// (fail-closed).
func tableDateInRange(dateStr string, b dateBounds) bool {
	if !b.anySet {
		return true
	}
	d, ok := dateutils.ParseDisplayDate(dateStr)
	if !ok {
		return false
	}
	return withinBounds(d, b)
}

// chartDateInRange is the chart path's date predicate. It is deliberately
// kept as a second named predicate rather than folded into the table one:
// the chart view is default-open (an unparseable date is included when no
// range is requested at all) and fail-closed the moment either bound is
// set. Do not unify the two; the split mirrors the original behavior.
func chartDateInRange(dateStr string, b dateBounds) bool {
	if !b.anySet {
		return true
	}
	d, ok := dateutils.ParseDisplayDate(dateStr)
	if !ok {
		return false
	}
	return withinBounds(d, b)
}

func withinBounds(d time.Time, b dateBounds) bool {
	if b.startOK && d.Before(b.start) {
		return false
	}
	if b.endOK && d.After(b.end) {
		return false
	}
	return true
}
