package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"foliolens/internal/models"
)

// CategoryTotal is one chart bucket: a category and the sum of absolute
// converted amounts booked against it.
type CategoryTotal struct {
	Category models.Category
	Total    decimal.Decimal
}

// AggregateByCategory reduces rows into per-category buckets of
// abs(converted amount), in first-encounter order. Buckets that net to
// exactly zero are omitted: a category with no rows, or with exactly
// offsetting entries, does not appear in the chart.
func AggregateByCategory(rows []Row) []CategoryTotal {
	totals := make(map[models.Category]decimal.Decimal)
	var order []models.Category

	for _, row := range rows {
		if _, seen := totals[row.Category]; !seen {
			order = append(order, row.Category)
		}
		totals[row.Category] = totals[row.Category].Add(row.Converted.Abs())
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		if totals[cat].IsZero() {
			continue
		}
		out = append(out, CategoryTotal{Category: cat, Total: totals[cat]})
	}
	return out
}

// TopN returns at most n buckets ranked descending by total. The sort is
// stable, so ties keep first-encounter order. Ranking is by magnitude
// only; a large discount outranks a smaller charge.
func TopN(totals []CategoryTotal, n int) []CategoryTotal {
	ranked := make([]CategoryTotal, len(totals))
	copy(ranked, totals)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
