// Package report implements the command that prints the chart-side view of
// an analysis: per-category totals and the top-N ranking.
package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"foliolens/cmd/common"
	"foliolens/cmd/root"
	"foliolens/internal/analytics"
	"foliolens/internal/i18n"
)

var (
	flags common.FilterFlags
	topN  int
)

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Print per-category totals for an analysis result",
	Long: `Aggregate an analysis result into per-category totals the way the
dashboard charts do: only the date range applies, search and category
filters never distort the distribution view.`,
	Run: reportFunc,
}

func init() {
	flags.Register(Cmd)
	Cmd.Flags().IntVar(&topN, "top", 5, "Number of entries in the ranking")
}

func reportFunc(cmd *cobra.Command, args []string) {
	result, err := common.LoadResult(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	cfg := root.LoadConfig()
	display, err := flags.Display(cfg.Defaults.Currency)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	lang := i18n.ParseLang(flags.Lang)
	if flags.Lang == "" {
		lang = i18n.ParseLang(cfg.Defaults.Language)
	}
	labels := i18n.ForLang(lang)

	rates := root.Rates(cfg)
	rows := analytics.ConvertAll(result, display, rates)
	chartRows := analytics.FilterForCharts(rows, flags.From, flags.To)
	buckets := analytics.AggregateByCategory(chartRows)
	ranked := analytics.TopN(buckets, topN)

	fmt.Printf("%s: %s\n", labels.Title, result.HotelName)
	fmt.Printf("%s: %s %s\n\n", labels.Total,
		analytics.ConvertTotal(result, display, rates).StringFixed(2), display)

	fmt.Printf("%-40s %15s\n", labels.ColCategory, labels.ColAmount)
	for _, b := range buckets {
		fmt.Printf("%-40s %15s\n", i18n.CategoryLabel(b.Category, lang), b.Total.StringFixed(2))
	}

	fmt.Printf("\nTop %d\n", topN)
	for i, b := range ranked {
		fmt.Printf("%2d. %-36s %15s\n", i+1, i18n.CategoryLabel(b.Category, lang), b.Total.StringFixed(2))
	}
}
