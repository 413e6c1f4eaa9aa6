// Package analyze implements the command that runs the AI extraction for
// one folio PDF.
package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"foliolens/cmd/root"
	"foliolens/internal/export"
	"foliolens/internal/extract"
	"foliolens/internal/validation"
)

var canonicalCSV string

// Cmd represents the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract transactions from a folio PDF",
	Long: `Send a hotel folio statement (PDF) to the extraction model and write
the validated analysis result as JSON. Use --csv to additionally dump the
raw transactions as a canonical CSV.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVar(&canonicalCSV, "csv", "", "Also write transactions to this canonical CSV file")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input PDF is required (-i)")
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}
	if err := validation.ValidatePDF("", data); err != nil {
		root.Log.Fatalf("Invalid input: %v", err)
	}

	cfg := root.LoadConfig()
	ctx := context.Background()

	client, err := extract.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second, root.Log)
	if err != nil {
		root.Log.Fatalf("Error creating extraction client: %v", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close extraction client")
		}
	}()

	result, err := client.Analyze(ctx, data)
	if err != nil {
		root.Log.Fatalf("Extraction failed: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		root.Log.Fatalf("Error encoding analysis result: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Println(string(out))
	} else {
		if err := os.WriteFile(root.SharedFlags.Output, out, 0600); err != nil {
			root.Log.Fatalf("Error writing analysis result: %v", err)
		}
		root.Log.WithField("output_file", root.SharedFlags.Output).Info("Wrote analysis result")
	}

	if canonicalCSV != "" {
		if err := export.WriteCanonical(result.Transactions, canonicalCSV); err != nil {
			root.Log.Fatalf("Error writing canonical CSV: %v", err)
		}
	}
}
