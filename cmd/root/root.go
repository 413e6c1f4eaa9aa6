// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"foliolens/internal/config"
	"foliolens/internal/currency"
	"foliolens/internal/export"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "foliolens",
		Short: "Analyze hotel folio statements into an expense dashboard.",
		Long: `foliolens sends a hotel folio statement (PDF) to the Gemini API for
structured extraction and turns the result into dashboard data: filtered
transaction tables, per-category chart aggregates and localized CSV exports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to foliolens!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			currency.SetLogger(Log)
			export.SetLogger(Log)
		},
	}

	// SharedFlags holds common flag values accessible to all commands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// LoadConfig initializes the Viper configuration, failing the command on
// invalid settings.
func LoadConfig() *config.Config {
	cfg, err := config.InitializeConfig()
	if err != nil {
		Log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

// Rates resolves the exchange rates for a command run: the YAML rates file
// when configured, otherwise the configured (or default) static values.
func Rates(cfg *config.Config) currency.Rates {
	if cfg.Rates.File != "" {
		rates, err := currency.LoadRatesFile(cfg.Rates.File)
		if err != nil {
			Log.WithError(err).Warn("Could not load rates file, using configured rates")
		} else {
			return rates
		}
	}
	return currency.FromFloats(cfg.Rates.MXNToUSD, cfg.Rates.USDToMXN)
}
