package root_test

import (
	"testing"

	"foliolens/cmd/root"
	"foliolens/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "foliolens", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "hotel folio")
	assert.Contains(t, root.Cmd.Long, "Gemini")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	require.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)
	assert.Equal(t, "", inputFlag.DefValue)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
}

func TestRates_ConfiguredValues(t *testing.T) {
	cfg := &config.Config{}
	cfg.Rates.MXNToUSD = 0.05
	cfg.Rates.USDToMXN = 20

	rates := root.Rates(cfg)
	assert.True(t, rates.MXNToUSD.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, rates.USDToMXN.Equal(decimal.NewFromInt(20)))
}

func TestRates_ReciprocalWhenUnset(t *testing.T) {
	cfg := &config.Config{}
	cfg.Rates.MXNToUSD = 0.058

	rates := root.Rates(cfg)
	// USD to MXN falls back to the reciprocal of MXN to USD.
	product := rates.MXNToUSD.Mul(rates.USDToMXN)
	assert.True(t, product.Sub(decimal.NewFromInt(1)).Abs().LessThan(decimal.NewFromFloat(0.0001)))
}

func TestRates_FileOverride(t *testing.T) {
	cfg := &config.Config{}
	cfg.Rates.File = "/nonexistent/rates.yaml"
	cfg.Rates.MXNToUSD = 0.05
	cfg.Rates.USDToMXN = 20

	// A missing rates file falls back to the configured values.
	rates := root.Rates(cfg)
	assert.True(t, rates.MXNToUSD.Equal(decimal.NewFromFloat(0.05)))
}
