package currency

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ratesFile is the on-disk YAML shape of a rates override file.
type ratesFile struct {
	MXNToUSD float64 `yaml:"mxn_to_usd"`
	USDToMXN float64 `yaml:"usd_to_mxn"`
}

// LoadRatesFile reads exchange-rate overrides from a YAML file.
// Zero or missing values fall back to the built-in defaults, so a file may
// override just one direction.
func LoadRatesFile(path string) (Rates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rates{}, fmt.Errorf("could not read rates file: %w", err)
	}

	var rf ratesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return Rates{}, fmt.Errorf("could not parse rates file %s: %w", path, err)
	}

	rates := DefaultRates()
	if rf.MXNToUSD > 0 {
		rates.MXNToUSD = decimal.NewFromFloat(rf.MXNToUSD)
	}
	if rf.USDToMXN > 0 {
		rates.USDToMXN = decimal.NewFromFloat(rf.USDToMXN)
	}

	log.WithField("file", path).Info("Loaded exchange rates")
	return rates, nil
}

// FromFloats builds Rates from configuration values, substituting the
// defaults for non-positive entries.
func FromFloats(mxnToUSD, usdToMXN float64) Rates {
	rates := DefaultRates()
	if mxnToUSD > 0 {
		rates.MXNToUSD = decimal.NewFromFloat(mxnToUSD)
	}
	if usdToMXN > 0 {
		rates.USDToMXN = decimal.NewFromFloat(usdToMXN)
	}
	return rates
}
