package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"foliolens/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// MarshalCanonical renders transactions as the canonical struct-tagged CSV
// (raw amounts in the detected currency, no localization).
func MarshalCanonical(txs []models.Transaction) (string, error) {
	out, err := gocsv.MarshalString(&txs)
	if err != nil {
		return "", fmt.Errorf("error marshalling transactions to CSV: %w", err)
	}
	return out, nil
}

// UnmarshalCanonical reads a canonical CSV back into transactions.
func UnmarshalCanonical(data string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := gocsv.UnmarshalString(data, &txs); err != nil {
		return nil, fmt.Errorf("error parsing canonical CSV: %w", err)
	}
	return txs, nil
}

// WriteCanonical writes the canonical CSV to a file, creating parent
// directories as needed.
func WriteCanonical(txs []models.Transaction, csvFile string) error {
	if txs == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(txs),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&txs, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote CSV file")
	return nil
}
