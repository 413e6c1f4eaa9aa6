package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Rates struct {
		MXNToUSD float64 `mapstructure:"mxn_to_usd" yaml:"mxn_to_usd"`
		USDToMXN float64 `mapstructure:"usd_to_mxn" yaml:"usd_to_mxn"`
		File     string  `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rates" yaml:"rates"`

	Server struct {
		Addr            string `mapstructure:"addr" yaml:"addr"`
		MaxUploadMB     int64  `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
		CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes" yaml:"cache_ttl_minutes"`
	} `mapstructure:"server" yaml:"server"`

	Defaults struct {
		Language string `mapstructure:"language" yaml:"language"`
		Currency string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"defaults" yaml:"defaults"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional YAML file, then environment
// variables with the FOLIOLENS prefix.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.foliolens")
	v.AddConfigPath(".foliolens")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FOLIOLENS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log but don't fail; defaults and env vars still apply.
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// The API key is always taken from the conventional unprefixed variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		Logger.Warnf("Failed to bind GEMINI_API_KEY environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 120)

	v.SetDefault("rates.mxn_to_usd", 0.058)
	v.SetDefault("rates.usd_to_mxn", 0.0) // 0 = reciprocal of mxn_to_usd
	v.SetDefault("rates.file", "")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_upload_mb", 10)
	v.SetDefault("server.cache_ttl_minutes", 60)

	v.SetDefault("defaults.language", "es")
	v.SetDefault("defaults.currency", "MXN")
}

func validateConfig(config *Config) error {
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLevels[strings.ToLower(config.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.AI.Model == "" {
		return fmt.Errorf("ai.model must not be empty")
	}
	if config.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai.timeout_seconds must be positive, got %d", config.AI.TimeoutSeconds)
	}

	if config.Rates.MXNToUSD < 0 || config.Rates.USDToMXN < 0 {
		return fmt.Errorf("exchange rates must not be negative")
	}

	if config.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive, got %d", config.Server.MaxUploadMB)
	}

	return nil
}
