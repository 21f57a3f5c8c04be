package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageJSON   = "json"
	StorageMemory = "memory"
)

// Log formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds application configuration.
type Config struct {
	BankName       string
	DataFile       string
	StorageBackend string
	AutoSave       bool
	LogLevel       slog.Level
	LogFormat      string
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"bank-name":  "BANK_NAME",
	"data-file":  "DATA_FILE",
	"storage":    "STORAGE_BACKEND",
	"auto-save":  "AUTO_SAVE",
	"log-level":  "LOG_LEVEL",
	"log-format": "LOG_FORMAT",
}

// LoadConfig loads configuration from command-line flags, environment variables
// and a .env file if present, in that order of precedence.
func LoadConfig(args []string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("BANK_NAME", "Go National Bank")
	v.SetDefault("DATA_FILE", "bank_data.json")
	v.SetDefault("STORAGE_BACKEND", StorageJSON)
	v.SetDefault("AUTO_SAVE", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", LogFormatJSON)
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("bank_cli", pflag.ContinueOnError)
	fs.String("bank-name", "", "display name used when no saved bank exists")
	fs.String("data-file", "", "path of the JSON snapshot file")
	fs.String("storage", "", "storage backend: json or memory")
	fs.Bool("auto-save", false, "save after every successful change")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.String("log-format", "", "json or text")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for flagName, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", flagName, err)
		}
	}

	cfg := &Config{}

	cfg.BankName = strings.TrimSpace(v.GetString("BANK_NAME"))
	if cfg.BankName == "" {
		cfg.BankName = "Go National Bank"
		log.Printf("Warning: BANK_NAME is empty. Defaulting to %s.\n", cfg.BankName)
	}

	cfg.DataFile = strings.TrimSpace(v.GetString("DATA_FILE"))
	if cfg.DataFile == "" {
		cfg.DataFile = "bank_data.json"
		log.Printf("Warning: DATA_FILE is empty. Defaulting to %s.\n", cfg.DataFile)
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND")))
	switch cfg.StorageBackend {
	case StorageJSON, StorageMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND '%s' (want %s or %s)", cfg.StorageBackend, StorageJSON, StorageMemory)
	}

	cfg.AutoSave = v.GetBool("AUTO_SAVE")

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if cfg.LogFormat != LogFormatJSON && cfg.LogFormat != LogFormatText {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to %s.\n", cfg.LogFormat, LogFormatJSON)
		cfg.LogFormat = LogFormatJSON
	}

	return cfg, nil
}
