package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/tradejournal/Trade-Journal-Backend/internal/brokerage"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Brokerage brokerage.Schedule
	Notes     NotesConfig
	Snapshot  SnapshotConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// NotesConfig holds at-rest encryption settings for trade notes.
// An empty key disables encryption.
type NotesConfig struct {
	EncryptionKey string
}

// SnapshotConfig holds the cron schedule for the monthly performance
// snapshot refresh.
type SnapshotConfig struct {
	RefreshSchedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	defaults := brokerage.DefaultSchedule()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/trade_journal.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Brokerage: brokerage.Schedule{
			FlatFeePerOrder:    getEnvFloat("BROKERAGE_FLAT_FEE_PER_ORDER", defaults.FlatFeePerOrder),
			IntradayEquityRate: getEnvFloat("TAX_RATE_INTRADAY_EQUITY", defaults.IntradayEquityRate),
			OptionsRate:        getEnvFloat("TAX_RATE_OPTIONS", defaults.OptionsRate),
			FuturesRate:        getEnvFloat("TAX_RATE_FUTURES", defaults.FuturesRate),
			ExchangeChargeRate: getEnvFloat("EXCHANGE_CHARGE_RATE", defaults.ExchangeChargeRate),
			ConsumptionTaxRate: getEnvFloat("CONSUMPTION_TAX_RATE", defaults.ConsumptionTaxRate),
		},
		Notes: NotesConfig{
			EncryptionKey: getEnv("NOTES_ENCRYPTION_KEY", ""),
		},
		Snapshot: SnapshotConfig{
			RefreshSchedule: getEnv("SNAPSHOT_REFRESH_SCHEDULE", "@daily"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a float environment variable or returns a default value.
// Unparseable values fall back to the default rather than failing startup.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
