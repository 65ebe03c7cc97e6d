package common

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	Pipeline PipelineConfig
	Log      LogConfig
}

// PipelineConfig holds parsing and validation thresholds.
type PipelineConfig struct {
	// TotalTolerance is the accepted absolute gap between the item sum and
	// the declared total (inclusive boundary).
	TotalTolerance decimal.Decimal
	// MaxPlausibleTotal is the warn-above ceiling for the grand total.
	MaxPlausibleTotal decimal.Decimal
	// MaxTextLen caps the sanitized OCR text length in runes.
	MaxTextLen int
	// WarningPenalty is subtracted from the confidence base per warning.
	WarningPenalty float64
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			TotalTolerance:    getEnvAsDecimal("FISPARSE_TOTAL_TOLERANCE", "0.50"),
			MaxPlausibleTotal: getEnvAsDecimal("FISPARSE_MAX_TOTAL", "10000"),
			MaxTextLen:        getEnvAsInt("FISPARSE_MAX_TEXT_LEN", 20000),
			WarningPenalty:    getEnvAsFloat64("FISPARSE_WARNING_PENALTY", 0.1),
		},
		Log: LogConfig{
			Level: getEnv("FISPARSE_LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(defaultValue)
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Pipeline.TotalTolerance.IsNegative() {
		return NewAppError("CONFIG_ERROR", "FISPARSE_TOTAL_TOLERANCE must not be negative", ErrInvalidInput)
	}
	if !c.Pipeline.MaxPlausibleTotal.IsPositive() {
		return NewAppError("CONFIG_ERROR", "FISPARSE_MAX_TOTAL must be positive", ErrInvalidInput)
	}
	if c.Pipeline.MaxTextLen <= 0 {
		return NewAppError("CONFIG_ERROR", "FISPARSE_MAX_TEXT_LEN must be positive", ErrInvalidInput)
	}
	if c.Pipeline.WarningPenalty < 0 || c.Pipeline.WarningPenalty > 1 {
		return NewAppError("CONFIG_ERROR", "FISPARSE_WARNING_PENALTY must be in [0,1]", ErrInvalidInput)
	}
	return nil
}
