// Package config loads CLI settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvCredentials   = "GSHEET_CREDENTIALS"
	EnvToken         = "GSHEET_TOKEN"
	EnvSpreadsheetID = "GSHEET_SPREADSHEET_ID"
	EnvBaseURL       = "GSHEET_API_BASE_URL"
	EnvTimeout       = "GSHEET_TIMEOUT"
	EnvScope         = "GSHEET_SCOPE"
	EnvConcurrency   = "GSHEET_MAX_CONCURRENCY"
)

// Config holds the settings the CLI needs to build a client.
type Config struct {
	// CredentialsFile is a service account key file.
	CredentialsFile string
	// Token is a pre-issued access token, used when CredentialsFile is empty.
	Token         string
	SpreadsheetID string
	BaseURL       string
	Scope         string
	Timeout       time.Duration
	// MaxConcurrency bounds parallel sheet reads.
	MaxConcurrency int
}

// Load reads .env files (a missing default file is ignored) and then the
// process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !(len(envFiles) == 0 && errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return &Config{
		CredentialsFile: getEnvOrDefault(EnvCredentials, ""),
		Token:           getEnvOrDefault(EnvToken, ""),
		SpreadsheetID:   getEnvOrDefault(EnvSpreadsheetID, ""),
		BaseURL:         getEnvOrDefault(EnvBaseURL, "https://sheets.googleapis.com/v4/spreadsheets"),
		Scope:           getEnvOrDefault(EnvScope, "https://www.googleapis.com/auth/spreadsheets"),
		Timeout:         getEnvDurationOrDefault(EnvTimeout, 30*time.Second),
		MaxConcurrency:  getEnvIntOrDefault(EnvConcurrency, 4),
	}, nil
}

// Validate checks that the configuration can produce a working client.
func (c *Config) Validate() error {
	if c.CredentialsFile == "" && c.Token == "" {
		return &ValidationError{Field: "CredentialsFile", Message: "either credentials or token is required"}
	}
	if c.SpreadsheetID == "" {
		return &ValidationError{Field: "SpreadsheetID", Message: "is required"}
	}
	if c.Timeout <= 0 {
		return &ValidationError{Field: "Timeout", Message: "must be positive"}
	}
	if c.MaxConcurrency <= 0 {
		return &ValidationError{Field: "MaxConcurrency", Message: "must be positive"}
	}
	return nil
}

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
