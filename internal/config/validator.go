package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build reads
const ExpectedEnvSchemaVersion = "1.0"

// ErrEnvSchema is returned when ENV_SCHEMA_VERSION is absent or outdated
var ErrEnvSchema = errors.New("ENV_SCHEMA_VERSION")

// RequiredEnvVars lists the environment variables every deployment must set
var RequiredEnvVars = []string{"ENV_SCHEMA_VERSION", "LLM_API_KEY"}

// backendEnvVars are required only when a backend is selected
var backendEnvVars = []struct {
	selector string
	value    string
	vars     []string
}{
	{"STORAGE_BACKEND", StorageBackendPostgres, []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"}},
	{"PUBLISHER_BACKEND", PublisherBackendS3, []string{"S3_BUCKET", "S3_REGION"}},
}

// placeholders shipped in .env.example
var placeholderValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"LLM_API_KEY": "your_api_key_here",
}

// EnvReport is what CheckEnv found in an environment
type EnvReport struct {
	Missing  []string
	Warnings []string
}

// CheckEnv inspects the environment exposed by getenv. The error is reserved
// for a missing or mismatched schema version.
func CheckEnv(getenv func(string) string) (EnvReport, error) {
	var report EnvReport

	switch v := getenv("ENV_SCHEMA_VERSION"); v {
	case "":
		return report, fmt.Errorf("%w is not set, add it to your .env file (expected %s)", ErrEnvSchema, ExpectedEnvSchemaVersion)
	case ExpectedEnvSchemaVersion:
	default:
		return report, fmt.Errorf("%w mismatch: expected %s, got %s, your .env file may be outdated", ErrEnvSchema, ExpectedEnvSchemaVersion, v)
	}

	required := RequiredEnvVars
	for _, b := range backendEnvVars {
		if strings.EqualFold(getenv(b.selector), b.value) {
			required = append(required[:len(required):len(required)], b.vars...)
		}
	}
	for _, name := range required {
		if getenv(name) == "" {
			report.Missing = append(report.Missing, name)
		}
	}

	for _, name := range []string{"DB_PASSWORD", "LLM_API_KEY"} {
		if v := getenv(name); v != "" && v == placeholderValues[name] {
			report.Warnings = append(report.Warnings, name+" still holds the example value")
		}
	}
	if getenv("SYNC_SCHEDULE") == "" {
		report.Warnings = append(report.Warnings, "SYNC_SCHEDULE is empty, scheduled bulk sync is disabled")
	}
	return report, nil
}

// ValidateEnv checks the process environment, logging warnings and failing
// on missing variables
func ValidateEnv() error {
	report, err := CheckEnv(os.Getenv)
	if err != nil {
		return err
	}
	for _, w := range report.Warnings {
		slog.Warn("Environment check", "warning", w)
	}
	if len(report.Missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(report.Missing, ", "))
	}
	return nil
}
