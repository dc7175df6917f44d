package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "VERSION", "DATA_DIR", "STORAGE_BACKEND",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"LLM_BASE_URL", "LLM_API_KEY", "LLM_MODEL", "LLM_MAX_TOKENS", "JUDGE_STRICT",
	"PUBLISHER_BACKEND", "WALRUS_PUBLISHER", "WALRUS_EPOCHS", "S3_BUCKET", "S3_REGION",
	"SYNC_SCHEDULE", "WORKER_COUNT", "WORKER_QUEUE_SIZE", "TWEETS_CACHE_TTL",
	"CORS_ALLOWED_ORIGINS", "TRUSTED_PROXIES", "HTTP_CLIENT_TIMEOUT", "ENV_SCHEMA_VERSION",
}

// clearEnvVars blanks every key Load reads; t.Setenv restores them afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "8080")
		t.Setenv("STORAGE_BACKEND", "file")
		t.Setenv("PUBLISHER_BACKEND", "walrus")
		t.Setenv("WALRUS_PUBLISHER", DefaultWalrusPublisher)
		t.Setenv("LLM_BASE_URL", DefaultLLMBaseURL)
		t.Setenv("LLM_MODEL", DefaultLLMModel)
		t.Setenv("DATA_DIR", DefaultDataDir)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, StorageBackendFile, cfg.StorageBackend)
		assert.Equal(t, PublisherBackendWalrus, cfg.PublisherBackend)
		assert.Equal(t, DefaultWalrusPublisher, cfg.WalrusPublisher)
		assert.Equal(t, DefaultLLMModel, cfg.LLMModel)
		assert.Equal(t, DefaultLLMMaxTokens, cfg.LLMMaxTokens)
		assert.Equal(t, DefaultWalrusEpochs, cfg.WalrusEpochs)
		assert.Equal(t, DefaultTweetsCacheTTL, cfg.TweetsCacheTTL)
		assert.Equal(t, DefaultHTTPClientTimeout, cfg.HTTPClientTimeout)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
		assert.False(t, cfg.JudgeStrict)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("STORAGE_BACKEND", "Postgres")
		t.Setenv("PUBLISHER_BACKEND", "s3")
		t.Setenv("S3_BUCKET", "wolf-states")
		t.Setenv("WALRUS_PUBLISHER", "https://publisher.example.com/")
		t.Setenv("JUDGE_STRICT", "true")
		t.Setenv("LLM_MAX_TOKENS", "512")
		t.Setenv("TWEETS_CACHE_TTL", "30s")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://wolf.example.com ,")
		t.Setenv("SYNC_SCHEDULE", "@every 10m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, StorageBackendPostgres, cfg.StorageBackend)
		assert.Equal(t, PublisherBackendS3, cfg.PublisherBackend)
		assert.Equal(t, "wolf-states", cfg.S3Bucket)
		assert.Equal(t, "https://publisher.example.com", cfg.WalrusPublisher)
		assert.True(t, cfg.JudgeStrict)
		assert.Equal(t, 512, cfg.LLMMaxTokens)
		assert.Equal(t, 30*time.Second, cfg.TweetsCacheTTL)
		assert.Equal(t, []string{"http://localhost:3000", "https://wolf.example.com"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, "@every 10m", cfg.SyncSchedule)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		tests := []struct {
			name    string
			env     map[string]string
			wantErr string
		}{
			{"bad port", map[string]string{"PORT": "eighty"}, "invalid PORT"},
			{"bad storage backend", map[string]string{"PORT": "1", "STORAGE_BACKEND": "redis", "PUBLISHER_BACKEND": "walrus"}, "invalid STORAGE_BACKEND"},
			{"bad publisher backend", map[string]string{"PORT": "1", "STORAGE_BACKEND": "file", "PUBLISHER_BACKEND": "ipfs"}, "invalid PUBLISHER_BACKEND"},
			{"s3 without bucket", map[string]string{"PORT": "1", "STORAGE_BACKEND": "file", "PUBLISHER_BACKEND": "s3"}, "S3_BUCKET"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clearEnvVars(t)
				for k, v := range tt.env {
					t.Setenv(k, v)
				}
				_, err := Load()
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "wolf"}
	assert.Equal(t, "postgres://u:p@h:5432/wolf?sslmode=disable", cfg.GetDBConnString())
}

func TestGetEnvHelpers(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
		t.Setenv("TEST_INT_VAR", "42.5")
		assert.Equal(t, 10, getEnvAsInt("TEST_INT_VAR", 10))
		t.Setenv("TEST_INT_VAR", "")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("bool", func(t *testing.T) {
		t.Setenv("TEST_BOOL_VAR", "1")
		assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false))
		t.Setenv("TEST_BOOL_VAR", "nope")
		assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true))
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "2h")
		assert.Equal(t, 2*time.Hour, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		t.Setenv("TEST_DURATION_VAR", "soon")
		assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
	})

	t.Run("list", func(t *testing.T) {
		t.Setenv("TEST_LIST_VAR", " a ,b,, c")
		assert.Equal(t, []string{"a", "b", "c"}, getEnvAsList("TEST_LIST_VAR", nil))
		t.Setenv("TEST_LIST_VAR", "  ")
		assert.Equal(t, []string{"x"}, getEnvAsList("TEST_LIST_VAR", []string{"x"}))
	})
}
