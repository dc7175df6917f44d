package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	DataDir        string
	StorageBackend string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMinConns        int
	DBMaxConnLifetime time.Duration

	LLMBaseURL   string
	LLMAPIKey    string
	LLMModel     string
	LLMMaxTokens int
	JudgeStrict  bool

	PublisherBackend  string
	WalrusPublisher   string
	WalrusEpochs      int
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3Prefix          string
	S3AccessKeyID     string
	S3SecretAccessKey string

	SyncSchedule      string
	WorkerCount       int
	WorkerQueueSize   int
	TweetsCacheTTL    time.Duration
	HTTPClientTimeout time.Duration

	CORSAllowedOrigins []string
	TrustedProxies     []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),

		DataDir:        getEnv("DATA_DIR", DefaultDataDir),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendFile)),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "wolfjourney"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMinConns:        getEnvAsInt("DB_MIN_CONNS", DefaultDBMinConns),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		LLMBaseURL:   getEnv("LLM_BASE_URL", DefaultLLMBaseURL),
		LLMAPIKey:    getEnv("LLM_API_KEY", ""),
		LLMModel:     getEnv("LLM_MODEL", DefaultLLMModel),
		LLMMaxTokens: getEnvAsInt("LLM_MAX_TOKENS", DefaultLLMMaxTokens),
		JudgeStrict:  getEnvAsBool("JUDGE_STRICT", false),

		PublisherBackend:  strings.ToLower(getEnv("PUBLISHER_BACKEND", PublisherBackendWalrus)),
		WalrusPublisher:   strings.TrimRight(getEnv("WALRUS_PUBLISHER", DefaultWalrusPublisher), "/"),
		WalrusEpochs:      getEnvAsInt("WALRUS_EPOCHS", DefaultWalrusEpochs),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3Prefix:          getEnv("S3_PREFIX", "game-states/"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),

		SyncSchedule:      getEnv("SYNC_SCHEDULE", ""),
		WorkerCount:       getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:   getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		TweetsCacheTTL:    getEnvAsDuration("TWEETS_CACHE_TTL", DefaultTweetsCacheTTL),
		HTTPClientTimeout: getEnvAsDuration("HTTP_CLIENT_TIMEOUT", DefaultHTTPClientTimeout),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES", nil),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	switch cfg.StorageBackend {
	case StorageBackendFile, StorageBackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %s or %s", cfg.StorageBackend, StorageBackendFile, StorageBackendPostgres)
	}

	switch cfg.PublisherBackend {
	case PublisherBackendWalrus:
	case PublisherBackendS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET must be set when PUBLISHER_BACKEND=%s", PublisherBackendS3)
		}
	default:
		return nil, fmt.Errorf("invalid PUBLISHER_BACKEND %q: must be %s or %s", cfg.PublisherBackend, PublisherBackendWalrus, PublisherBackendS3)
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WORKER_COUNT must be at least 1, got %d", cfg.WorkerCount)
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default for unset or unparsable values
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key string, defaultValue []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
