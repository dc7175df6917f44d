package config

import "time"

// Storage backends
const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
)

// Publisher backends
const (
	PublisherBackendWalrus = "walrus"
	PublisherBackendS3     = "s3"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultDataDir           = "data"
	DefaultLLMBaseURL        = "https://api.atoma.network/v1/"
	DefaultLLMModel          = "deepseek-ai/DeepSeek-R1"
	DefaultLLMMaxTokens      = 2048
	DefaultWalrusPublisher   = "https://publisher.walrus-testnet.walrus.space"
	DefaultWalrusEpochs      = 1
	DefaultWorkerCount       = 2
	DefaultWorkerQueueSize   = 64
	DefaultTweetsCacheTTL    = 5 * time.Minute
	DefaultHTTPClientTimeout = 60 * time.Second
	DefaultDBMaxConns        = 10
	DefaultDBMinConns        = 1
	DefaultDBMaxConnLifetime = time.Hour
)
