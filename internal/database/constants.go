package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1
	// DefaultMaxConnIdleTime closes connections idle for longer than this
	DefaultMaxConnIdleTime = 5 * time.Minute
	// PingTimeout bounds the startup connectivity check
	PingTimeout = 5 * time.Second
)

// Migrations
const (
	MigrationsDir   = "migrations"
	MigrationsTable = "goose_db_version"
	GooseDialect    = "postgres"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
