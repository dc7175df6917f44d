package domain

// Sentiment labels a judge may return.
const (
	LabelBullish = "Bullish"
	LabelBearish = "Bearish"
)

// Batch rules
const (
	BatchSize     = 4
	PassThreshold = 3
	// MaxBatchNumber caps batch numbers accepted from clients
	MaxBatchNumber = 10000
)

// Player rules
const (
	MaxHealth     = 3
	DefaultHearts = MaxHealth
)

// Session stages
const (
	StageSentiment = "sentiment"
	StageAdventure = "adventure"
)
