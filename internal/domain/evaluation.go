package domain

import "time"

// AnswerBatch is the raw set of answers a player submitted for one batch.
type AnswerBatch struct {
	BatchNumber int       `json:"batchNumber"`
	StartIndex  int       `json:"startIndex"`
	EndIndex    int       `json:"endIndex"`
	Answers     []string  `json:"answers"`
	Timestamp   time.Time `json:"timestamp"`
}

// TweetResult is the judged outcome of a single answer.
type TweetResult struct {
	Tweet      string `json:"tweet"`
	UserAnswer string `json:"userAnswer"`
	LLMAnswer  string `json:"llmAnswer"`
	Correct    int    `json:"correct"`
}

// Evaluation is the scored result of one batch.
type Evaluation struct {
	BatchNumber  int           `json:"batchNumber"`
	Results      []TweetResult `json:"results"`
	TotalCorrect int           `json:"totalCorrect"`
	Passed       bool          `json:"passed"`
	Timestamp    time.Time     `json:"timestamp"`
}

// NewEvaluation scores results and derives the pass flag.
func NewEvaluation(batchNumber int, results []TweetResult) *Evaluation {
	total := 0
	for _, r := range results {
		total += r.Correct
	}
	return &Evaluation{
		BatchNumber:  batchNumber,
		Results:      results,
		TotalCorrect: total,
		Passed:       total >= PassThreshold,
	}
}

// ValidBatchNumber reports whether n is within [0, MaxBatchNumber].
func ValidBatchNumber(n int) bool {
	return n >= 0 && n <= MaxBatchNumber
}

// ScoreAnswer returns 1 when the answers match exactly, 0 otherwise.
func ScoreAnswer(userAnswer, llmAnswer string) int {
	if userAnswer == llmAnswer {
		return 1
	}
	return 0
}
