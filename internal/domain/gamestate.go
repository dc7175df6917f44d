package domain

import (
	"math"
	"time"
)

// GameState is an append-only snapshot of player progress.
type GameState struct {
	Timestamp       time.Time `json:"timestamp"`
	TweetsAnswered  int       `json:"tweetsAnswered"`
	HeartsRemaining int       `json:"heartsRemaining"`
	Equipment       []string  `json:"equipment"`
	Accuracy        int       `json:"accuracy"`
}

// SyncPayload is the document published to the blob store for a snapshot.
type SyncPayload struct {
	TweetsAnswered  int       `json:"tweetsAnswered"`
	HeartsRemaining int       `json:"heartsRemaining"`
	Accuracy        int       `json:"accuracy"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewGameState derives a snapshot from an evaluation. Accuracy follows the
// stored totalCorrect, which reads as 0 when a record omits it. A nil health
// means the player never reported it and defaults to full hearts.
func NewGameState(ev *Evaluation, health *int, now time.Time) *GameState {
	hearts := DefaultHearts
	if health != nil {
		hearts = *health
	}

	return &GameState{
		Timestamp:       now.UTC(),
		TweetsAnswered:  len(ev.Results),
		HeartsRemaining: hearts,
		Equipment:       []string{},
		Accuracy:        Accuracy(ev.TotalCorrect, len(ev.Results)),
	}
}

// Accuracy is the rounded percentage of correct answers, 0 when total is 0.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Payload projects the snapshot onto the published document.
func (g *GameState) Payload() SyncPayload {
	return SyncPayload{
		TweetsAnswered:  g.TweetsAnswered,
		HeartsRemaining: g.HeartsRemaining,
		Accuracy:        g.Accuracy,
		Timestamp:       g.Timestamp,
	}
}
