// Package adventure builds the opening stage of the adventure game.
package adventure

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/llm"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// Assets are the sprites and counters a stage renders
type Assets struct {
	Wolf   string `json:"wolf"`
	Hearts int    `json:"hearts"`
}

// Choice is one swipe direction
type Choice struct {
	Direction   string `json:"direction"`
	Description string `json:"description"`
}

// Choices maps swipe sides to directions
type Choices struct {
	Left  Choice `json:"left"`
	Right Choice `json:"right"`
}

// Stage is a renderable adventure stage
type Stage struct {
	ID         string  `json:"id"`
	Background string  `json:"background"`
	Assets     Assets  `json:"assets"`
	Prompt     string  `json:"prompt"`
	Choices    Choices `json:"choices"`
}

// Generator asks the model to rewrite the opening narrative
type Generator struct {
	completer llm.Completer
}

// NewGenerator creates a new stage generator
func NewGenerator(completer llm.Completer) *Generator {
	return &Generator{completer: completer}
}

// BuildPrompt returns the narrative rewrite instruction for the given hearts
func BuildPrompt(hearts int) string {
	var b strings.Builder
	b.WriteString("Improve this game narrative while keeping the key elements: \n")
	fmt.Fprintf(&b, "- Wolf protagonist with %d health hearts \n", hearts)
	b.WriteString("- Rocky alien environment \n")
	b.WriteString("- Swipe choices: left=forest, right=rocky plains\n")
	b.WriteString("- Mysterious atmosphere\n")
	fmt.Fprintf(&b, "Original text: %q", BaseNarrative)
	return b.String()
}

// Generate builds the first stage with a model-written prompt. Errors wrap
// domain.ErrUpstream; callers fall back to FallbackNarrative.
func (g *Generator) Generate(ctx context.Context, hearts int) (*Stage, error) {
	log := logger.FromContext(ctx)

	text, err := g.completer.Complete(ctx, BuildPrompt(hearts))
	if err != nil {
		log.Warn(LogMsgGenerateFailed, "error", err)
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		log.Warn(LogMsgGenerateFailed, "error", "empty completion")
		return nil, fmt.Errorf("%w: empty completion", domain.ErrUpstream)
	}
	log.Info(LogMsgStageGenerated, "hearts", hearts, "prompt_chars", len(text))

	return NewStage(hearts, text), nil
}

// NewStage assembles the first stage around prompt
func NewStage(hearts int, prompt string) *Stage {
	return &Stage{
		ID:         StageID,
		Background: StageBackground,
		Assets:     Assets{Wolf: WolfAsset, Hearts: hearts},
		Prompt:     prompt,
		Choices: Choices{
			Left:  Choice{Direction: DirectionForest, Description: ForestDescription},
			Right: Choice{Direction: DirectionRockyPlains, Description: PlainsDescription},
		},
	}
}
