package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Batch errors
	ErrMsgBatchNotFound      = "Batch not found"
	ErrMsgInvalidAnswerCount = "Invalid answers format - must be array of 4 answers"

	// Evaluation errors
	ErrMsgNoEvaluation        = "No evaluation found"
	ErrMsgNoEvaluationResults = "No results in latest evaluation"

	// Game state errors
	ErrMsgNoGameState = "no game state found"

	// Judge errors
	ErrMsgEmptyContent      = "tweet content is empty"
	ErrMsgUnparsableVerdict = "unparsable judge verdict"

	// Upstream / storage errors
	ErrMsgUpstream = "upstream request failed"
	ErrMsgStorage  = "storage error"

	// Session errors
	ErrMsgInvalidStage  = "invalid stage"
	ErrMsgInvalidHealth = "invalid health"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrBatchNotFound      = errors.New(ErrMsgBatchNotFound)
	ErrInvalidAnswerCount = errors.New(ErrMsgInvalidAnswerCount)

	ErrNoEvaluation        = errors.New(ErrMsgNoEvaluation)
	ErrNoEvaluationResults = errors.New(ErrMsgNoEvaluationResults)

	ErrNoGameState = errors.New(ErrMsgNoGameState)

	ErrEmptyContent      = errors.New(ErrMsgEmptyContent)
	ErrUnparsableVerdict = errors.New(ErrMsgUnparsableVerdict)

	ErrUpstream = errors.New(ErrMsgUpstream)
	ErrStorage  = errors.New(ErrMsgStorage)

	ErrInvalidStage  = errors.New(ErrMsgInvalidStage)
	ErrInvalidHealth = errors.New(ErrMsgInvalidHealth)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
