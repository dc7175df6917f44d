package adventure

// Stage defaults
const (
	StageID         = "stage1"
	StageBackground = "#000000"
	WolfAsset       = "/wolf.png"

	DirectionForest      = "forest"
	DirectionRockyPlains = "rocky_plains"
	ForestDescription    = "Twisted alien trees glow faintly in the distance"
	PlainsDescription    = "Barren stone fields under crimson skies"
)

// BaseNarrative is the opening the model is asked to improve
const BaseNarrative = "Waking up the wolf finds himself alone in a rocky place, where should he go next?"

// FallbackNarrative is served when the model cannot be reached
const FallbackNarrative = "The wolf awakens in a jagged alien landscape. Strange mineral formations jut from the crimson-tinged ground. " +
	"To the west, bioluminescent foliage pulses in a twisted forest. To the east, endless rocky plains stretch to the horizon. " +
	"(Swipe left for forest, right for plains)"

// ErrMsgGenerateFailed is the client-facing error when generation fails
const ErrMsgGenerateFailed = "Failed to generate adventure prompt"

// Log messages
const (
	LogMsgStageGenerated = "Adventure stage generated"
	LogMsgGenerateFailed = "Adventure stage generation failed"
)
