package voice

import (
	"context"

	"voice-shopping-list/internal/nlu"
)

// UseCase drives the shopping list domain from canonical voice commands.
// Handle never returns an error: every outcome, including a domain
// failure, is rendered as speech.
type UseCase interface {
	Handle(ctx context.Context, cmd nlu.Command) DialogueResponse
}
