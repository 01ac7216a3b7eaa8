package usecase

import (
	"context"

	"voice-shopping-list/internal/nlu"
	"voice-shopping-list/internal/voice"
)

// Handle dispatches a canonical command to its intent handler. Both
// input grammars end up here, so every wording below is shared.
func (uc *implUseCase) Handle(ctx context.Context, cmd nlu.Command) voice.DialogueResponse {
	switch cmd.Intent {
	case nlu.IntentLaunch:
		return voice.Continue(voice.SpeechWelcome, voice.RepromptWelcome)
	case nlu.IntentCreateList:
		return uc.handleCreateList(ctx, cmd)
	case nlu.IntentDeleteList:
		return uc.handleDeleteList(ctx, cmd)
	case nlu.IntentListLists:
		return uc.handleListLists(ctx)
	case nlu.IntentListProducts:
		return uc.handleListProducts(ctx)
	case nlu.IntentAddProduct:
		return uc.handleAddProduct(ctx, cmd)
	case nlu.IntentMarkProduct:
		return uc.handleMarkProduct(ctx, cmd)
	case nlu.IntentDeleteProduct:
		return uc.handleDeleteProduct(ctx, cmd)
	case nlu.IntentHelp:
		return voice.Continue(voice.SpeechHelp, voice.RepromptHelp)
	case nlu.IntentStop:
		return voice.End(voice.SpeechGoodbye)
	default:
		return voice.Continue(voice.SpeechUnknown, voice.RepromptUnknown)
	}
}
