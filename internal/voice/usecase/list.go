package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-shopping-list/internal/nlu"
	"voice-shopping-list/internal/shoppinglist"
	"voice-shopping-list/internal/voice"
)

func (uc *implUseCase) handleCreateList(ctx context.Context, cmd nlu.Command) voice.DialogueResponse {
	if cmd.ListName == "" {
		return voice.Continue(voice.SpeechAskListName, voice.RepromptAskListName)
	}

	_, err := uc.lists.CreateList(ctx, shoppinglist.CreateListInput{
		Name:       cmd.ListName,
		TargetDate: uc.now(),
	})
	if errors.Is(err, shoppinglist.ErrListConflict) {
		return voice.Speak(fmt.Sprintf(voice.SpeechListConflict,
			cmd.ListName, uc.now().Format("02/01/2006")))
	}
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleCreateList: %v", err)
		return voice.Speak(voice.SpeechErrorCreatingList)
	}

	return voice.Continue(
		fmt.Sprintf(voice.SpeechListCreated, cmd.ListName),
		voice.RepromptListCreated,
	)
}

func (uc *implUseCase) handleDeleteList(ctx context.Context, cmd nlu.Command) voice.DialogueResponse {
	if cmd.ListName == "" {
		return voice.Continue(voice.SpeechAskListToDelete, voice.RepromptAskListToDelete)
	}

	lists, err := uc.lists.ListForDate(ctx, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleDeleteList: %v", err)
		return voice.Speak(voice.SpeechErrorDeletingList)
	}

	for _, list := range lists {
		if !strings.EqualFold(list.Name, cmd.ListName) {
			continue
		}
		if err := uc.lists.DeleteList(ctx, list.ID); err != nil {
			uc.l.Errorf(ctx, "voice.handleDeleteList delete: %v", err)
			return voice.Speak(voice.SpeechErrorDeletingList)
		}
		return voice.Speak(fmt.Sprintf(voice.SpeechListDeleted, cmd.ListName))
	}

	return voice.Speak(fmt.Sprintf(voice.SpeechListNotFound, cmd.ListName))
}

func (uc *implUseCase) handleListLists(ctx context.Context) voice.DialogueResponse {
	lists, err := uc.lists.ListForDate(ctx, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleListLists: %v", err)
		return voice.Speak(voice.SpeechErrorListingLists)
	}

	if len(lists) == 0 {
		return voice.Continue(voice.SpeechNoListsToday, voice.RepromptNoListsToday)
	}

	names := make([]string, 0, len(lists))
	for _, list := range lists {
		names = append(names, list.Name)
	}

	var speech string
	if len(lists) == 1 {
		speech = fmt.Sprintf(voice.SpeechOneListToday, names[0])
	} else {
		speech = fmt.Sprintf(voice.SpeechManyListsToday, len(lists), strings.Join(names, ", "))
	}
	speech += voice.SpeechListsFollowUp

	return voice.Continue(speech, voice.RepromptListsToday)
}
