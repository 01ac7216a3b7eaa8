package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"voice-shopping-list/internal/model"
	"voice-shopping-list/internal/nlu"
	"voice-shopping-list/internal/shoppinglist"
	"voice-shopping-list/internal/voice"
)

var one = decimal.NewFromInt(1)

func (uc *implUseCase) handleAddProduct(ctx context.Context, cmd nlu.Command) voice.DialogueResponse {
	if cmd.ProductName == "" {
		return voice.Continue(voice.SpeechAskProduct, voice.RepromptAskProduct)
	}

	list, ok, err := uc.resolveContextList(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleAddProduct resolve: %v", err)
		return voice.Speak(voice.SpeechErrorAddingItem)
	}
	if !ok {
		return voice.Continue(voice.SpeechNoActiveList, voice.RepromptNoActiveList)
	}

	_, err = uc.lists.AddItem(ctx, shoppinglist.AddItemInput{
		ListID:      list.ID,
		ProductName: cmd.ProductName,
		Quantity:    cmd.Quantity,
		Unit:        cmd.Unit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleAddProduct add: %v", err)
		return voice.Speak(voice.SpeechErrorAddingItem)
	}

	var cantidad, unidad string
	if cmd.Quantity.GreaterThan(one) {
		cantidad = cmd.Quantity.String() + " "
	}
	if cmd.Unit != "" {
		unidad = cmd.Unit + " de "
	}

	return voice.Continue(
		fmt.Sprintf(voice.SpeechProductAdded, cantidad, unidad, cmd.ProductName, list.Name),
		voice.RepromptProductAdded,
	)
}

func (uc *implUseCase) handleListProducts(ctx context.Context) voice.DialogueResponse {
	list, ok, err := uc.resolveContextList(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleListProducts resolve: %v", err)
		return voice.Speak(voice.SpeechErrorListingItems)
	}
	if !ok {
		return voice.Speak(voice.SpeechNoActiveListsToday)
	}

	items, err := uc.lists.ListItems(ctx, list.ID)
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleListProducts items: %v", err)
		return voice.Speak(voice.SpeechErrorListingItems)
	}

	if len(items) == 0 {
		return voice.Continue(fmt.Sprintf(voice.SpeechListEmpty, list.Name), voice.RepromptListEmpty)
	}

	var pending []string
	purchased := 0
	for _, item := range items {
		if item.Status == model.ItemStatusPurchased {
			purchased++
			continue
		}
		pending = append(pending, describeItem(item))
	}

	speech := fmt.Sprintf("En tu lista %s tienes: ", list.Name)
	if len(pending) > 0 {
		speech += fmt.Sprintf("Pendientes: %s. ", strings.Join(pending, ", "))
	}
	if purchased > 0 {
		plural := ""
		if purchased > 1 {
			plural = "s"
		}
		speech += fmt.Sprintf("Ya compraste %d producto%s.", purchased, plural)
	}

	return voice.Speak(speech)
}

// describeItem renders an item the way it is spoken in a listing.
func describeItem(item model.ListItem) string {
	if !item.Quantity.GreaterThan(one) {
		return item.ProductName
	}
	parts := []string{item.Quantity.String()}
	if item.Unit != "" {
		parts = append(parts, item.Unit)
	}
	parts = append(parts, "de", item.ProductName)
	return strings.Join(parts, " ")
}

func (uc *implUseCase) handleMarkProduct(ctx context.Context, cmd nlu.Command) voice.DialogueResponse {
	if cmd.ProductName == "" {
		return voice.Speak(voice.SpeechAskProductToMark)
	}

	item, list, found, err := uc.findItemToday(ctx, cmd.ProductName)
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleMarkProduct find: %v", err)
		return voice.Speak(voice.SpeechErrorMarkingItem)
	}
	if !found {
		return voice.Speak(fmt.Sprintf(voice.SpeechProductNotFound, cmd.ProductName))
	}

	err = uc.lists.SetItemStatus(ctx, shoppinglist.SetItemStatusInput{
		ItemID: item.ID,
		Status: model.ItemStatusPurchased,
	})
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleMarkProduct mark: %v", err)
		return voice.Speak(voice.SpeechErrorMarkingItem)
	}

	return voice.Speak(fmt.Sprintf(voice.SpeechProductMarked, cmd.ProductName, list.Name))
}

func (uc *implUseCase) handleDeleteProduct(ctx context.Context, cmd nlu.Command) voice.DialogueResponse {
	if cmd.ProductName == "" {
		return voice.Continue(voice.SpeechAskProductToDelete, voice.RepromptAskProductToDelete)
	}

	item, list, found, err := uc.findItemToday(ctx, cmd.ProductName)
	if err != nil {
		uc.l.Errorf(ctx, "voice.handleDeleteProduct find: %v", err)
		return voice.Speak(voice.SpeechErrorDeletingItem)
	}
	if !found {
		return voice.Speak(fmt.Sprintf(voice.SpeechProductNotFound, cmd.ProductName))
	}

	if err := uc.lists.DeleteItem(ctx, item.ID); err != nil {
		uc.l.Errorf(ctx, "voice.handleDeleteProduct delete: %v", err)
		return voice.Speak(voice.SpeechErrorDeletingItem)
	}

	return voice.Speak(fmt.Sprintf(voice.SpeechProductDeleted, cmd.ProductName, list.Name))
}
