package usecase

import (
	"context"
	"strings"

	"voice-shopping-list/internal/model"
)

// resolveContextList picks the implicit target of product commands:
// the most recently created of today's active lists.
func (uc *implUseCase) resolveContextList(ctx context.Context) (model.ShoppingList, bool, error) {
	lists, err := uc.lists.ListForDate(ctx, uc.now())
	if err != nil {
		return model.ShoppingList{}, false, err
	}
	if len(lists) == 0 {
		return model.ShoppingList{}, false, nil
	}

	latest := lists[0]
	for _, list := range lists[1:] {
		if list.CreatedAt.After(latest.CreatedAt) {
			latest = list
		}
	}
	return latest, true, nil
}

// findItemToday scans today's lists in order and returns the first item
// whose product name contains the spoken fragment, case-insensitively.
func (uc *implUseCase) findItemToday(ctx context.Context, fragment string) (model.ListItem, model.ShoppingList, bool, error) {
	lists, err := uc.lists.ListForDate(ctx, uc.now())
	if err != nil {
		return model.ListItem{}, model.ShoppingList{}, false, err
	}

	needle := strings.ToLower(fragment)
	for _, list := range lists {
		items, err := uc.lists.ListItems(ctx, list.ID)
		if err != nil {
			return model.ListItem{}, model.ShoppingList{}, false, err
		}
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.ProductName), needle) {
				return item, list, true, nil
			}
		}
	}
	return model.ListItem{}, model.ShoppingList{}, false, nil
}
