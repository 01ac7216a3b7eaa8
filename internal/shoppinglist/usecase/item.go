package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"voice-shopping-list/internal/model"
	"voice-shopping-list/internal/shoppinglist"
	repo "voice-shopping-list/internal/shoppinglist/repository"
)

// AddItem adds a product to a list. The list must exist and be active.
func (uc *implUseCase) AddItem(ctx context.Context, input shoppinglist.AddItemInput) (model.ListItem, error) {
	list, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: input.ListID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddItem GetOneList: %v", err)
		return model.ListItem{}, err
	}
	if list.ID == "" {
		return model.ListItem{}, shoppinglist.ErrListNotFound
	}
	if list.Status == model.ListStatusDeleted {
		return model.ListItem{}, shoppinglist.ErrListDeleted
	}

	quantity := input.Quantity
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:          uuid.NewString(),
		ListID:      input.ListID,
		ProductName: strings.TrimSpace(input.ProductName),
		Quantity:    quantity,
		Unit:        strings.TrimSpace(input.Unit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddItem CreateItem: %v", err)
		return model.ListItem{}, err
	}
	return item, nil
}

// GetItem retrieves a single item by ID.
func (uc *implUseCase) GetItem(ctx context.Context, id string) (model.ListItem, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetItem GetOneItem: %v", err)
		return model.ListItem{}, err
	}
	if item.ID == "" {
		return model.ListItem{}, shoppinglist.ErrItemNotFound
	}
	return item, nil
}

// ListItems returns a list's items pending first, then by product name.
func (uc *implUseCase) ListItems(ctx context.Context, listID string) ([]model.ListItem, error) {
	items, err := uc.repo.ListItems(ctx, listID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListItems ListItems: %v", err)
		return nil, err
	}
	return items, nil
}

// SetItemStatus updates an item's purchase state.
func (uc *implUseCase) SetItemStatus(ctx context.Context, input shoppinglist.SetItemStatusInput) error {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ItemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetItemStatus GetOneItem: %v", err)
		return err
	}
	if item.ID == "" {
		return shoppinglist.ErrItemNotFound
	}

	if err := uc.repo.SetItemStatus(ctx, input.ItemID, input.Status); err != nil {
		uc.l.Errorf(ctx, "uc.SetItemStatus SetItemStatus: %v", err)
		return err
	}
	return nil
}

// DeleteItem removes an item permanently.
func (uc *implUseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteItem GetOneItem: %v", err)
		return err
	}
	if item.ID == "" {
		return shoppinglist.ErrItemNotFound
	}

	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteItem DeleteItem: %v", err)
		return err
	}
	return nil
}
