package shoppinglist

import (
	"context"
	"time"

	"voice-shopping-list/internal/model"
)

// UseCase defines the business logic interface for the shopping list domain.
type UseCase interface {
	// CreateList creates a new list. Returns ErrListConflict when an active
	// list with the same case-insensitive name exists for the target date.
	CreateList(ctx context.Context, input CreateListInput) (model.ShoppingList, error)

	// GetList returns a list by ID. Returns ErrListNotFound when absent.
	GetList(ctx context.Context, id string) (model.ShoppingList, error)

	// ListForDate returns the active lists for a calendar date, ordered by name.
	ListForDate(ctx context.Context, date time.Time) ([]model.ShoppingList, error)

	// ListActive returns every active list, most recent target date first.
	ListActive(ctx context.Context) ([]model.ShoppingList, error)

	// DeleteList soft-deletes a list. Returns ErrListNotFound when absent
	// and ErrListAlreadyDeleted when it was deleted before.
	DeleteList(ctx context.Context, id string) error

	// AddItem adds a product to a list. Returns ErrListNotFound when the
	// list is absent and ErrListDeleted when it is soft-deleted.
	AddItem(ctx context.Context, input AddItemInput) (model.ListItem, error)

	// GetItem returns an item by ID. Returns ErrItemNotFound when absent.
	GetItem(ctx context.Context, id string) (model.ListItem, error)

	// ListItems returns a list's items pending first, then by product name.
	ListItems(ctx context.Context, listID string) ([]model.ListItem, error)

	// SetItemStatus updates an item's purchase state. Returns ErrItemNotFound
	// when the item vanished.
	SetItemStatus(ctx context.Context, input SetItemStatusInput) error

	// DeleteItem removes an item permanently. Returns ErrItemNotFound when absent.
	DeleteItem(ctx context.Context, id string) error
}
