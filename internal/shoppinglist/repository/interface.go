package repository

import (
	"context"
	"time"

	"voice-shopping-list/internal/model"
)

// Repository is the composed interface for the shopping list data store.
type Repository interface {
	ListRepository
	ItemRepository
}

// ListRepository defines all data access methods for shopping lists.
// Lookups return zero-value entities when nothing matches — not-found is
// decided by the use case layer, not here.
type ListRepository interface {
	CreateList(ctx context.Context, opt CreateListOptions) (model.ShoppingList, error)
	GetOneList(ctx context.Context, opt GetOneListOptions) (model.ShoppingList, error)
	ListLists(ctx context.Context, opt ListListsOptions) ([]model.ShoppingList, error)
	MarkListDeleted(ctx context.Context, id string) error
	ExistsActiveList(ctx context.Context, name string, targetDate time.Time) (bool, error)
}

// ItemRepository defines all data access methods for list items.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.ListItem, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.ListItem, error)
	ListItems(ctx context.Context, listID string) ([]model.ListItem, error)
	SetItemStatus(ctx context.Context, id string, status model.ItemStatus) error
	DeleteItem(ctx context.Context, id string) error
}
