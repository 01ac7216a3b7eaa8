package shoppinglist

import (
	"time"

	"github.com/shopspring/decimal"

	"voice-shopping-list/internal/model"
)

// CreateListInput is the input for creating a shopping list.
type CreateListInput struct {
	Name       string
	TargetDate time.Time
}

// AddItemInput is the input for adding a product to a list.
type AddItemInput struct {
	ListID      string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string // empty = unspecified
}

// SetItemStatusInput is the input for flipping an item's purchase state.
type SetItemStatusInput struct {
	ItemID string
	Status model.ItemStatus
}
