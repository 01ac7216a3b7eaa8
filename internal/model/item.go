package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus is the purchase state of a list item.
// Transitions are one-directional: Pendiente → Comprado.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "Pendiente"
	ItemStatusPurchased ItemStatus = "Comprado"
)

// ListItem is a product entry belonging to exactly one shopping list.
type ListItem struct {
	ID          string
	ListID      string
	ProductName string          // non-empty, max 200 chars
	Quantity    decimal.Decimal // 0 < q <= 9999, defaults to 1
	Unit        string          // optional, max 50 chars, empty = unspecified
	Status      ItemStatus
	CreatedAt   time.Time
	ModifiedAt  *time.Time
}
