package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"voice-shopping-list/internal/model"
)

// CreateListOptions holds parameters for inserting a new shopping list.
type CreateListOptions struct {
	ID         string
	Name       string
	TargetDate time.Time
}

// GetOneListOptions holds filter parameters for fetching a single list.
type GetOneListOptions struct {
	ID string
}

// ListListsOptions holds filter parameters for listing shopping lists.
// When TargetDate is set, results are ordered by name; otherwise by
// target date descending then name.
type ListListsOptions struct {
	TargetDate *time.Time
	Status     model.ListStatus
}

// CreateItemOptions holds parameters for inserting a new list item.
type CreateItemOptions struct {
	ID          string
	ListID      string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
}

// GetOneItemOptions holds filter parameters for fetching a single item.
type GetOneItemOptions struct {
	ID string
}
