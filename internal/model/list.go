package model

import "time"

// ListStatus is the lifecycle state of a shopping list.
// Lists are soft-deleted: they leave the Active state but are never removed.
type ListStatus string

const (
	ListStatusActive  ListStatus = "Activa"
	ListStatusDeleted ListStatus = "Eliminada"
)

// ShoppingList is a per-day shopping list.
// No two active lists may share the same (case-insensitive name, target date).
type ShoppingList struct {
	ID         string
	Name       string     // non-empty, max 100 chars
	TargetDate time.Time  // calendar date, normalized to midnight UTC
	Status     ListStatus
	CreatedAt  time.Time
	ModifiedAt *time.Time
}
