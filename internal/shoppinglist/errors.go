package shoppinglist

import "errors"

// Domain-specific errors for the shopping list domain. Expected outcomes
// (not found, conflicts) are returned as values so callers can pick the
// right speech template or HTTP status instead of unwinding.
var (
	ErrListConflict       = errors.New("an active list with that name and date already exists")
	ErrListNotFound       = errors.New("shopping list not found")
	ErrListAlreadyDeleted = errors.New("shopping list is already deleted")
	ErrListDeleted        = errors.New("cannot modify a deleted shopping list")
	ErrItemNotFound       = errors.New("list item not found")
)
