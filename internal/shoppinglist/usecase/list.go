package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"voice-shopping-list/internal/model"
	"voice-shopping-list/internal/shoppinglist"
	repo "voice-shopping-list/internal/shoppinglist/repository"
)

// normalizeDate truncates a timestamp to its calendar date in UTC.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateList creates a new shopping list after checking the
// (case-insensitive name, target date) uniqueness invariant.
func (uc *implUseCase) CreateList(ctx context.Context, input shoppinglist.CreateListInput) (model.ShoppingList, error) {
	name := strings.TrimSpace(input.Name)
	date := normalizeDate(input.TargetDate)

	exists, err := uc.repo.ExistsActiveList(ctx, name, date)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList ExistsActiveList: %v", err)
		return model.ShoppingList{}, err
	}
	if exists {
		return model.ShoppingList{}, shoppinglist.ErrListConflict
	}

	list, err := uc.repo.CreateList(ctx, repo.CreateListOptions{
		ID:         uuid.NewString(),
		Name:       name,
		TargetDate: date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList CreateList: %v", err)
		return model.ShoppingList{}, err
	}
	return list, nil
}

// GetList retrieves a single list by ID.
func (uc *implUseCase) GetList(ctx context.Context, id string) (model.ShoppingList, error) {
	list, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetList GetOneList: %v", err)
		return model.ShoppingList{}, err
	}
	if list.ID == "" {
		return model.ShoppingList{}, shoppinglist.ErrListNotFound
	}
	return list, nil
}

// ListForDate returns the active lists for a calendar date, ordered by name.
func (uc *implUseCase) ListForDate(ctx context.Context, date time.Time) ([]model.ShoppingList, error) {
	day := normalizeDate(date)
	lists, err := uc.repo.ListLists(ctx, repo.ListListsOptions{
		TargetDate: &day,
		Status:     model.ListStatusActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForDate ListLists: %v", err)
		return nil, err
	}
	return lists, nil
}

// ListActive returns every active list, most recent target date first.
func (uc *implUseCase) ListActive(ctx context.Context) ([]model.ShoppingList, error) {
	lists, err := uc.repo.ListLists(ctx, repo.ListListsOptions{
		Status: model.ListStatusActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListActive ListLists: %v", err)
		return nil, err
	}
	return lists, nil
}

// DeleteList soft-deletes a list. Deleting twice is a domain error, not
// an idempotent no-op, so the voice layer can answer precisely.
func (uc *implUseCase) DeleteList(ctx context.Context, id string) error {
	list, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteList GetOneList: %v", err)
		return err
	}
	if list.ID == "" {
		return shoppinglist.ErrListNotFound
	}
	if list.Status == model.ListStatusDeleted {
		return shoppinglist.ErrListAlreadyDeleted
	}

	if err := uc.repo.MarkListDeleted(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteList MarkListDeleted: %v", err)
		return err
	}
	return nil
}
