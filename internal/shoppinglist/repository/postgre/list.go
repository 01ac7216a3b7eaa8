package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"voice-shopping-list/internal/model"
	repo "voice-shopping-list/internal/shoppinglist/repository"
)

const listColumns = `id, name, target_date, status, created_at, modified_at`

func scanList(row interface{ Scan(...any) error }) (model.ShoppingList, error) {
	var (
		list       model.ShoppingList
		modifiedAt sql.NullTime
	)
	err := row.Scan(&list.ID, &list.Name, &list.TargetDate, &list.Status, &list.CreatedAt, &modifiedAt)
	if err != nil {
		return model.ShoppingList{}, err
	}
	if modifiedAt.Valid {
		list.ModifiedAt = &modifiedAt.Time
	}
	return list, nil
}

// CreateList inserts a new shopping list row and returns the created entity.
func (r *implRepository) CreateList(ctx context.Context, opt repo.CreateListOptions) (model.ShoppingList, error) {
	query := fmt.Sprintf(`
		INSERT INTO shopping_lists (id, name, target_date, status, created_at)
		VALUES ($1, $2, $3, '%s', NOW())
		RETURNING %s`, model.ListStatusActive, listColumns)

	list, err := scanList(r.db.QueryRowContext(ctx, query, opt.ID, opt.Name, opt.TargetDate))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateList"), err)
		return model.ShoppingList{}, repo.ErrFailedToInsert
	}
	return list, nil
}

// GetOneList retrieves a single list by ID.
// Returns zero-value list (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneList(ctx context.Context, opt repo.GetOneListOptions) (model.ShoppingList, error) {
	query := fmt.Sprintf(`SELECT %s FROM shopping_lists WHERE id = $1 LIMIT 1`, listColumns)

	list, err := scanList(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.ShoppingList{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneList"), err)
		return model.ShoppingList{}, repo.ErrFailedToGet
	}
	return list, nil
}

// ListLists returns lists matching the options. Date-scoped listings are
// ordered by name; the full catalog is ordered by target date desc, then name.
func (r *implRepository) ListLists(ctx context.Context, opt repo.ListListsOptions) ([]model.ShoppingList, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM shopping_lists %s`, listColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var lists []model.ShoppingList
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// MarkListDeleted soft-deletes a list by flipping its status.
func (r *implRepository) MarkListDeleted(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		UPDATE shopping_lists SET status = '%s', modified_at = $1 WHERE id = $2`,
		model.ListStatusDeleted)

	if _, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkListDeleted"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ExistsActiveList reports whether an active list with the same
// case-insensitive name exists for the target date.
func (r *implRepository) ExistsActiveList(ctx context.Context, name string, targetDate time.Time) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM shopping_lists
			WHERE LOWER(name) = LOWER($1) AND target_date = $2 AND status = '%s'
		)`, model.ListStatusActive)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name, targetDate).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistsActiveList"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}
