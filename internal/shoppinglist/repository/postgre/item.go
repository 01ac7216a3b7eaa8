package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"voice-shopping-list/internal/model"
	repo "voice-shopping-list/internal/shoppinglist/repository"
)

const itemColumns = `id, list_id, product_name, quantity, unit, status, created_at, modified_at`

func scanItem(row interface{ Scan(...any) error }) (model.ListItem, error) {
	var (
		item       model.ListItem
		unit       sql.NullString
		modifiedAt sql.NullTime
	)
	err := row.Scan(&item.ID, &item.ListID, &item.ProductName, &item.Quantity,
		&unit, &item.Status, &item.CreatedAt, &modifiedAt)
	if err != nil {
		return model.ListItem{}, err
	}
	item.Unit = unit.String
	if modifiedAt.Valid {
		item.ModifiedAt = &modifiedAt.Time
	}
	return item, nil
}

// nullableUnit maps the empty unit to NULL.
func nullableUnit(unit string) sql.NullString {
	return sql.NullString{String: unit, Valid: unit != ""}
}

// CreateItem inserts a new list item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.ListItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO list_items (id, list_id, product_name, quantity, unit, status, created_at)
		VALUES ($1, $2, $3, $4, $5, '%s', NOW())
		RETURNING %s`, model.ItemStatusPending, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.ListID, opt.ProductName, opt.Quantity, nullableUnit(opt.Unit)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.ListItem{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single item by ID.
// Returns zero-value item (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.ListItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM list_items WHERE id = $1 LIMIT 1`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.ListItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.ListItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns a list's items pending first, then by product name,
// which is the display order of the voice and REST surfaces. Status is
// stored as text, so DESC puts 'Pendiente' before 'Comprado'.
func (r *implRepository) ListItems(ctx context.Context, listID string) ([]model.ListItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM list_items
		WHERE list_id = $1
		ORDER BY status DESC, product_name ASC`, itemColumns)

	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.ListItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	return items, nil
}

// SetItemStatus updates an item's purchase state.
func (r *implRepository) SetItemStatus(ctx context.Context, id string, status model.ItemStatus) error {
	const query = `UPDATE list_items SET status = $1, modified_at = $2 WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetItemStatus"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteItem removes an item permanently.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM list_items WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
