package postgre

import (
	"database/sql"
	"fmt"

	"voice-shopping-list/internal/shoppinglist/repository"
	"voice-shopping-list/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the shopping list domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("shoppinglist/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("shoppinglist/repository/postgre.%s", method)
}
