package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"content_tracker/internal/domain"
)

// ItemStore reads host content items. The tracker never writes to the
// items table.
type ItemStore struct {
	db *sqlx.DB
}

func NewItemStore(db *sqlx.DB) *ItemStore {
	return &ItemStore{db: db}
}

// GetByID returns the item, or nil when it no longer exists. A missing
// item is an expected state, not an error.
func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `
		SELECT id, user_id, published, changed, title
		FROM items
		WHERE id = $1`

	var item domain.Item
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListBackfillBatch returns up to limit items with id <= maxID in
// descending id order. Access checks are not applied; the sweeper runs
// in an administrative context.
func (s *ItemStore) ListBackfillBatch(ctx context.Context, maxID int64, limit int) ([]domain.Item, error) {
	query := `
		SELECT id, user_id, published, changed, title
		FROM items
		WHERE id <= $1
		ORDER BY id DESC
		LIMIT $2`

	var items []domain.Item
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, maxID, limit)
	return items, err
}

// MaxID returns the highest item id, or 0 when no items exist.
func (s *ItemStore) MaxID(ctx context.Context) (int64, error) {
	var maxID int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &maxID, "SELECT COALESCE(MAX(id), 0) FROM items")
	return maxID, err
}
