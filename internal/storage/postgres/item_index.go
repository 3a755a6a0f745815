package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"content_tracker/internal/domain"
)

// ItemActivityStore owns the per-item index table.
type ItemActivityStore struct {
	db *sqlx.DB
}

func NewItemActivityStore(db *sqlx.DB) *ItemActivityStore {
	return &ItemActivityStore{db: db}
}

func (s *ItemActivityStore) Upsert(ctx context.Context, activity *domain.ItemActivity) error {
	query := `
		INSERT INTO tracker_items (item_id, published, changed)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id) DO UPDATE SET
			published = EXCLUDED.published,
			changed = EXCLUDED.changed`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		activity.ItemID,
		activity.Published,
		activity.Changed,
	)
	return err
}

// Get returns the index row for the item, or nil when the item is not
// indexed.
func (s *ItemActivityStore) Get(ctx context.Context, itemID int64) (*domain.ItemActivity, error) {
	query := `
		SELECT item_id, published, changed
		FROM tracker_items
		WHERE item_id = $1`

	var activity domain.ItemActivity
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &activity, query, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ItemActivityStore) Delete(ctx context.Context, itemID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM tracker_items WHERE item_id = $1",
		itemID,
	)
	return err
}

// ListRecent returns index rows for published items, most recently
// changed first.
func (s *ItemActivityStore) ListRecent(ctx context.Context, limit int) ([]domain.ItemActivity, error) {
	query := `
		SELECT item_id, published, changed
		FROM tracker_items
		WHERE published
		ORDER BY changed DESC
		LIMIT $1`

	var activities []domain.ItemActivity
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &activities, query, limit)
	return activities, err
}
