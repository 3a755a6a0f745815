package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"content_tracker/internal/domain"
)

// UserActivityStore owns the per-(item, user) index table.
type UserActivityStore struct {
	db *sqlx.DB
}

func NewUserActivityStore(db *sqlx.DB) *UserActivityStore {
	return &UserActivityStore{db: db}
}

func (s *UserActivityStore) Upsert(ctx context.Context, activity *domain.UserActivity) error {
	query := `
		INSERT INTO tracker_users (item_id, user_id, published, changed)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_id, user_id) DO UPDATE SET
			published = EXCLUDED.published,
			changed = EXCLUDED.changed`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		activity.ItemID,
		activity.UserID,
		activity.Published,
		activity.Changed,
	)
	return err
}

// InsertBatch inserts a set of rows in one statement. Used by the
// sweeper after it has deleted the item's existing rows.
func (s *UserActivityStore) InsertBatch(ctx context.Context, activities []domain.UserActivity) error {
	if len(activities) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO tracker_users (item_id, user_id, published, changed) VALUES ")
	valueArgs := make([]interface{}, 0, len(activities)*4)

	for i, a := range activities {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(itoa(i*4 + 1))
		sb.WriteString(", $")
		sb.WriteString(itoa(i*4 + 2))
		sb.WriteString(", $")
		sb.WriteString(itoa(i*4 + 3))
		sb.WriteString(", $")
		sb.WriteString(itoa(i*4 + 4))
		sb.WriteString(")")
		valueArgs = append(valueArgs, a.ItemID, a.UserID, a.Published, a.Changed)
	}
	sb.WriteString(" ON CONFLICT (item_id, user_id) DO UPDATE SET published = EXCLUDED.published, changed = EXCLUDED.changed")

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// Propagate pushes a new publication state and timestamp to every
// existing row for the item. Membership is not changed.
func (s *UserActivityStore) Propagate(ctx context.Context, itemID int64, published bool, changed time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE tracker_users SET published = $2, changed = $3 WHERE item_id = $1",
		itemID, published, changed,
	)
	return err
}

func (s *UserActivityStore) Delete(ctx context.Context, itemID, userID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM tracker_users WHERE item_id = $1 AND user_id = $2",
		itemID, userID,
	)
	return err
}

func (s *UserActivityStore) DeleteByItem(ctx context.Context, itemID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM tracker_users WHERE item_id = $1",
		itemID,
	)
	return err
}

// ListRecentByUser returns the per-item index rows for published items
// the user participated in, most recently changed first.
func (s *UserActivityStore) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]domain.ItemActivity, error) {
	query := `
		SELECT ti.item_id, ti.published, ti.changed
		FROM tracker_items ti
		INNER JOIN tracker_users tu ON tu.item_id = ti.item_id
		WHERE tu.user_id = $1 AND ti.published
		ORDER BY ti.changed DESC
		LIMIT $2`

	var activities []domain.ItemActivity
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &activities, query, userID, limit)
	return activities, err
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
