package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// CommentStore reads host comments. The tracker never writes to the
// comments table.
type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

// LatestPublishedChanged returns the changed timestamp of the most
// recent published comment on the item, or nil when the item has no
// published comments.
func (s *CommentStore) LatestPublishedChanged(ctx context.Context, itemID int64) (*time.Time, error) {
	query := `
		SELECT changed
		FROM comments
		WHERE item_id = $1 AND published
		ORDER BY changed DESC
		LIMIT 1`

	var changed time.Time
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &changed, query, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &changed, nil
}

// HasOtherPublished reports whether the user has at least one published
// comment on the item other than excludeCommentID. The exclusion keeps
// the answer stable whether or not the host has deleted the comment row
// by the time the event is handled.
func (s *CommentStore) HasOtherPublished(ctx context.Context, itemID, userID, excludeCommentID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM comments
			WHERE item_id = $1 AND user_id = $2 AND published AND id <> $3
		)`

	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists, query, itemID, userID, excludeCommentID)
	return exists, err
}

// PublishedCommenters returns the distinct users with at least one
// published comment on the item, excluding excludeUserID. No ordering
// is guaranteed.
func (s *CommentStore) PublishedCommenters(ctx context.Context, itemID, excludeUserID int64) ([]int64, error) {
	query := `
		SELECT user_id
		FROM comments
		WHERE item_id = $1 AND published AND user_id <> $2
		GROUP BY user_id`

	var userIDs []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &userIDs, query, itemID, excludeUserID)
	return userIDs, err
}
