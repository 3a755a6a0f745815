package domain

import "time"

// ItemActivity is one row of the per-item index: the publication state of
// the item and the timestamp of the most recent activity on it (the item's
// own changed time or the changed time of its newest published comment,
// whichever is later).
type ItemActivity struct {
	ItemID    int64     `db:"item_id"`
	Published bool      `db:"published"`
	Changed   time.Time `db:"changed"`
}

// UserActivity is one row of the per-(item, user) index. A row exists for
// every user who authored the item or has at least one published comment
// on it.
type UserActivity struct {
	ItemID    int64     `db:"item_id"`
	UserID    int64     `db:"user_id"`
	Published bool      `db:"published"`
	Changed   time.Time `db:"changed"`
}
