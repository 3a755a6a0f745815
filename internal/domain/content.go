package domain

import "time"

// Item is a content item owned by the host CMS. The tracker only reads
// items; it never creates or deletes them.
type Item struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Published bool      `db:"published" json:"published"`
	Changed   time.Time `db:"changed" json:"changed"`
	Title     string    `db:"title" json:"title"`
}

// Comment is a comment on an item, owned by the host comment system.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	ItemID    int64     `db:"item_id" json:"item_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Published bool      `db:"published" json:"published"`
	Changed   time.Time `db:"changed" json:"changed"`
}
