package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"content_tracker/internal/domain"
)

type ItemStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListBackfillBatch(ctx context.Context, maxID int64, limit int) ([]domain.Item, error)
	MaxID(ctx context.Context) (int64, error)
}

type CommentStore interface {
	LatestPublishedChanged(ctx context.Context, itemID int64) (*time.Time, error)
	HasOtherPublished(ctx context.Context, itemID, userID, excludeCommentID int64) (bool, error)
	PublishedCommenters(ctx context.Context, itemID, excludeUserID int64) ([]int64, error)
}

type ItemActivityStore interface {
	Upsert(ctx context.Context, activity *domain.ItemActivity) error
	Get(ctx context.Context, itemID int64) (*domain.ItemActivity, error)
	Delete(ctx context.Context, itemID int64) error
	ListRecent(ctx context.Context, limit int) ([]domain.ItemActivity, error)
}

type UserActivityStore interface {
	Upsert(ctx context.Context, activity *domain.UserActivity) error
	InsertBatch(ctx context.Context, activities []domain.UserActivity) error
	Propagate(ctx context.Context, itemID int64, published bool, changed time.Time) error
	Delete(ctx context.Context, itemID, userID int64) error
	DeleteByItem(ctx context.Context, itemID int64) error
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]domain.ItemActivity, error)
}

type StateStore interface {
	GetInt(ctx context.Context, key string) (int64, error)
	SetInt(ctx context.Context, key string, value int64) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
