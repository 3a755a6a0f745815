package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content_tracker/internal/domain"
)

// CursorKey names the sweeper's low-water-mark in the state store.
// A value of 0 means the whole backlog is indexed.
const CursorKey = "tracker_cursor"

// Sweeper rebuilds index rows for items not yet covered, walking item
// ids downward from the persisted cursor one batch per invocation.
type Sweeper struct {
	items     ItemStore
	comments  CommentStore
	itemIndex ItemActivityStore
	userIndex UserActivityStore
	state     StateStore
	txManager TransactionManager
	logger    *slog.Logger
	batchSize int
}

func NewSweeper(
	items ItemStore,
	comments CommentStore,
	itemIndex ItemActivityStore,
	userIndex UserActivityStore,
	state StateStore,
	txManager TransactionManager,
	logger *slog.Logger,
	batchSize int,
) *Sweeper {
	return &Sweeper{
		items:     items,
		comments:  comments,
		itemIndex: itemIndex,
		userIndex: userIndex,
		state:     state,
		txManager: txManager,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Sweep processes one backfill batch. Each item is reindexed in its own
// transaction; the cursor only moves after the whole batch succeeds, so
// a failed sweep is retried from the same position on the next run.
func (s *Sweeper) Sweep(ctx context.Context) (*domain.SweepStats, error) {
	startTime := time.Now()

	cursor, err := s.state.GetInt(ctx, CursorKey)
	if err != nil {
		return nil, fmt.Errorf("read cursor: %w", err)
	}

	stats := &domain.SweepStats{Cursor: cursor}
	if cursor == 0 {
		s.logger.Debug("backlog fully indexed, nothing to sweep")
		return stats, nil
	}

	items, err := s.items.ListBackfillBatch(ctx, cursor, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("list backfill batch: %w", err)
	}

	if len(items) == 0 {
		if err := s.state.SetInt(ctx, CursorKey, 0); err != nil {
			return nil, fmt.Errorf("clear cursor: %w", err)
		}
		stats.Duration = time.Since(startTime)
		s.logger.Info("backfill complete", "cursor", cursor)
		return stats, nil
	}

	for i := range items {
		item := &items[i]
		err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
			userRows, err := s.reindexItem(ctx, item)
			if err != nil {
				return err
			}
			stats.UserRows += userRows
			return nil
		})
		if err != nil {
			return stats, fmt.Errorf("reindex item %d: %w", item.ID, err)
		}
		stats.Processed++
	}

	// Batches run in descending id order, so the last item is the
	// lowest processed.
	nextCursor := items[len(items)-1].ID - 1
	if nextCursor < 0 {
		nextCursor = 0
	}
	if err := s.state.SetInt(ctx, CursorKey, nextCursor); err != nil {
		return stats, fmt.Errorf("advance cursor: %w", err)
	}

	stats.NextCursor = nextCursor
	stats.Duration = time.Since(startTime)

	s.logger.Info("sweep completed",
		"cursor", cursor,
		"processed", stats.Processed,
		"user_rows", stats.UserRows,
		"next_cursor", stats.NextCursor,
		"duration", stats.Duration,
	)

	return stats, nil
}

// ResetCursor points the sweeper at the newest item so the entire
// index is rebuilt over the following sweeps.
func (s *Sweeper) ResetCursor(ctx context.Context) error {
	maxID, err := s.items.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("find max item id: %w", err)
	}
	if err := s.state.SetInt(ctx, CursorKey, maxID); err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}
	s.logger.Info("cursor reset", "cursor", maxID)
	return nil
}

func (s *Sweeper) reindexItem(ctx context.Context, item *domain.Item) (int, error) {
	if err := s.itemIndex.Delete(ctx, item.ID); err != nil {
		return 0, fmt.Errorf("delete item index: %w", err)
	}
	if err := s.userIndex.DeleteByItem(ctx, item.ID); err != nil {
		return 0, fmt.Errorf("delete user index rows: %w", err)
	}

	latest, err := s.comments.LatestPublishedChanged(ctx, item.ID)
	if err != nil {
		return 0, fmt.Errorf("latest published comment: %w", err)
	}
	changed := item.Changed
	if latest != nil && latest.After(changed) {
		changed = *latest
	}

	if err := s.itemIndex.Upsert(ctx, &domain.ItemActivity{
		ItemID:    item.ID,
		Published: item.Published,
		Changed:   changed,
	}); err != nil {
		return 0, fmt.Errorf("insert item index: %w", err)
	}

	rows := []domain.UserActivity{{
		ItemID:    item.ID,
		UserID:    item.UserID,
		Published: item.Published,
		Changed:   changed,
	}}

	commenters, err := s.comments.PublishedCommenters(ctx, item.ID, item.UserID)
	if err != nil {
		return 0, fmt.Errorf("published commenters: %w", err)
	}
	for _, userID := range commenters {
		rows = append(rows, domain.UserActivity{
			ItemID:    item.ID,
			UserID:    userID,
			Published: item.Published,
			Changed:   changed,
		})
	}

	if err := s.userIndex.InsertBatch(ctx, rows); err != nil {
		return 0, fmt.Errorf("insert user index rows: %w", err)
	}

	return len(rows), nil
}
