package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content_tracker/internal/domain"
)

// TrackerService maintains the two derived activity tables in response
// to content lifecycle events.
type TrackerService struct {
	items     ItemStore
	comments  CommentStore
	itemIndex ItemActivityStore
	userIndex UserActivityStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewTrackerService(
	items ItemStore,
	comments CommentStore,
	itemIndex ItemActivityStore,
	userIndex UserActivityStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *TrackerService {
	return &TrackerService{
		items:     items,
		comments:  comments,
		itemIndex: itemIndex,
		userIndex: userIndex,
		txManager: txManager,
		logger:    logger,
	}
}

// HandleEvent dispatches one content lifecycle event to the matching
// tracker operation. One event runs under one transaction.
func (s *TrackerService) HandleEvent(ctx context.Context, event *domain.ContentEvent) error {
	switch event.Kind {
	case domain.KindItem:
		if event.Item == nil {
			return fmt.Errorf("item event %q without item payload: %w", event.Action, domain.ErrInvalidEvent)
		}
		switch event.Action {
		case domain.ActionCreate, domain.ActionUpdate:
			return s.TrackItem(ctx, event.Item)
		case domain.ActionDelete:
			return s.UntrackItem(ctx, event.Item.ID)
		}
		return fmt.Errorf("unknown item action %q: %w", event.Action, domain.ErrInvalidEvent)

	case domain.KindComment:
		if event.Comment == nil {
			return fmt.Errorf("comment event %q without comment payload: %w", event.Action, domain.ErrInvalidEvent)
		}
		switch event.Action {
		case domain.ActionCreate:
			// Unpublished comments carry no activity until they
			// are published.
			if !event.Comment.Published {
				return nil
			}
			return s.TrackComment(ctx, event.Comment)
		case domain.ActionUpdate:
			if event.Comment.Published {
				return s.TrackComment(ctx, event.Comment)
			}
			return s.RemoveComment(ctx, event.Comment)
		case domain.ActionDelete:
			return s.RemoveComment(ctx, event.Comment)
		}
		return fmt.Errorf("unknown comment action %q: %w", event.Action, domain.ErrInvalidEvent)
	}

	return fmt.Errorf("unknown event kind %q: %w", event.Kind, domain.ErrInvalidEvent)
}

// TrackItem handles item create and update. It refreshes the item's
// index row and the author's row, then pushes the new state to every
// other participant row for the item. Comments never change membership
// here, only timestamps.
func (s *TrackerService) TrackItem(ctx context.Context, item *domain.Item) error {
	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		changed, err := s.effectiveChanged(ctx, item)
		if err != nil {
			return fmt.Errorf("compute changed for item %d: %w", item.ID, err)
		}

		if err := s.itemIndex.Upsert(ctx, &domain.ItemActivity{
			ItemID:    item.ID,
			Published: item.Published,
			Changed:   changed,
		}); err != nil {
			return fmt.Errorf("upsert item index %d: %w", item.ID, err)
		}

		if err := s.userIndex.Upsert(ctx, &domain.UserActivity{
			ItemID:    item.ID,
			UserID:    item.UserID,
			Published: item.Published,
			Changed:   changed,
		}); err != nil {
			return fmt.Errorf("upsert author row (%d, %d): %w", item.ID, item.UserID, err)
		}

		if err := s.userIndex.Propagate(ctx, item.ID, item.Published, changed); err != nil {
			return fmt.Errorf("propagate item %d: %w", item.ID, err)
		}

		s.logger.Debug("tracked item", "item_id", item.ID, "changed", changed)
		return nil
	})
}

// UntrackItem handles item delete: all index rows for the item go away.
func (s *TrackerService) UntrackItem(ctx context.Context, itemID int64) error {
	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.deleteItemRows(ctx, itemID); err != nil {
			return err
		}
		s.logger.Debug("untracked item", "item_id", itemID)
		return nil
	})
}

// TrackComment handles comment create and comment update landing
// published. The commenter gets a participant row unless they are the
// item's author; the item row timestamp is refreshed either way.
func (s *TrackerService) TrackComment(ctx context.Context, comment *domain.Comment) error {
	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		item, err := s.items.GetByID(ctx, comment.ItemID)
		if err != nil {
			return fmt.Errorf("load item %d: %w", comment.ItemID, err)
		}
		if item == nil {
			// The host already removed the item; clear its index.
			return s.deleteItemRows(ctx, comment.ItemID)
		}

		changed, err := s.effectiveChanged(ctx, item)
		if err != nil {
			return fmt.Errorf("compute changed for item %d: %w", item.ID, err)
		}
		if comment.Changed.After(changed) {
			changed = comment.Changed
		}

		if err := s.itemIndex.Upsert(ctx, &domain.ItemActivity{
			ItemID:    item.ID,
			Published: item.Published,
			Changed:   changed,
		}); err != nil {
			return fmt.Errorf("upsert item index %d: %w", item.ID, err)
		}

		if comment.UserID != item.UserID {
			if err := s.userIndex.Upsert(ctx, &domain.UserActivity{
				ItemID:    item.ID,
				UserID:    comment.UserID,
				Published: item.Published,
				Changed:   changed,
			}); err != nil {
				return fmt.Errorf("upsert commenter row (%d, %d): %w", item.ID, comment.UserID, err)
			}
		}

		s.logger.Debug("tracked comment",
			"comment_id", comment.ID,
			"item_id", item.ID,
			"user_id", comment.UserID,
		)
		return nil
	})
}

// RemoveComment handles comment delete and comment update landing
// unpublished. The commenter's row survives only while another
// qualifying reason remains, and the item timestamp is recomputed when
// the removed comment was the most recent activity.
func (s *TrackerService) RemoveComment(ctx context.Context, comment *domain.Comment) error {
	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		item, err := s.items.GetByID(ctx, comment.ItemID)
		if err != nil {
			return fmt.Errorf("load item %d: %w", comment.ItemID, err)
		}
		if item == nil {
			return s.deleteItemRows(ctx, comment.ItemID)
		}

		if comment.UserID != item.UserID {
			qualifies, err := s.comments.HasOtherPublished(ctx, comment.ItemID, comment.UserID, comment.ID)
			if err != nil {
				return fmt.Errorf("check remaining comments (%d, %d): %w", comment.ItemID, comment.UserID, err)
			}
			if !qualifies {
				if err := s.userIndex.Delete(ctx, comment.ItemID, comment.UserID); err != nil {
					return fmt.Errorf("delete commenter row (%d, %d): %w", comment.ItemID, comment.UserID, err)
				}
			}
		}

		current, err := s.itemIndex.Get(ctx, comment.ItemID)
		if err != nil {
			return fmt.Errorf("load item index %d: %w", comment.ItemID, err)
		}
		if current == nil {
			// Not indexed; nothing to recompute.
			return nil
		}
		if comment.Changed.Before(current.Changed) {
			// The removed comment never carried the stored timestamp.
			return nil
		}

		changed, err := s.effectiveChanged(ctx, item)
		if err != nil {
			return fmt.Errorf("compute changed for item %d: %w", item.ID, err)
		}
		if err := s.itemIndex.Upsert(ctx, &domain.ItemActivity{
			ItemID:    item.ID,
			Published: item.Published,
			Changed:   changed,
		}); err != nil {
			return fmt.Errorf("upsert item index %d: %w", item.ID, err)
		}

		s.logger.Debug("removed comment",
			"comment_id", comment.ID,
			"item_id", comment.ItemID,
			"user_id", comment.UserID,
		)
		return nil
	})
}

// RecentActivity lists published items by most recent activity.
func (s *TrackerService) RecentActivity(ctx context.Context, limit int) ([]domain.ItemActivity, error) {
	return s.itemIndex.ListRecent(ctx, limit)
}

// RecentActivityByUser lists published items the user participated in,
// by most recent activity.
func (s *TrackerService) RecentActivityByUser(ctx context.Context, userID int64, limit int) ([]domain.ItemActivity, error) {
	return s.userIndex.ListRecentByUser(ctx, userID, limit)
}

func (s *TrackerService) deleteItemRows(ctx context.Context, itemID int64) error {
	if err := s.itemIndex.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete item index %d: %w", itemID, err)
	}
	if err := s.userIndex.DeleteByItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete user index rows for item %d: %w", itemID, err)
	}
	return nil
}

// effectiveChanged is the item's own changed time or the changed time
// of its most recent published comment, whichever is later.
func (s *TrackerService) effectiveChanged(ctx context.Context, item *domain.Item) (time.Time, error) {
	latest, err := s.comments.LatestPublishedChanged(ctx, item.ID)
	if err != nil {
		return time.Time{}, err
	}
	if latest != nil && latest.After(item.Changed) {
		return *latest, nil
	}
	return item.Changed, nil
}
