//go:build integration

package postgres

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"content_tracker/internal/domain"
	"content_tracker/internal/service"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_content.up.sql"),
			filepath.Join(migrationsPath, "002_create_tracker.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tracker_users")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tracker_items")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tracker_state")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM comments")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM items")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertItem(id, userID int64, published bool, changed time.Time) {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO items (id, user_id, published, changed, title) VALUES ($1, $2, $3, $4, $5)",
		id, userID, published, changed, "test item")
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) insertComment(id, itemID, userID int64, published bool, changed time.Time) {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO comments (id, item_id, user_id, published, changed) VALUES ($1, $2, $3, $4, $5)",
		id, itemID, userID, published, changed)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TestItemStore_GetByID_Missing() {
	store := NewItemStore(s.db)

	item, err := store.GetByID(s.ctx, 999)
	s.NoError(err)
	s.Nil(item)
}

func (s *PostgresIntegrationSuite) TestItemStore_ListBackfillBatch_Descending() {
	store := NewItemStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	for id := int64(1); id <= 5; id++ {
		s.insertItem(id, 1, true, now)
	}

	items, err := store.ListBackfillBatch(s.ctx, 4, 3)
	s.NoError(err)
	s.Require().Len(items, 3)
	s.Equal(int64(4), items[0].ID)
	s.Equal(int64(3), items[1].ID)
	s.Equal(int64(2), items[2].ID)
}

func (s *PostgresIntegrationSuite) TestItemStore_MaxID() {
	store := NewItemStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	maxID, err := store.MaxID(s.ctx)
	s.NoError(err)
	s.Equal(int64(0), maxID)

	s.insertItem(7, 1, true, now)
	s.insertItem(3, 1, true, now)

	maxID, err = store.MaxID(s.ctx)
	s.NoError(err)
	s.Equal(int64(7), maxID)
}

func (s *PostgresIntegrationSuite) TestCommentStore_LatestPublishedChanged() {
	store := NewCommentStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.insertItem(1, 1, true, now)
	s.insertComment(10, 1, 2, true, now.Add(1*time.Hour))
	s.insertComment(11, 1, 3, true, now.Add(2*time.Hour))
	s.insertComment(12, 1, 4, false, now.Add(3*time.Hour))

	latest, err := store.LatestPublishedChanged(s.ctx, 1)
	s.NoError(err)
	s.Require().NotNil(latest)
	s.True(latest.Equal(now.Add(2 * time.Hour)))

	latest, err = store.LatestPublishedChanged(s.ctx, 999)
	s.NoError(err)
	s.Nil(latest)
}

func (s *PostgresIntegrationSuite) TestCommentStore_HasOtherPublished() {
	store := NewCommentStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.insertItem(1, 1, true, now)
	s.insertComment(10, 1, 2, true, now)
	s.insertComment(11, 1, 2, false, now)

	has, err := store.HasOtherPublished(s.ctx, 1, 2, 10)
	s.NoError(err)
	s.False(has)

	s.insertComment(12, 1, 2, true, now)

	has, err = store.HasOtherPublished(s.ctx, 1, 2, 10)
	s.NoError(err)
	s.True(has)
}

func (s *PostgresIntegrationSuite) TestCommentStore_PublishedCommenters() {
	store := NewCommentStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.insertItem(1, 1, true, now)
	s.insertComment(10, 1, 1, true, now)
	s.insertComment(11, 1, 2, true, now)
	s.insertComment(12, 1, 2, true, now)
	s.insertComment(13, 1, 3, false, now)

	commenters, err := store.PublishedCommenters(s.ctx, 1, 1)
	s.NoError(err)
	s.ElementsMatch([]int64{2}, commenters)
}

func (s *PostgresIntegrationSuite) TestItemActivityStore_UpsertAndGet() {
	store := NewItemActivityStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	err := store.Upsert(s.ctx, &domain.ItemActivity{ItemID: 1, Published: true, Changed: now})
	s.NoError(err)

	err = store.Upsert(s.ctx, &domain.ItemActivity{ItemID: 1, Published: false, Changed: now.Add(time.Hour)})
	s.NoError(err)

	activity, err := store.Get(s.ctx, 1)
	s.NoError(err)
	s.Require().NotNil(activity)
	s.False(activity.Published)
	s.True(activity.Changed.Equal(now.Add(time.Hour)))
}

func (s *PostgresIntegrationSuite) TestUserActivityStore_PropagateUpdatesAllRows() {
	store := NewUserActivityStore(s.db)
	now := time.Now().Truncate(time.Microsecond)
	later := now.Add(time.Hour)

	err := store.InsertBatch(s.ctx, []domain.UserActivity{
		{ItemID: 1, UserID: 1, Published: true, Changed: now},
		{ItemID: 1, UserID: 2, Published: true, Changed: now},
		{ItemID: 2, UserID: 1, Published: true, Changed: now},
	})
	s.NoError(err)

	err = store.Propagate(s.ctx, 1, false, later)
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM tracker_users WHERE item_id = 1 AND NOT published AND changed = $1", later)
	s.NoError(err)
	s.Equal(2, count)

	// The other item's row is untouched.
	err = s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM tracker_users WHERE item_id = 2 AND published AND changed = $1", now)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestActivityListings() {
	itemIndex := NewItemActivityStore(s.db)
	userIndex := NewUserActivityStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.NoError(itemIndex.Upsert(s.ctx, &domain.ItemActivity{ItemID: 1, Published: true, Changed: now}))
	s.NoError(itemIndex.Upsert(s.ctx, &domain.ItemActivity{ItemID: 2, Published: true, Changed: now.Add(time.Hour)}))
	s.NoError(itemIndex.Upsert(s.ctx, &domain.ItemActivity{ItemID: 3, Published: false, Changed: now.Add(2 * time.Hour)}))

	s.NoError(userIndex.InsertBatch(s.ctx, []domain.UserActivity{
		{ItemID: 1, UserID: 1, Published: true, Changed: now},
		{ItemID: 2, UserID: 1, Published: true, Changed: now.Add(time.Hour)},
		{ItemID: 2, UserID: 2, Published: true, Changed: now.Add(time.Hour)},
	}))

	// Unpublished items never show up; newest activity first.
	recent, err := itemIndex.ListRecent(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(recent, 2)
	s.Equal(int64(2), recent[0].ItemID)
	s.Equal(int64(1), recent[1].ItemID)

	byUser, err := userIndex.ListRecentByUser(s.ctx, 2, 10)
	s.NoError(err)
	s.Require().Len(byUser, 1)
	s.Equal(int64(2), byUser[0].ItemID)
}

func (s *PostgresIntegrationSuite) TestStateStore_GetSetRoundTrip() {
	store := NewStateStore(s.db)

	value, err := store.GetInt(s.ctx, "tracker_cursor")
	s.NoError(err)
	s.Equal(int64(0), value)

	s.NoError(store.SetInt(s.ctx, "tracker_cursor", 42))
	s.NoError(store.SetInt(s.ctx, "tracker_cursor", 17))

	value, err = store.GetInt(s.ctx, "tracker_cursor")
	s.NoError(err)
	s.Equal(int64(17), value)
}

// End-to-end check of the documented example: item 5 changed at t=100
// authored by user 1, published comment by user 2 at t=150, then the
// comment goes away.
func (s *PostgresIntegrationSuite) TestTracker_CommentLifecycleAgainstRealStores() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	tracker := service.NewTrackerService(
		NewItemStore(s.db),
		NewCommentStore(s.db),
		NewItemActivityStore(s.db),
		NewUserActivityStore(s.db),
		NewTransactionManager(s.db),
		logger,
	)

	base := time.Now().Truncate(time.Microsecond)
	itemChanged := base
	commentChanged := base.Add(50 * time.Second)

	s.insertItem(5, 1, true, itemChanged)
	item := &domain.Item{ID: 5, UserID: 1, Published: true, Changed: itemChanged}
	s.NoError(tracker.TrackItem(s.ctx, item))

	s.insertComment(10, 5, 2, true, commentChanged)
	comment := &domain.Comment{ID: 10, ItemID: 5, UserID: 2, Published: true, Changed: commentChanged}
	s.NoError(tracker.TrackComment(s.ctx, comment))

	activity, err := NewItemActivityStore(s.db).Get(s.ctx, 5)
	s.NoError(err)
	s.Require().NotNil(activity)
	s.True(activity.Changed.Equal(commentChanged))

	var userCount int
	s.NoError(s.db.GetContext(s.ctx, &userCount, "SELECT COUNT(*) FROM tracker_users WHERE item_id = 5"))
	s.Equal(2, userCount)

	// Delete the comment: the timestamp reverts and user 2 drops out.
	_, err = s.db.ExecContext(s.ctx, "DELETE FROM comments WHERE id = 10")
	s.Require().NoError(err)
	s.NoError(tracker.RemoveComment(s.ctx, comment))

	activity, err = NewItemActivityStore(s.db).Get(s.ctx, 5)
	s.NoError(err)
	s.Require().NotNil(activity)
	s.True(activity.Changed.Equal(itemChanged))

	s.NoError(s.db.GetContext(s.ctx, &userCount, "SELECT COUNT(*) FROM tracker_users WHERE item_id = 5"))
	s.Equal(1, userCount)
}

func (s *PostgresIntegrationSuite) TestSweeper_BackfillsWholeBacklog() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	itemStore := NewItemStore(s.db)
	stateStore := NewStateStore(s.db)
	sweeper := service.NewSweeper(
		itemStore,
		NewCommentStore(s.db),
		NewItemActivityStore(s.db),
		NewUserActivityStore(s.db),
		stateStore,
		NewTransactionManager(s.db),
		logger,
		2,
	)

	now := time.Now().Truncate(time.Microsecond)
	for id := int64(1); id <= 5; id++ {
		s.insertItem(id, 1, true, now)
	}
	s.insertComment(10, 3, 2, true, now.Add(time.Hour))

	s.NoError(sweeper.ResetCursor(s.ctx))

	// Each sweep advances the cursor strictly downward until it hits 0.
	previous := int64(5)
	for {
		stats, err := sweeper.Sweep(s.ctx)
		s.Require().NoError(err)
		if stats.Processed == 0 {
			s.Equal(int64(0), stats.NextCursor)
			break
		}
		s.Less(stats.NextCursor, previous)
		previous = stats.NextCursor
	}

	var itemRows, userRows int
	s.NoError(s.db.GetContext(s.ctx, &itemRows, "SELECT COUNT(*) FROM tracker_items"))
	s.NoError(s.db.GetContext(s.ctx, &userRows, "SELECT COUNT(*) FROM tracker_users"))
	s.Equal(5, itemRows)
	s.Equal(6, userRows)

	activity, err := NewItemActivityStore(s.db).Get(s.ctx, 3)
	s.NoError(err)
	s.Require().NotNil(activity)
	s.True(activity.Changed.Equal(now.Add(time.Hour)))

	cursor, err := stateStore.GetInt(s.ctx, service.CursorKey)
	s.NoError(err)
	s.Equal(int64(0), cursor)
}
