//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"mediafeed/internal/domain"
	"mediafeed/testdata/utils"
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
			filepath.Join(migrationsPath, "001_create_catalog.up.sql"),
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
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM videos")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM subscriptions")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM folders")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createSubscription(userID int64) *domain.Subscription {
	sub := &domain.Subscription{
		UserID:      userID,
		Provider:    domain.ProviderRSS,
		ChannelID:   "http://feeds.example.com/rss.xml",
		Name:        "Test Show",
		ChannelName: "Test Show",
	}
	_, err := NewSubscriptionStore(s.db).Create(s.ctx, sub)
	s.Require().NoError(err)
	return sub
}

func (s *PostgresIntegrationSuite) TestVideoStore_Upsert_Insert() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)
	now := time.Now().Truncate(time.Microsecond)

	video := &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "ep-001",
		Name:           "Episode One",
		Description:    "the first one",
		UploaderName:   "Alice",
		PublishDate:    now,
		Duration:       utils.Ptr(int64(1800)),
		New:            true,
	}

	id, err := store.Upsert(s.ctx, video)
	s.NoError(err)
	s.Greater(id, int64(0))

	stored, err := store.GetByExternalID(s.ctx, sub.ID, "ep-001")
	s.Require().NoError(err)
	s.Equal(id, stored.ID)
	s.Equal("Episode One", stored.Name)
	s.True(stored.New)
	s.Require().NotNil(stored.Duration)
	s.Equal(int64(1800), *stored.Duration)
}

func (s *PostgresIntegrationSuite) TestVideoStore_Upsert_UpdateKeepsID() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)
	now := time.Now().Truncate(time.Microsecond)

	video := &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "ep-001",
		Name:           "Original",
		PublishDate:    now,
	}
	id1, err := store.Upsert(s.ctx, video)
	s.NoError(err)

	video.Name = "Retitled"
	video.Duration = utils.Ptr(int64(900))
	id2, err := store.Upsert(s.ctx, video)
	s.NoError(err)
	s.Equal(id1, id2)

	stored, err := store.GetByID(s.ctx, id1)
	s.Require().NoError(err)
	s.Equal("Retitled", stored.Name)
	s.Require().NotNil(stored.Duration)
	s.Equal(int64(900), *stored.Duration)
}

func (s *PostgresIntegrationSuite) TestVideoStore_GetOwnedByID_EnforcesOwnership() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)
	now := time.Now()

	id, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "ep-001",
		PublishDate:    now,
	})
	s.Require().NoError(err)

	owned, err := store.GetOwnedByID(s.ctx, id, 1)
	s.NoError(err)
	s.Equal(id, owned.ID)

	_, err = store.GetOwnedByID(s.ctx, id, 2)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestVideoStore_ClearExpiredNew() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)
	now := time.Now().Truncate(time.Microsecond)

	oldID, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "stale",
		PublishDate:    now.Add(-48 * time.Hour),
		New:            true,
	})
	s.Require().NoError(err)

	freshID, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "fresh",
		PublishDate:    now.Add(-time.Hour),
		New:            true,
	})
	s.Require().NoError(err)

	cleared, err := store.ClearExpiredNew(s.ctx, sub.ID, now.Add(-24*time.Hour))
	s.NoError(err)
	s.Equal(int64(1), cleared)

	stale, err := store.GetByID(s.ctx, oldID)
	s.Require().NoError(err)
	s.False(stale.New)

	fresh, err := store.GetByID(s.ctx, freshID)
	s.Require().NoError(err)
	s.True(fresh.New)
}

func (s *PostgresIntegrationSuite) TestVideoStore_SetWatched() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)

	id, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "ep-001",
		PublishDate:    time.Now(),
	})
	s.Require().NoError(err)

	s.NoError(store.SetWatched(s.ctx, id, true))

	stored, err := store.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.True(stored.Watched)

	s.ErrorIs(store.SetWatched(s.ctx, 99999, true), domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestVideoStore_ClearThumb() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)

	id, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "ep-001",
		PublishDate:    time.Now(),
		Thumb:          utils.Ptr("/thumbs/gone.jpg"),
	})
	s.Require().NoError(err)

	s.NoError(store.ClearThumb(s.ctx, id))

	stored, err := store.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(stored.Thumb)
}

func (s *PostgresIntegrationSuite) TestVideoStore_EarliestUnwatched() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "newest",
		PublishDate:    now,
		Duration:       utils.Ptr(int64(600)),
	})
	s.Require().NoError(err)

	oldestID, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "oldest",
		PublishDate:    now.Add(-72 * time.Hour),
		Duration:       utils.Ptr(int64(3000)),
	})
	s.Require().NoError(err)

	picked, err := store.EarliestUnwatched(s.ctx, []int64{sub.ID}, nil)
	s.Require().NoError(err)
	s.Equal(oldestID, picked.ID)

	// A duration cap skips the long oldest video.
	capped, err := store.EarliestUnwatched(s.ctx, []int64{sub.ID}, utils.Ptr(int64(1200)))
	s.Require().NoError(err)
	s.Equal("newest", capped.VideoID)
}

func (s *PostgresIntegrationSuite) TestVideoStore_EarliestUnwatched_CapExcludesUnknownDuration() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)

	_, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "no-duration",
		PublishDate:    time.Now(),
	})
	s.Require().NoError(err)

	_, err = store.EarliestUnwatched(s.ctx, []int64{sub.ID}, utils.Ptr(int64(1200)))
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestVideoStore_FirstUnwatched_Excludes() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)
	now := time.Now().Truncate(time.Microsecond)

	firstID, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "first",
		PublishDate:    now.Add(-2 * time.Hour),
	})
	s.Require().NoError(err)

	secondID, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "second",
		PublishDate:    now.Add(-time.Hour),
	})
	s.Require().NoError(err)

	picked, err := store.FirstUnwatched(s.ctx, sub.ID, []int64{})
	s.Require().NoError(err)
	s.Equal(firstID, picked.ID)

	picked, err = store.FirstUnwatched(s.ctx, sub.ID, []int64{firstID})
	s.Require().NoError(err)
	s.Equal(secondID, picked.ID)

	_, err = store.FirstUnwatched(s.ctx, sub.ID, []int64{firstID, secondID})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestVideoStore_UnwatchedStats() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)
	now := time.Now()

	_, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID, VideoID: "a", PublishDate: now, Duration: utils.Ptr(int64(600)),
	})
	s.Require().NoError(err)
	_, err = store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID, VideoID: "b", PublishDate: now, Duration: utils.Ptr(int64(900)),
	})
	s.Require().NoError(err)
	watchedID, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID, VideoID: "c", PublishDate: now, Duration: utils.Ptr(int64(1200)),
	})
	s.Require().NoError(err)
	s.Require().NoError(store.SetWatched(s.ctx, watchedID, true))

	stats, err := store.UnwatchedStats(s.ctx, []int64{sub.ID})
	s.Require().NoError(err)
	s.Equal(int64(2), stats.Count)
	s.Equal(int64(1500), stats.Duration)

	empty, err := store.UnwatchedStats(s.ctx, []int64{})
	s.Require().NoError(err)
	s.Equal(int64(0), empty.Count)
}

func (s *PostgresIntegrationSuite) TestVideoStore_FindByProviderVideoID() {
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)

	id, err := store.Upsert(s.ctx, &domain.Video{
		SubscriptionID: sub.ID,
		VideoID:        "abc123",
		PublishDate:    time.Now(),
	})
	s.Require().NoError(err)

	found, err := store.FindByProviderVideoID(s.ctx, 1, domain.ProviderRSS, "abc123")
	s.Require().NoError(err)
	s.Equal(id, found.ID)

	_, err = store.FindByProviderVideoID(s.ctx, 2, domain.ProviderRSS, "abc123")
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = store.FindByProviderVideoID(s.ctx, 1, domain.ProviderYoutube, "abc123")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_SaveAndList() {
	store := NewSubscriptionStore(s.db)
	sub := s.createSubscription(1)

	sub.Name = "Renamed"
	sub.ChannelName = "Feed Title"
	sub.Thumbnail = utils.Ptr("http://example.com/cover.jpg")
	s.NoError(store.Save(s.ctx, sub))

	stored, err := store.GetByID(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.Equal("Renamed", stored.Name)
	s.Equal("Feed Title", stored.ChannelName)
	s.Require().NotNil(stored.Thumbnail)

	subs, err := store.ListByUser(s.ctx, 1)
	s.NoError(err)
	s.Len(subs, 1)

	subs, err = store.ListByUser(s.ctx, 2)
	s.NoError(err)
	s.Len(subs, 0)

	s.ErrorIs(store.Save(s.ctx, &domain.Subscription{ID: 99999}), domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestFolderStore_TreeQueries() {
	folders := NewFolderStore(s.db)
	subs := NewSubscriptionStore(s.db)

	root := &domain.Folder{UserID: 1, Name: "Root"}
	_, err := folders.Create(s.ctx, root)
	s.Require().NoError(err)

	child := &domain.Folder{UserID: 1, Name: "Child", ParentID: &root.ID}
	_, err = folders.Create(s.ctx, child)
	s.Require().NoError(err)

	sub := &domain.Subscription{
		UserID:         1,
		Provider:       domain.ProviderRSS,
		ChannelID:      "http://feeds.example.com/a.xml",
		Name:           "A",
		ParentFolderID: &root.ID,
	}
	_, err = subs.Create(s.ctx, sub)
	s.Require().NoError(err)

	roots, err := folders.ListByUser(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(roots, 1)
	s.Equal("Root", roots[0].Name)

	childIDs, err := folders.ChildFolderIDs(s.ctx, root.ID)
	s.NoError(err)
	s.Equal([]int64{child.ID}, childIDs)

	subIDs, err := folders.ChildSubscriptionIDs(s.ctx, root.ID)
	s.NoError(err)
	s.Equal([]int64{sub.ID}, subIDs)

	scoped, err := subs.ListByFolder(s.ctx, root.ID, 1)
	s.NoError(err)
	s.Len(scoped, 1)

	_, err = folders.GetOwnedByID(s.ctx, root.ID, 2)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := store.Upsert(ctx, &domain.Video{
			SubscriptionID: sub.ID,
			VideoID:        "tx-ep",
			PublishDate:    time.Now(),
		})
		return err
	})
	s.NoError(err)

	_, err = store.GetByExternalID(s.ctx, sub.ID, "tx-ep")
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewVideoStore(s.db)
	sub := s.createSubscription(1)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := store.Upsert(ctx, &domain.Video{
			SubscriptionID: sub.ID,
			VideoID:        "rollback-ep",
			PublishDate:    time.Now(),
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	_, err = store.GetByExternalID(s.ctx, sub.ID, "rollback-ep")
	s.ErrorIs(err, domain.ErrNotFound)
}
