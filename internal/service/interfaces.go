package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"mediafeed/internal/domain"
	"mediafeed/internal/feed"
)

type VideoStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
	GetOwnedByID(ctx context.Context, id, userID int64) (*domain.Video, error)
	GetByExternalID(ctx context.Context, subscriptionID int64, videoID string) (*domain.Video, error)
	FindByProviderVideoID(ctx context.Context, userID int64, provider domain.ProviderKind, videoID string) (*domain.Video, error)
	Upsert(ctx context.Context, video *domain.Video) (int64, error)
	ClearExpiredNew(ctx context.Context, subscriptionID int64, publishedBefore time.Time) (int64, error)
	SetWatched(ctx context.Context, id int64, watched bool) error
	ClearThumb(ctx context.Context, id int64) error
	EarliestUnwatched(ctx context.Context, subscriptionIDs []int64, maxDuration *int64) (*domain.Video, error)
	FirstUnwatched(ctx context.Context, subscriptionID int64, exclude []int64) (*domain.Video, error)
	UnwatchedStats(ctx context.Context, subscriptionIDs []int64) (*domain.UnwatchedStats, error)
}

type SubscriptionStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	GetOwnedByID(ctx context.Context, id, userID int64) (*domain.Subscription, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error)
	ListByFolder(ctx context.Context, folderID, userID int64) ([]domain.Subscription, error)
	ListAll(ctx context.Context) ([]domain.Subscription, error)
	Save(ctx context.Context, sub *domain.Subscription) error
}

type FolderStore interface {
	GetOwnedByID(ctx context.Context, id, userID int64) (*domain.Folder, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Folder, error)
	ChildFolderIDs(ctx context.Context, folderID int64) ([]int64, error)
	ChildSubscriptionIDs(ctx context.Context, folderID int64) ([]int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FeedSource retrieves and parses an external feed.
type FeedSource interface {
	Fetch(ctx context.Context, feedURL string) (*feed.Feed, error)
}

// Publisher emits follow-up jobs onto the bus.
type Publisher interface {
	PublishSubscriptionSync(ctx context.Context, subscriptionID int64, provider domain.ProviderKind) error
	PublishEnrichVideo(ctx context.Context, videoID int64, provider domain.ProviderKind) error
	PublishDownloadVideo(ctx context.Context, videoID int64, provider domain.ProviderKind) error
}
