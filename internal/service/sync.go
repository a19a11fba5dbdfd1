package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mediafeed/internal/domain"
	"mediafeed/internal/feed"
)

// SyncService synchronizes one subscription against its external feed.
// It is registered as the per-provider handler for "synchronize
// subscription" jobs; the job is redelivered at least once on failure,
// so every step here is idempotent.
type SyncService struct {
	subscriptions SubscriptionStore
	videos        VideoStore
	source        FeedSource
	txManager     TransactionManager
	enricher      *Enricher
	logger        *slog.Logger
}

func NewSyncService(
	subscriptions SubscriptionStore,
	videos VideoStore,
	source FeedSource,
	txManager TransactionManager,
	enricher *Enricher,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		subscriptions: subscriptions,
		videos:        videos,
		source:        source,
		txManager:     txManager,
		enricher:      enricher,
		logger:        logger.With("component", "sync"),
	}
}

// Synchronize runs one sync pass for the subscription. The decay step,
// the metadata resync and each item upsert commit independently: a
// failure partway leaves the earlier steps durably applied.
func (s *SyncService) Synchronize(ctx context.Context, subscriptionID int64) error {
	sub, err := s.subscriptions.GetByID(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("load subscription %d: %w", subscriptionID, err)
	}

	logger := s.logger.With("subscription", sub.ID, "name", sub.Name)
	logger.Info("starting synchronize")

	decayed, err := s.videos.ClearExpiredNew(ctx, sub.ID, time.Now().UTC().Add(-domain.FreshnessDecay))
	if err != nil {
		return fmt.Errorf("clear expired new flags: %w", err)
	}
	if decayed > 0 {
		logger.Debug("cleared new flags", "count", decayed)
	}

	fetched, err := s.source.Fetch(ctx, sub.ChannelID)
	if err != nil {
		return err
	}

	// Only follow the feed title while the user has not renamed the
	// subscription; equality with the previous channel name is the
	// rename detector.
	if sub.Name == sub.ChannelName {
		sub.Name = fetched.Title
	}
	sub.ChannelName = fetched.Title
	if fetched.ImageURL != "" {
		thumb := feed.ResolveURL(sub.ChannelID, fetched.ImageURL)
		sub.Thumbnail = &thumb
	} else {
		sub.Thumbnail = nil
	}

	if err := s.subscriptions.Save(ctx, sub); err != nil {
		return fmt.Errorf("save subscription metadata: %w", err)
	}

	logger.Info("checking feed items", "count", len(fetched.Items))

	var failed int
	for _, item := range fetched.Items {
		video, err := s.UpsertVideo(ctx, sub, item)
		if err != nil {
			// One bad entry must not block the rest of the feed.
			failed++
			logger.Warn("item upsert failed",
				"external_id", item.ExternalID(),
				"error", err,
			)
			continue
		}

		if s.enricher != nil {
			if err := s.enricher.MaybeEnrich(ctx, video.ID); err != nil {
				logger.Warn("enrichment dispatch failed", "video", video.ID, "error", err)
			}
		}
	}

	logger.Info("synchronize completed",
		"items", len(fetched.Items),
		"failed", failed,
		"decayed", decayed,
	)
	return nil
}

// UpsertVideo creates or updates the video matching the item's external
// identifier. Last-write-wins on every field it touches; a Duration
// absent from the item leaves the stored value alone.
func (s *SyncService) UpsertVideo(ctx context.Context, sub *domain.Subscription, item feed.Item) (*domain.Video, error) {
	externalID := item.ExternalID()
	if externalID == "" {
		return nil, fmt.Errorf("item has no external identifier")
	}

	video, err := s.videos.GetByExternalID(ctx, sub.ID, externalID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		video = &domain.Video{
			SubscriptionID: sub.ID,
			VideoID:        externalID,
			Name:           item.Title,
			Description:    item.Description,
			UploaderName:   sub.Name,
		}
	case err != nil:
		return nil, fmt.Errorf("lookup video %q: %w", externalID, err)
	}

	video.VideoID = externalID
	video.Name = item.Title
	video.New = time.Since(item.Published) <= domain.FreshnessWindow
	video.PublishDate = item.Published.UTC()
	video.Description = item.Description
	if len(item.Authors) > 0 {
		video.UploaderName = strings.Join(item.Authors, ", ")
	}
	if item.Duration != nil {
		video.Duration = item.Duration
	}
	if item.EnclosureURL != "" {
		enclosure := item.EnclosureURL
		video.DownloadedPath = &enclosure
	} else {
		video.DownloadedPath = nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.videos.Upsert(txCtx, video)
		if err != nil {
			return fmt.Errorf("upsert video %q: %w", externalID, err)
		}
		video.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return video, nil
}
