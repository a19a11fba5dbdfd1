package service

import (
	"context"
	"fmt"
	"log/slog"
)

// Enricher decides, after a sync pass, whether a video still needs
// provider-specific follow-up (duration, thumbnail, download resolution)
// and emits at most one enrichment job for it.
type Enricher struct {
	videos        VideoStore
	subscriptions SubscriptionStore
	publisher     Publisher
	logger        *slog.Logger
}

func NewEnricher(videos VideoStore, subscriptions SubscriptionStore, publisher Publisher, logger *slog.Logger) *Enricher {
	return &Enricher{
		videos:        videos,
		subscriptions: subscriptions,
		publisher:     publisher,
		logger:        logger.With("component", "enrich"),
	}
}

// MaybeEnrich enqueues an enrichment job when the video has no
// downloaded asset and is missing duration or thumbnail. Once a
// successful enrichment fills those fields, re-invocation is a no-op,
// which keeps the trigger idempotent under job redelivery.
func (e *Enricher) MaybeEnrich(ctx context.Context, videoID int64) error {
	video, err := e.videos.GetByID(ctx, videoID)
	if err != nil {
		return fmt.Errorf("load video %d: %w", videoID, err)
	}

	if video.Downloaded() {
		return nil
	}

	missingDuration := video.Duration == nil || *video.Duration == 0
	missingThumb := video.Thumb == nil || *video.Thumb == ""
	if !missingDuration && !missingThumb {
		return nil
	}

	sub, err := e.subscriptions.GetByID(ctx, video.SubscriptionID)
	if err != nil {
		return fmt.Errorf("load subscription %d: %w", video.SubscriptionID, err)
	}

	if err := e.publisher.PublishEnrichVideo(ctx, video.ID, sub.Provider); err != nil {
		return fmt.Errorf("publish enrich job: %w", err)
	}

	e.logger.Debug("enrichment job enqueued", "video", video.ID, "provider", sub.Provider)
	return nil
}

// FeedEnrichment is the terminal job handler for feed-native providers.
// An RSS item carries all the metadata it will ever have in the feed
// itself, so the job completes here with nothing left to fetch.
// API-backed providers register their own handler in its place.
type FeedEnrichment struct {
	logger *slog.Logger
}

func NewFeedEnrichment(logger *slog.Logger) *FeedEnrichment {
	return &FeedEnrichment{logger: logger.With("component", "enrich")}
}

func (f *FeedEnrichment) MaybeEnrich(_ context.Context, videoID int64) error {
	f.logger.Debug("no enrichment backend for feed-native video", "video", videoID)
	return nil
}
