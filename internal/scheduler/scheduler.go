package scheduler

import (
	"context"
	"log/slog"
	"time"

	"mediafeed/internal/domain"
	"mediafeed/internal/service"
)

// Scheduler periodically enqueues one synchronize job per subscription.
// The jobs themselves run in the consumer worker pool; the scheduler
// holds no catalog locks and does no fetching.
type Scheduler struct {
	subscriptions service.SubscriptionStore
	publisher     service.Publisher
	interval      time.Duration
	logger        *slog.Logger
}

func NewScheduler(subscriptions service.SubscriptionStore, publisher service.Publisher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		subscriptions: subscriptions,
		publisher:     publisher,
		interval:      interval,
		logger:        logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.enqueueAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.enqueueAll(ctx)
		}
	}
}

func (s *Scheduler) enqueueAll(ctx context.Context) {
	enqueueCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	subs, err := s.subscriptions.ListAll(enqueueCtx)
	if err != nil {
		s.logger.Error("list subscriptions failed", "error", err)
		return
	}

	var published int
	for _, sub := range subs {
		provider := sub.Provider
		if provider == "" {
			provider = domain.ProviderRSS
		}
		if err := s.publisher.PublishSubscriptionSync(enqueueCtx, sub.ID, provider); err != nil {
			s.logger.Error("enqueue sync failed", "subscription", sub.ID, "error", err)
			continue
		}
		published++
	}

	s.logger.Info("sync jobs enqueued", "subscriptions", len(subs), "published", published)
}
