package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"mediafeed/internal/domain"
)

// SyncHandler runs one sync pass for a subscription.
type SyncHandler interface {
	Synchronize(ctx context.Context, subscriptionID int64) error
}

// EnrichHandler dispatches follow-up enrichment for a video.
type EnrichHandler interface {
	MaybeEnrich(ctx context.Context, videoID int64) error
}

// DownloadHandler fetches a video asset.
type DownloadHandler interface {
	Download(ctx context.Context, videoID int64) error
}

// Handlers is the closed dispatch table mapping job kind and provider
// kind to a handler. A job for an unregistered provider is dropped.
type Handlers struct {
	Sync     map[domain.ProviderKind]SyncHandler
	Enrich   map[domain.ProviderKind]EnrichHandler
	Download map[domain.ProviderKind]DownloadHandler
}

// Consumer pulls job envelopes off the queue and dispatches them to a
// pool of workers. Jobs are independent units with no ordering guarantee
// across subscriptions or videos.
type Consumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	queue    string
	workers  int
	handlers Handlers
	logger   *slog.Logger
}

func NewConsumer(cfg Config, handlers Handlers, logger *slog.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	if err := ch.Qos(workers*2, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}

	return &Consumer{
		conn:     conn,
		channel:  ch,
		queue:    cfg.QueueName,
		workers:  workers,
		handlers: handlers,
		logger:   logger.With("component", "consumer"),
	}, nil
}

// Start consumes until the context is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consume: %w", err)
	}

	c.logger.Info("consuming jobs", "queue", c.queue, "workers", c.workers)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for delivery := range deliveries {
				c.handle(ctx, delivery)
			}
		}()
	}

	wg.Wait()
	c.logger.Info("consumer stopped")
	return ctx.Err()
}

func (c *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	var env Envelope
	if err := json.Unmarshal(delivery.Body, &env); err != nil {
		c.logger.Error("malformed envelope, dropping", "error", err)
		_ = delivery.Nack(false, false)
		return
	}

	logger := c.logger.With("kind", env.Kind, "message_id", env.MessageID)

	err := c.dispatch(ctx, env)
	switch {
	case err == nil:
		_ = delivery.Ack(false)

	case errors.Is(err, domain.ErrNotFound):
		// The entity is gone; redelivery can never succeed.
		logger.Warn("job target not found, dropping", "error", err)
		_ = delivery.Ack(false)

	case errors.Is(err, errUnroutable):
		logger.Error("no handler registered, dropping", "error", err)
		_ = delivery.Nack(false, false)

	default:
		// Fetch/parse and transient store failures go back to the
		// queue for at-least-once redelivery.
		logger.Warn("job failed, requeueing", "error", err)
		_ = delivery.Nack(false, true)
	}
}

var errUnroutable = errors.New("unroutable job")

func (c *Consumer) dispatch(ctx context.Context, env Envelope) error {
	switch env.Kind {
	case KindSynchroniseSubscription:
		var msg SynchroniseSubscription
		if err := json.Unmarshal(env.Payload, &msg); err != nil {
			return fmt.Errorf("%w: bad payload: %v", errUnroutable, err)
		}
		handler, ok := c.handlers.Sync[msg.Provider]
		if !ok {
			return fmt.Errorf("%w: no sync handler for provider %q", errUnroutable, msg.Provider)
		}
		return handler.Synchronize(ctx, msg.SubscriptionID)

	case KindEnrichVideo:
		var msg EnrichVideo
		if err := json.Unmarshal(env.Payload, &msg); err != nil {
			return fmt.Errorf("%w: bad payload: %v", errUnroutable, err)
		}
		handler, ok := c.handlers.Enrich[msg.Provider]
		if !ok {
			return fmt.Errorf("%w: no enrich handler for provider %q", errUnroutable, msg.Provider)
		}
		return handler.MaybeEnrich(ctx, msg.VideoID)

	case KindDownloadVideo:
		var msg DownloadVideo
		if err := json.Unmarshal(env.Payload, &msg); err != nil {
			return fmt.Errorf("%w: bad payload: %v", errUnroutable, err)
		}
		handler, ok := c.handlers.Download[msg.Provider]
		if !ok {
			return fmt.Errorf("%w: no download handler for provider %q", errUnroutable, msg.Provider)
		}
		return handler.Download(ctx, msg.VideoID)

	default:
		return fmt.Errorf("%w: unknown kind %q", errUnroutable, env.Kind)
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
