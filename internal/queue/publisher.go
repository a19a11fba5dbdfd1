package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"mediafeed/internal/domain"
)

// Config holds the broker topology shared by publisher and consumer.
type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	Workers    int
}

// Publisher emits job envelopes onto the bus.
type Publisher struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

func NewPublisher(cfg Config, logger *slog.Logger) (*Publisher, error) {
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

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &Publisher{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	err := ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (p *Publisher) PublishSubscriptionSync(ctx context.Context, subscriptionID int64, provider domain.ProviderKind) error {
	return p.publish(ctx, KindSynchroniseSubscription, SynchroniseSubscription{
		SubscriptionID: subscriptionID,
		Provider:       provider,
	})
}

func (p *Publisher) PublishEnrichVideo(ctx context.Context, videoID int64, provider domain.ProviderKind) error {
	return p.publish(ctx, KindEnrichVideo, EnrichVideo{
		VideoID:  videoID,
		Provider: provider,
	})
}

func (p *Publisher) PublishDownloadVideo(ctx context.Context, videoID int64, provider domain.ProviderKind) error {
	return p.publish(ctx, KindDownloadVideo, DownloadVideo{
		VideoID:  videoID,
		Provider: provider,
	})
}

func (p *Publisher) publish(ctx context.Context, kind Kind, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	env := Envelope{
		MessageID: uuid.NewString(),
		Kind:      kind,
		Timestamp: time.Now().UTC(),
		Payload:   raw,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		p.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    env.MessageID,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", kind, err)
	}

	p.logger.Debug("published job", "kind", kind, "message_id", env.MessageID)
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
