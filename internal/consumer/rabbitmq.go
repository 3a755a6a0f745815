package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"content_tracker/internal/domain"
)

// Handler processes one decoded content event. The consumer invokes it
// synchronously, one delivery at a time.
type Handler interface {
	HandleEvent(ctx context.Context, event *domain.ContentEvent) error
}

type RabbitMQ struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	handler   Handler
	timeout   time.Duration
	logger    *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	Timeout    time.Duration
}

func NewRabbitMQ(cfg Config, handler Handler, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
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
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	// One in-flight delivery keeps the single-writer-per-event
	// semantics of the handlers.
	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", q.Name,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:      conn,
		channel:   ch,
		queueName: q.Name,
		handler:   handler,
		timeout:   cfg.Timeout,
		logger:    logger,
	}, nil
}

// Start consumes deliveries until the context is cancelled or the
// delivery channel closes.
func (c *RabbitMQ) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		c.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.Info("consumer started", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer stopped")
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handleDelivery(ctx, delivery)
		}
	}
}

func (c *RabbitMQ) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	var event domain.ContentEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		c.logger.Error("failed to decode event, dropping", "error", err)
		_ = delivery.Nack(false, false)
		return
	}

	handleCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.handler.HandleEvent(handleCtx, &event); err != nil {
		// Invalid events can never succeed; requeueing one would
		// block the queue forever with a prefetch of 1.
		if errors.Is(err, domain.ErrInvalidEvent) {
			c.logger.Error("invalid event, dropping",
				"action", event.Action,
				"kind", event.Kind,
				"error", err,
			)
			_ = delivery.Nack(false, false)
			return
		}
		c.logger.Error("failed to handle event, requeueing",
			"action", event.Action,
			"kind", event.Kind,
			"error", err,
		)
		_ = delivery.Nack(false, true)
		return
	}

	_ = delivery.Ack(false)

	c.logger.Debug("handled event",
		"action", event.Action,
		"kind", event.Kind,
	)
}

func (c *RabbitMQ) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
