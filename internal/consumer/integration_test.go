//go:build integration

package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"content_tracker/internal/domain"
)

type captureHandler struct {
	events chan *domain.ContentEvent
}

func (h *captureHandler) HandleEvent(_ context.Context, event *domain.ContentEvent) error {
	h.events <- event
	return nil
}

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) publish(cfg Config, body []byte) {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	err = ch.PublishWithContext(s.ctx, cfg.Exchange, cfg.RoutingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	s.Require().NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestConsumer_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
		Timeout:    5 * time.Second,
	}

	handler := &captureHandler{events: make(chan *domain.ContentEvent, 1)}
	cons, err := NewRabbitMQ(cfg, handler, s.logger)
	s.NoError(err)
	s.NotNil(cons)

	err = cons.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestConsumer_ReceivesItemEvent() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-item",
		RoutingKey: "test-routing-key-item",
		QueueName:  "test-queue-item",
		Timeout:    5 * time.Second,
	}

	handler := &captureHandler{events: make(chan *domain.ContentEvent, 1)}
	cons, err := NewRabbitMQ(cfg, handler, s.logger)
	s.Require().NoError(err)
	defer cons.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go func() { _ = cons.Start(ctx) }()

	now := time.Now().Truncate(time.Millisecond).UTC()
	event := domain.ContentEvent{
		Action: domain.ActionCreate,
		Kind:   domain.KindItem,
		Item: &domain.Item{
			ID:        5,
			UserID:    1,
			Published: true,
			Changed:   now,
			Title:     "Test Item",
		},
		Timestamp: now,
	}
	body, err := json.Marshal(event)
	s.Require().NoError(err)

	s.publish(cfg, body)

	select {
	case received := <-handler.events:
		s.Equal(domain.ActionCreate, received.Action)
		s.Equal(domain.KindItem, received.Kind)
		s.Require().NotNil(received.Item)
		s.Equal(int64(5), received.Item.ID)
		s.Equal("Test Item", received.Item.Title)
	case <-time.After(10 * time.Second):
		s.Fail("timed out waiting for event")
	}
}

func (s *RabbitMQIntegrationSuite) TestConsumer_ReceivesCommentEvent() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-comment",
		RoutingKey: "test-routing-key-comment",
		QueueName:  "test-queue-comment",
		Timeout:    5 * time.Second,
	}

	handler := &captureHandler{events: make(chan *domain.ContentEvent, 1)}
	cons, err := NewRabbitMQ(cfg, handler, s.logger)
	s.Require().NoError(err)
	defer cons.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go func() { _ = cons.Start(ctx) }()

	now := time.Now().Truncate(time.Millisecond).UTC()
	event := domain.ContentEvent{
		Action: domain.ActionDelete,
		Kind:   domain.KindComment,
		Comment: &domain.Comment{
			ID:        10,
			ItemID:    5,
			UserID:    2,
			Published: true,
			Changed:   now,
		},
		Timestamp: now,
	}
	body, err := json.Marshal(event)
	s.Require().NoError(err)

	s.publish(cfg, body)

	select {
	case received := <-handler.events:
		s.Equal(domain.ActionDelete, received.Action)
		s.Equal(domain.KindComment, received.Kind)
		s.Require().NotNil(received.Comment)
		s.Equal(int64(10), received.Comment.ID)
		s.Equal(int64(5), received.Comment.ItemID)
	case <-time.After(10 * time.Second):
		s.Fail("timed out waiting for event")
	}
}

func (s *RabbitMQIntegrationSuite) TestConsumer_DropsMalformedMessage() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-malformed",
		RoutingKey: "test-routing-key-malformed",
		QueueName:  "test-queue-malformed",
		Timeout:    5 * time.Second,
	}

	handler := &captureHandler{events: make(chan *domain.ContentEvent, 2)}
	cons, err := NewRabbitMQ(cfg, handler, s.logger)
	s.Require().NoError(err)
	defer cons.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go func() { _ = cons.Start(ctx) }()

	s.publish(cfg, []byte("not json"))

	// A valid event after the bad one proves the consumer kept going.
	now := time.Now().UTC()
	event := domain.ContentEvent{
		Action:    domain.ActionDelete,
		Kind:      domain.KindItem,
		Item:      &domain.Item{ID: 7},
		Timestamp: now,
	}
	body, err := json.Marshal(event)
	s.Require().NoError(err)
	s.publish(cfg, body)

	select {
	case received := <-handler.events:
		s.Require().NotNil(received.Item)
		s.Equal(int64(7), received.Item.ID)
	case <-time.After(10 * time.Second):
		s.Fail("timed out waiting for event")
	}
}
