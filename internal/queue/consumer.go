package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/higholive/party-api/internal/notify"
	"github.com/higholive/party-api/internal/repository"
)

// Consumer drains the reservation.created queue and forwards each payload
// to the automation webhook. A payload whose delivery exhausts all retries
// is written to failed_notifications for manual replay, then acknowledged:
// a broken third party must never wedge the queue.
type Consumer struct {
	URL     string
	Webhook *notify.Webhook
	Failed  *repository.NotificationRepo
	Log     *zap.Logger
}

// NewConsumer returns a Consumer for the given broker URL.
func NewConsumer(url string, wh *notify.Webhook, failed *repository.NotificationRepo, log *zap.Logger) *Consumer {
	return &Consumer{URL: url, Webhook: wh, Failed: failed, Log: log}
}

// Start connects to RabbitMQ and consumes until the broker goes away, then
// reconnects with capped exponential backoff. It never returns under
// normal operation and is meant to run in its own goroutine.
func (c *Consumer) Start() {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			c.Log.Warn("notifier: failed to dial broker, retrying",
				zap.Error(err), zap.Duration("backoff", backoff))
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := c.consumeLoop(conn); err != nil {
			c.Log.Warn("notifier: consume loop ended, reconnecting", zap.Error(err))
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func (c *Consumer) consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		c.Log.Warn("notifier: set QoS failed", zap.Error(err))
	}

	if _, err := ch.QueueDeclare(ReservationQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(ReservationQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.handleMessage(d.Body); err != nil {
			c.Log.Error("notifier: handle message failed", zap.Error(err))
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// handleMessage attempts webhook delivery; retries live inside the webhook
// itself. An exhausted delivery is persisted, which counts as handled.
func (c *Consumer) handleMessage(body []byte) error {
	var ev ReservationCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	payload, err := json.Marshal(WebhookBody{Reservation: ev.Reservation})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := c.Webhook.Notify(ctx, payload); err != nil {
		c.Log.Error("notifier: delivery exhausted, recording for manual replay",
			zap.String("reservation_id", ev.Reservation.ReservationID),
			zap.Error(err))
		failed := &repository.FailedNotification{
			ID:        ev.ID,
			Payload:   body,
			Attempts:  c.Webhook.MaxAttempts,
			LastError: err.Error(),
			CreatedAt: time.Now().UTC(),
		}
		if insErr := c.Failed.Insert(ctx, failed); insErr != nil {
			return fmt.Errorf("record failed notification: %w", insErr)
		}
	}
	return nil
}
