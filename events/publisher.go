// Package events publishes order and refund status changes to RabbitMQ so
// downstream services (storefront notifications, analytics) can react.
// Publishing is best-effort: the dashboard contract is re-fetch, not push, so
// a failed publish never fails the transition.
package events

import (
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pandiyanpvt/jsmart-admin-api/config"
)

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

type StatusEvent struct {
	Resource   string    `json:"resource"` // "order" or "refund"
	ID         uint      `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	AdminID    uint      `json:"admin_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewPublisher connects to RabbitMQ and declares the fanout exchange.
// Returns (nil, nil) when no URL is configured; a nil Publisher is a no-op.
func NewPublisher(cfg *config.Config) (*Publisher, error) {
	if cfg.RabbitMQURL == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		cfg.OrderEvents,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: ch, exchange: cfg.OrderEvents}, nil
}

// Publish emits one status-change event. Safe to call on a nil Publisher.
func (p *Publisher) Publish(event StatusEvent) {
	if p == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		return
	}

	err = p.channel.Publish(
		p.exchange,
		"",
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			ContentType:  "application/json",
			Body:         body,
		},
	)
	if err != nil {
		log.Printf("failed to publish %s status event for #%d: %v", event.Resource, event.ID, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
