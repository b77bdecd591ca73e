// Package rabbitmq publishes status notifications to a fanout exchange.
// Email, SMS, and chat workers consume downstream; this side only hands the
// message to the broker.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"repairshop/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeName = "notifications_fanout"

// Notifier implements ports.Notifier over an AMQP connection.
type Notifier struct {
	conn *amqp.Connection
}

// Connect dials the broker and returns a ready notifier.
func Connect(url string) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return &Notifier{conn: conn}, nil
}

// Publish sends one notification to the fanout exchange. A short-lived
// channel per publish keeps the connection usable after channel-level errors.
func (n *Notifier) Publish(ctx context.Context, notification ports.StatusNotification) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Close releases the AMQP connection.
func (n *Notifier) Close() error {
	if n.conn == nil || n.conn.IsClosed() {
		return nil
	}
	return n.conn.Close()
}
