package ports

import (
	"context"
	"time"
)

// StatusNotification is the message published when an order's status changes.
// Downstream consumers (email, SMS, chat workers) fan out from it.
type StatusNotification struct {
	OrderID      string    `json:"order_id"`
	OrderCode    string    `json:"order_code"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	SectorID     string    `json:"sector_id,omitempty"`
	Terminal     bool      `json:"terminal"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Notifier publishes status notifications to the outside world. Publishing is
// best effort: callers log failures and fall back to the outbox, they never
// fail the originating command.
type Notifier interface {
	// Publish sends one notification. A returned error means the message did
	// not reach the broker.
	Publish(ctx context.Context, notification StatusNotification) error

	// Close releases the underlying connection.
	Close() error
}
