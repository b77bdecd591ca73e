package ports

import (
	"context"

	"repairshop/internal/core/domain/model/kernel"
)

// OutboxMessage is a notification parked in storage after a failed publish,
// waiting for the retry job.
type OutboxMessage struct {
	ID           kernel.UUID
	Notification StatusNotification
	Attempts     int
}

// OutboxRepository stores notifications that could not be published and hands
// them to the retry job.
type OutboxRepository interface {
	// Add parks a notification for later delivery.
	Add(ctx context.Context, notification StatusNotification) error

	// GetPending retrieves up to limit undelivered messages, oldest first.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkDelivered removes a delivered message.
	MarkDelivered(ctx context.Context, id kernel.UUID) error

	// MarkFailed increments the attempt counter of a message that failed again.
	MarkFailed(ctx context.Context, id kernel.UUID) error
}
