// Package outboxrepo stores notifications that failed to publish so the
// retry job can deliver them later.
package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutboxMessageDTO represents one parked notification in the database.
type OutboxMessageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	Attempts  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (OutboxMessageDTO) TableName() string {
	return "notification_outbox"
}

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add parks a notification for later delivery.
func (r *GormOutboxRepository) Add(ctx context.Context, notification ports.StatusNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	dto := OutboxMessageDTO{
		ID:        kernel.NewUUID().Bytes(),
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit undelivered messages, oldest first.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		var notification ports.StatusNotification
		if err = json.Unmarshal(dto.Payload, &notification); err != nil {
			return nil, err
		}

		messages = append(messages, ports.OutboxMessage{
			ID:           id,
			Notification: notification,
			Attempts:     dto.Attempts,
		})
	}

	return messages, nil
}

// MarkDelivered removes a delivered message.
func (r *GormOutboxRepository) MarkDelivered(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&OutboxMessageDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}

	return nil
}

// MarkFailed increments the attempt counter of a message that failed again.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID) error {
	return r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}
