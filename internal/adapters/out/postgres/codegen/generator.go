// Package codegen issues the sequential display codes printed on order
// tickets. Counters live in postgres, sharded per day and hour.
package codegen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// CounterDTO is one counter shard. The key embeds the day and hour so
// concurrent creations only contend within the same hour.
type CounterDTO struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value int    `gorm:"not null"`
}

// TableName specifies the database table name for counter shards.
func (CounterDTO) TableName() string {
	return "order_code_counters"
}

// GormOrderCodeGenerator implements OrderCodeGenerator on a postgres counter
// table. Codes look like "20260829-14-003": day shard, hour shard, sequence.
type GormOrderCodeGenerator struct {
	db  *gorm.DB
	log *slog.Logger
}

// NewGormOrderCodeGenerator creates a postgres-backed code generator.
func NewGormOrderCodeGenerator(db *gorm.DB, log *slog.Logger) *GormOrderCodeGenerator {
	return &GormOrderCodeGenerator{db: db, log: log}
}

// Next returns the next code for the given moment. The increment is a single
// atomic upsert, so two concurrent creations never share a code. When the
// counter write fails the generator degrades to a timestamp-derived code
// instead of failing the order.
func (g *GormOrderCodeGenerator) Next(ctx context.Context, now time.Time) (string, error) {
	day := now.Format("20060102")
	hour := now.Format("15")
	key := fmt.Sprintf("pedido-%s-%s", day, hour)

	var value int
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO order_code_counters (key, value)
		VALUES (?, 1)
		ON CONFLICT (key) DO UPDATE SET value = order_code_counters.value + 1
		RETURNING value
	`, key).Scan(&value).Error
	if err != nil {
		g.log.Warn("order code counter unavailable, using timestamp fallback", "error", err)
		return fmt.Sprintf("%s-%s-%d", day, hour, now.UnixMilli()%100000), nil
	}

	return fmt.Sprintf("%s-%s-%03d", day, hour, value), nil
}
