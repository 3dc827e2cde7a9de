// Package domain holds the append-only audit trail for admin mutations.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	Actor     string            `gorm:"not null" json:"actor"`
	Action    string            `gorm:"not null" json:"action"`
	Target    string            `gorm:"not null" json:"target"`
	Payload   datatypes.JSONMap `json:"payload"`
	CreatedAt time.Time         `gorm:"not null" json:"createdAt"`
}

func (AuditLog) TableName() string { return "audit_logs" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, entry *AuditLog) error
}

type Service interface {
	// AuditLog records an admin action; failures are logged, never
	// propagated to the caller's request.
	AuditLog(ctx context.Context, actor, action, target string, payload map[string]any)
}
