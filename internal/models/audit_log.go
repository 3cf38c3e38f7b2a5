package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditLog records an admin write against a content collection.
type AuditLog struct {
	gorm.Model
	ActorID    string    `gorm:"type:varchar(24);index" json:"actorId"`
	ActorEmail string    `gorm:"type:varchar(255)" json:"actorEmail"`
	Action     string    `gorm:"type:varchar(20);index" json:"action"`
	EntityType string    `gorm:"type:varchar(50);index" json:"entityType"`
	EntityID   string    `gorm:"type:varchar(64)" json:"entityId"`
	Details    JSON      `gorm:"type:jsonb" json:"details,omitempty"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
}
