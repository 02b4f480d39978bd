package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is append-only; privileged mutations record before/after
// snapshots. Rows are never updated or deleted.
type AuditLog struct {
	BaseModel
	Action     string         `gorm:"index" json:"action"`
	EntityType string         `gorm:"index" json:"entity_type"`
	EntityID   string         `gorm:"index" json:"entity_id"`
	Before     datatypes.JSON `gorm:"type:jsonb" json:"before"`
	After      datatypes.JSON `gorm:"type:jsonb" json:"after"`
	ActorID    uuid.UUID      `gorm:"type:uuid;index" json:"actor_id"`
}
