package db_models

import (
	"github.com/google/uuid"
)

// FeatureFlag gates optional functionality per tenant. Once a tenant
// context exists a missing row means disabled.
type FeatureFlag struct {
	BaseModel
	TenantID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_tenant_flag" json:"tenant_id"`
	FlagKey   string    `gorm:"uniqueIndex:idx_tenant_flag" json:"flag_key"`
	IsEnabled bool      `gorm:"default:false" json:"is_enabled"`
}
