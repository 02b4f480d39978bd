package response_models

import (
	"tripdesk/internal/models/db_models"
)

const (
	ModeTenant   = "tenant"
	ModePlatform = "platform"
)

// ResolvedTenant is the outcome of the per-request tenancy resolution.
// In platform mode Tenant is nil and every feature is implicitly enabled.
type ResolvedTenant struct {
	Mode     string                    `json:"mode"`
	Tenant   *db_models.Tenant         `json:"tenant,omitempty"`
	Branding *db_models.TenantBranding `json:"branding,omitempty"`
	Flags    map[string]bool           `json:"flags,omitempty"`
}

func (r *ResolvedTenant) PlatformMode() bool {
	return r == nil || r.Tenant == nil
}
