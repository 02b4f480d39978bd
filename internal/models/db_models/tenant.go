package db_models

import (
	"github.com/google/uuid"
)

type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantSuspended TenantStatus = "suspended"
	TenantTrial     TenantStatus = "trial"
)

// Tenant is one isolated storefront instance sharing the deployment.
// Slug is immutable once created; storefront routing depends on it.
type Tenant struct {
	BaseModel
	Name         string       `json:"name"`
	Slug         string       `gorm:"uniqueIndex" json:"slug"`
	Status       TenantStatus `gorm:"type:varchar(16);default:'trial';index" json:"status"`
	Plan         string       `json:"plan"`
	OwnerID      uuid.UUID    `gorm:"index" json:"owner_id"`
	ContactEmail string       `json:"contact_email"`
	ContactPhone string       `json:"contact_phone"`
}

// TenantBranding holds cosmetic/contact overrides. One row per tenant,
// created lazily on first save.
type TenantBranding struct {
	BaseModel
	TenantID       uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"tenant_id"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	FontFamily     string    `json:"font_family"`
	LogoURL        string    `json:"logo_url"`
	SupportEmail   string    `json:"support_email"`
	SupportPhone   string    `json:"support_phone"`
	FooterText     string    `json:"footer_text"`
	CustomCSS      string    `gorm:"type:text" json:"custom_css"`

	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// TenantDomain maps a verified hostname to its tenant for storefront
// resolution. Unverified rows are ignored by the resolver.
type TenantDomain struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;index" json:"tenant_id"`
	Domain   string    `gorm:"uniqueIndex" json:"domain"`
	Verified bool      `gorm:"default:false" json:"verified"`

	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}
