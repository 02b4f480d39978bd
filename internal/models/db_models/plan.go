package db_models

import (
	"gorm.io/datatypes"
)

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// Plan is a catalog entry. Features holds the flag keys enabled for
// tenants subscribed to this plan; it drives feature-flag sync at checkout.
type Plan struct {
	BaseModel
	Slug                string         `gorm:"uniqueIndex" json:"slug"`
	Name                string         `json:"name"`
	Description         *string        `json:"description,omitempty"`
	PriceMonthly        int64          `json:"price_monthly"`
	PriceYearly         int64          `json:"price_yearly"`
	Currency            string         `gorm:"size:3;default:'SAR'" json:"currency"`
	MaxBookingsPerMonth int            `json:"max_bookings_per_month"`
	MaxMembers          int            `json:"max_members"`
	Features            datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"features"`
	IsActive            bool           `gorm:"default:true" json:"is_active"`
}
