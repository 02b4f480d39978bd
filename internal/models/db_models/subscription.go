package db_models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusTrial    SubscriptionStatus = "trial"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusExpired  SubscriptionStatus = "expired"
	SubStatusPastDue  SubscriptionStatus = "past_due"
)

// Subscription drives the paywall gate. One row per tenant; access is
// granted iff status is active/trial and now falls inside the period.
type Subscription struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"tenant_id"`
	PlanID   uuid.UUID `gorm:"type:uuid;index" json:"plan_id"`

	Status             SubscriptionStatus `gorm:"type:varchar(16);index" json:"status"`
	BillingCycle       BillingCycle       `gorm:"type:varchar(16)" json:"billing_cycle"`
	CurrentPeriodStart time.Time          `json:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end"`
	TrialEndsAt        *time.Time         `json:"trial_ends_at,omitempty"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`

	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	Plan   Plan   `gorm:"foreignKey:PlanID" json:"-"`
}

func (s *Subscription) BeforeSave(tx *gorm.DB) error {
	if s.CurrentPeriodEnd.Before(s.CurrentPeriodStart) {
		return errors.New("subscription period end precedes start")
	}
	return nil
}
