package db_models

import (
	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceDraft    InvoiceStatus = "draft"
	InvoicePending  InvoiceStatus = "pending"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceFailed   InvoiceStatus = "failed"
	InvoiceRefunded InvoiceStatus = "refunded"
	InvoiceVoid     InvoiceStatus = "void"
)

// Invoice is created at checkout; status moves via the payment-provider
// callback. AmountMinor is in the smallest currency unit.
type Invoice struct {
	BaseModel
	TenantID       uuid.UUID     `gorm:"type:uuid;index" json:"tenant_id"`
	SubscriptionID *uuid.UUID    `gorm:"type:uuid;index" json:"subscription_id,omitempty"`
	PlanID         *uuid.UUID    `gorm:"type:uuid;index" json:"plan_id,omitempty"`
	BillingCycle   BillingCycle  `gorm:"type:varchar(16)" json:"billing_cycle"`
	InvoiceNumber  string        `gorm:"uniqueIndex" json:"invoice_number"`
	AmountMinor    int64         `json:"amount"`
	Currency       string        `gorm:"size:3" json:"currency"`
	Status         InvoiceStatus `gorm:"type:varchar(16);default:'draft';index" json:"status"`
	ProviderRef    string        `gorm:"index" json:"provider_ref"`
}
