package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookingType string

const (
	BookingFlight   BookingType = "flight"
	BookingHotel    BookingType = "hotel"
	BookingCar      BookingType = "car"
	BookingTour     BookingType = "tour"
	BookingTransfer BookingType = "transfer"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking is written by the caller right after a successful provider order.
// Details carries the opaque provider payload; TotalPrice reflects its
// pricing fields at creation time and is not re-validated later.
type Booking struct {
	BaseModel
	UserID   uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	TenantID *uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`

	BookingType        BookingType    `gorm:"type:varchar(16);index" json:"booking_type"`
	Status             BookingStatus  `gorm:"type:varchar(16);default:'pending';index" json:"status"`
	PaymentStatus      string         `gorm:"type:varchar(16);default:'unpaid'" json:"payment_status"`
	TotalPrice         float64        `json:"total_price"`
	Currency           string         `gorm:"size:3" json:"currency"`
	Details            datatypes.JSON `gorm:"type:jsonb" json:"details"`
	ProviderOrderID    string         `gorm:"index" json:"provider_order_id"`
	ConfirmationNumber string         `json:"confirmation_number"`
}
