package request_models

import "encoding/json"

// CreateBookingRequest records a booking after a successful provider order.
// Details carries the provider payload unmodified.
type CreateBookingRequest struct {
	BookingType        string          `json:"booking_type"`
	TotalPrice         float64         `json:"total_price"`
	Currency           string          `json:"currency"`
	Details            json.RawMessage `json:"details"`
	ProviderOrderID    string          `json:"provider_order_id"`
	ConfirmationNumber string          `json:"confirmation_number"`
	PaymentStatus      string          `json:"payment_status"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
