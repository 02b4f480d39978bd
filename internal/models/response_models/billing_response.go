package response_models

import "tripdesk/internal/models/db_models"

type CheckoutResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	AmountMinor   int64  `json:"amount"`
	Currency      string `json:"currency"`
	PlanSlug      string `json:"plan_slug"`
}

type AccessResponse struct {
	Allowed bool                         `json:"allowed"`
	Status  db_models.SubscriptionStatus `json:"status,omitempty"`
}
