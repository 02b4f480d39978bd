package request_models

import "github.com/google/uuid"

type CreateTenantRequest struct {
	Name         string    `json:"name"`
	Plan         string    `json:"plan"`
	OwnerID      uuid.UUID `json:"owner_id"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
}

type UpdateTenantStatusRequest struct {
	Status string `json:"status"`
}

type UpsertBrandingRequest struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	LogoURL        string `json:"logo_url"`
	SupportEmail   string `json:"support_email"`
	SupportPhone   string `json:"support_phone"`
	FooterText     string `json:"footer_text"`
	CustomCSS      string `json:"custom_css"`
}

type SetFeatureFlagRequest struct {
	FlagKey   string `json:"flag_key"`
	IsEnabled bool   `json:"is_enabled"`
}

type AddDomainRequest struct {
	Domain string `json:"domain"`
}

type AssignRoleRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

type CheckoutRequest struct {
	PlanSlug     string `json:"plan_slug"`
	BillingCycle string `json:"billing_cycle"`
}

type PaymentCallbackRequest struct {
	InvoiceNumber string `json:"invoice_number"`
	Status        string `json:"status"`
	ProviderRef   string `json:"provider_ref"`
}
