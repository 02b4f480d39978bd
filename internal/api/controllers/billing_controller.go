package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/middleware"
	"tripdesk/pkg/utils"
)

type BillingController struct {
	billing services.BillingServiceInterface
}

func NewBillingController(billing services.BillingServiceInterface) *BillingController {
	return &BillingController{billing: billing}
}

func (b *BillingController) ListPlans(c *gin.Context) {
	plans, err := b.billing.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (b *BillingController) Checkout(c *gin.Context) {
	actor, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resolved := middleware.ResolvedTenantFrom(c)
	if resolved.PlatformMode() {
		utils.RespondError(c, http.StatusBadRequest, "Checkout requires a tenant context")
		return
	}

	var request request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkout, err := b.billing.Checkout(c.Request.Context(), resolved.Tenant.ID, request, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout created successfully")
}

// Access lets the storefront probe the paywall gate without mutating
// anything.
func (b *BillingController) Access(c *gin.Context) {
	resolved := middleware.ResolvedTenantFrom(c)

	err := b.billing.CheckAccess(c.Request.Context(), resolved, true)
	utils.RespondSuccess(c, response_models.AccessResponse{Allowed: err == nil}, "Access evaluated")
}

// PaymentCallback is the provider-callback placeholder; it moves invoice
// status and activates the subscription on payment.
func (b *BillingController) PaymentCallback(c *gin.Context) {
	var request request_models.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := b.billing.HandlePaymentCallback(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Callback processed")
}
