package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type PaymentController struct {
	gateway services.PaymentGatewayService
}

func NewPaymentController(gateway services.PaymentGatewayService) *PaymentController {
	return &PaymentController{gateway: gateway}
}

// Gateway dispatches create_invoice, fetch_payment and refund_payment to
// the payment provider and forwards the provider body verbatim.
func (p *PaymentController) Gateway(c *gin.Context) {
	var request request_models.GatewayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	body, err := p.gateway.Handle(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}
