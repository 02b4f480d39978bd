package middleware

import (
	"github.com/gin-gonic/gin"

	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

// PaywallMiddleware blocks gated mutations when the resolved tenant's
// subscription is not current. Platform mode and enforce=false always pass.
func PaywallMiddleware(billing services.BillingServiceInterface, enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolved := ResolvedTenantFrom(c)

		if err := billing.CheckAccess(c.Request.Context(), resolved, enforce); err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
