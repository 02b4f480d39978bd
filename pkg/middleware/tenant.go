package middleware

import (
	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/response_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

const TenantContextKey = "resolved_tenant"

// TenantResolverMiddleware runs the tenancy state machine once per request:
// verified hostname first, then a /t/{slug} path prefix, otherwise platform
// mode. Callers must read the result before feature or paywall checks.
func TenantResolverMiddleware(tenants services.TenantServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolved, err := tenants.Resolve(c.Request.Context(), c.Request.Host, c.Request.URL.Path)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(TenantContextKey, resolved)
		c.Next()
	}
}

// ResolvedTenantFrom returns the request's tenancy resolution; a missing
// value counts as platform mode.
func ResolvedTenantFrom(c *gin.Context) *response_models.ResolvedTenant {
	v, ok := c.Get(TenantContextKey)
	if !ok {
		return &response_models.ResolvedTenant{Mode: response_models.ModePlatform}
	}
	resolved, ok := v.(*response_models.ResolvedTenant)
	if !ok || resolved == nil {
		return &response_models.ResolvedTenant{Mode: response_models.ModePlatform}
	}
	return resolved
}
