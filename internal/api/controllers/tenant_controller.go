package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/middleware"
	"tripdesk/pkg/utils"
)

type TenantController struct {
	tenants services.TenantServiceInterface
}

func NewTenantController(tenants services.TenantServiceInterface) *TenantController {
	return &TenantController{tenants: tenants}
}

// Current returns the tenancy resolution for this request: branding, flags
// and mode. The storefront calls this once per session.
func (t *TenantController) Current(c *gin.Context) {
	utils.RespondSuccess(c, middleware.ResolvedTenantFrom(c), "Tenant context resolved")
}

func (t *TenantController) Create(c *gin.Context) {
	actor, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request request_models.CreateTenantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	tenant, err := t.tenants.CreateTenant(c.Request.Context(), request, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tenant, "Tenant created successfully")
}

func (t *TenantController) SetStatus(c *gin.Context) {
	actor, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	var request request_models.UpdateTenantStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err = t.tenants.SetStatus(c.Request.Context(), tenantID, db_models.TenantStatus(request.Status), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tenant status updated")
}

func (t *TenantController) UpsertBranding(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	var request request_models.UpsertBrandingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	branding, err := t.tenants.UpsertBranding(c.Request.Context(), tenantID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, branding, "Branding saved successfully")
}

func (t *TenantController) SetFeatureFlag(c *gin.Context) {
	actor, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	var request request_models.SetFeatureFlagRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := t.tenants.SetFeatureFlag(c.Request.Context(), tenantID, request, actor); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feature flag saved")
}

func (t *TenantController) AddDomain(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	var request request_models.AddDomainRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	domain, err := t.tenants.AddDomain(c.Request.Context(), tenantID, request.Domain)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, domain, "Domain registered; pending verification")
}

func (t *TenantController) VerifyDomain(c *gin.Context) {
	actor, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	domainID, err := uuid.Parse(c.Param("domainId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid domain id")
		return
	}

	if err := t.tenants.VerifyDomain(c.Request.Context(), domainID, true, actor); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Domain verified")
}
