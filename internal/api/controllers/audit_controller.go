package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type AuditController struct {
	audit services.AuditServiceInterface
}

func NewAuditController(audit services.AuditServiceInterface) *AuditController {
	return &AuditController{audit: audit}
}

// History lists the audit trail for one entity, newest first.
func (a *AuditController) History(c *gin.Context) {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "entity_type and entity_id are required")
		return
	}

	entries, err := a.audit.History(c.Request.Context(), entityType, entityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Audit history fetched successfully")
}
