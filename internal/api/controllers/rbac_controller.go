package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type RBACController struct {
	permissions services.PermissionServiceInterface
}

func NewRBACController(permissions services.PermissionServiceInterface) *RBACController {
	return &RBACController{permissions: permissions}
}

// MyPermissions returns the caller's resolved permission keys so the
// back office can branch its UI.
func (r *RBACController) MyPermissions(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	perms, err := r.permissions.PermissionsFor(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, perms, "Permissions resolved")
}

func (r *RBACController) Catalog(c *gin.Context) {
	perms, err := r.permissions.Catalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, perms, "Permission catalog fetched")
}

func (r *RBACController) AssignRole(c *gin.Context) {
	actor, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request request_models.AssignRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userRole := db_models.UserRole{
		UserID: request.UserID,
		Role:   db_models.Role(request.Role),
	}
	if err := r.permissions.AssignRole(c.Request.Context(), userRole, actor); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Role assigned")
}

func (r *RBACController) RevokeRole(c *gin.Context) {
	actor, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request request_models.AssignRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err = r.permissions.RevokeRole(c.Request.Context(), request.UserID, db_models.Role(request.Role), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Role revoked")
}
