package rbacfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/api/controllers"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/memcache"
)

var Module = fx.Provide(
	providePermissionRepository,
	memcache.NewPermissionCache,
	providePermissionService,
	provideRBACController,
)

func providePermissionRepository(db *gorm.DB) repositories.PermissionRepositoryInterface {
	return repositories.NewPermissionRepository(db)
}

func providePermissionService(
	repo repositories.PermissionRepositoryInterface,
	cache *memcache.PermissionCache,
	audit services.AuditServiceInterface,
) services.PermissionServiceInterface {
	return services.NewPermissionService(repo, cache, audit)
}

func provideRBACController(permissions services.PermissionServiceInterface) *controllers.RBACController {
	return controllers.NewRBACController(permissions)
}
