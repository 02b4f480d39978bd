package tenantfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/api/controllers"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideTenantRepository,
	provideFeatureFlagRepository,
	provideTenantService,
	provideTenantController,
)

func provideTenantRepository(db *gorm.DB) repositories.TenantRepositoryInterface {
	return repositories.NewTenantRepository(db)
}

func provideFeatureFlagRepository(db *gorm.DB) repositories.FeatureFlagRepositoryInterface {
	return repositories.NewFeatureFlagRepository(db)
}

func provideTenantService(
	tenants repositories.TenantRepositoryInterface,
	flags repositories.FeatureFlagRepositoryInterface,
	audit services.AuditServiceInterface,
) services.TenantServiceInterface {
	return services.NewTenantService(tenants, flags, audit)
}

func provideTenantController(tenants services.TenantServiceInterface) *controllers.TenantController {
	return controllers.NewTenantController(tenants)
}
