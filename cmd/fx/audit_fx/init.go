package auditfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/api/controllers"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideAuditRepository,
	provideAuditService,
	provideAuditController,
)

func provideAuditRepository(db *gorm.DB) repositories.AuditRepositoryInterface {
	return repositories.NewAuditRepository(db)
}

func provideAuditService(repo repositories.AuditRepositoryInterface) services.AuditServiceInterface {
	return services.NewAuditService(repo)
}

func provideAuditController(audit services.AuditServiceInterface) *controllers.AuditController {
	return controllers.NewAuditController(audit)
}
