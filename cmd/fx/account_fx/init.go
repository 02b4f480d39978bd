package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/api/controllers"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideAccountRepository,
	provideAccountService,
	provideAccountController,
)

func provideAccountRepository(db *gorm.DB) repositories.AccountRepositoryInterface {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(repo repositories.AccountRepositoryInterface) services.AccountServiceInterface {
	return services.NewAccountService(repo)
}

func provideAccountController(accounts services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accounts)
}
