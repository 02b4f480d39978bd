package billingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/api/controllers"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	providePlanRepository,
	provideSubscriptionRepository,
	provideInvoiceRepository,
	provideBillingService,
	provideBillingController,
)

func providePlanRepository(db *gorm.DB) repositories.PlanRepositoryInterface {
	return repositories.NewPlanRepository(db)
}

func provideSubscriptionRepository(db *gorm.DB) repositories.SubscriptionRepositoryInterface {
	return repositories.NewSubscriptionRepository(db)
}

func provideInvoiceRepository(db *gorm.DB) repositories.InvoiceRepositoryInterface {
	return repositories.NewInvoiceRepository(db)
}

func provideBillingService(
	plans repositories.PlanRepositoryInterface,
	subscriptions repositories.SubscriptionRepositoryInterface,
	invoices repositories.InvoiceRepositoryInterface,
	flags repositories.FeatureFlagRepositoryInterface,
	audit services.AuditServiceInterface,
) services.BillingServiceInterface {
	return services.NewBillingService(plans, subscriptions, invoices, flags, audit)
}

func provideBillingController(billing services.BillingServiceInterface) *controllers.BillingController {
	return controllers.NewBillingController(billing)
}
