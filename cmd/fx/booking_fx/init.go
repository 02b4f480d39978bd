package bookingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/api/controllers"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideBookingRepository,
	provideBookingService,
	provideBookingController,
)

func provideBookingRepository(db *gorm.DB) repositories.BookingRepositoryInterface {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	repo repositories.BookingRepositoryInterface,
	audit services.AuditServiceInterface,
) services.BookingServiceInterface {
	return services.NewBookingService(repo, audit)
}

func provideBookingController(bookings services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookings)
}
