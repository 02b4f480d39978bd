package paymentfx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/api/controllers"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideCredentialRepository,
	providePaymentGatewayService,
	providePaymentController,
)

func provideCredentialRepository(db *gorm.DB) repositories.CredentialRepositoryInterface {
	return repositories.NewCredentialRepository(db)
}

// providePaymentGatewayService resolves the provider base URL from the
// endpoint registry when an active row exists, falling back to env
// configuration. The registry is read once at startup; row changes take
// effect on the next restart.
func providePaymentGatewayService(credentials repositories.CredentialRepositoryInterface) services.PaymentGatewayService {
	return services.NewPaymentGatewayService(gatewayBaseURL(credentials), credentials, nil)
}

func gatewayBaseURL(credentials repositories.CredentialRepositoryInterface) string {
	baseURL := os.Getenv("MOYASAR_BASE_URL")

	if registered, err := credentials.ActiveEndpoint(context.Background(), "moyasar"); err == nil && registered != "" {
		baseURL = registered
	} else if err != nil {
		log.Printf("endpoint registry lookup failed, using env base URL: %v", err)
	}

	return baseURL
}

func providePaymentController(gateway services.PaymentGatewayService) *controllers.PaymentController {
	return controllers.NewPaymentController(gateway)
}
