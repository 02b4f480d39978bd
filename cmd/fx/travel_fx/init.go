package travelfx

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/api/controllers"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

const defaultAmadeusBaseURL = "https://test.api.amadeus.com"

var Module = fx.Provide(
	provideAmadeusConfig,
	provideTokenSource,
	provideFlightService,
	provideHotelService,
	provideTransferService,
	provideTravelController,
)

// provideAmadeusConfig resolves the provider base URL from the endpoint
// registry when an active row exists, falling back to env configuration.
// The registry is read once at startup; row changes take effect on the
// next restart.
func provideAmadeusConfig(db *gorm.DB) services.AmadeusConfig {
	baseURL := os.Getenv("AMADEUS_BASE_URL")

	credentials := repositories.NewCredentialRepository(db)
	if registered, err := credentials.ActiveEndpoint(context.Background(), "amadeus"); err == nil && registered != "" {
		baseURL = registered
	} else if err != nil {
		log.Printf("endpoint registry lookup failed, using env base URL: %v", err)
	}

	if baseURL == "" {
		baseURL = defaultAmadeusBaseURL
	}

	return services.AmadeusConfig{
		BaseURL:      baseURL,
		ClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		ClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
	}
}

func provideTokenSource(cfg services.AmadeusConfig) services.TokenSource {
	return services.NewAmadeusTokenSource(cfg, &http.Client{Timeout: 15 * time.Second})
}

func provideFlightService(cfg services.AmadeusConfig, tokens services.TokenSource) services.FlightServiceInterface {
	return services.NewFlightService(cfg.BaseURL, tokens, nil)
}

func provideHotelService(cfg services.AmadeusConfig, tokens services.TokenSource) services.HotelServiceInterface {
	return services.NewHotelService(cfg.BaseURL, tokens, nil)
}

func provideTransferService(cfg services.AmadeusConfig, tokens services.TokenSource) services.TransferServiceInterface {
	return services.NewTransferService(cfg.BaseURL, tokens, nil)
}

func provideTravelController(
	flights services.FlightServiceInterface,
	hotels services.HotelServiceInterface,
	transfers services.TransferServiceInterface,
) *controllers.TravelController {
	return controllers.NewTravelController(flights, hotels, transfers)
}
