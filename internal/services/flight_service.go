package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"tripdesk/internal/models/request_models"
	"tripdesk/pkg/utils"
)

const defaultFlightMax = 10

type FlightServiceInterface interface {
	Search(ctx context.Context, query request_models.FlightSearchQuery) (json.RawMessage, error)
	Price(ctx context.Context, request request_models.FlightPriceRequest) (json.RawMessage, error)
	Book(ctx context.Context, request request_models.FlightBookRequest) (json.RawMessage, error)
}

func NewFlightService(baseURL string, tokens TokenSource, client *http.Client) FlightServiceInterface {
	return &FlightService{client: newAmadeusClient(baseURL, tokens, client)}
}

type FlightService struct {
	client *amadeusClient
}

func (f *FlightService) Search(ctx context.Context, query request_models.FlightSearchQuery) (json.RawMessage, error) {
	if query.Origin == "" || query.Destination == "" || query.DepartureDate == "" {
		return nil, utils.ValidationError("origin, destination and departureDate are required")
	}

	if query.Adults <= 0 {
		query.Adults = 1
	}
	if query.Max <= 0 {
		query.Max = defaultFlightMax
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("max", strconv.Itoa(query.Max))
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}
	if query.CurrencyCode != "" {
		params.Set("currencyCode", query.CurrencyCode)
	}

	return f.client.get(ctx, "/v2/shopping/flight-offers", params)
}

func (f *FlightService) Price(ctx context.Context, request request_models.FlightPriceRequest) (json.RawMessage, error) {
	if len(request.FlightOffer) == 0 {
		return nil, utils.ValidationError("flightOffer is required")
	}

	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type":         "flight-offers-pricing",
			"flightOffers": []json.RawMessage{request.FlightOffer},
		},
	}

	return f.client.post(ctx, "/v1/shopping/flight-offers/pricing", nil, payload)
}

func (f *FlightService) Book(ctx context.Context, request request_models.FlightBookRequest) (json.RawMessage, error) {
	if len(request.FlightOffer) == 0 {
		return nil, utils.ValidationError("flightOffer is required")
	}
	if len(request.Travelers) == 0 {
		return nil, utils.ValidationError("at least one traveler is required")
	}

	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type":         "flight-order",
			"flightOffers": []json.RawMessage{request.FlightOffer},
			"travelers":    request.Travelers,
		},
	}

	return f.client.post(ctx, "/v1/booking/flight-orders", nil, payload)
}
