package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tripdesk/internal/models/request_models"
	"tripdesk/pkg/utils"
)

const (
	defaultHotelRadius = 30
	// Provider limit on hotel ids per offers request; extra ids are
	// silently truncated, not rejected.
	maxHotelIDsPerRequest = 20
)

type HotelServiceInterface interface {
	ListByCity(ctx context.Context, query request_models.HotelListQuery) (json.RawMessage, error)
	Offers(ctx context.Context, query request_models.HotelOffersQuery) (json.RawMessage, error)
	OfferDetails(ctx context.Context, offerID string) (json.RawMessage, error)
	Book(ctx context.Context, request request_models.HotelBookRequest) (json.RawMessage, error)
}

func NewHotelService(baseURL string, tokens TokenSource, client *http.Client) HotelServiceInterface {
	return &HotelService{client: newAmadeusClient(baseURL, tokens, client)}
}

type HotelService struct {
	client *amadeusClient
}

func (h *HotelService) ListByCity(ctx context.Context, query request_models.HotelListQuery) (json.RawMessage, error) {
	if query.CityCode == "" {
		return nil, utils.ValidationError("cityCode is required")
	}
	if query.Radius <= 0 {
		query.Radius = defaultHotelRadius
	}

	params := url.Values{}
	params.Set("cityCode", query.CityCode)
	params.Set("radius", strconv.Itoa(query.Radius))
	params.Set("radiusUnit", "KM")

	return h.client.get(ctx, "/v1/reference-data/locations/hotels/by-city", params)
}

func (h *HotelService) Offers(ctx context.Context, query request_models.HotelOffersQuery) (json.RawMessage, error) {
	if len(query.HotelIDs) == 0 || query.CheckInDate == "" || query.CheckOutDate == "" {
		return nil, utils.ValidationError("hotelIds, checkInDate and checkOutDate are required")
	}

	ids := query.HotelIDs
	if len(ids) > maxHotelIDsPerRequest {
		ids = ids[:maxHotelIDsPerRequest]
	}
	if query.Adults <= 0 {
		query.Adults = 1
	}
	if query.RoomQuantity <= 0 {
		query.RoomQuantity = 1
	}

	params := url.Values{}
	params.Set("hotelIds", strings.Join(ids, ","))
	params.Set("checkInDate", query.CheckInDate)
	params.Set("checkOutDate", query.CheckOutDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("roomQuantity", strconv.Itoa(query.RoomQuantity))
	if query.CurrencyCode != "" {
		params.Set("currency", query.CurrencyCode)
	}

	return h.client.get(ctx, "/v3/shopping/hotel-offers", params)
}

func (h *HotelService) OfferDetails(ctx context.Context, offerID string) (json.RawMessage, error) {
	if offerID == "" {
		return nil, utils.ValidationError("offerId is required")
	}

	return h.client.get(ctx, "/v3/shopping/hotel-offers/"+url.PathEscape(offerID), nil)
}

func (h *HotelService) Book(ctx context.Context, request request_models.HotelBookRequest) (json.RawMessage, error) {
	if request.OfferID == "" {
		return nil, utils.ValidationError("offerId is required")
	}
	if len(request.Guests) == 0 {
		return nil, utils.ValidationError("at least one guest is required")
	}
	if request.Payment.Method == "" {
		return nil, utils.ValidationError("payment method is required")
	}

	guests := make([]map[string]interface{}, 0, len(request.Guests))
	for _, g := range request.Guests {
		guest := map[string]interface{}{
			"name": map[string]string{
				"title":     g.Title,
				"firstName": g.FirstName,
				"lastName":  g.LastName,
			},
		}
		if g.Phone != "" || g.Email != "" {
			guest["contact"] = map[string]string{
				"phone": g.Phone,
				"email": g.Email,
			}
		}
		guests = append(guests, guest)
	}

	payment := map[string]interface{}{"method": request.Payment.Method}
	if request.Payment.Card != nil {
		payment["card"] = request.Payment.Card
	}

	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"offerId":  request.OfferID,
			"guests":   guests,
			"payments": []map[string]interface{}{payment},
		},
	}

	return h.client.post(ctx, "/v1/booking/hotel-bookings", nil, payload)
}
