package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models/request_models"
	"tripdesk/pkg/utils"
)

func TestHotelListDefaultsRadius(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer server.Close()

	svc := NewHotelService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	_, err := svc.ListByCity(context.Background(), request_models.HotelListQuery{CityCode: "RUH"})
	require.NoError(t, err)

	assert.Equal(t, "/v1/reference-data/locations/hotels/by-city", got.URL.Path)
	assert.Equal(t, "30", got.URL.Query().Get("radius"))
	assert.Equal(t, "KM", got.URL.Query().Get("radiusUnit"))
}

func TestHotelOffersTruncatesHotelIDs(t *testing.T) {
	ids := make([]string, 25)
	for i := range ids {
		ids[i] = fmt.Sprintf("HTL%02d", i)
	}

	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer server.Close()

	svc := NewHotelService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	_, err := svc.Offers(context.Background(), request_models.HotelOffersQuery{
		HotelIDs:     ids,
		CheckInDate:  "2026-09-15",
		CheckOutDate: "2026-09-18",
	})
	require.NoError(t, err)

	sent := strings.Split(got.URL.Query().Get("hotelIds"), ",")
	assert.Len(t, sent, 20, "ids past the provider limit are dropped, not rejected")
	assert.Equal(t, "HTL00", sent[0])
	assert.Equal(t, "1", got.URL.Query().Get("adults"))
	assert.Equal(t, "1", got.URL.Query().Get("roomQuantity"))
}

func TestHotelOffersRequiresDates(t *testing.T) {
	svc := NewHotelService("http://unused", staticTokenSource{token: "tok"}, nil)

	_, err := svc.Offers(context.Background(), request_models.HotelOffersQuery{
		HotelIDs: []string{"HTL01"},
	})

	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestHotelBookBuildsGuestEnvelope(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		fmt.Fprint(w, `{"data":{"id":"BK_1"}}`)
	}))
	defer server.Close()

	svc := NewHotelService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	body, err := svc.Book(context.Background(), request_models.HotelBookRequest{
		OfferID: "OFFER_1",
		Guests: []request_models.HotelGuest{
			{Title: "MR", FirstName: "Sami", LastName: "Alharbi", Email: "sami@example.com"},
		},
		Payment: request_models.HotelPayment{Method: "creditCard"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/booking/hotel-bookings", path)
	assert.JSONEq(t, `{"data":{"id":"BK_1"}}`, string(body))
}

func TestHotelBookRequiresPaymentMethod(t *testing.T) {
	svc := NewHotelService("http://unused", staticTokenSource{token: "tok"}, nil)

	_, err := svc.Book(context.Background(), request_models.HotelBookRequest{
		OfferID: "OFFER_1",
		Guests:  []request_models.HotelGuest{{FirstName: "Sami", LastName: "Alharbi"}},
	})

	assert.ErrorIs(t, err, utils.ErrValidation)
}
