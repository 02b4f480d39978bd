package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models/request_models"
	"tripdesk/pkg/utils"
)

func TestFlightSearchValidatesBeforeCalling(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	svc := NewFlightService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	_, err := svc.Search(context.Background(), request_models.FlightSearchQuery{
		Origin: "RUH",
	})

	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Zero(t, calls, "invalid input must not reach the provider")
}

func TestFlightSearchDefaultsAndPassthrough(t *testing.T) {
	const providerBody = `{"data":[{"id":"1","price":{"total":"512.30"}}],"meta":{"count":1}}`

	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		fmt.Fprint(w, providerBody)
	}))
	defer server.Close()

	svc := NewFlightService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	body, err := svc.Search(context.Background(), request_models.FlightSearchQuery{
		Origin:        "RUH",
		Destination:   "JED",
		DepartureDate: "2026-09-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v2/shopping/flight-offers", got.URL.Path)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "1", got.URL.Query().Get("adults"))
	assert.Equal(t, "10", got.URL.Query().Get("max"))
	assert.Equal(t, providerBody, string(body), "provider body must be forwarded unmodified")
}

func TestFlightSearchPreservesUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"errors":[{"detail":"Invalid date","title":"INVALID DATE"}]}`)
	}))
	defer server.Close()

	svc := NewFlightService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	_, err := svc.Search(context.Background(), request_models.FlightSearchQuery{
		Origin:        "RUH",
		Destination:   "JED",
		DepartureDate: "2020-01-01",
	})

	var upstream *utils.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
	assert.Equal(t, "Invalid date", upstream.Detail)
}

func TestFlightPriceWrapsOfferInProviderEnvelope(t *testing.T) {
	offer := json.RawMessage(`{"id":"7","type":"flight-offer"}`)

	var payload []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, `{"data":{}}`)
	}))
	defer server.Close()

	svc := NewFlightService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	_, err := svc.Price(context.Background(), request_models.FlightPriceRequest{FlightOffer: offer})
	require.NoError(t, err)

	var envelope struct {
		Data struct {
			Type         string            `json:"type"`
			FlightOffers []json.RawMessage `json:"flightOffers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.Equal(t, "flight-offers-pricing", envelope.Data.Type)
	require.Len(t, envelope.Data.FlightOffers, 1)
	assert.JSONEq(t, string(offer), string(envelope.Data.FlightOffers[0]))
}

func TestFlightBookRequiresTravelers(t *testing.T) {
	svc := NewFlightService("http://unused", staticTokenSource{token: "tok"}, nil)

	_, err := svc.Book(context.Background(), request_models.FlightBookRequest{
		FlightOffer: json.RawMessage(`{"id":"7"}`),
	})

	assert.ErrorIs(t, err, utils.ErrValidation)
}
