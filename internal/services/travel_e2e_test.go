package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models/request_models"
)

// A full search against a provider stub: one token grant, one search call,
// provider body forwarded untouched.
func TestFlightSearchEndToEnd(t *testing.T) {
	const providerBody = `{"data":[{"id":"1","itineraries":[{"segments":[{"departure":{"iataCode":"RUH"},"arrival":{"iataCode":"JED"}}]}],"price":{"total":"512.30","currency":"SAR"}}],"meta":{"count":1}}`

	tokenGrants := 0
	searchCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/security/oauth2/token":
			tokenGrants++
			fmt.Fprint(w, `{"access_token":"tok-e2e","token_type":"Bearer","expires_in":1799}`)
		case "/v2/shopping/flight-offers":
			searchCalls++
			require.Equal(t, "Bearer tok-e2e", r.Header.Get("Authorization"))
			require.Equal(t, "RUH", r.URL.Query().Get("originLocationCode"))
			require.Equal(t, "JED", r.URL.Query().Get("destinationLocationCode"))
			fmt.Fprint(w, providerBody)
		default:
			t.Errorf("unexpected provider call: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	tokens := NewAmadeusTokenSource(AmadeusConfig{
		BaseURL:      server.URL,
		ClientID:     "id",
		ClientSecret: "secret",
	}, server.Client())
	svc := NewFlightService(server.URL, tokens, server.Client())

	body, err := svc.Search(context.Background(), request_models.FlightSearchQuery{
		Origin:        "RUH",
		Destination:   "JED",
		DepartureDate: "2026-09-15",
		Adults:        2,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tokenGrants)
	assert.Equal(t, 1, searchCalls)
	assert.Equal(t, providerBody, string(body))
}
