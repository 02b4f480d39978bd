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
	"tripdesk/pkg/utils"
)

func TestTransferSearchRequiresMandatoryFields(t *testing.T) {
	svc := NewTransferService("http://unused", staticTokenSource{token: "tok"}, nil)

	_, err := svc.Search(context.Background(), request_models.TransferSearchRequest{
		StartLocationCode: "RUH",
		StartDateTime:     "2026-09-15T10:00:00",
	})

	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestTransferBookSendsOfferIDAsQueryParam(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		fmt.Fprint(w, `{"data":{"id":"TO_1"}}`)
	}))
	defer server.Close()

	svc := NewTransferService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	_, err := svc.Book(context.Background(), request_models.TransferBookRequest{
		OfferID: "OFFER_9",
		Passengers: []request_models.Traveler{
			{Name: request_models.TravelerName{FirstName: "Sami", LastName: "Alharbi"}},
		},
		Payment: request_models.TransferPayment{MethodOfPayment: "CREDIT_CARD"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/ordering/transfer-orders", got.URL.Path)
	assert.Equal(t, "OFFER_9", got.URL.Query().Get("offerId"))
}

func TestTransferCancelTargetsOrderPath(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		fmt.Fprint(w, `{"data":{"confirmNbr":"CN_1"}}`)
	}))
	defer server.Close()

	svc := NewTransferService(server.URL, staticTokenSource{token: "tok"}, server.Client())

	_, err := svc.Cancel(context.Background(), request_models.TransferCancelRequest{
		OrderID:    "ORD_5",
		ConfirmNbr: "CN_1",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/ordering/transfer-orders/ORD_5/transfers/cancellation", got.URL.Path)
	assert.Equal(t, "CN_1", got.URL.Query().Get("confirmNbr"))
}

func TestTransferCancelRequiresConfirmation(t *testing.T) {
	svc := NewTransferService("http://unused", staticTokenSource{token: "tok"}, nil)

	_, err := svc.Cancel(context.Background(), request_models.TransferCancelRequest{OrderID: "ORD_5"})

	assert.ErrorIs(t, err, utils.ErrValidation)
}
