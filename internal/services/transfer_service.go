package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"tripdesk/internal/models/request_models"
	"tripdesk/pkg/utils"
)

type TransferServiceInterface interface {
	Search(ctx context.Context, request request_models.TransferSearchRequest) (json.RawMessage, error)
	Book(ctx context.Context, request request_models.TransferBookRequest) (json.RawMessage, error)
	Cancel(ctx context.Context, request request_models.TransferCancelRequest) (json.RawMessage, error)
}

func NewTransferService(baseURL string, tokens TokenSource, client *http.Client) TransferServiceInterface {
	return &TransferService{client: newAmadeusClient(baseURL, tokens, client)}
}

type TransferService struct {
	client *amadeusClient
}

func (t *TransferService) Search(ctx context.Context, request request_models.TransferSearchRequest) (json.RawMessage, error) {
	if request.StartLocationCode == "" || request.StartDateTime == "" || request.Passengers <= 0 {
		return nil, utils.ValidationError("startLocationCode, startDateTime and passengers are required")
	}

	return t.client.post(ctx, "/v1/shopping/transfer-offers", nil, request)
}

func (t *TransferService) Book(ctx context.Context, request request_models.TransferBookRequest) (json.RawMessage, error) {
	if request.OfferID == "" {
		return nil, utils.ValidationError("offerId is required")
	}
	if len(request.Passengers) == 0 {
		return nil, utils.ValidationError("at least one passenger is required")
	}
	if request.Payment.MethodOfPayment == "" {
		return nil, utils.ValidationError("payment method is required")
	}

	params := url.Values{}
	params.Set("offerId", request.OfferID)

	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"passengers": request.Passengers,
			"payment":    request.Payment,
			"note":       request.Note,
		},
	}

	return t.client.post(ctx, "/v1/ordering/transfer-orders", params, payload)
}

// Cancel is stateless; the caller owns any local record updates.
func (t *TransferService) Cancel(ctx context.Context, request request_models.TransferCancelRequest) (json.RawMessage, error) {
	if request.OrderID == "" || request.ConfirmNbr == "" {
		return nil, utils.ValidationError("orderId and confirmNbr are required")
	}

	params := url.Values{}
	params.Set("confirmNbr", request.ConfirmNbr)

	path := "/v1/ordering/transfer-orders/" + url.PathEscape(request.OrderID) + "/transfers/cancellation"
	return t.client.post(ctx, path, params, nil)
}
