package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

const defaultMoyasarBaseURL = "https://api.moyasar.com/v1"

// PaymentGatewayService multiplexes invoice creation, payment lookup and
// refunds over one action endpoint. The provider secret key is read from
// the relational store on every invocation and never cached or returned.
type PaymentGatewayService interface {
	Handle(ctx context.Context, request request_models.GatewayRequest) (json.RawMessage, error)
}

type moyasarService struct {
	baseURL     string
	credentials repositories.CredentialRepositoryInterface
	http        *http.Client
}

func NewPaymentGatewayService(baseURL string, credentials repositories.CredentialRepositoryInterface, client *http.Client) PaymentGatewayService {
	if baseURL == "" {
		baseURL = defaultMoyasarBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &moyasarService{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		http:        client,
	}
}

func (m *moyasarService) Handle(ctx context.Context, request request_models.GatewayRequest) (json.RawMessage, error) {
	switch request.Action {
	case request_models.GatewayCreateInvoice:
		return m.createInvoice(ctx, request)
	case request_models.GatewayFetchPayment:
		if request.PaymentID == "" {
			return nil, utils.ValidationError("paymentId is required")
		}
		return m.call(ctx, http.MethodGet, "/payments/"+url.PathEscape(request.PaymentID), nil)
	case request_models.GatewayRefundPayment:
		if request.PaymentID == "" {
			return nil, utils.ValidationError("paymentId is required")
		}
		return m.call(ctx, http.MethodPost, "/payments/"+url.PathEscape(request.PaymentID)+"/refund", map[string]interface{}{})
	default:
		return nil, utils.ValidationError("unknown action %q", request.Action)
	}
}

func (m *moyasarService) createInvoice(ctx context.Context, request request_models.GatewayRequest) (json.RawMessage, error) {
	amount := utils.NormalizeAmount(request.Amount)
	if amount <= 0 {
		return nil, utils.ValidationError("amount must be greater than zero")
	}

	currency := request.Currency
	if currency == "" {
		currency = "SAR"
	}

	payload := map[string]interface{}{
		"amount":      amount,
		"currency":    currency,
		"description": request.Description,
	}
	if request.CallbackURL != "" {
		payload["callback_url"] = request.CallbackURL
	}
	if request.SuccessURL != "" {
		payload["success_url"] = request.SuccessURL
	}
	if request.BackURL != "" {
		payload["back_url"] = request.BackURL
	}

	return m.call(ctx, http.MethodPost, "/invoices", payload)
}

func (m *moyasarService) call(ctx context.Context, method, path string, payload interface{}) (json.RawMessage, error) {
	secret, err := m.credentials.ActiveKey(ctx, "moyasar_secret")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: missing Moyasar secret key", utils.ErrConfiguration)
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, m.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(secret+":")))
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &utils.UpstreamError{
			Service: "moyasar",
			Status:  resp.StatusCode,
			Detail:  extractMoyasarDetail(raw, resp.Status),
			Body:    string(raw),
		}
	}

	return raw, nil
}

func extractMoyasarDetail(body []byte, statusLine string) string {
	s := string(body)
	for _, path := range []string{"message", "errors", "error"} {
		if v := gjson.Get(s, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return statusLine
}
