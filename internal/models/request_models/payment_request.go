package request_models

const (
	GatewayCreateInvoice = "create_invoice"
	GatewayFetchPayment  = "fetch_payment"
	GatewayRefundPayment = "refund_payment"
)

// GatewayRequest is the single multiplexed payment-proxy body. Amount is a
// major-unit string and may arrive in Arabic-Indic digits.
type GatewayRequest struct {
	Action      string `json:"action"`
	Amount      string `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Description string `json:"description,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
	SuccessURL  string `json:"success_url,omitempty"`
	BackURL     string `json:"back_url,omitempty"`
	PaymentID   string `json:"paymentId,omitempty"`
}
