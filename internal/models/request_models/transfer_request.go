package request_models

// TransferSearchRequest mirrors the provider's transfer-offers body.
// StartLocationCode, StartDateTime and Passengers are mandatory; the rest
// is forwarded when present.
type TransferSearchRequest struct {
	StartLocationCode string   `json:"startLocationCode"`
	StartDateTime     string   `json:"startDateTime"`
	Passengers        int      `json:"passengers"`
	EndLocationCode   string   `json:"endLocationCode,omitempty"`
	EndAddressLine    string   `json:"endAddressLine,omitempty"`
	EndCityName       string   `json:"endCityName,omitempty"`
	EndCountryCode    string   `json:"endCountryCode,omitempty"`
	EndGeoCode        string   `json:"endGeoCode,omitempty"`
	TransferType      string   `json:"transferType,omitempty"`
	CurrencyCode      string   `json:"currencyCode,omitempty"`
}

type TransferBookRequest struct {
	OfferID    string              `json:"offerId"`
	Passengers []Traveler          `json:"passengers"`
	Payment    TransferPayment     `json:"payment"`
	Note       string              `json:"note,omitempty"`
}

type TransferPayment struct {
	MethodOfPayment string       `json:"methodOfPayment"`
	CreditCard      *PaymentCard `json:"creditCard,omitempty"`
}

type TransferCancelRequest struct {
	OrderID    string `json:"orderId"`
	ConfirmNbr string `json:"confirmNbr"`
}
