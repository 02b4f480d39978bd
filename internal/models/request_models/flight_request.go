package request_models

import "encoding/json"

// FlightSearchQuery carries the normalized search parameters from the
// storefront. Origin, Destination and DepartureDate are mandatory.
type FlightSearchQuery struct {
	Origin        string `form:"origin" json:"origin"`
	Destination   string `form:"destination" json:"destination"`
	DepartureDate string `form:"departureDate" json:"departureDate"`
	ReturnDate    string `form:"returnDate" json:"returnDate"`
	Adults        int    `form:"adults" json:"adults"`
	Max           int    `form:"max" json:"max"`
	CurrencyCode  string `form:"currencyCode" json:"currencyCode"`
}

// FlightPriceRequest echoes a previously returned offer back for pricing.
// The offer itself stays opaque; it is re-wrapped into the provider envelope.
type FlightPriceRequest struct {
	FlightOffer json.RawMessage `json:"flightOffer"`
}

type FlightBookRequest struct {
	FlightOffer json.RawMessage `json:"flightOffer"`
	Travelers   []Traveler      `json:"travelers"`
}

type Traveler struct {
	ID          string             `json:"id,omitempty"`
	DateOfBirth string             `json:"dateOfBirth"`
	Name        TravelerName       `json:"name"`
	Gender      string             `json:"gender,omitempty"`
	Contact     *TravelerContact   `json:"contact,omitempty"`
	Documents   []TravelerDocument `json:"documents,omitempty"`
}

type TravelerName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type TravelerContact struct {
	EmailAddress string  `json:"emailAddress,omitempty"`
	Phones       []Phone `json:"phones,omitempty"`
}

type Phone struct {
	DeviceType         string `json:"deviceType,omitempty"`
	CountryCallingCode string `json:"countryCallingCode,omitempty"`
	Number             string `json:"number"`
}

type TravelerDocument struct {
	DocumentType     string `json:"documentType"`
	Number           string `json:"number"`
	ExpiryDate       string `json:"expiryDate,omitempty"`
	IssuanceCountry  string `json:"issuanceCountry,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	Holder           bool   `json:"holder"`
	BirthPlace       string `json:"birthPlace,omitempty"`
	IssuanceLocation string `json:"issuanceLocation,omitempty"`
}
