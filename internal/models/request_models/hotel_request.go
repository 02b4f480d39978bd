package request_models

type HotelListQuery struct {
	CityCode string `form:"cityCode" json:"cityCode"`
	Radius   int    `form:"radius" json:"radius"`
}

type HotelOffersQuery struct {
	HotelIDs     []string `form:"hotelIds" json:"hotelIds"`
	CheckInDate  string   `form:"checkInDate" json:"checkInDate"`
	CheckOutDate string   `form:"checkOutDate" json:"checkOutDate"`
	Adults       int      `form:"adults" json:"adults"`
	RoomQuantity int      `form:"roomQuantity" json:"roomQuantity"`
	CurrencyCode string   `form:"currency" json:"currency"`
}

type HotelBookRequest struct {
	OfferID string       `json:"offerId"`
	Guests  []HotelGuest `json:"guests"`
	Payment HotelPayment `json:"payment"`
}

type HotelGuest struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type HotelPayment struct {
	Method string       `json:"method"`
	Card   *PaymentCard `json:"card,omitempty"`
}

type PaymentCard struct {
	VendorCode string `json:"vendorCode"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	HolderName string `json:"holderName,omitempty"`
}
