package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

// TravelController multiplexes the booking-proxy surface on an `action`
// query parameter, mirroring the storefront contract. Successful answers
// forward the provider body verbatim.
type TravelController struct {
	flights   services.FlightServiceInterface
	hotels    services.HotelServiceInterface
	transfers services.TransferServiceInterface
}

func NewTravelController(
	flights services.FlightServiceInterface,
	hotels services.HotelServiceInterface,
	transfers services.TransferServiceInterface,
) *TravelController {
	return &TravelController{
		flights:   flights,
		hotels:    hotels,
		transfers: transfers,
	}
}

func (t *TravelController) DispatchGet(c *gin.Context) {
	switch c.Query("action") {
	case "search":
		t.flightSearch(c)
	case "hotel-list":
		t.hotelList(c)
	case "hotel-offers":
		t.hotelOffers(c)
	case "hotel-offer-details":
		t.hotelOfferDetails(c)
	default:
		utils.RespondError(c, http.StatusBadRequest, "Unknown or missing action")
	}
}

func (t *TravelController) DispatchPost(c *gin.Context) {
	switch c.Query("action") {
	case "price":
		t.flightPrice(c)
	case "book":
		t.flightBook(c)
	case "hotel-book":
		t.hotelBook(c)
	case "transfer-search":
		t.transferSearch(c)
	case "transfer-book":
		t.transferBook(c)
	case "transfer-cancel":
		t.transferCancel(c)
	default:
		utils.RespondError(c, http.StatusBadRequest, "Unknown or missing action")
	}
}

func (t *TravelController) flightSearch(c *gin.Context) {
	query := request_models.FlightSearchQuery{
		Origin:        c.Query("origin"),
		Destination:   c.Query("destination"),
		DepartureDate: c.Query("departureDate"),
		ReturnDate:    c.Query("returnDate"),
		CurrencyCode:  c.Query("currencyCode"),
		Adults:        intQuery(c, "adults"),
		Max:           intQuery(c, "max"),
	}

	body, err := t.flights.Search(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) flightPrice(c *gin.Context) {
	var request request_models.FlightPriceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	body, err := t.flights.Price(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) flightBook(c *gin.Context) {
	var request request_models.FlightBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	body, err := t.flights.Book(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) hotelList(c *gin.Context) {
	query := request_models.HotelListQuery{
		CityCode: c.Query("cityCode"),
		Radius:   intQuery(c, "radius"),
	}

	body, err := t.hotels.ListByCity(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) hotelOffers(c *gin.Context) {
	var ids []string
	if raw := c.Query("hotelIds"); raw != "" {
		ids = strings.Split(raw, ",")
	}

	query := request_models.HotelOffersQuery{
		HotelIDs:     ids,
		CheckInDate:  c.Query("checkInDate"),
		CheckOutDate: c.Query("checkOutDate"),
		Adults:       intQuery(c, "adults"),
		RoomQuantity: intQuery(c, "roomQuantity"),
		CurrencyCode: c.Query("currency"),
	}

	body, err := t.hotels.Offers(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) hotelOfferDetails(c *gin.Context) {
	body, err := t.hotels.OfferDetails(c.Request.Context(), c.Query("offerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) hotelBook(c *gin.Context) {
	var request request_models.HotelBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	body, err := t.hotels.Book(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) transferSearch(c *gin.Context) {
	var request request_models.TransferSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	body, err := t.transfers.Search(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) transferBook(c *gin.Context) {
	var request request_models.TransferBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	body, err := t.transfers.Book(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func (t *TravelController) transferCancel(c *gin.Context) {
	var request request_models.TransferCancelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	body, err := t.transfers.Cancel(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondRaw(c, http.StatusOK, body)
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
