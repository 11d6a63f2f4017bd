package booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"eticket/internal/catalog"
	"eticket/internal/seating"
	"eticket/internal/shared/utils/response"
)

type Controller interface {
	StartBooking(c *gin.Context)
	GetBooking(c *gin.Context)
	ToggleSeat(c *gin.Context)
	Checkout(c *gin.Context)
	GetTicket(c *gin.Context)
	AbandonBooking(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) StartBooking(c *gin.Context) {
	var req StartBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := ctrl.service.Start(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEventNotFound):
			response.Error(c, http.StatusNotFound, "Event not found", nil)
		case errors.Is(err, ErrEventNotBookable):
			response.Error(c, http.StatusUnprocessableEntity, "Event is not open for booking", nil)
		case errors.Is(err, ErrShowDateNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "No show on the requested date and time", nil)
		case errors.Is(err, ErrInvalidRound):
			response.Error(c, http.StatusUnprocessableEntity, "Round does not belong to the selected date", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to start booking", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, "Booking session created", resp)
}

func (ctrl *controller) GetBooking(c *gin.Context) {
	resp, err := ctrl.service.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		ctrl.respondError(c, err, "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, "Booking retrieved successfully", resp)
}

func (ctrl *controller) ToggleSeat(c *gin.Context) {
	var req ToggleSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := ctrl.service.ToggleSeat(c.Request.Context(), c.Param("bookingId"), req)
	if err != nil {
		switch {
		case errors.Is(err, seating.ErrSelectionFull):
			response.Error(c, http.StatusUnprocessableEntity,
				fmt.Sprintf("You can select a maximum of %d seats", ctrl.service.MaxSeats()), nil)
		case errors.Is(err, seating.ErrSeatNotSelectable):
			response.Error(c, http.StatusUnprocessableEntity, "Seat is not selectable", nil)
		case errors.Is(err, seating.ErrLayoutNotFound):
			response.Error(c, http.StatusNotFound, "Seat not found", nil)
		default:
			ctrl.respondError(c, err, "Failed to update seat selection")
		}
		return
	}

	response.Success(c, http.StatusOK, "Seat selection updated", resp)
}

func (ctrl *controller) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := ctrl.service.Checkout(c.Request.Context(), c.Param("bookingId"), req)
	if err != nil {
		if errors.Is(err, ErrPaymentMethodRequired) {
			response.Error(c, http.StatusUnprocessableEntity,
				"Please select a payment method to proceed", nil)
			return
		}
		ctrl.respondError(c, err, "Checkout failed")
		return
	}

	response.Success(c, http.StatusOK, "Payment successful, booking confirmed", resp)
}

func (ctrl *controller) GetTicket(c *gin.Context) {
	resp, err := ctrl.service.Ticket(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		ctrl.respondError(c, err, "Failed to load ticket")
		return
	}

	response.Success(c, http.StatusOK, "Ticket retrieved successfully", resp)
}

func (ctrl *controller) AbandonBooking(c *gin.Context) {
	ctrl.service.Abandon(c.Request.Context(), c.Param("bookingId"))
	response.Success(c, http.StatusOK, "Booking abandoned", nil)
}

// respondError maps the shared failure modes: session loss is a 404 and a
// failed step guard is the backward redirect.
func (ctrl *controller) respondError(c *gin.Context, err error, fallback string) {
	var redirect *StepRedirectError
	switch {
	case errors.As(err, &redirect):
		response.Redirect(c, redirect.Redirect.String())
	case errors.Is(err, ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, "Booking session not found", nil)
	default:
		response.Error(c, http.StatusInternalServerError, fallback, nil)
	}
}
