package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/services"
)

func (h *Handler) bookingService(c *gin.Context) *services.BookingService {
	backend := backendFrom(c)
	return services.NewBookingService(sessionFrom(c), backend, backend)
}

func (h *Handler) QuoteBooking(c *gin.Context) {
	var req services.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	quote, err := h.bookingService(c).Quote(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var form forms.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	booking, err := h.bookingService(c).Submit(c.Request.Context(), form)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) MyBookings(c *gin.Context) {
	mine, err := h.bookingService(c).Mine(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mine)
}

type cancelRequest struct {
	Reason string `json:"motivo"`
}

func (h *Handler) CancelMyBooking(c *gin.Context) {
	var req cancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badJSON(c)
			return
		}
	}

	booking, err := h.bookingService(c).Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) PayBooking(c *gin.Context) {
	var form forms.PaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	payment, err := h.bookingService(c).Pay(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}
