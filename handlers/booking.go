// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBooking runs the conflict guard. A duplicate is a normal outcome for
// the frontend, so it answers 200 with acknowledged=false and the message; an
// invalid treatment or slot reference is a client error.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), candidate)
	if err != nil {
		if be, ok := booking.AsBookingError(err); ok {
			switch be.Code {
			case booking.CodeDuplicateBooking:
				c.JSON(http.StatusOK, models.BookingResult{Acknowledged: false, Message: be.Message})
				return
			case booking.CodeInvalidReference:
				c.JSON(http.StatusBadRequest, models.BookingResult{Acknowledged: false, Message: be.Message})
				return
			}
		}
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBookings lists the caller's bookings. The queried email must match the
// verified identity.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	if email != middleware.VerifiedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID looks up one booking, used by the payment page.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, errors.New("booking not found"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
