// File: handlers/payment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doctorsportal/models"
	"doctorsportal/services/payment"
	"doctorsportal/utils"
)

// PaymentHandler serves the stripe payment endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

func NewPaymentHandler(service payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: service, Logger: logger}
}

// CreatePaymentIntent creates a stripe intent for a booking's price and hands
// back the client secret.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err)
		return
	}

	clientSecret, err := h.Service.CreateIntent(c.Request.Context(), input.Price)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment stores the payment record and marks the booking paid.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.Service.RecordPayment(c.Request.Context(), p)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
