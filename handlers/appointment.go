// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/services/availability"
	"doctorsportal/utils"
)

// AppointmentHandler serves the availability endpoints. V1 and V2 answer the
// same question through different execution strategies; both are kept on the
// wire for the frontends that use either.
type AppointmentHandler struct {
	Availability   availability.Service
	AvailabilityV2 availability.Service
	Treatments     treatmentRepo.TreatmentRepository
	Logger         *zap.Logger
}

func NewAppointmentHandler(v1, v2 availability.Service, treatments treatmentRepo.TreatmentRepository, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		Availability:   v1,
		AvailabilityV2: v2,
		Treatments:     treatments,
		Logger:         logger,
	}
}

// GetAppointmentOptions returns per-treatment remaining slots for the date in
// the query string. No date is a valid key that matches no bookings.
func (h *AppointmentHandler) GetAppointmentOptions(c *gin.Context) {
	h.respond(c, h.Availability)
}

// GetAppointmentOptionsV2 is the store-computed variant.
func (h *AppointmentHandler) GetAppointmentOptionsV2(c *gin.Context) {
	h.respond(c, h.AvailabilityV2)
}

func (h *AppointmentHandler) respond(c *gin.Context, svc availability.Service) {
	date := c.Query("date")
	options, err := svc.GetAvailability(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetAppointmentSpecialties returns treatment names only.
func (h *AppointmentHandler) GetAppointmentSpecialties(c *gin.Context) {
	names, err := h.Treatments.GetNames(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, names)
}
