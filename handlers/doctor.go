// File: handlers/doctor.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"
)

// DoctorHandler serves the admin-only roster endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
	Logger  *zap.Logger
}

func NewDoctorHandler(service doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Service: service, Logger: logger}
}

func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err)
		return
	}

	id, err := h.Service.Add(c.Request.Context(), d)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, errors.New("doctor not found"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}
