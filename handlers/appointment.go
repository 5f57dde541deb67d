package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kdexpertise/models"
	appointmentSvc "kdexpertise/services/appointment"
)

// AppointmentHandler exposes the direct appointment endpoint used by the
// booking widget.
type AppointmentHandler struct {
	Service appointmentSvc.AppointmentService
}

func NewAppointmentHandler(svc appointmentSvc.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentHandler records an appointment request and returns its ID.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": appointmentSvc.ErrInvalidInput.Error()})
		return
	}

	id, err := h.Service.Create(c.Request.Context(), appt)
	if err != nil {
		switch {
		case errors.Is(err, appointmentSvc.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, appointmentSvc.ErrDuplicateSlot):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to create appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "ok": true})
}
