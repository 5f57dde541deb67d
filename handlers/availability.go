package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kdexpertise/models"
	"kdexpertise/services/booking"
)

// AvailabilityHandler answers which slots remain open on a given date.
type AvailabilityHandler struct {
	Slots booking.SlotService
}

func NewAvailabilityHandler(slots booking.SlotService) *AvailabilityHandler {
	return &AvailabilityHandler{Slots: slots}
}

// GetAvailabilityHandler returns the open slots for ?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date requise"})
		return
	}
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date invalide"})
		return
	}

	open, err := h.Slots.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		logger.Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availableSlots": open})
}
