package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kdexpertise/models"
	appointmentSvc "kdexpertise/services/appointment"
	"kdexpertise/services/booking"
)

// BookingHandler exposes the step-by-step booking wizard endpoints. Each
// endpoint delegates to the session service and maps its sentinel errors to
// HTTP statuses.
type BookingHandler struct {
	Sessions booking.BookingSessionService
}

func NewBookingHandler(sessions booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Sessions: sessions}
}

// InitiateSessionHandler opens a fresh booking session.
func (h *BookingHandler) InitiateSessionHandler(c *gin.Context) {
	sess, err := h.Sessions.InitiateSession(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to initiate booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// SelectServiceHandler records the chosen service and advances to date
// selection.
func (h *BookingHandler) SelectServiceHandler(c *gin.Context) {
	var input struct {
		Service     string `json:"service"`
		ServiceType string `json:"serviceType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requête invalide"})
		return
	}
	sess, err := h.Sessions.SelectService(c.Request.Context(), c.Param("sessionID"), input.Service, input.ServiceType)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// SelectDateTimeHandler records the chosen date and time and advances to the
// contact step.
func (h *BookingHandler) SelectDateTimeHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requête invalide"})
		return
	}
	sess, err := h.Sessions.SelectDateTime(c.Request.Context(), c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// UpdateDetailsHandler stores the contact block and, for inspection services,
// returns the indicative quote.
func (h *BookingHandler) UpdateDetailsHandler(c *gin.Context) {
	var details models.BookingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requête invalide"})
		return
	}
	sess, quote, err := h.Sessions.UpdateDetails(c.Request.Context(), c.Param("sessionID"), details)
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp := gin.H{"session": sess}
	if quote != nil {
		resp["quote"] = quote
	}
	c.JSON(http.StatusOK, resp)
}

// BackHandler moves the session one step back without discarding data.
func (h *BookingHandler) BackHandler(c *gin.Context) {
	sess, err := h.Sessions.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// ConfirmHandler verifies the captcha token and turns the session into an
// appointment.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	var input struct {
		CaptchaToken string `json:"captchaToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requête invalide"})
		return
	}
	sess, err := h.Sessions.Confirm(c.Request.Context(), c.Param("sessionID"), input.CaptchaToken)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "appointmentId": sess.AppointmentID, "ok": true})
}

// ResetHandler clears the session back to the service step.
func (h *BookingHandler) ResetHandler(c *gin.Context) {
	sess, err := h.Sessions.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *BookingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, appointmentSvc.ErrDuplicateSlot):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidStep),
		errors.Is(err, booking.ErrInvalidDateTime),
		errors.Is(err, booking.ErrPastDate),
		errors.Is(err, booking.ErrMissingDetails),
		errors.Is(err, booking.ErrCaptchaFailed),
		errors.Is(err, appointmentSvc.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("booking session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
	}
}
