package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kdexpertise/models"
	"kdexpertise/services/mail"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	Service mail.ContactService
}

func NewContactHandler(svc mail.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SendContactMailHandler verifies the captcha token and relays the message to
// the site owner, with a copy to the sender.
func (h *ContactHandler) SendContactMailHandler(c *gin.Context) {
	logger := getLogger(c)

	var form models.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": mail.ErrInvalidForm.Error()})
		return
	}

	if err := h.Service.Send(c.Request.Context(), form); err != nil {
		switch {
		case errors.Is(err, mail.ErrInvalidForm):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, mail.ErrCaptchaRejected):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to send contact mail", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
