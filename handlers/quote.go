package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kdexpertise/models"
	"kdexpertise/services/pricing"
)

// QuoteHandler computes indicative prices for the public pricing widget.
type QuoteHandler struct{}

func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{}
}

// ComputeQuoteHandler prices a service request. Unknown combinations come
// back with onRequest set instead of a number.
func (h *QuoteHandler) ComputeQuoteHandler(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requête invalide"})
		return
	}

	quote := pricing.ComputeQuote(req)
	c.JSON(http.StatusOK, gin.H{
		"basePrice":     quote.BasePrice,
		"pricePerParty": quote.PricePerParty,
		"total":         quote.Total,
		"onRequest":     quote.OnRequest(),
	})
}
