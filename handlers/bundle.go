package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routes can be
// registered from a single place.
type HandlerBundle struct {
	// Appointment endpoints
	CreateAppointmentHandler gin.HandlerFunc
	GetAvailabilityHandler   gin.HandlerFunc

	// Booking wizard endpoints
	InitiateSessionHandler gin.HandlerFunc
	SelectServiceHandler   gin.HandlerFunc
	SelectDateTimeHandler  gin.HandlerFunc
	UpdateDetailsHandler   gin.HandlerFunc
	BackHandler            gin.HandlerFunc
	ConfirmHandler         gin.HandlerFunc
	ResetHandler           gin.HandlerFunc

	// Pricing endpoint
	ComputeQuoteHandler gin.HandlerFunc

	// Contact endpoint
	SendContactMailHandler gin.HandlerFunc
}
