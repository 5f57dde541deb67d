package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kdexpertise/handlers"
	"kdexpertise/middleware"
	"kdexpertise/utils"
)

// RegisterAppointmentRoutes registers the direct appointment endpoints used
// by the site widget. Writes require the shared application token.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/availabilities", hb.GetAvailabilityHandler)
	r.POST("/api/appointments", middleware.AppTokenMiddleware(), hb.CreateAppointmentHandler)
}

// RegisterBookingRoutes registers the step-by-step booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", hb.InitiateSessionHandler)
		api.POST("/session/:sessionID/service", hb.SelectServiceHandler)
		api.POST("/session/:sessionID/datetime", hb.SelectDateTimeHandler)
		api.POST("/session/:sessionID/details", hb.UpdateDetailsHandler)
		api.POST("/session/:sessionID/back", hb.BackHandler)
		api.POST("/session/:sessionID/confirm", hb.ConfirmHandler)
		api.POST("/session/:sessionID/reset", hb.ResetHandler)
	}
}

// RegisterPricingRoutes registers the public quote endpoint.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/quote", hb.ComputeQuoteHandler)
}

// RegisterContactRoutes registers the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/mail", hb.SendContactMailHandler)
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and the CORS
// policy.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-App-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
}
