package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"kdexpertise/config"
	"kdexpertise/cron"
	"kdexpertise/database"
	appointmentRepoPkg "kdexpertise/database/repository/appointment"
	timeslotRepoPkg "kdexpertise/database/repository/timeslot"
	"kdexpertise/handlers"
	"kdexpertise/middleware"
	"kdexpertise/routes"
	appointmentSvc "kdexpertise/services/appointment"
	"kdexpertise/services/booking"
	"kdexpertise/services/captcha"
	"kdexpertise/services/conversion"
	"kdexpertise/services/mail"
	"kdexpertise/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.AppConfig.AppToken == "" {
		logger.Warn("APP_TOKEN not set, appointment writes are not token-gated")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.HandleMethodNotAllowed = true

	// Repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo(database.DB())
	slotRepo := timeslotRepoPkg.NewMongoTimeSlotRepo(database.DB())

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := appointmentRepoPkg.EnsureIndexes(indexCtx, database.DB()); err != nil {
		logger.Warn("failed to ensure appointment indexes", zap.Error(err))
	}
	cancelIndex()

	// Mail transport, with a logging stub when no key is configured.
	var mailer mail.Mailer
	if sg := mail.NewSendGridMailer(config.AppConfig.SendgridKey, config.AppConfig.MailFrom, "KD Expertise"); sg != nil {
		mailer = sg
	} else {
		logger.Warn("SENDGRID_KEY not set, mail delivery disabled")
		mailer = mail.StubMailer{}
	}

	captchaVerifier := captcha.NewGoogleVerifier(config.AppConfig.RecaptchaSecret)
	conversionReporter := conversion.NewReporter(config.AppConfig.ConversionEndpoint)
	reminderScheduler := cron.NewAsynqReminderScheduler()

	// Services.
	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:       apptRepo,
		Mailer:     mailer,
		AdminEmail: config.AppConfig.MailAdmin,
		Reminders:  reminderScheduler,
		Cache:      utils.GetCacheClient(),
	}
	slotService := &booking.DefaultSlotService{
		Timeslots:    slotRepo,
		Appointments: apptRepo,
		Cache:        utils.GetCacheClient(),
	}
	sessionService := &booking.DefaultBookingSessionService{
		Slots:        slotService,
		Appointments: appointmentService,
		Captcha:      captchaVerifier,
		Conversion:   conversionReporter,
		Sessions:     utils.GetSessionCacheClient(),
	}
	contactService := &mail.DefaultContactService{
		Mailer:     mailer,
		Captcha:    captchaVerifier,
		AdminEmail: config.AppConfig.MailAdmin,
	}

	// Handlers.
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	availabilityHandler := handlers.NewAvailabilityHandler(slotService)
	bookingHandler := handlers.NewBookingHandler(sessionService)
	quoteHandler := handlers.NewQuoteHandler()
	contactHandler := handlers.NewContactHandler(contactService)

	handlerBundle := &handlers.HandlerBundle{
		CreateAppointmentHandler: appointmentHandler.CreateAppointmentHandler,
		GetAvailabilityHandler:   availabilityHandler.GetAvailabilityHandler,

		InitiateSessionHandler: bookingHandler.InitiateSessionHandler,
		SelectServiceHandler:   bookingHandler.SelectServiceHandler,
		SelectDateTimeHandler:  bookingHandler.SelectDateTimeHandler,
		UpdateDetailsHandler:   bookingHandler.UpdateDetailsHandler,
		BackHandler:            bookingHandler.BackHandler,
		ConfirmHandler:         bookingHandler.ConfirmHandler,
		ResetHandler:           bookingHandler.ResetHandler,

		ComputeQuoteHandler: quoteHandler.ComputeQuoteHandler,

		SendContactMailHandler: contactHandler.SendContactMailHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitoring.
	cron.InitReminderWorker(mailer)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	defer cancelMonitor()
	utils.StartHealthMonitor(monitorCtx, time.Minute, database.MongoClient, map[string]*redis.Client{
		"cache":   utils.GetCacheClient(),
		"session": utils.GetSessionCacheClient(),
	})

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
