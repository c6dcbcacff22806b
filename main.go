package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"danielsbarber/config"
	"danielsbarber/database"
	reservationRepo "danielsbarber/database/repository/reservation"
	"danielsbarber/handlers"
	"danielsbarber/middleware"
	"danielsbarber/routes"
	"danielsbarber/services/booking"
	"danielsbarber/services/catalog"
	"danielsbarber/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	ctx := context.Background()
	dynamoClient, err := database.NewDynamoClient(ctx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize DynamoDB client: %v", err)
	}
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Redis client: %v", err)
	}

	stripe.Key = cfg.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	resvRepo := reservationRepo.NewDynamoReservationRepo(dynamoClient, cfg.BookingsTable)
	resvRepo = reservationRepo.NewCachedReservationRepo(resvRepo, redisClient, time.Duration(cfg.CacheTTLSeconds)*time.Second)

	// Services.
	catalogService := &catalog.DefaultCatalogService{}
	availabilityService := &booking.DefaultAvailabilityService{
		Repo:     resvRepo,
		Slots:    booking.DefaultSlotConfig(),
		Logger:   logger,
		FailOpen: cfg.AvailabilityFailOpen,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:   resvRepo,
		Logger: logger,
	}
	paymentService := &booking.DefaultPaymentService{
		Logger:      logger,
		FeeCents:    cfg.BookingFeeCents,
		FeeCurrency: cfg.BookingFeeCurrency,
	}

	bookingHandler := handlers.NewBookingHandler(availabilityService, bookingService, catalogService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailableTimes:   bookingHandler.GetAvailableTimes,
		CreateBooking:       bookingHandler.CreateBooking,
		CreatePaymentIntent: paymentHandler.CreatePaymentIntent,
		GetBarbers:          catalogHandler.GetBarbers,
		GetServices:         catalogHandler.GetServices,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(dynamoClient, cfg.BookingsTable, redisClient)

	// Start the HTTP server.
	port := cfg.AppPort
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

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
