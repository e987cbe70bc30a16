// File: main.go
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

	"doctorsportal/config"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	paymentRepoPkg "doctorsportal/database/repository/payment"
	treatmentRepoPkg "doctorsportal/database/repository/treatment"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	bookingSvc "doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	treatmentRepo := treatmentRepoPkg.NewMongoTreatmentRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// Availability strategies. Both answer the same question; the v2 route
	// pushes the computation into the store.
	clientComputed := &availability.ClientComputedService{
		Treatments: treatmentRepo,
		Bookings:   bookingRepo,
		Logger:     logger,
	}
	storeComputed := &availability.StoreComputedService{
		Treatments: treatmentRepo,
		Logger:     logger,
	}

	var availV1, availV2 availability.Service = clientComputed, storeComputed
	var invalidator availability.Invalidator
	if cacheClient := utils.GetCacheClient(); cacheClient != nil {
		ttl := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
		cached := &availability.CachedService{
			Next:   clientComputed,
			Client: cacheClient,
			TTL:    ttl,
			Logger: logger,
		}
		availV1 = cached
		invalidator = cached
	}

	// services.
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:    bookingRepo,
		Catalog: treatmentRepo,
		Cache:   invalidator,
		Logger:  logger,
	}
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo:   doctorRepo,
		Logger: logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Bookings: bookingRepo,
		Payments: paymentRepo,
		Logger:   logger,
	}

	// Assemble the handler bundle.
	hb := &handlers.HandlerBundle{
		Appointment: handlers.NewAppointmentHandler(availV1, availV2, treatmentRepo, logger),
		Booking:     handlers.NewBookingHandler(bookingService, logger),
		Payment:     handlers.NewPaymentHandler(paymentService, logger),
		User:        handlers.NewUserHandler(userService, logger),
		Doctor:      handlers.NewDoctorHandler(doctorService, logger),
		Users:       userService,
	}
	routes.RegisterRoutes(router, hb)

	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient())

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Server is running on port: %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("failed to disconnect MongoDB: %v", err)
	}
	logger.Info("server stopped")
}
