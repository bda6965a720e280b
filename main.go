package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festivo/config"
	"festivo/cron"
	"festivo/database"
	enquiryRepoPkg "festivo/database/repository/enquiry"
	planRepoPkg "festivo/database/repository/plan"
	supplierRepoPkg "festivo/database/repository/supplier"
	"festivo/handlers"
	"festivo/middleware"
	"festivo/routes"
	"festivo/services/booking"
	"festivo/services/enquiry"
	"festivo/services/plan"
	"festivo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 15*time.Second)
	if err := supplierRepoPkg.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure supplier indexes: %v", err)
	}
	cancelIndexes()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SessionMiddleware())

	// repositories.
	supplierRepo := supplierRepoPkg.NewMongoSupplierRepo()
	planRepo := planRepoPkg.NewMongoPlanRepo()
	enquiryRepo := enquiryRepoPkg.NewMongoEnquiryRepo()

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	planService := &plan.DefaultPlanService{
		Repo: planRepo,
	}
	enquiryService := &enquiry.DefaultEnquiryService{
		Repo:  enquiryRepo,
		Queue: queueClient,
	}

	sessionCache := utils.GetSessionCacheClient()
	replacementStore := booking.NewRedisReplacementStore(sessionCache)
	sessionStore := booking.NewRedisSessionStore(sessionCache)
	commitGuard := booking.NewRedisCommitGuard(sessionCache)

	bookingService := &booking.DefaultBookingService{
		SupplierRepo: supplierRepo,
		PlanSvc:      planService,
		EnquirySvc:   enquiryService,
		Replacements: replacementStore,
		Sessions:     sessionStore,
		Guard:        commitGuard,
	}

	supplierHandler := handlers.NewSupplierHandler(supplierRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	planHandler := handlers.NewPlanHandler(planService, sessionStore)
	replacementHandler := handlers.NewReplacementHandler(replacementStore, sessionStore, planService, supplierRepo)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService, planService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Supplier endpoints.
		GetSupplierByIDHandler:        supplierHandler.GetSupplierByIDHandler,
		GetSuppliersByCategoryHandler: supplierHandler.GetSuppliersByCategoryHandler,
		GetAvailabilityHandler:        supplierHandler.GetAvailabilityHandler,
		CheckAvailabilityHandler:      supplierHandler.CheckAvailabilityHandler,

		// Booking endpoints.
		DecideHandler: bookingHandler.DecideHandler,
		CommitHandler: bookingHandler.CommitHandler,

		// Plan endpoints.
		GetPlanHandler:          planHandler.GetPlanHandler,
		ClearPlanHandler:        planHandler.ClearPlanHandler,
		RemoveCategoryHandler:   planHandler.RemoveCategoryHandler,
		AttachAddonHandler:      planHandler.AttachAddonHandler,
		RemoveAddonHandler:      planHandler.RemoveAddonHandler,
		GetPartyDetailsHandler:  planHandler.GetPartyDetailsHandler,
		SavePartyDetailsHandler: planHandler.SavePartyDetailsHandler,
		PopToastHandler:         planHandler.PopToastHandler,

		// Replacement endpoints.
		EnterReplacementHandler:   replacementHandler.EnterHandler,
		SelectReplacementHandler:  replacementHandler.SelectHandler,
		GetReplacementHandler:     replacementHandler.GetHandler,
		ConsumeReplacementHandler: replacementHandler.ConsumeHandler,

		// Enquiry endpoints.
		AwaitingEnquiriesHandler: enquiryHandler.AwaitingHandler,
		SendEnquiryHandler:       enquiryHandler.SendHandler,
		RespondEnquiryHandler:    enquiryHandler.RespondHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health checks.
	cron.InitEnquiryWorker(enquiryRepo)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), sessionCache},
		database.MongoClient,
	)

	// Start the HTTP server.
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

	// Wait for an OS signal to gracefully shutdown.
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
