package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worklink/config"
	"worklink/cron"
	"worklink/database"
	commitmentRepo "worklink/database/repository/commitment"
	scheduleRepo "worklink/database/repository/schedule"
	"worklink/handlers"
	"worklink/middleware"
	"worklink/routes"
	"worklink/services/scheduling"
	"worklink/services/tasks"
	"worklink/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	commitRepo := commitmentRepo.NewMongoCommitmentRepo()

	// reservation outcome queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	cron.InitOutcomeWorker()

	// services.
	locker := utils.NewRedisLocker(
		utils.GetLockClient(),
		time.Duration(config.AppConfig.ReserveLockTTLSeconds)*time.Second,
		time.Duration(config.AppConfig.ReserveLockWaitSeconds)*time.Second,
	)
	schedulingService := &scheduling.DefaultSchedulingService{
		ScheduleRepo:   schedRepo,
		CommitmentRepo: commitRepo,
		Locker:         locker,
		Notifier:       tasks.NewAsynqOutcomeNotifier(queueClient),
	}

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, utils.GetCacheClient(), logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetScheduleHandler: schedulingHandler.GetScheduleHandler,
		SetScheduleHandler: schedulingHandler.SetScheduleHandler,

		GetAvailableSlotsHandler: schedulingHandler.GetAvailableSlotsHandler,
		ReserveHandler:           schedulingHandler.ReserveHandler,
		CancelCommitmentHandler:  schedulingHandler.CancelCommitmentHandler,
		ListCommitmentsHandler:   schedulingHandler.ListCommitmentsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
