// File: wayfarer/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfarer/config"
	"wayfarer/cron"
	"wayfarer/database"
	"wayfarer/database/repository"
	"wayfarer/handlers"
	"wayfarer/middleware"
	"wayfarer/routes"
	"wayfarer/services/intelligence"
	"wayfarer/services/planner"
	"wayfarer/services/reservation"
	"wayfarer/services/tasks"
	"wayfarer/services/weather"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitCache()
	utils.InitQueueClient()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	itineraryRepo := repository.NewMongoItineraryRepo()
	preferenceRepo := repository.NewMongoPreferenceRepo()
	eventsRepo := repository.NewMongoEventsRepo()
	for name, ensure := range map[string]func() error{
		"itineraries": itineraryRepo.EnsureIndexes,
		"preferences": preferenceRepo.EnsureIndexes,
		"events":      eventsRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	// context sources.
	weatherSource := weather.NewCachedSource(
		weather.NewOpenWeatherSource(config.AppConfig.WeatherAPIKey, config.AppConfig.WeatherAPIURL),
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.WeatherCacheTTLMinutes)*time.Minute,
		logger.Named("weather"),
	)
	if config.AppConfig.WeatherAPIKey == "" {
		logger.Warn("main: WEATHER_API_KEY not set, using seasonal mock forecasts")
	}

	// reservations.
	coordinator := &reservation.Coordinator{
		Primary:         newPrimaryBooker(logger),
		Fallback:        reservation.NewSimulatedFallbackBooker(config.AppConfig.FallbackSuccessRate, time.Duration(config.AppConfig.FallbackDelayMS)*time.Millisecond),
		PrimaryTimeout:  time.Duration(config.AppConfig.PrimaryBookingTimeoutSeconds) * time.Second,
		FallbackTimeout: time.Duration(config.AppConfig.FallbackTimeoutSeconds) * time.Second,
		Parallelism:     config.AppConfig.ReservationParallelism,
		Logger:          logger.Named("reservation"),
	}

	queueClient := asynq.NewClient(cron.RedisOpt())
	defer queueClient.Close()

	plannerService := &planner.DefaultPlannerService{
		Preferences:  preferenceRepo,
		Weather:      weatherSource,
		Events:       eventsRepo,
		Store:        itineraryRepo,
		Reservations: coordinator,
		Queue:        tasks.NewAsynqReservationQueue(queueClient),
		Summarizer:   newNarrator(rootCtx, logger),
		Logger:       logger.Named("planner"),
	}

	worker := cron.InitReservationWorker(plannerService, logger.Named("worker"))
	utils.StartHealthMonitor(rootCtx, []*redis.Client{utils.GetCacheClient(), utils.GetQueueClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger.Named("http")))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewItineraryHandler(plannerService),
		handlers.NewPreferenceHandler(preferenceRepo),
		handlers.NewEventsHandler(eventsRepo),
	)
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
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func newPrimaryBooker(logger *zap.Logger) reservation.PrimaryBooker {
	if config.AppConfig.PrimaryBookingURL == "" {
		logger.Warn("main: PRIMARY_BOOKING_URL not set, all reservations go to the fallback")
		return reservation.UnavailablePrimary{}
	}
	return reservation.NewHTTPPrimaryBooker(
		config.AppConfig.PrimaryBookingURL,
		time.Duration(config.AppConfig.PrimaryBookingTimeoutSeconds)*time.Second,
	)
}

func newNarrator(ctx context.Context, logger *zap.Logger) *intelligence.Narrator {
	narrator := &intelligence.Narrator{Logger: logger.Named("narrator")}
	if config.AppConfig.GeminiAPIKey == "" {
		return narrator
	}
	client, err := intelligence.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Warn("main: gemini disabled", zap.Error(err))
		return narrator
	}
	narrator.Generator = client
	narrator.Cache = intelligence.NewRedisSummaryStore(utils.GetCacheClient(), 24*time.Hour)
	return narrator
}
