package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-trade-journal/internal/journal/config"
	delivery "golang-trade-journal/internal/journal/delivery/http"
	_ "golang-trade-journal/internal/journal/docs"
	"golang-trade-journal/internal/journal/repository"
	"golang-trade-journal/internal/journal/service"
	"golang-trade-journal/pkg/logger"
	"golang-trade-journal/pkg/metrics"
	"golang-trade-journal/pkg/postgres"
	"golang-trade-journal/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the journal service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Journal Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize Gemini client
	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
	}

	// Initialize repositories
	tradeRepo := repository.NewTradeRepository(db.DB)
	planRepo := repository.NewWatchlistPlanRepository(db.DB)
	insightRepo := repository.NewInsightRepository(db.DB)
	summaryRepo := repository.NewSymbolNewsSummaryRepository(db.DB)
	quoteRepo := repository.NewFinnhubQuoteRepository(cfg, appLogger)
	aiRepo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize AI repository", logger.ErrorField(err))
	}

	// Initialize services
	engine := metrics.NewEngine(metrics.Config{
		CapitalUnits:    cfg.Analytics.CapitalUnits,
		RiskFreeRatePct: cfg.Analytics.RiskFreeRatePct,
		CapitalBase:     cfg.Analytics.CapitalBase,
	})
	tradeSvc := service.NewTradeService(tradeRepo, redisClient, appLogger)
	watchlistSvc := service.NewWatchlistService(planRepo, appLogger)
	analyticsSvc := service.NewAnalyticsService(cfg, tradeRepo, redisClient, appLogger)
	simulationSvc := service.NewSimulationService(cfg, appLogger)
	insightSvc := service.NewInsightService(engine, tradeRepo, planRepo, summaryRepo, insightRepo, aiRepo, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1", delivery.RequireUserID)

	tradeHandler := delivery.NewTradeHandler(tradeSvc, appLogger)
	tradeHandler.RegisterRoutes(apiV1.Group("/trades"))

	watchlistHandler := delivery.NewWatchlistHandler(watchlistSvc, appLogger)
	watchlistHandler.RegisterRoutes(apiV1.Group("/watchlist-plans"))

	analyticsHandler := delivery.NewAnalyticsHandler(analyticsSvc, appLogger)
	analyticsHandler.RegisterRoutes(apiV1.Group("/analytics"))

	simulationHandler := delivery.NewSimulationHandler(simulationSvc, appLogger)
	simulationHandler.RegisterRoutes(apiV1.Group("/simulations"))

	insightHandler := delivery.NewInsightHandler(insightSvc, appLogger)
	insightHandler.RegisterRoutes(apiV1.Group("/insights"))

	quoteHandler := delivery.NewQuoteHandler(quoteRepo, appLogger)
	quoteHandler.RegisterRoutes(apiV1.Group("/quotes"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Trade Journal API
// @version 1.0
// @description Backend for the trading journal: trade CRUD, performance analytics, Monte Carlo simulation and AI insights.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "journal-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-journal.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing journal-service CLI: %s\n", err)
		os.Exit(1)
	}
}
