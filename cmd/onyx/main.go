package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"onyx/internal/api"
	"onyx/internal/api/handlers"
	"onyx/internal/repository"
	"onyx/internal/service"
	"onyx/pkg/auth"
	"onyx/pkg/config"
	"onyx/pkg/logger"
	"onyx/pkg/sqlite"

	"go.uber.org/zap"
)

// @title Onyx API
// @version 1.0
// @description Personal finance dashboard: expense ledger, budgets, savings goals, AI receipt extraction and advisor chat.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Onyx service")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Services. A missing API key leaves the LLM service inert: receipt
	// extraction and chat degrade while everything else keeps working.
	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	settingsService := service.NewSettingsService(settingsRepo, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, appLogger)
	reportService := service.NewReportService(expenseRepo, settingsService, appLogger)
	extractionService := service.NewExtractionService(llmService, appLogger)
	advisorService := service.NewAdvisorService(llmService, &cfg.Advisor, appLogger)
	reviewService := service.NewReviewService(extractionService, expenseService, appLogger)

	// Handlers
	h := api.Handlers{
		Auth:     handlers.NewAuthHandler(authService, appLogger),
		Expense:  handlers.NewExpenseHandler(expenseService, reportService, appLogger),
		Goal:     handlers.NewGoalHandler(goalService, appLogger),
		Settings: handlers.NewSettingsHandler(settingsService, appLogger),
		Document: handlers.NewDocumentHandler(reviewService, appLogger),
		Advisor:  handlers.NewAdvisorHandler(advisorService, appLogger),
		Report:   handlers.NewReportHandler(reportService, appLogger),
	}

	app := api.SetupRouter(h, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
