// Seeds the database with the default settings rows and, when
// SEED_USERNAME/SEED_PASSWORD are set, a demo account.
package main

import (
	"context"
	"log"
	"os"

	"onyx/internal/models"
	"onyx/internal/repository"
	"onyx/pkg/auth"
	"onyx/pkg/config"
	"onyx/pkg/logger"
	"onyx/pkg/sqlite"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	settingsRepo := repository.NewSettingsRepository(db, appLogger)

	defaults := map[string]string{
		models.SettingBudget:   models.DefaultBudget,
		models.SettingCurrency: models.DefaultCurrency,
	}
	for key, value := range defaults {
		if _, ok, err := settingsRepo.Get(ctx, key); err != nil {
			appLogger.Fatal("Failed to read setting", zap.String("key", key), zap.Error(err))
		} else if ok {
			continue
		}
		if err := settingsRepo.Set(ctx, key, value); err != nil {
			appLogger.Fatal("Failed to seed setting", zap.String("key", key), zap.Error(err))
		}
		appLogger.Info("Seeded setting", zap.String("key", key), zap.String("value", value))
	}

	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	if username != "" && password != "" {
		userRepo := repository.NewUserRepository(db, appLogger)
		if _, err := userRepo.GetByUsername(ctx, username); err == nil {
			appLogger.Info("Demo user already exists", zap.String("username", username))
		} else {
			hash, err := auth.HashPassword(password)
			if err != nil {
				appLogger.Fatal("Failed to hash password", zap.Error(err))
			}
			user := &models.User{Username: username, Password: hash}
			if err := userRepo.Create(ctx, user); err != nil {
				appLogger.Fatal("Failed to create demo user", zap.Error(err))
			}
			appLogger.Info("Seeded demo user", zap.String("username", username))
		}
	}

	appLogger.Info("Seeding completed")
}
