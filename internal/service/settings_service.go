package service

import (
	"context"
	"errors"

	"onyx/internal/models"
	"onyx/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency symbol")

// SettingsService fronts the key/value settings table, supplying defaults
// for the two well-known keys when no row exists yet.
type SettingsService struct {
	repo   *repository.SettingsRepository
	logger *zap.Logger
}

func NewSettingsService(repo *repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		repo:   repo,
		logger: logger,
	}
}

func (s *SettingsService) Budget(ctx context.Context) (decimal.Decimal, error) {
	raw, ok, err := s.repo.Get(ctx, models.SettingBudget)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		raw = models.DefaultBudget
	}

	budget, err := decimal.NewFromString(raw)
	if err != nil {
		// A malformed stored value should not take the dashboard down.
		s.logger.Warn("Stored budget is not numeric, using default", zap.String("value", raw))
		return decimal.RequireFromString(models.DefaultBudget), nil
	}

	return budget, nil
}

func (s *SettingsService) SetBudget(ctx context.Context, budget decimal.Decimal) error {
	return s.repo.Set(ctx, models.SettingBudget, budget.String())
}

func (s *SettingsService) Currency(ctx context.Context) (string, error) {
	symbol, ok, err := s.repo.Get(ctx, models.SettingCurrency)
	if err != nil {
		return "", err
	}
	if !ok {
		return models.DefaultCurrency, nil
	}
	return symbol, nil
}

func (s *SettingsService) SetCurrency(ctx context.Context, symbol string) error {
	if !models.ValidCurrency(symbol) {
		return ErrUnsupportedCurrency
	}
	return s.repo.Set(ctx, models.SettingCurrency, symbol)
}
