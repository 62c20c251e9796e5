package service

import (
	"context"
	"errors"
	"strings"

	"onyx/internal/models"
	"onyx/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrGoalNotFound        = errors.New("goal not found")
	ErrEmptyGoalName       = errors.New("goal name must not be empty")
	ErrInvalidTarget       = errors.New("target amount must be positive")
	ErrInvalidContribution = errors.New("contribution must be positive")
)

type GoalService struct {
	repo   *repository.GoalRepository
	logger *zap.Logger
}

func NewGoalService(repo *repository.GoalRepository, logger *zap.Logger) *GoalService {
	return &GoalService{
		repo:   repo,
		logger: logger,
	}
}

func (s *GoalService) Create(ctx context.Context, name string, targetAmount float64) (*models.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyGoalName
	}
	if targetAmount <= 0 {
		return nil, ErrInvalidTarget
	}

	return s.repo.Create(ctx, name, targetAmount)
}

func (s *GoalService) List(ctx context.Context) ([]*models.Goal, error) {
	return s.repo.List(ctx)
}

// Fund adds delta to the goal. The stored amount is free to overshoot the
// target; only the displayed progress clamps.
func (s *GoalService) Fund(ctx context.Context, id int64, delta float64) error {
	if delta <= 0 {
		return ErrInvalidContribution
	}

	found, err := s.repo.Fund(ctx, id, delta)
	if err != nil {
		return err
	}
	if !found {
		return ErrGoalNotFound
	}

	s.logger.Info("Goal funded", zap.Int64("id", id), zap.Float64("amount", delta))
	return nil
}

// Progress returns the display fraction for a goal, clamped to 1.
func Progress(g *models.Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}

	ratio := decimal.NewFromFloat(g.CurrentAmount).
		Div(decimal.NewFromFloat(g.TargetAmount))
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return 1
	}

	return ratio.InexactFloat64()
}
