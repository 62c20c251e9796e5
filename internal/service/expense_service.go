package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"onyx/internal/models"
	"onyx/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidCategory = errors.New("unknown expense category")
	ErrNegativeAmount  = errors.New("amount must not be negative")
)

type ExpenseService struct {
	repo   *repository.ExpenseRepository
	logger *zap.Logger
}

func NewExpenseService(repo *repository.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		repo:   repo,
		logger: logger,
	}
}

// Add validates and appends one record to the ledger. The ledger is
// append-only; there is no update or delete.
func (s *ExpenseService) Add(ctx context.Context, date, category string, amount float64, description string) (*models.Expense, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	cat, ok := models.ParseCategory(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	expense := &models.Expense{
		Date:        date,
		Category:    cat,
		Amount:      amount,
		Description: strings.TrimSpace(description),
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("Expense recorded",
		zap.Int64("id", expense.ID),
		zap.String("category", string(expense.Category)),
		zap.Float64("amount", expense.Amount),
	)

	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context) ([]*models.Expense, error) {
	return s.repo.List(ctx)
}
