package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"onyx/internal/dto"
	"onyx/internal/models"
	"onyx/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportService does the caller-side aggregation over the ledger: total
// spend, per-category breakdown and budget utilization. The store itself
// exposes no aggregate operations.
type ReportService struct {
	expenses *repository.ExpenseRepository
	settings *SettingsService
	logger   *zap.Logger
}

func NewReportService(expenses *repository.ExpenseRepository, settings *SettingsService, logger *zap.Logger) *ReportService {
	return &ReportService{
		expenses: expenses,
		settings: settings,
		logger:   logger,
	}
}

func (s *ReportService) Summary(ctx context.Context) (*dto.ReportSummary, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	budget, err := s.settings.Budget(ctx)
	if err != nil {
		return nil, err
	}
	currency, err := s.settings.Currency(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	totals := make(map[models.Category]decimal.Decimal)
	counts := make(map[models.Category]int)
	for _, e := range expenses {
		amount := decimal.NewFromFloat(e.Amount)
		total = total.Add(amount)
		totals[e.Category] = totals[e.Category].Add(amount)
		counts[e.Category]++
	}

	hundred := decimal.NewFromInt(100)
	categories := make([]dto.CategorySummary, 0, len(totals))
	for _, cat := range models.Categories {
		catTotal, ok := totals[cat]
		if !ok {
			continue
		}
		share := decimal.Zero
		if total.IsPositive() {
			share = catTotal.Div(total).Mul(hundred)
		}
		categories = append(categories, dto.CategorySummary{
			Category: string(cat),
			Total:    catTotal.Round(2).InexactFloat64(),
			Count:    counts[cat],
			Share:    share.Round(2).InexactFloat64(),
		})
	}

	utilization := decimal.Zero
	if budget.IsPositive() {
		utilization = total.Div(budget).Mul(hundred)
	}

	return &dto.ReportSummary{
		Currency:          currency,
		Budget:            budget.Round(2).InexactFloat64(),
		TotalSpend:        total.Round(2).InexactFloat64(),
		Remaining:         budget.Sub(total).Round(2).InexactFloat64(),
		BudgetUtilization: utilization.Round(2).InexactFloat64(),
		ExpenseCount:      len(expenses),
		Categories:        categories,
	}, nil
}

// ExportCSV writes the full ledger as comma-separated UTF-8 with a header
// row, suitable for a file download.
func (s *ReportService) ExportCSV(ctx context.Context, w io.Writer) error {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "category", "amount", "description"}); err != nil {
		return err
	}

	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date,
			string(e.Category),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Description,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
