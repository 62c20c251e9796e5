package repository

import (
	"context"
	"database/sql"

	"onyx/internal/models"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type ExpenseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewExpenseRepository(db *sql.DB, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends one record to the ledger and fills in the assigned id.
func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns("date", "category", "amount", "description").
		Values(e.Date, e.Category, e.Amount, e.Description).
		PlaceholderFormat(squirrel.Question)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		return err
	}

	e.ID, err = res.LastInsertId()
	return err
}

// List returns every ledger record, most recent date first. Records sharing
// a date come back newest insertion first.
func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	query := squirrel.Select("id", "date", "category", "amount", "description").
		From("expenses").
		OrderBy("date DESC", "id DESC").
		PlaceholderFormat(squirrel.Question)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &e.Amount, &e.Description); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}

	return expenses, rows.Err()
}
