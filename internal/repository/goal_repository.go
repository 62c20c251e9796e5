package repository

import (
	"context"
	"database/sql"

	"onyx/internal/models"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type GoalRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewGoalRepository(db *sql.DB, logger *zap.Logger) *GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a goal with current_amount starting at zero.
func (r *GoalRepository) Create(ctx context.Context, name string, targetAmount float64) (*models.Goal, error) {
	query := squirrel.Insert("goals").
		Columns("name", "target_amount", "current_amount").
		Values(name, targetAmount, 0).
		PlaceholderFormat(squirrel.Question)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Goal{
		ID:           id,
		Name:         name,
		TargetAmount: targetAmount,
	}, nil
}

func (r *GoalRepository) List(ctx context.Context) ([]*models.Goal, error) {
	query := squirrel.Select("id", "name", "target_amount", "current_amount").
		From("goals").
		OrderBy("id").
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

	var goals []*models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount); err != nil {
			return nil, err
		}
		goals = append(goals, &g)
	}

	return goals, rows.Err()
}

// Fund adds delta to the goal's current_amount in a single additive UPDATE.
// There is no clamping: the stored amount may exceed the target.
func (r *GoalRepository) Fund(ctx context.Context, id int64, delta float64) (bool, error) {
	query := squirrel.Update("goals").
		Set("current_amount", squirrel.Expr("current_amount + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Question)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
