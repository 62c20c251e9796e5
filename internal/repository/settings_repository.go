package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type SettingsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSettingsRepository(db *sql.DB, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the stored value for key; the second result reports whether
// a row existed.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := squirrel.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Question)

	stmt, args, err := query.ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.db.QueryRowContext(ctx, stmt, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// Set upserts the key: an existing value is replaced.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	query := squirrel.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		PlaceholderFormat(squirrel.Question)

	stmt, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, stmt, args...)
	return err
}
