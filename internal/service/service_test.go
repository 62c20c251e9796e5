package service

import (
	"context"
	"database/sql"
	"testing"

	"onyx/pkg/config"
	"onyx/pkg/sqlite"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestDB opens a fresh in-memory database with the schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), &config.DatabaseConfig{Path: ":memory:"}, zap.NewNop())
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
