package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"emaxplatform/internal/infrastructure/database"
)

// NewTestDB opens a private in-memory SQLite database and migrates models into it.
func NewTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(context.Background(), database.Options{
		Driver:      database.DriverSQLite,
		DSN:         dsn,
		MaxAttempts: 1,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrateTables(context.Background(), db, models...))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
