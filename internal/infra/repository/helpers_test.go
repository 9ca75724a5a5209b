package repository

import (
	"testing"

	dbinfra "advse-backend/internal/infra/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// sqlmock を postgres Dialector 越しに gorm へ渡す
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := dbinfra.Open(postgres.New(postgres.Config{Conn: sqlDB}), zerolog.Nop())
	require.NoError(t, err)

	return gdb, mock
}
