package db

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	database, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return database, mock
}

func TestRunMigrationsExecutesInOrder(t *testing.T) {
	database, mock := newMockDB(t)
	for _, stmt := range migrationStatements {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, runMigrations(database))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsStopsOnFailure(t *testing.T) {
	database, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(migrationStatements[0])).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(migrationStatements[1])).WillReturnError(errors.New("permission denied"))

	err := runMigrations(database)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 2 failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrationsCreateFormattedIDSequences(t *testing.T) {
	last := migrationStatements[len(migrationStatements)-1]
	for _, seq := range []string{
		"freight_formatted_id_seq",
		"expense_settlement_formatted_id_seq",
		"sale_settlement_formatted_id_seq",
	} {
		assert.Contains(t, last, seq)
	}
}

func TestMigrationsBillEachFreightOnce(t *testing.T) {
	assert.Contains(t, migrationStatements,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_sale_settlement_details_freight_id ON sale_settlement_details (freight_id);`)
}
