package database_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/travel_agency/internal/platform/database"
)

func TestConfigDSN(t *testing.T) {
	cfg := database.Config{Host: "db", Port: "5432", User: "app", Password: "secret", DBName: "travel"}

	assert.Equal(t, "postgres://app:secret@db:5432/travel?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Equal(t, "postgres://app:secret@db:5432/travel?sslmode=require", cfg.DSN())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS web_sessions").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, database.Migrate(context.Background(), sqlx.NewDb(db, "postgres")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
