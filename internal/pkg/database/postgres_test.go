package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(models.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		Username: "admin",
		Password: "secret",
		Database: "admin_gateway",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://admin:secret@db:5432/admin_gateway?sslmode=disable", dsn)
}

func TestPostgresClient_Ping(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, client.Ping(context.Background()))

	mock.ExpectClose()
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
