package cmd

import (
	"errors"
	"testing"

	"payments-api/pkg/utils"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newPingMock(t *testing.T, pingErr error) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	expected := mock.ExpectPing()
	if pingErr != nil {
		expected.WillReturnError(pingErr)
	}
	return mock
}

func TestCheckDatabaseConnected(t *testing.T) {
	mock := newPingMock(t, nil)
	core, logs := observer.New(zapcore.InfoLevel)

	err := checkDatabase(mock, utils.DatabaseConfig{RequireOnStart: true}, zap.New(core))

	assert.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Database connected successfully").Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckDatabaseKeepsServingOnFailure(t *testing.T) {
	mock := newPingMock(t, errors.New("connection refused"))
	core, logs := observer.New(zapcore.InfoLevel)

	err := checkDatabase(mock, utils.DatabaseConfig{}, zap.New(core))

	assert.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Database connection failed, serving anyway").Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckDatabaseRequiredOnStart(t *testing.T) {
	mock := newPingMock(t, errors.New("connection refused"))
	core, logs := observer.New(zapcore.InfoLevel)

	err := checkDatabase(mock, utils.DatabaseConfig{RequireOnStart: true}, zap.New(core))

	assert.ErrorContains(t, err, "connection refused")
	assert.Zero(t, logs.Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}
