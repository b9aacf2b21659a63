package postgres

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRetriesUntilConnected(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	calls := 0
	connect := func(dsn string) (*sqlx.DB, error) {
		calls++
		assert.Equal(t, "postgres://dsn", dsn)

		if calls < 3 {
			return nil, errors.New("connection refused")
		}

		return sqlx.NewDb(db, "postgres"), nil
	}

	conn, err := open("write", "postgres://dsn", 5, 0, connect)

	require.NoError(t, err)
	assert.NotNil(t, conn)
	assert.Equal(t, 3, calls)
	assert.Equal(t, maxOpenConnections, conn.Stats().MaxOpenConnections)
}

func TestOpenGivesUpAfterAttempts(t *testing.T) {
	calls := 0
	connect := func(string) (*sqlx.DB, error) {
		calls++

		return nil, errors.New("connection refused")
	}

	conn, err := open("read", "postgres://dsn", 2, 0, connect)

	require.Error(t, err)
	assert.Nil(t, conn)
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "read database after 2 attempts")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestOpenTriesAtLeastOnce(t *testing.T) {
	calls := 0
	connect := func(string) (*sqlx.DB, error) {
		calls++

		return nil, errors.New("no route to host")
	}

	_, err := open("write", "postgres://dsn", 0, 0, connect)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
