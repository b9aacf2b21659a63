package repository_test

import (
	"context"
	"estate/infras/otel/mocks"
	"estate/infras/postgres"
	"estate/internal/domains/resource/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) (repository.Directory, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	dbx := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: dbx, Write: dbx}, mocks.NewOtel()), mock
}

func TestDirectory_Get(t *testing.T) {
	dir, mock := newDirectory(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT resources.id, resources.owner_id, resources.name, resources.is_available FROM resources")).
		ExpectQuery().
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "is_available"}).AddRow("r1", "m1", "Loft", true))

	res, err := dir.Get(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, res.Exists())
	assert.True(t, res.IsOpenForViewing())
	assert.Equal(t, "m1", res.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectory_GetMissing(t *testing.T) {
	dir, mock := newDirectory(t)

	mock.ExpectPrepare("FROM resources").
		ExpectQuery().
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "is_available"}))

	res, err := dir.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, res.Exists())
	assert.False(t, res.IsOpenForViewing())
}

func TestDirectory_LeasedResourceIDs(t *testing.T) {
	dir, mock := newDirectory(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT leases.resource_id FROM leases")).
		ExpectQuery().
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"resource_id"}).AddRow("r1").AddRow("r2"))

	ids, err := dir.LeasedResourceIDs(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
