package repository_test

import (
	"context"
	"estate/infras/otel/mocks"
	"estate/infras/postgres"
	"estate/shared"
	"estate/shared/dto"
	"estate/shared/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotRow struct {
	ID     string `db:"id"`
	Status string `db:"status"`
}

func newRepository(t *testing.T) (repository.Repository[slotRow], *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	dbx := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: dbx, Write: dbx}

	return repository.NewRepository[slotRow]("slot", "slots", "id", conn, mocks.NewOtel()), dbx, mock
}

func TestRepository_Columns(t *testing.T) {
	repo, _, _ := newRepository(t)

	assert.Equal(t, []string{"id", "status"}, repo.Columns)
}

type auditedRow struct {
	slotRow
	Note    string `db:"note,omitempty"`
	Ignored string `db:"-"`
	Plain   string
}

func TestRepository_ColumnsIncludeEmbeddedStructs(t *testing.T) {
	repo := repository.NewRepository[auditedRow]("audited", "audited", "id", &postgres.Connection{}, mocks.NewOtel())

	assert.Equal(t, []string{"id", "status", "note"}, repo.Columns)
}

func TestWhereClause(t *testing.T) {
	where, args := repository.WhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.NotNil(t, args)

	where, args = repository.WhereClause(shared.FilterByID("v1", "id", "slots"))
	assert.Equal(t, " WHERE (slots.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "v1"}, args)
}

func TestRepository_GetAllPaginates(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT slots.id, slots.status FROM slots WHERE (slots.status = $1) ORDER BY id ASC LIMIT $2 OFFSET $3")).
		ExpectQuery().
		WithArgs("pending", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("v11", "pending"))

	rows, err := repo.GetAll(
		context.Background(),
		dto.QueryParams{Page: 2, Limit: 10, SortBy: "id", SortDir: dto.SortDirAsc},
		dto.FilterGroup{Filters: []any{shared.FilterEq("status", "slots", "pending")}},
	)

	require.NoError(t, err)
	assert.Equal(t, []slotRow{{ID: "v11", Status: "pending"}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetReturnsZeroWhenMissing(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT slots.id, slots.status FROM slots")).
		ExpectQuery().
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

	row, err := repo.Get(context.Background(), shared.FilterByID("missing", "id", "slots"))

	require.NoError(t, err)
	assert.Empty(t, row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdateTx(t *testing.T) {
	repo, dbx, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("FOR UPDATE OF slots")).
		ExpectQuery().
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("v1", "pending"))
	mock.ExpectCommit()

	tx, err := dbx.Beginx()
	require.NoError(t, err)

	row, err := repo.GetForUpdateTx(context.Background(), tx, shared.FilterByID("v1", "id", "slots"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, slotRow{ID: "v1", Status: "pending"}, row)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdateTxRequiresFilter(t *testing.T) {
	repo, dbx, mock := newRepository(t)

	mock.ExpectBegin()

	tx, err := dbx.Beginx()
	require.NoError(t, err)

	_, err = repo.GetForUpdateTx(context.Background(), tx, dto.FilterGroup{})
	assert.Error(t, err)
}

func TestRepository_WritesRequireFilter(t *testing.T) {
	repo, dbx, mock := newRepository(t)

	mock.ExpectBegin()

	tx, err := dbx.Beginx()
	require.NoError(t, err)

	assert.Error(t, repo.UpdateTx(context.Background(), tx, map[string]any{"status": "cancelled"}, dto.FilterGroup{}))
	assert.Error(t, repo.DeleteTx(context.Background(), tx, dto.FilterGroup{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateTx(t *testing.T) {
	repo, dbx, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE slots SET status = $1 WHERE (slots.id = $2)")).
		WithArgs("confirmed", "v1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := dbx.Beginx()
	require.NoError(t, err)

	err = repo.UpdateTx(context.Background(), tx, map[string]any{"status": "confirmed"}, shared.FilterByID("v1", "id", "slots"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}
