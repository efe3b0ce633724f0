package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"staysync/infras/otel/mocks"
	"staysync/infras/postgres"
	"staysync/shared"
	"staysync/shared/dto"
	"staysync/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type room struct {
	ID     string `db:"id"`
	Number string `db:"number"`
	Active bool   `db:"active"`
}

func newRepository(t *testing.T) (repository.Repository[room], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"))

	return repository.NewRepository[room]("room", "rooms", "id", conn, mocks.NewOtel()), mock
}

func TestInsertColumns(t *testing.T) {
	repo, _ := newRepository(t)

	assert.Equal(t, []string{"id", "number", "active"}, repo.InsertColumns)
}

func TestGet(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT rooms.id, rooms.number, rooms.active FROM rooms")).
		ExpectQuery().
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "active"}).AddRow("r-1", "101", true))

	got, err := repo.Get(context.Background(), shared.FilterByID("r-1", "id", "rooms"))

	require.NoError(t, err)
	assert.Equal(t, room{ID: "r-1", Number: "101", Active: true}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNoRowsReturnsZero(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare("SELECT").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "active"}))

	got, err := repo.Get(context.Background(), shared.FilterByID("missing", "id", "rooms"))

	require.NoError(t, err)
	assert.Equal(t, room{}, got)
}

func TestGetAllPaginates(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY rooms.number ASC LIMIT $2 OFFSET $3")).
		ExpectQuery().
		WithArgs(true, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "active"}).
			AddRow("r-1", "101", true).
			AddRow("r-2", "102", true))

	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "number", SortDir: dto.SortDirAsc}
	filter := dto.And(dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq, Table: "rooms"})

	got, err := repo.GetAll(context.Background(), params, filter)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(rooms.id) FROM rooms")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), dto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO rooms (id, number, active) VALUES ($1, $2, $3) ON CONFLICT (number) DO UPDATE SET active = EXCLUDED.active RETURNING id, (xmax = 0) AS inserted",
	)).
		WithArgs("r-9", "101", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "inserted"}).AddRow("r-1", false))

	id, inserted, err := repo.Upsert(context.Background(), room{ID: "r-9", Number: "101", Active: true}, "number", "active")

	require.NoError(t, err)
	assert.Equal(t, "r-1", id)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSortsColumns(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET active = $1, number = $2")).
		WithArgs(false, "201", "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"number": "201", "active": false}, shared.FilterByID("r-1", "id", "rooms"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteRequireFilter(t *testing.T) {
	repo, _ := newRepository(t)

	assert.Error(t, repo.Update(context.Background(), map[string]any{"active": false}, dto.FilterGroup{}))
	assert.Error(t, repo.Delete(context.Background(), dto.FilterGroup{}))
}

func TestInsertWrapsDriverError(t *testing.T) {
	repo, mock := newRepository(t)
	boom := errors.New("connection reset")

	mock.ExpectExec("INSERT INTO rooms").WillReturnError(boom)

	err := repo.Insert(context.Background(), room{ID: "r-1", Number: "101"})

	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failed to insert data (room)")
}
