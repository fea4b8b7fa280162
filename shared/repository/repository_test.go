package repository_test

import (
	"barber/infras/otel/mocks"
	"barber/infras/postgres"
	"barber/shared/dto"
	"barber/shared/model"
	"barber/shared/repository"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	GroupName sql.NullString `db:"group_name" table:"groups" column:"name"`
	model.Metadata
}

func (widget) GetJoinQuery() string {
	return "LEFT JOIN groups ON groups.id = widgets.group_id"
}

func newRepo(t *testing.T) (repository.Repository[widget], sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	conn := &postgres.Connection{Read: db, Write: db}

	return repository.NewRepository[widget]("widget", "widgets", "id", conn, mocks.NewOtel()), mock
}

func byName(name string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "name", Value: name, Operator: dto.FilterOperatorEq, Table: "widgets"},
		},
	}
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`INSERT INTO widgets \(id, name, created_at, modified_at, created_by, modified_by\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)`).
		WithArgs(int64(1), "a", sqlmock.AnyArg(), sqlmock.AnyArg(), "public", "public").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), widget{ID: 1, Name: "a", Metadata: model.NewMetadata(time.Now(), "public")})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`INSERT INTO widgets`).WillReturnError(errors.New("connection reset"))

	err := repo.Insert(context.Background(), widget{ID: 1})

	assert.ErrorContains(t, err, "failed to insert data (widget)")
}

func TestRepository_Exist(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(`SELECT EXISTS\(SELECT 1 FROM widgets\s+WHERE \(widgets\.name = \$1\)`).
		ExpectQuery().
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exist, err := repo.Exist(context.Background(), byName("a"))

	require.NoError(t, err)
	assert.True(t, exist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistRequiresFilter(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.Exist(context.Background(), dto.FilterGroup{})

	assert.Error(t, err)
}

func TestRepository_Get(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(`SELECT widgets\.id, widgets\.name, groups\.name AS group_name, widgets\.created_at, widgets\.modified_at, widgets\.created_by, widgets\.modified_by FROM widgets LEFT JOIN groups ON groups\.id = widgets\.group_id\s+WHERE \(widgets\.name = \$1\)\s+LIMIT 1`).
		ExpectQuery().
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "group_name", "created_at", "modified_at", "created_by", "modified_by"}).
			AddRow(int64(1), "a", "fades", now, now, "admin", "admin"))

	got, err := repo.Get(context.Background(), byName("a"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "fades", got.GroupName.String)
	assert.Equal(t, "admin", got.CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNoRows(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(`SELECT .* FROM widgets`).
		ExpectQuery().
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), byName("missing"))

	require.NoError(t, err)
	assert.Zero(t, got.ID)
}

func TestRepository_GetAllSorted(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(`SELECT widgets\.id, widgets\.name FROM widgets LEFT JOIN groups ON groups\.id = widgets\.group_id\s+ORDER BY widgets\.name ASC`).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "b").AddRow(int64(1), "c"))

	got, err := repo.GetAll(context.Background(), dto.SortedBy("name"), dto.FilterGroup{}, "id", "name")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
