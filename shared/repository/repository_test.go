package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotelier/infras/otel/mocks"
	"hotelier/infras/postgres"
	"hotelier/shared/dto"
	"hotelier/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	ID     int64  `db:"id"     generated:"true"`
	Slug   string `db:"slug"`
	Title  string `db:"title"`
	Note   string `db:"-"`
	Hidden string
}

func newRepository(t *testing.T) (repository.Repository[listing], *postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"))

	return repository.NewRepository[listing]("listing", "listings", conn, mocks.NewOtel()), conn, mock
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo, _, _ := newRepository(t)

	assert.Equal(t, []string{"slug", "title"}, repo.InsertColumns)
}

func TestRepository_Insert(t *testing.T) {
	const query = "INSERT INTO listings (slug, title) VALUES ($1, $2) RETURNING *"

	t.Run("returns generated fields", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectQuery(query).
			WithArgs("seaside-inn", "Seaside Inn").
			WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title"}).AddRow(7, "seaside-inn", "Seaside Inn"))

		got, err := repo.Insert(context.Background(), listing{ID: 99, Slug: "seaside-inn", Title: "Seaside Inn"})
		require.NoError(t, err)

		assert.Equal(t, int64(7), got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row returned", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title"}))

		_, err := repo.Insert(context.Background(), listing{Slug: "seaside-inn"})
		assert.ErrorContains(t, err, "insert returned no row")
	})

	t.Run("query error", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectQuery(query).WillReturnError(errors.New("connection refused"))

		_, err := repo.Insert(context.Background(), listing{Slug: "seaside-inn"})
		assert.ErrorContains(t, err, "failed to insert data (listing)")
	})
}

func TestRepository_InsertTx(t *testing.T) {
	repo, conn, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO listings (slug, title) VALUES ($1, $2) RETURNING *").
		WithArgs("seaside-inn", "Seaside Inn").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title"}).AddRow(1, "seaside-inn", "Seaside Inn"))
	mock.ExpectCommit()

	err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		_, err := repo.InsertTx(context.Background(), tx, listing{Slug: "seaside-inn", Title: "Seaside Inn"})

		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll(t *testing.T) {
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "slug", Value: "seaside-inn", Operator: dto.FilterOperatorEq, Table: "listings"},
		},
	}

	t.Run("with filter", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectQuery("SELECT listings.id, listings.slug, listings.title FROM listings WHERE (listings.slug = $1)").
			WithArgs("seaside-inn").
			WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title"}).AddRow(1, "seaside-inn", "Seaside Inn"))

		got, err := repo.GetAll(context.Background(), filter)
		require.NoError(t, err)

		assert.Len(t, got, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("selected columns without filter", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectQuery("SELECT listings.slug FROM listings").
			WillReturnRows(sqlmock.NewRows([]string{"slug"}))

		got, err := repo.GetAll(context.Background(), dto.FilterGroup{}, "slug")
		require.NoError(t, err)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectQuery("SELECT listings.id, listings.slug, listings.title FROM listings WHERE (listings.slug = $1)").
			WillReturnError(errors.New("relation \"listings\" does not exist"))

		got, err := repo.GetAll(context.Background(), filter)
		assert.ErrorContains(t, err, "failed to get all data (listing)")
		assert.NotNil(t, got)
	})
}
