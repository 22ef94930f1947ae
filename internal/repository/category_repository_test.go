package repository_test

import (
	"context"
	"regexp"
	"testing"

	repo "github.com/saad710/shop-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPostgresCategoryRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresCategoryRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories (name) VALUES ($1) RETURNING id`)).
		WithArgs("Shoes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	category, err := r.Create(context.Background(), "Shoes")
	require.NoError(t, err)
	require.Equal(t, id, category.ID)
	require.Equal(t, "Shoes", category.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCategoryRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresCategoryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(uuid.New(), "Accessories").
		AddRow(uuid.New(), "Shoes")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM categories ORDER BY name`)).
		WillReturnRows(rows)

	categories, err := r.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Equal(t, "Accessories", categories[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCategoryRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresCategoryRepository(db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}
