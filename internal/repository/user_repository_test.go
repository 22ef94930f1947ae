package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/saad710/shop-api/internal/model"
	repo "github.com/saad710/shop-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresUserRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, email, password_hash, profile_picture) VALUES ($1, $2, $3, $4) RETURNING id`)).
		WithArgs("saad", "a@b.com", "hash", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	nid, err := r.Create(context.Background(), &model.User{Username: "saad", Email: "a@b.com", PasswordHash: "hash"})
	require.NoError(t, err)
	require.Equal(t, id, nid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_FindByEmail_Success(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresUserRepository(db)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "is_admin"}).
		AddRow(id, "saad", "a@b.com", "hash", false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, profile_picture, is_admin, created_at, updated_at FROM users WHERE email = $1`)).
		WithArgs("a@b.com").WillReturnRows(rows)

	u, err := r.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_FindByID_Error(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, profile_picture, is_admin, created_at, updated_at FROM users WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).WillReturnError(sql.ErrNoRows)

	_, err := r.FindByID(context.Background(), uuid.New())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Update_OnlyProvidedColumns(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresUserRepository(db)

	id := uuid.New()
	username := "saad710"
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET username = $1, updated_at = now() WHERE id = $2`)).
		WithArgs(username, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Update(context.Background(), id, repo.UserUpdate{Username: &username})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Update_NoFieldsIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresUserRepository(db)

	err := r.Update(context.Background(), uuid.New(), repo.UserUpdate{})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_UpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresUserRepository(db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`)).
		WithArgs("new-hash", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.UpdatePassword(context.Background(), id, "new-hash")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
