package service_test

import (
	"context"
	"testing"

	"github.com/saad710/shop-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestChangePassword(t *testing.T) {
	repo := newMemoryUserRepo()
	authSvc, _ := newAuthService(repo)
	userSvc := service.NewUserService(repo)

	_, err := authSvc.Register(context.Background(), service.RegisterInput{
		Username: "saad", Email: "saad@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	user, err := repo.FindByEmail(context.Background(), "saad@example.com")
	require.NoError(t, err)
	oldHash := user.PasswordHash

	_, err = userSvc.ChangePassword(context.Background(), user.ID, "old-password", "new-password")
	require.NoError(t, err)
	require.NotEqual(t, oldHash, user.PasswordHash)

	// old password no longer logs in, new one does
	_, err = authSvc.Login(context.Background(), "saad@example.com", "old-password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = authSvc.Login(context.Background(), "saad@example.com", "new-password")
	require.NoError(t, err)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	authSvc, _ := newAuthService(repo)
	userSvc := service.NewUserService(repo)

	_, err := authSvc.Register(context.Background(), service.RegisterInput{
		Username: "saad", Email: "saad@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	user, err := repo.FindByEmail(context.Background(), "saad@example.com")
	require.NoError(t, err)

	_, err = userSvc.ChangePassword(context.Background(), user.ID, "guess", "new-password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestChangePassword_UnknownUser(t *testing.T) {
	repo := newMemoryUserRepo()
	userSvc := service.NewUserService(repo)

	_, err := userSvc.ChangePassword(context.Background(), uuid.New(), "a", "b")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	repo := newMemoryUserRepo()
	authSvc, _ := newAuthService(repo)
	userSvc := service.NewUserService(repo)

	_, err := authSvc.Register(context.Background(), service.RegisterInput{
		Username: "saad", Email: "saad@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	user, err := repo.FindByEmail(context.Background(), "saad@example.com")
	require.NoError(t, err)

	newName := "saad710"
	updated, err := userSvc.Update(context.Background(), user.ID, service.UpdateUserInput{Username: &newName})
	require.NoError(t, err)
	require.Equal(t, "saad710", updated.Username)
	require.Equal(t, "saad@example.com", updated.Email)
}
