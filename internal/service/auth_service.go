package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/saad710/shop-api/internal/events"
	"github.com/saad710/shop-api/internal/jwt"
	"github.com/saad710/shop-api/internal/model"
	"github.com/saad710/shop-api/internal/repository"
)

type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	ProfilePicture *string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    *jwt.Service
	publisher events.Publisher
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Service, publisher events.Publisher) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		publisher: publisher,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (string, error) {
	_, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return "", ErrUserExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   string(hashedPassword),
		ProfilePicture: input.ProfilePicture,
	}

	newID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return "", err
	}
	user.ID = newID

	if err := s.publisher.PublishUserRegistered(user); err != nil {
		slog.Warn("Failed to publish user.registered event", "error", err)
	}

	return s.tokens.Issue(user.ID)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}
