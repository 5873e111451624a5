package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// ErrUsernameTaken indicates the requested username already exists.
var ErrUsernameTaken = errors.New("username already exists")

// UserService manages user accounts.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, payload dto.UserCreateRequest) (models.User, error)
}

type userService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewUserService constructs a user service.
func NewUserService(users repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Create(ctx context.Context, payload dto.UserCreateRequest) (models.User, error) {
	if _, err := s.users.GetByUsername(ctx, payload.Username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     payload.Username,
		Email:        payload.Email,
		FullName:     payload.FullName,
		Role:         payload.Role,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user created")

	return user, nil
}
