package service

import (
	"context"
	"ctchen222/Cat-Match/internal/api/models"
	"ctchen222/Cat-Match/internal/api/repository"
	"ctchen222/Cat-Match/internal/api/response"
	"ctchen222/Cat-Match/internal/validator"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for an unknown login or a wrong password.
var ErrInvalidCredentials = fmt.Errorf("incorrect login or password: %w", response.ErrUnauthorized)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	// GetUser returns (nil, nil) when the user no longer exists.
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register handles user registration. Invalid input and a taken login come
// back as *models.ValidationError.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	req.Login = strings.TrimSpace(req.Login)
	if fields := validator.FieldErrors(req); fields != nil {
		return nil, &models.ValidationError{Fields: fields}
	}

	user := &models.User{
		Login: req.Login,
	}
	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		if errors.Is(err, repository.ErrLoginTaken) {
			return nil, &models.ValidationError{Fields: models.FieldErrors{
				"login": fmt.Sprintf("User %s is already registered", req.Login),
			}}
		}
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns the matching user.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	req.Login = strings.TrimSpace(req.Login)
	if fields := validator.FieldErrors(req); fields != nil {
		return nil, &models.ValidationError{Fields: fields}
	}

	user, err := s.userRepo.GetUserByLogin(ctx, req.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}
