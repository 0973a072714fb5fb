package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Goldlee001/CoeCarbon/internal/models"
	"github.com/Goldlee001/CoeCarbon/internal/repositories"
)

// ErrInvalidCredentials covers both "no such phone number" and "wrong
// password" so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid phone number or password")

type UserService interface {
	Register(ctx context.Context, countryCode, phoneNumber, plainPassword string) (*models.User, error)
	Authenticate(ctx context.Context, phoneNumber, plainPassword string) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, plainPassword string) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserCount(ctx context.Context) (int, error)
}

type userService struct {
	repo        repositories.UserRepository
	authService AuthService
}

func NewUserService(repo repositories.UserRepository, authService AuthService) UserService {
	return &userService{repo: repo, authService: authService}
}

// Register hashes the password and creates the user. A phone number already
// taken surfaces as repositories.ErrDuplicatePhoneNumber.
func (s *userService) Register(ctx context.Context, countryCode, phoneNumber, plainPassword string) (*models.User, error) {
	if strings.TrimSpace(plainPassword) == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := s.authService.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		CountryCode:  strings.TrimSpace(countryCode),
		PhoneNumber:  strings.TrimSpace(phoneNumber),
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when the phone number exists and the
// password matches its hash; every other outcome except a store failure is
// ErrInvalidCredentials.
func (s *userService) Authenticate(ctx context.Context, phoneNumber, plainPassword string) (*models.User, error) {
	user, err := s.repo.GetByPhoneNumber(ctx, strings.TrimSpace(phoneNumber))
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.authService.CheckPassword(user.PasswordHash, plainPassword) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword re-hashes and stores a new password.
func (s *userService) ChangePassword(ctx context.Context, userID int64, plainPassword string) error {
	if strings.TrimSpace(plainPassword) == "" {
		return fmt.Errorf("password is required")
	}
	hash, err := s.authService.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetUserCount(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
