package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"snapkitty-api/internal/domain/entity"
	"snapkitty-api/internal/domain/repository"
	"snapkitty-api/pkg/jwt"
	"snapkitty-api/pkg/password"
)

type AuthUsecase struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	jwtSecret string,
	jwtExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// register user
func (uc *AuthUsecase) Register(
	ctx context.Context,
	username, pass string,
) (*entity.User, error) {
	// Validate input
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return nil, errors.New("username and password are required")
	}

	// Check if username already exists
	existing, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil && err == nil {
		return nil, errors.New("username already taken")
	}

	// Hash password
	hashedPassword, err := password.HashPassword(pass)
	if err != nil {
		return nil, err
	}

	// Create user
	user := &entity.User{
		Username: username,
		Password: hashedPassword,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// login user
func (uc *AuthUsecase) Login(
	ctx context.Context,
	username, pass string,
) (string, *entity.User, error) {
	// Validate input
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return "", nil, errors.New("username and password are required")
	}

	// Find user
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, errors.New("invalid username or password")
		}
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.New("invalid username or password")
	}

	// Verify password
	if err := password.ComparePassword(user.Password, pass); err != nil {
		return "", nil, errors.New("invalid username or password")
	}

	// Generate JWT token
	token, err := jwt.GenerateToken(user.ID, user.Username, uc.jwtSecret, uc.jwtExpiry)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
