package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"techshop/internal/auth"
	apperrors "techshop/internal/errors"
	"techshop/internal/metrics"
	"techshop/internal/model"
	"techshop/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (accessToken string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (accessToken string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	limiter    auth.LoginLimiterInterface
	log        zerolog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, limiter auth.LoginLimiterInterface, log zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		limiter:    limiter,
		log:        log,
	}
}

// Register creates a user with a hashed password and returns an access token for it.
func (s *authService) Register(ctx context.Context, email, name, password string) (string, *model.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidation)
	}

	// Check if user already exists
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, apperrors.ErrDuplicateEmail
	}
	// If error is not "record not found", return it (could be a database error)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, apperrors.ErrDuplicateEmail
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Issue(user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user registered")
	return token, user, nil
}

// Login verifies credentials and returns an access token. Unknown emails and wrong
// passwords fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if !s.limiter.Allow(ctx, email) {
		return "", apperrors.ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("find user: %w", err)
		}
		burnCompare(password)
		s.rejectLogin(ctx, email)
		return "", apperrors.ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.PasswordHash) {
		s.rejectLogin(ctx, email)
		return "", apperrors.ErrInvalidCredentials
	}

	s.limiter.Reset(ctx, email)

	token, err := s.jwtService.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *authService) rejectLogin(ctx context.Context, email string) {
	s.limiter.RecordFailure(ctx, email)
	metrics.LoginFailuresTotal.Inc()
	s.log.Info().Msg("login rejected")
}
