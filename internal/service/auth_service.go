package service

import (
	"context"
	"errors"
	"strings"

	"onyx/internal/dto"
	"onyx/internal/models"
	"onyx/internal/repository"
	"onyx/pkg/auth"

	"go.uber.org/zap"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrEmptyField         = errors.New("username and password must not be empty")
)

type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrEmptyField
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	existing, _ := s.userRepo.GetByUsername(ctx, username)
	if existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("username", username))

	return s.authResponse(username)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user.Username)
}

// ChangePassword verifies the current password before storing a new digest.
func (s *AuthService) ChangePassword(ctx context.Context, username string, req *dto.ChangePasswordRequest) error {
	if req.NewPassword == "" {
		return ErrEmptyField
	}
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, username, hashedPassword)
}

// ChangeUsername renames the account and issues a fresh token, since the
// username is the token subject.
func (s *AuthService) ChangeUsername(ctx context.Context, username string, req *dto.ChangeUsernameRequest) (*dto.AuthResponse, error) {
	newUsername := strings.TrimSpace(req.NewUsername)
	if newUsername == "" {
		return nil, ErrEmptyField
	}

	existing, _ := s.userRepo.GetByUsername(ctx, newUsername)
	if existing != nil {
		return nil, ErrUserExists
	}

	if err := s.userRepo.UpdateUsername(ctx, username, newUsername); err != nil {
		return nil, err
	}

	s.logger.Info("Username changed",
		zap.String("old", username),
		zap.String("new", newUsername),
	)

	return s.authResponse(newUsername)
}

func (s *AuthService) authResponse(username string) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(username)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtManager.TokenDuration().Seconds()),
		User: dto.UserResponse{
			Username: username,
		},
	}, nil
}
