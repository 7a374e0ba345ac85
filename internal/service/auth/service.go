package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kerjahub/hris-portal-go/internal/domain/auth"
	"github.com/kerjahub/hris-portal-go/internal/domain/user"
	"github.com/kerjahub/hris-portal-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// OAuth-only accounts carry no password hash.
	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// LoginWithGoogle implements auth.Service. A verified Google profile that
// has no portal account yet gets one with the regular employee role.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, providerID string, name string) (auth.TokenResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
		}

		provider := "google"
		now := time.Now().UTC()
		u, err = s.userRepo.Create(ctx, user.User{
			ID:              uuid.New().String(),
			Email:           email,
			Role:            user.RoleUser,
			EmployeeName:    name,
			OAuthProvider:   &provider,
			OAuthProviderID: &providerID,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
	}

	return s.issueTokens(u)
}

// Refresh implements auth.Service.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if req.RefreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// Rotate the refresh token on every exchange.
	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(u)
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Role:         string(u.Role),
	}, nil
}
