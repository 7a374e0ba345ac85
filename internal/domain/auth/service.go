package auth

import "context"

// Service defines authentication business logic.
type Service interface {
	// Login authenticates with email + password.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle authenticates a Google OAuth profile, creating the
	// user on first login.
	LoginWithGoogle(ctx context.Context, email string, providerID string, name string) (TokenResponse, error)

	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
