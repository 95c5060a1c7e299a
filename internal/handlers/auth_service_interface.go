package handlers

import (
	"context"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/services"
)

// AuthServiceInterface defines the auth operations the handler depends on
type AuthServiceInterface interface {
	Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResponse, error)
	Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	GetUserProfile(ctx context.Context, userID string) (*models.User, error)
	Logout(ctx context.Context, userID string) error
}
