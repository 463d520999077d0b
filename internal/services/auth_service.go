package services

import (
	"context"
	"fmt"

	"github.com/chamberhq/venuebook/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

// AuthService verifies admin credentials against Supabase Auth. Any account
// the hosted auth service accepts is treated as an admin of the console.
type AuthService struct {
	auth models.AuthRepo
}

func NewAuthService(auth models.AuthRepo) *AuthService {
	return &AuthService{
		auth: auth,
	}
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required"); err != nil {
		return nil, fmt.Errorf("password is required: %v", err)
	}

	response, err := as.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}

	return response, nil
}

func (as *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	response, err := as.auth.RefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}
	return response, nil
}
