package services

import (
	"context"
	"fmt"

	"github.com/kbediako/studiobook/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

// AuthService authenticates admins against Supabase auth and authorizes them
// against the admin_users table. A valid identity without an admin_users row
// gets no admin access.
type AuthService struct {
	supa       *models.SupabaseRepo
	adminsRepo models.AdminsRepo
}

func NewAuthService(supa *models.SupabaseRepo, adminsRepo models.AdminsRepo) *AuthService {
	return &AuthService{
		supa:       supa,
		adminsRepo: adminsRepo,
	}
}

func (as *AuthService) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required"); err != nil {
		return nil, fmt.Errorf("password is required")
	}

	resp, err := as.supa.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}

	isAdmin, err := as.adminsRepo.IsAdminEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to verify admin access: %v", err)
	}
	if !isAdmin {
		return nil, fmt.Errorf("account is not authorized for admin access")
	}

	return resp, nil
}

func (as *AuthService) RefreshToken(refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	return as.supa.RefreshToken(refreshToken)
}

func (as *AuthService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return as.adminsRepo.IsAdminEmail(ctx, email)
}
