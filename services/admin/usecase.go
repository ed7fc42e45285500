package admin

import (
	"context"

	"github.com/piresc/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/admin-gateway/services/admin AdminUC

// AdminUC is the admin authentication service
type AdminUC interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ChangePassword(ctx context.Context, claims models.AuthorizationClaims, req *models.ChangePasswordRequest) (*models.MessageResponse, error)
	GetProfile(ctx context.Context, claims models.AuthorizationClaims) (*models.AdminSummary, error)

	// password recovery
	ForgotPassword(ctx context.Context, email string) (*models.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (*models.MessageResponse, error)

	// session tokens
	Logout(ctx context.Context, accessToken string) (*models.LogoutResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.RefreshTokenResponse, error)
	ValidateToken(ctx context.Context, accessToken string) (*models.ValidateTokenResponse, error)
}
