package usecase

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/piresc/admin-gateway/internal/pkg/apperror"
	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

// Logout revokes the session behind accessToken
func (u *AdminUC) Logout(ctx context.Context, accessToken string) (*models.LogoutResponse, error) {
	if accessToken == "" {
		return nil, apperror.BadRequest("Access token is required")
	}

	revoked, err := u.identityGW.Revoke(ctx, accessToken)
	if err != nil {
		return nil, apperror.Internal("Failed to logout", err)
	}
	if !revoked {
		return &models.LogoutResponse{Success: false, Message: "Logout failed"}, nil
	}
	return &models.LogoutResponse{Success: true, Message: "Logged out successfully"}, nil
}

// RefreshToken exchanges a refresh token for a new access token
func (u *AdminUC) RefreshToken(ctx context.Context, refreshToken string) (*models.RefreshTokenResponse, error) {
	if refreshToken == "" {
		return nil, apperror.BadRequest("Refresh token is required")
	}

	accessToken, err := u.identityGW.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		logger.WarnCtx(ctx, "Refresh token exchange failed", logger.ErrorField(err))
		return nil, apperror.Internal("Failed to refresh token", err)
	}
	if accessToken == "" {
		return nil, apperror.Internal("Failed to refresh token", nil)
	}
	return &models.RefreshTokenResponse{AccessToken: accessToken}, nil
}

// ValidateToken reports the identity service verdict on accessToken. A
// rejected token is an answer, not an error.
func (u *AdminUC) ValidateToken(ctx context.Context, accessToken string) (*models.ValidateTokenResponse, error) {
	if accessToken == "" {
		return nil, apperror.BadRequest("Access token is required")
	}

	result, err := u.identityGW.Validate(ctx, accessToken)
	if err != nil {
		switch status.Code(err) {
		case codes.Unauthenticated, codes.InvalidArgument:
			return &models.ValidateTokenResponse{IsValid: false}, nil
		}
		return nil, apperror.Internal("Failed to validate token", err)
	}
	if result == nil || !result.IsValid {
		return &models.ValidateTokenResponse{IsValid: false}, nil
	}
	return &models.ValidateTokenResponse{IsValid: true, Admin: result.EntityID}, nil
}
