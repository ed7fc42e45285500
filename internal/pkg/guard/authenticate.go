package guard

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/admin-gateway/internal/pkg/apperror"
	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

// ClaimsVerifier turns a bearer token into trusted claims
type ClaimsVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*models.AuthorizationClaims, error)
}

const bearerScheme = "Bearer"

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", apperror.Unauthorized("Authorization header is required")
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return "", apperror.Unauthorized("Invalid Bearer token format")
	}
	return token, nil
}

// Authenticate verifies the bearer token and requires the email and deviceId claims
func Authenticate(verifier ClaimsVerifier) Stage {
	return func(ctx context.Context, req Request) (Request, error) {
		token, err := BearerToken(req.Authorization())
		if err != nil {
			return Request{}, err
		}

		claims, err := verifier.VerifyAccessToken(ctx, token)
		if errors.Is(err, ErrIdentityUnavailable) {
			logger.ErrorCtx(ctx, "Access token could not be verified", logger.Err(err))
			return Request{}, apperror.Internal("Failed to verify token", err)
		}
		if err != nil {
			logger.WarnCtx(ctx, "Access token rejected", logger.Err(err))
			return Request{}, apperror.Unauthorized("Invalid token")
		}
		if claims == nil || claims.Email == "" || claims.DeviceID == "" {
			return Request{}, apperror.Unauthorized("Invalid token: missing required fields")
		}

		authenticated := *claims
		authenticated.AccessToken = token
		return req.WithClaims(authenticated), nil
	}
}
