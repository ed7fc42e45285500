package guard

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/piresc/admin-gateway/internal/pkg/constants"
	jwtpkg "github.com/piresc/admin-gateway/internal/pkg/jwt"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

// TokenValidator asks the identity service whether an access token is live
type TokenValidator interface {
	Validate(ctx context.Context, accessToken string) (*models.TokenValidation, error)
}

// LocalVerifier checks HS256 access tokens with the secret shared with the identity service
type LocalVerifier struct {
	secret string
	issuer string
}

// NewLocalVerifier creates a LocalVerifier
func NewLocalVerifier(secret, issuer string) *LocalVerifier {
	return &LocalVerifier{secret: secret, issuer: issuer}
}

func (v *LocalVerifier) VerifyAccessToken(_ context.Context, token string) (*models.AuthorizationClaims, error) {
	claims, err := jwtpkg.ParseAccessToken(token, v.secret, v.issuer)
	if err != nil {
		return nil, err
	}
	authz := claims.ToAuthorization(token)
	return &authz, nil
}

// RemoteVerifier delegates validity to the identity service, which also sees revocations
type RemoteVerifier struct {
	validator TokenValidator
}

// NewRemoteVerifier creates a RemoteVerifier
func NewRemoteVerifier(validator TokenValidator) *RemoteVerifier {
	return &RemoteVerifier{validator: validator}
}

var errTokenNotLive = errors.New("identity service reports token invalid")

// ErrIdentityUnavailable marks a verification that never got a verdict from
// the identity service
var ErrIdentityUnavailable = errors.New("identity service unavailable")

func (v *RemoteVerifier) VerifyAccessToken(ctx context.Context, token string) (*models.AuthorizationClaims, error) {
	result, err := v.validator.Validate(ctx, token)
	if err != nil {
		switch status.Code(err) {
		case codes.Unauthenticated, codes.InvalidArgument:
			return nil, fmt.Errorf("validate token: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	if result == nil || !result.IsValid {
		return nil, errTokenNotLive
	}

	// the identity service vouched for the token, so its payload can be read as is
	claims, err := jwtpkg.DecodeAccessToken(token)
	if err != nil {
		return nil, err
	}
	authz := claims.ToAuthorization(token)
	if authz.Subject == "" {
		authz.Subject = result.EntityID
	}
	return &authz, nil
}

// NewVerifier picks the verifier for the configured mode
func NewVerifier(cfg models.AccessTokenConfig, validator TokenValidator) (ClaimsVerifier, error) {
	switch cfg.VerifyMode {
	case constants.VerifyModeLocal:
		if cfg.Secret == "" {
			return nil, errors.New("ACCESS_TOKEN_SECRET is required in local verify mode")
		}
		return NewLocalVerifier(cfg.Secret, cfg.Issuer), nil
	case constants.VerifyModeRemote, "":
		if validator == nil {
			return nil, errors.New("remote verify mode needs an identity client")
		}
		return NewRemoteVerifier(validator), nil
	default:
		return nil, fmt.Errorf("unknown verify mode %q", cfg.VerifyMode)
	}
}
