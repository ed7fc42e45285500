package admin

import (
	"context"

	"github.com/piresc/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/admin-gateway/services/admin IdentityGW,MailGW

// IdentityGW is the client of the external identity/token service
type IdentityGW interface {
	IssueTokens(ctx context.Context, subjectID, deviceID, role, email string) (*models.SessionTokenPair, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, accessToken string) (bool, error)
	Validate(ctx context.Context, accessToken string) (*models.TokenValidation, error)
}

// MailGW delivers OTP codes
type MailGW interface {
	SendOTP(ctx context.Context, email, code string) error
}
