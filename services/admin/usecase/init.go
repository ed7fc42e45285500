package usecase

import (
	"time"

	jwtpkg "github.com/piresc/admin-gateway/internal/pkg/jwt"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/pkg/password"
	"github.com/piresc/admin-gateway/services/admin"
)

const (
	defaultMinPasswordLength = 8
	defaultOTPLength         = 6
	defaultOTPTTL            = 10 * time.Minute
	defaultDeviceID          = "android"
)

var _ admin.AdminUC = (*AdminUC)(nil)

type AdminUC struct {
	adminRepo   admin.AdminRepo
	otpRepo     admin.OTPRepo
	identityGW  admin.IdentityGW
	mailGW      admin.MailGW
	hasher      *password.Hasher
	resetTokens *jwtpkg.ResetTokenSigner
	cfg         *models.Config
}

// NewAdminUC creates a new admin usecase instance
func NewAdminUC(
	adminRepo admin.AdminRepo,
	otpRepo admin.OTPRepo,
	identityGW admin.IdentityGW,
	mailGW admin.MailGW,
	hasher *password.Hasher,
	resetTokens *jwtpkg.ResetTokenSigner,
	cfg *models.Config,
) *AdminUC {
	return &AdminUC{
		adminRepo:   adminRepo,
		otpRepo:     otpRepo,
		identityGW:  identityGW,
		mailGW:      mailGW,
		hasher:      hasher,
		resetTokens: resetTokens,
		cfg:         cfg,
	}
}

func (u *AdminUC) minPasswordLength() int {
	if u.cfg.Password.MinLength > 0 {
		return u.cfg.Password.MinLength
	}
	return defaultMinPasswordLength
}

func (u *AdminUC) deviceID(requested string) string {
	if requested != "" {
		return requested
	}
	if u.cfg.Password.DefaultDeviceID != "" {
		return u.cfg.Password.DefaultDeviceID
	}
	return defaultDeviceID
}

func (u *AdminUC) otpLength() int {
	if u.cfg.OTP.Length > 0 {
		return u.cfg.OTP.Length
	}
	return defaultOTPLength
}

func (u *AdminUC) otpTTL() time.Duration {
	if u.cfg.OTP.TTL > 0 {
		return u.cfg.OTP.TTL
	}
	return defaultOTPTTL
}
