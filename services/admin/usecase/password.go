package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/piresc/admin-gateway/internal/pkg/apperror"
	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/utils"
)

const (
	msgPasswordChanged = "Password changed successfully"
	msgPasswordReset   = "Password successfully reset"
	msgForgotPassword  = "If this email exists, OTP has been sent"

	maxPasswordBytes = 72
)

func (u *AdminUC) validatePassword(pw string) error {
	if minLen := u.minPasswordLength(); len(pw) < minLen {
		return apperror.BadRequest(fmt.Sprintf("Password must be at least %d characters", minLen))
	}
	if len(pw) > maxPasswordBytes {
		return apperror.BadRequest(fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

// ChangePassword rotates the caller's password after checking the current one
func (u *AdminUC) ChangePassword(ctx context.Context, claims models.AuthorizationClaims, req *models.ChangePasswordRequest) (*models.MessageResponse, error) {
	if req.CurrentPassword == "" {
		return nil, apperror.BadRequest("Current password is required")
	}
	if err := u.validatePassword(req.NewPassword); err != nil {
		return nil, err
	}

	found, err := u.adminRepo.GetAdminByEmail(ctx, utils.NormalizeEmail(claims.Email))
	if err != nil {
		return nil, apperror.Internal("Failed to change password", err)
	}
	if found == nil {
		return nil, errInvalidCredentials
	}

	ok, err := u.hasher.Verify(req.CurrentPassword, found.PasswordHash)
	if err != nil {
		return nil, apperror.Internal("Failed to change password", err)
	}
	if !ok {
		return nil, apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := u.hasher.Hash(req.NewPassword)
	if err != nil {
		return nil, apperror.Internal("Failed to change password", err)
	}
	if _, err := u.adminRepo.UpdatePasswordHash(ctx, found.ID, hash); err != nil {
		return nil, apperror.Internal("Failed to change password", err)
	}

	if u.cfg.Password.RevokeSessionsOnPasswordChange && claims.AccessToken != "" {
		// the password is already rotated, a failed revoke only leaves the old session alive
		if _, err := u.identityGW.Revoke(ctx, claims.AccessToken); err != nil {
			logger.WarnCtx(ctx, "Failed to revoke session after password change",
				logger.String("admin_id", found.ID),
				logger.ErrorField(err))
		}
	}

	logger.InfoCtx(ctx, "Admin password changed", logger.String("admin_id", found.ID))
	return &models.MessageResponse{Message: msgPasswordChanged}, nil
}

// ForgotPassword starts recovery. The response is the same whether or not
// the email belongs to the admin.
func (u *AdminUC) ForgotPassword(ctx context.Context, email string) (*models.ForgotPasswordResponse, error) {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return nil, apperror.BadRequest("Invalid email format")
	}

	found, err := u.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal("Failed to process forgot password request", err)
	}

	if found != nil {
		if err := u.sendOTP(ctx, email); err != nil {
			return nil, apperror.Internal("Failed to process forgot password request", err)
		}
	}

	token, _, err := u.resetTokens.Issue(email)
	if err != nil {
		return nil, apperror.Internal("Failed to process forgot password request", err)
	}

	return &models.ForgotPasswordResponse{
		Message:    msgForgotPassword,
		ResetToken: token,
	}, nil
}

func (u *AdminUC) sendOTP(ctx context.Context, email string) error {
	code, err := utils.GenerateOTP(u.otpLength())
	if err != nil {
		return err
	}
	if err := u.otpRepo.SetOTP(ctx, email, code, u.otpTTL()); err != nil {
		return err
	}
	return u.mailGW.SendOTP(ctx, email, code)
}

// ResetPassword completes recovery with a reset token and the mailed OTP.
// The OTP is consumed before the password is written.
func (u *AdminUC) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (*models.MessageResponse, error) {
	if req.Token == "" || req.OTP == "" {
		return nil, apperror.BadRequest("Token and OTP are required")
	}
	if err := u.validatePassword(req.NewPassword); err != nil {
		return nil, err
	}

	email, err := u.resetTokens.Verify(req.Token)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}

	stored, err := u.otpRepo.GetOTP(ctx, email)
	if err != nil {
		return nil, apperror.Internal("Failed to reset password", err)
	}
	if stored == "" {
		return nil, apperror.Unauthorized("OTP expired or invalid")
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.OTP)) != 1 {
		return nil, apperror.Unauthorized("Invalid OTP")
	}

	hash, err := u.hasher.Hash(req.NewPassword)
	if err != nil {
		return nil, apperror.Internal("Failed to reset password", err)
	}
	if err := u.otpRepo.DeleteOTP(ctx, email); err != nil {
		return nil, apperror.Internal("Failed to reset password", err)
	}
	if _, err := u.adminRepo.UpdatePasswordHashByEmail(ctx, email, hash); err != nil {
		return nil, apperror.Internal("Failed to reset password", err)
	}

	logger.InfoCtx(ctx, "Admin password reset", logger.String("email", utils.MaskEmail(email)))
	return &models.MessageResponse{Message: msgPasswordReset}, nil
}
