package usecase

import (
	"context"

	"github.com/piresc/admin-gateway/internal/pkg/apperror"
	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/utils"
)

var errInvalidCredentials = apperror.Unauthorized("Invalid credentials")

// Signup registers the one and only admin account. No tokens are issued.
func (u *AdminUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, apperror.BadRequest("Invalid email format")
	}
	if err := u.validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.Internal("Failed to register admin", err)
	}

	created, err := u.adminRepo.CreateAdmin(ctx, email, hash, constants.RoleAdmin)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindConflict {
			logger.WarnCtx(ctx, "Admin signup rejected",
				logger.String("email", utils.MaskEmail(email)),
				logger.String("reason", apperror.PublicMessage(err)))
			return nil, err
		}
		return nil, apperror.Internal("Failed to register admin", err)
	}

	logger.InfoCtx(ctx, "Admin registered",
		logger.String("admin_id", created.ID),
		logger.String("email", utils.MaskEmail(created.Email)))

	return &models.SignupResponse{Admin: created.Summary(u.deviceID(req.DeviceID))}, nil
}

// Login checks credentials and asks the identity service for a session.
// Unknown email and wrong password fail identically.
func (u *AdminUC) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	found, err := u.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal("Failed to login", err)
	}
	if found == nil {
		// spend a full bcrypt comparison so timing does not reveal the miss
		_, _ = u.hasher.Verify(req.Password, u.hasher.DummyHash())
		return nil, errInvalidCredentials
	}

	ok, err := u.hasher.Verify(req.Password, found.PasswordHash)
	if err != nil {
		return nil, apperror.Internal("Failed to login", err)
	}
	if !ok {
		logger.WarnCtx(ctx, "Admin login failed", logger.String("admin_id", found.ID))
		return nil, errInvalidCredentials
	}

	deviceID := u.deviceID(req.DeviceID)
	tokens, err := u.identityGW.IssueTokens(ctx, found.ID, deviceID, found.Role, found.Email)
	if err != nil {
		return nil, apperror.Internal("Failed to login", err)
	}

	logger.InfoCtx(ctx, "Admin logged in",
		logger.String("admin_id", found.ID),
		logger.String("device_id", deviceID))

	return &models.LoginResponse{
		Admin:  found.Summary(deviceID),
		Tokens: *tokens,
	}, nil
}

// GetProfile returns the summary of the authenticated caller
func (u *AdminUC) GetProfile(ctx context.Context, claims models.AuthorizationClaims) (*models.AdminSummary, error) {
	found, err := u.adminRepo.GetAdminByEmail(ctx, utils.NormalizeEmail(claims.Email))
	if err != nil {
		return nil, apperror.Internal("Failed to load profile", err)
	}
	if found == nil {
		return nil, errInvalidCredentials
	}

	summary := found.Summary(claims.DeviceID)
	return &summary, nil
}
