package admin

import (
	"context"
	"time"

	"github.com/piresc/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/admin-gateway/services/admin AdminRepo,OTPRepo

// AdminRepo is the credential store. It holds at most one admin.
type AdminRepo interface {
	CreateAdmin(ctx context.Context, email, passwordHash, role string) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) (*models.Admin, error)
	UpdatePasswordHashByEmail(ctx context.Context, email, passwordHash string) (*models.Admin, error)
}

// OTPRepo stores one pending recovery code per email with expiry
type OTPRepo interface {
	SetOTP(ctx context.Context, email, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (string, error)
	DeleteOTP(ctx context.Context, email string) error
}
