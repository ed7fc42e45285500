package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/admin-gateway/internal/pkg/apperror"
	"github.com/piresc/admin-gateway/internal/pkg/database"
)

var (
	// ErrAdminExists is returned when a second admin would be created
	ErrAdminExists = apperror.Conflict("Admin already exists. Only one admin is allowed.")
	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = apperror.Conflict("Admin with this email already exists")
	// ErrAdminNotFound is returned by updates targeting a missing admin
	ErrAdminNotFound = errors.New("admin not found")
)

// AdminRepo stores the admin credential record in Postgres
type AdminRepo struct {
	db *sqlx.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *sqlx.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// OTPRepo stores recovery codes in Redis
type OTPRepo struct {
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new OTP repository
func NewOTPRepo(redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{redisClient: redisClient}
}
