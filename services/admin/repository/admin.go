package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

const pgUniqueViolation = "23505"

const adminColumns = `id, email, password_hash, role, created_at, updated_at`

// CreateAdmin inserts the admin record. Concurrent creators are serialised by a
// transaction-scoped advisory lock, and the unique constraints catch anything
// that slips past the checks.
func (r *AdminRepo) CreateAdmin(ctx context.Context, email, passwordHash, role string) (*models.Admin, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, constants.AdvisoryLockAdminCreate); err != nil {
		return nil, fmt.Errorf("failed to acquire admin lock: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	if count >= 1 {
		return nil, ErrAdminExists
	}

	var emailTaken bool
	if err := tx.GetContext(ctx, &emailTaken, `SELECT EXISTS (SELECT 1 FROM admins WHERE email = $1)`, email); err != nil {
		return nil, fmt.Errorf("failed to check admin email: %w", err)
	}
	if emailTaken {
		return nil, ErrEmailTaken
	}

	now := models.Now()
	admin := &models.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO admins (id, email, password_hash, role, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :role, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, admin); err != nil {
		if conflict := uniqueViolation(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to insert admin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if conflict := uniqueViolation(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return admin, nil
}

// GetAdminByEmail returns nil without error when no admin has that email
func (r *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

// UpdatePasswordHash replaces the stored hash of the admin with id
func (r *AdminRepo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) (*models.Admin, error) {
	return r.updatePasswordHash(ctx, "id", id, passwordHash)
}

// UpdatePasswordHashByEmail replaces the stored hash of the admin with email
func (r *AdminRepo) UpdatePasswordHashByEmail(ctx context.Context, email, passwordHash string) (*models.Admin, error) {
	return r.updatePasswordHash(ctx, "email", email, passwordHash)
}

// updatePasswordHash is a helper to update the hash by a specific column.
// field is never caller-supplied.
func (r *AdminRepo) updatePasswordHash(ctx context.Context, field, value, passwordHash string) (*models.Admin, error) {
	query := fmt.Sprintf(`
		UPDATE admins SET password_hash = $1, updated_at = $2
		WHERE %s = $3
		RETURNING %s
	`, field, adminColumns)

	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, passwordHash, models.Now(), value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to update admin password: %w", err)
	}
	return &admin, nil
}

func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	if pgErr.ConstraintName == constants.ConstraintAdminsEmail {
		return ErrEmailTaken
	}
	return ErrAdminExists
}
