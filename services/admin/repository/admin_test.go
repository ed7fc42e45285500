package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

func setupAdminRepoTest(t *testing.T) (*AdminRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAdminRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

var (
	lockQuery   = regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1)`)
	existsQuery = regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM admins WHERE email = $1)`)
	countQuery  = regexp.QuoteMeta(`SELECT COUNT(*) FROM admins`)
)

func adminRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow("550e8400-e29b-41d4-a716-446655440000", "admin@example.com", "$2a$04$hash", "admin", now, now)
}

func TestCreateAdmin(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
		assertOK  func(t *testing.T, admin *models.Admin)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(constants.AdvisoryLockAdminCreate).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(existsQuery).WithArgs("admin@example.com").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec("^INSERT INTO admins").
					WithArgs(sqlmock.AnyArg(), "admin@example.com", "$2a$04$hash", "admin", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			assertOK: func(t *testing.T, admin *models.Admin) {
				assert.NotEmpty(t, admin.ID)
				assert.Equal(t, "admin@example.com", admin.Email)
				assert.Equal(t, "admin", admin.Role)
				assert.False(t, admin.CreatedAt.IsZero())
			},
		},
		{
			name: "Email already registered",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(constants.AdvisoryLockAdminCreate).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(existsQuery).WithArgs("admin@example.com").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "Another admin already exists",
			// also covers a repeat signup with the existing admin's email
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(constants.AdvisoryLockAdminCreate).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectRollback()
			},
			wantErr: ErrAdminExists,
		},
		{
			name: "Singleton constraint violation",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(constants.AdvisoryLockAdminCreate).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(existsQuery).WithArgs("admin@example.com").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec("^INSERT INTO admins").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constants.ConstraintAdminsSingleton})
				mock.ExpectRollback()
			},
			wantErr: ErrAdminExists,
		},
		{
			name: "Email constraint violation",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(constants.AdvisoryLockAdminCreate).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(existsQuery).WithArgs("admin@example.com").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec("^INSERT INTO admins").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constants.ConstraintAdminsEmail})
				mock.ExpectRollback()
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "Lock failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("failed to acquire admin lock"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			admin, err := repo.CreateAdmin(context.Background(), "admin@example.com", "$2a$04$hash", "admin")

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, admin)
				if errors.Is(tc.wantErr, ErrAdminExists) || errors.Is(tc.wantErr, ErrEmailTaken) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Contains(t, err.Error(), tc.wantErr.Error())
				}
			} else {
				require.NoError(t, err)
				tc.assertOK(t, admin)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAdminByEmail(t *testing.T) {
	query := "^SELECT (.+) FROM admins WHERE email"

	t.Run("Found", func(t *testing.T) {
		repo, mock, cleanup := setupAdminRepoTest(t)
		defer cleanup()

		mock.ExpectQuery(query).WithArgs("admin@example.com").WillReturnRows(adminRows(time.Now()))

		admin, err := repo.GetAdminByEmail(context.Background(), "admin@example.com")
		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", admin.ID)
		assert.Equal(t, "$2a$04$hash", admin.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Absent", func(t *testing.T) {
		repo, mock, cleanup := setupAdminRepoTest(t)
		defer cleanup()

		mock.ExpectQuery(query).WithArgs("nobody@example.com").WillReturnError(sql.ErrNoRows)

		admin, err := repo.GetAdminByEmail(context.Background(), "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, admin)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock, cleanup := setupAdminRepoTest(t)
		defer cleanup()

		mock.ExpectQuery(query).WillReturnError(errors.New("timeout"))

		admin, err := repo.GetAdminByEmail(context.Background(), "admin@example.com")
		assert.Error(t, err)
		assert.Nil(t, admin)
	})
}

func TestUpdatePasswordHash(t *testing.T) {
	t.Run("By id", func(t *testing.T) {
		repo, mock, cleanup := setupAdminRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("UPDATE admins SET password_hash = (.+) WHERE id = (.+) RETURNING").
			WithArgs("$2a$04$new", sqlmock.AnyArg(), "550e8400-e29b-41d4-a716-446655440000").
			WillReturnRows(adminRows(time.Now()))

		admin, err := repo.UpdatePasswordHash(context.Background(), "550e8400-e29b-41d4-a716-446655440000", "$2a$04$new")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", admin.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("By email", func(t *testing.T) {
		repo, mock, cleanup := setupAdminRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("UPDATE admins SET password_hash = (.+) WHERE email = (.+) RETURNING").
			WithArgs("$2a$04$new", sqlmock.AnyArg(), "admin@example.com").
			WillReturnRows(adminRows(time.Now()))

		_, err := repo.UpdatePasswordHashByEmail(context.Background(), "admin@example.com", "$2a$04$new")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing admin", func(t *testing.T) {
		repo, mock, cleanup := setupAdminRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("UPDATE admins").WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdatePasswordHash(context.Background(), "missing", "$2a$04$new")
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}

func TestEnsureSchema(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS admins").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
