package repository

import (
	"context"
	"fmt"
)

// admins holds at most one row. The singleton column is fixed to TRUE and
// unique, so a second insert fails no matter how creators interleave.
const schemaAdmins = `
CREATE TABLE IF NOT EXISTS admins (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'admin',
	singleton     BOOLEAN NOT NULL DEFAULT TRUE CHECK (singleton),
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL,
	CONSTRAINT admins_email_key UNIQUE (email),
	CONSTRAINT admins_singleton_key UNIQUE (singleton)
)`

// EnsureSchema creates the admins table when it does not exist yet
func (r *AdminRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaAdmins); err != nil {
		return fmt.Errorf("failed to ensure admins schema: %w", err)
	}
	return nil
}
