package db

import (
	"context"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
)

// GetProfile fetches a profile row by identity id. Returns pgx.ErrNoRows when
// the identity has no profile, which callers treat as unauthorized.
func (db *Database) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	query := `
        SELECT id, email, role, is_super_admin, created_at
        FROM profiles
        WHERE id = $1
    `
	var p models.Profile
	err := db.Pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Email, &p.Role, &p.IsSuperAdmin, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfileByEmail fetches a profile plus its password hash for login.
func (db *Database) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, string, error) {
	query := `
        SELECT id, email, role, is_super_admin, created_at, password_hash
        FROM profiles
        WHERE lower(email) = lower($1)
    `
	var p models.Profile
	var hash string
	err := db.Pool.QueryRow(ctx, query, email).Scan(&p.ID, &p.Email, &p.Role, &p.IsSuperAdmin, &p.CreatedAt, &hash)
	if err != nil {
		return nil, "", err
	}
	return &p, hash, nil
}
