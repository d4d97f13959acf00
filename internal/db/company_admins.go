package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail is returned when admin provisioning hits an existing
// profile email.
var ErrDuplicateEmail = errors.New("email already registered")

// GetCompanyAdmins returns the admin identities linked to one company,
// the equivalent of the get_company_admins procedure.
func (db *Database) GetCompanyAdmins(ctx context.Context, companyID string) ([]models.CompanyAdmin, error) {
	query := `
        SELECT ca.user_id, p.email, ca.created_at
        FROM company_admins ca
        JOIN profiles p ON p.id = ca.user_id
        WHERE ca.company_id = $1
        ORDER BY ca.created_at
    `
	rows, err := db.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company admins: %w", err)
	}
	defer rows.Close()

	admins := []models.CompanyAdmin{}
	for rows.Next() {
		var a models.CompanyAdmin
		if err := rows.Scan(&a.UserID, &a.Email, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company admin: %w", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company admins: %w", err)
	}
	return admins, nil
}

// CreateCompanyAdmin provisions a login identity and its company link
// atomically, the equivalent of the create_company_admin procedure. The
// passwordHash must already be bcrypt-hashed.
func (db *Database) CreateCompanyAdmin(ctx context.Context, email, passwordHash, companyID string) (string, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID string
	err = tx.QueryRow(ctx, `
        INSERT INTO profiles (email, password_hash, role, is_super_admin)
        VALUES ($1, $2, $3, false)
        RETURNING id
    `, email, passwordHash, models.RoleAdmin).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("failed to insert admin profile: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO company_admins (user_id, company_id)
        VALUES ($1, $2)
    `, userID, companyID)
	if err != nil {
		return "", fmt.Errorf("failed to link admin to company: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return userID, nil
}

// RemoveCompanyAdmin unlinks an admin from a company, the equivalent of the
// remove_company_admin procedure. The profile row itself is removed only when
// it administers no other company.
func (db *Database) RemoveCompanyAdmin(ctx context.Context, userID, companyID string) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		"DELETE FROM company_admins WHERE user_id = $1 AND company_id = $2", userID, companyID)
	if err != nil {
		return fmt.Errorf("failed to unlink admin: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("admin %s not linked to company %s", userID, companyID)
	}

	var remaining int
	if err := tx.QueryRow(ctx,
		"SELECT count(*) FROM company_admins WHERE user_id = $1", userID).Scan(&remaining); err != nil {
		return fmt.Errorf("failed to count remaining links: %w", err)
	}
	if remaining == 0 {
		if _, err := tx.Exec(ctx,
			"DELETE FROM profiles WHERE id = $1 AND is_super_admin = false", userID); err != nil {
			return fmt.Errorf("failed to remove admin profile: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
