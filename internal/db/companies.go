package db

import (
	"context"
	"fmt"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
)

// ListCompanies returns every company ordered by name.
func (db *Database) ListCompanies(ctx context.Context) ([]models.Company, error) {
	query := `
        SELECT id, name, floor_number, contact_email, contact_phone, logo_url, is_active, created_at
        FROM companies
        ORDER BY name
    `
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.FloorNumber, &c.ContactEmail, &c.ContactPhone, &c.LogoURL, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}
	return companies, nil
}

// GetCompany fetches a single company by id.
func (db *Database) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	query := `
        SELECT id, name, floor_number, contact_email, contact_phone, logo_url, is_active, created_at
        FROM companies
        WHERE id = $1
    `
	var c models.Company
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.FloorNumber, &c.ContactEmail, &c.ContactPhone, &c.LogoURL, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCompany inserts a new company and returns its generated id.
func (db *Database) CreateCompany(ctx context.Context, c models.Company) (string, error) {
	query := `
        INSERT INTO companies (name, floor_number, contact_email, contact_phone, logo_url, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	var id string
	err := db.Pool.QueryRow(ctx, query,
		c.Name, c.FloorNumber, c.ContactEmail, c.ContactPhone, c.LogoURL, c.IsActive,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert company: %w", err)
	}
	return id, nil
}

// UpdateCompany overwrites an existing company row.
func (db *Database) UpdateCompany(ctx context.Context, id string, c models.Company) error {
	query := `
        UPDATE companies
        SET name = $2,
            floor_number = $3,
            contact_email = $4,
            contact_phone = $5,
            logo_url = $6,
            is_active = $7
        WHERE id = $1
    `
	result, err := db.Pool.Exec(ctx, query,
		id, c.Name, c.FloorNumber, c.ContactEmail, c.ContactPhone, c.LogoURL, c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("company with ID %s not found", id)
	}
	return nil
}

// DeleteCompany removes a company and everything scoped to it in one
// transaction: orders, employees, and admin links. The dashboard warned the
// operator about this fan-out before calling.
func (db *Database) DeleteCompany(ctx context.Context, id string) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, "DELETE FROM orders WHERE company_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete company orders: %w", err)
	}
	if _, err = tx.Exec(ctx, "DELETE FROM employees WHERE company_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete company employees: %w", err)
	}
	if _, err = tx.Exec(ctx, "DELETE FROM company_admins WHERE company_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete company admin links: %w", err)
	}

	result, err := tx.Exec(ctx, "DELETE FROM companies WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("company with ID %s not found", id)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
