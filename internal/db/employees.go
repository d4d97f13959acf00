package db

import (
	"context"
	"fmt"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
)

// ListEmployees returns employees ordered by name, optionally scoped to one
// company when companyID is non-empty.
func (db *Database) ListEmployees(ctx context.Context, companyID string) ([]models.Employee, error) {
	query := `
        SELECT id, name, email, phone, position, company_id, avatar_url, is_active, created_at
        FROM employees
    `
	args := []interface{}{}
	if companyID != "" {
		query += " WHERE company_id = $1"
		args = append(args, companyID)
	}
	query += " ORDER BY name"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Position, &e.CompanyID, &e.AvatarURL, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}
	return employees, nil
}

// CreateEmployee inserts a new employee and returns its generated id.
// The company_id foreign key is enforced by the schema.
func (db *Database) CreateEmployee(ctx context.Context, e models.Employee) (string, error) {
	query := `
        INSERT INTO employees (name, email, phone, position, company_id, avatar_url, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	var id string
	err := db.Pool.QueryRow(ctx, query,
		e.Name, e.Email, e.Phone, e.Position, e.CompanyID, e.AvatarURL, e.IsActive,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert employee: %w", err)
	}
	return id, nil
}

// UpdateEmployee overwrites an existing employee row.
func (db *Database) UpdateEmployee(ctx context.Context, id string, e models.Employee) error {
	query := `
        UPDATE employees
        SET name = $2,
            email = $3,
            phone = $4,
            position = $5,
            company_id = $6,
            avatar_url = $7,
            is_active = $8
        WHERE id = $1
    `
	result, err := db.Pool.Exec(ctx, query,
		id, e.Name, e.Email, e.Phone, e.Position, e.CompanyID, e.AvatarURL, e.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee with ID %s not found", id)
	}
	return nil
}

// DeleteEmployee removes a single employee.
func (db *Database) DeleteEmployee(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee with ID %s not found", id)
	}
	return nil
}
