package db

import (
	"context"
	"fmt"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
)

// ListWaitingStaff returns all waiting staff ordered by name.
func (db *Database) ListWaitingStaff(ctx context.Context) ([]models.WaitingStaff, error) {
	query := `
        SELECT id, name, email, phone, avatar_url, is_active, created_at
        FROM waiting_staff
        ORDER BY name
    `
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query waiting staff: %w", err)
	}
	defer rows.Close()

	staff := []models.WaitingStaff{}
	for rows.Next() {
		var s models.WaitingStaff
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.AvatarURL, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan waiting staff: %w", err)
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating waiting staff: %w", err)
	}
	return staff, nil
}

// CreateWaitingStaff inserts a new staff member and returns its generated id.
func (db *Database) CreateWaitingStaff(ctx context.Context, s models.WaitingStaff) (string, error) {
	query := `
        INSERT INTO waiting_staff (name, email, phone, avatar_url, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id string
	err := db.Pool.QueryRow(ctx, query, s.Name, s.Email, s.Phone, s.AvatarURL, s.IsActive).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert waiting staff: %w", err)
	}
	return id, nil
}

// UpdateWaitingStaff overwrites an existing staff row.
func (db *Database) UpdateWaitingStaff(ctx context.Context, id string, s models.WaitingStaff) error {
	query := `
        UPDATE waiting_staff
        SET name = $2,
            email = $3,
            phone = $4,
            avatar_url = $5,
            is_active = $6
        WHERE id = $1
    `
	result, err := db.Pool.Exec(ctx, query, id, s.Name, s.Email, s.Phone, s.AvatarURL, s.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update waiting staff: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("waiting staff with ID %s not found", id)
	}
	return nil
}

// DeleteWaitingStaff removes a staff member. Orders keep their assignment
// history via ON DELETE SET NULL in the schema.
func (db *Database) DeleteWaitingStaff(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, "DELETE FROM waiting_staff WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete waiting staff: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("waiting staff with ID %s not found", id)
	}
	return nil
}
