package db

import (
	"context"
	"fmt"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
)

// ListMenuItems returns every menu item ordered by name.
func (db *Database) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	query := `
        SELECT id, name, price, category, available, image, created_at
        FROM menu_items
        ORDER BY name
    `
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Category, &m.Available, &m.Image, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}
	return items, nil
}

// CreateMenuItem inserts a new item and returns its generated id.
func (db *Database) CreateMenuItem(ctx context.Context, m models.MenuItem) (string, error) {
	query := `
        INSERT INTO menu_items (name, price, category, available, image)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id string
	err := db.Pool.QueryRow(ctx, query, m.Name, m.Price, m.Category, m.Available, m.Image).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert menu item: %w", err)
	}
	return id, nil
}

// UpdateMenuItem overwrites an existing item row.
func (db *Database) UpdateMenuItem(ctx context.Context, id string, m models.MenuItem) error {
	query := `
        UPDATE menu_items
        SET name = $2,
            price = $3,
            category = $4,
            available = $5,
            image = $6
        WHERE id = $1
    `
	result, err := db.Pool.Exec(ctx, query, id, m.Name, m.Price, m.Category, m.Available, m.Image)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item with ID %s not found", id)
	}
	return nil
}

// SetMenuItemAvailability flips only the availability flag and returns the
// patched row so clients can update in place without a refetch.
func (db *Database) SetMenuItemAvailability(ctx context.Context, id string, available bool) (*models.MenuItem, error) {
	query := `
        UPDATE menu_items
        SET available = $2
        WHERE id = $1
        RETURNING id, name, price, category, available, image, created_at
    `
	var m models.MenuItem
	err := db.Pool.QueryRow(ctx, query, id, available).Scan(
		&m.ID, &m.Name, &m.Price, &m.Category, &m.Available, &m.Image, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMenuItem removes a single item.
func (db *Database) DeleteMenuItem(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item with ID %s not found", id)
	}
	return nil
}
