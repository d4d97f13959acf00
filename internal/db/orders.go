package db

import (
	"context"
	"fmt"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
)

const orderColumns = `id, total_price, status, status_description, floor_number, company_id, employee_id, waiting_staff_id, created_at, updated_at`

// ListOrders returns all orders newest-first. No pagination: the dashboard
// renders the full set and filters client-side.
func (db *Database) ListOrders(ctx context.Context) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.TotalPrice, &o.Status, &o.StatusDescription, &o.FloorNumber,
			&o.CompanyID, &o.EmployeeID, &o.WaitingStaffID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}

// GetOrder fetches a single order by id.
func (db *Database) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o models.Order
	err := db.Pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.TotalPrice, &o.Status, &o.StatusDescription,
		&o.FloorNumber, &o.CompanyID, &o.EmployeeID, &o.WaitingStaffID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus writes the status and optional description, returning the
// updated row.
func (db *Database) UpdateOrderStatus(ctx context.Context, id, status string, description *string) (*models.Order, error) {
	query := `
        UPDATE orders
        SET status = $2,
            status_description = COALESCE($3, status_description),
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING ` + orderColumns
	var o models.Order
	err := db.Pool.QueryRow(ctx, query, id, status, description).Scan(&o.ID, &o.TotalPrice, &o.Status,
		&o.StatusDescription, &o.FloorNumber, &o.CompanyID, &o.EmployeeID, &o.WaitingStaffID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// AssignWaitingStaff sets or clears (nil) the waiting staff assignment on an
// order, returning the updated row.
func (db *Database) AssignWaitingStaff(ctx context.Context, id string, staffID *string) (*models.Order, error) {
	query := `
        UPDATE orders
        SET waiting_staff_id = $2,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING ` + orderColumns
	var o models.Order
	err := db.Pool.QueryRow(ctx, query, id, staffID).Scan(&o.ID, &o.TotalPrice, &o.Status,
		&o.StatusDescription, &o.FloorNumber, &o.CompanyID, &o.EmployeeID, &o.WaitingStaffID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOrder removes a single order.
func (db *Database) DeleteOrder(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("order with ID %s not found", id)
	}
	return nil
}

// ListCompanyNames returns an id -> name map used to resolve display labels.
func (db *Database) ListCompanyNames(ctx context.Context) (map[string]string, error) {
	return db.listNames(ctx, "SELECT id, name FROM companies")
}

// ListWaitingStaffNames returns an id -> name map used to resolve display labels.
func (db *Database) ListWaitingStaffNames(ctx context.Context) (map[string]string, error) {
	return db.listNames(ctx, "SELECT id, name FROM waiting_staff")
}

func (db *Database) listNames(ctx context.Context, query string) (map[string]string, error) {
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query names: %w", err)
	}
	defer rows.Close()

	names := map[string]string{}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan name row: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating name rows: %w", err)
	}
	return names, nil
}
