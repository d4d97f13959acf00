package models

import (
	"time"
)

// Company is a tenant: one organization occupying a floor of the building.
// Deleting a company cascades to its employees, orders, and admin links.
type Company struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	FloorNumber  int       `json:"floor_number" db:"floor_number"`
	ContactEmail *string   `json:"contact_email" db:"contact_email"`
	ContactPhone *string   `json:"contact_phone" db:"contact_phone"`
	LogoURL      *string   `json:"logo_url" db:"logo_url"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Employee belongs to exactly one company.
type Employee struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	Position  *string   `json:"position" db:"position"`
	CompanyID string    `json:"company_id" db:"company_id"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WaitingStaff is building-wide service staff, not scoped to a company.
type WaitingStaff struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MenuItem is a globally available dish or drink.
type MenuItem struct {
	ID        string       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Price     float64      `json:"price" db:"price"`
	Category  MenuCategory `json:"category" db:"category"`
	Available bool         `json:"available" db:"available"`
	Image     *string      `json:"image" db:"image"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

// Order is a service request placed from a company floor.
type Order struct {
	ID                string    `json:"id" db:"id"`
	TotalPrice        float64   `json:"total_price" db:"total_price"`
	Status            string    `json:"status" db:"status"`
	StatusDescription *string   `json:"status_description" db:"status_description"`
	FloorNumber       int       `json:"floor_number" db:"floor_number"`
	CompanyID         *string   `json:"company_id" db:"company_id"`
	EmployeeID        *string   `json:"employee_id" db:"employee_id"`
	WaitingStaffID    *string   `json:"waiting_staff_id" db:"waiting_staff_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is an authenticated identity. Rows are provisioned by the
// company-admin procedure or externally, never via generic CRUD.
type Profile struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Role         string    `json:"role" db:"role"`
	IsSuperAdmin bool      `json:"is_super_admin" db:"is_super_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CompanyAdmin is a (identity, company) pairing surfaced by the admin
// procedures; it is derived from the company_admins link table.
type CompanyAdmin struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Roles carried by profile rows and JWT claims.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// Request/response types

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Profile   Profile   `json:"profile"`
}

type CompanyRequest struct {
	Name         string  `json:"name" binding:"required"`
	FloorNumber  int     `json:"floor_number" binding:"required,min=0"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	LogoURL      *string `json:"logo_url"`
	IsActive     *bool   `json:"is_active"`
}

type EmployeeRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone"`
	Position  *string `json:"position"`
	CompanyID string  `json:"company_id" binding:"required"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  *bool   `json:"is_active"`
}

type WaitingStaffRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  *bool   `json:"is_active"`
}

type MenuItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Category  string  `json:"category" binding:"required"`
	Available *bool   `json:"available"`
	Image     *string `json:"image"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateOrderStatusRequest struct {
	Status            string  `json:"status" binding:"required"`
	StatusDescription *string `json:"status_description"`
}

// AssignStaffRequest clears the assignment when WaitingStaffID is null.
type AssignStaffRequest struct {
	WaitingStaffID *string `json:"waiting_staff_id"`
}

// OrderSupportData resolves foreign keys to display names in one round trip.
type OrderSupportData struct {
	Companies    map[string]string `json:"companies"`
	WaitingStaff map[string]string `json:"waiting_staff"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}
