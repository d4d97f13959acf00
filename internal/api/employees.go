package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
)

// GetEmployees handles GET /employees, optionally scoped by company_id. The
// employees screen selects a company first, so most calls carry the scope.
func (h *Handler) GetEmployees(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	employees, err := h.DB.ListEmployees(ctx, c.Query("company_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch employees", Message: err.Error()})
		return
	}

	employees = filterEmployees(employees, c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"employees": employees, "count": len(employees)})
}

// CreateEmployee handles POST /employees.
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := h.DB.CreateEmployee(ctx, employeeFromRequest(req))
	if err != nil {
		if isForeignKeyError(err) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown company", Message: "company_id must reference an existing company"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create employee", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Employee created successfully", "id": id})
}

// UpdateEmployee handles PUT /employees/:id.
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")

	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.UpdateEmployee(ctx, id, employeeFromRequest(req)); err != nil {
		if err.Error() == fmt.Sprintf("employee with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Employee not found"})
			return
		}
		if isForeignKeyError(err) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown company", Message: "company_id must reference an existing company"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update employee", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Employee updated successfully"})
}

// DeleteEmployee handles DELETE /employees/:id.
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.DeleteEmployee(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("employee with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete employee", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Employee deleted successfully"})
}

func employeeFromRequest(req models.EmployeeRequest) models.Employee {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return models.Employee{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     emptyToNil(req.Phone),
		Position:  emptyToNil(req.Position),
		CompanyID: req.CompanyID,
		AvatarURL: emptyToNil(req.AvatarURL),
		IsActive:  active,
	}
}

// isForeignKeyError detects referential-integrity violations surfaced by
// Postgres (SQLSTATE 23503).
func isForeignKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23503")
}
