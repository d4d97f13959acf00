package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// GetCompanies handles GET /companies. Readable by both admin roles; the
// super_admin-only controls are a client concern driven by the navigation
// policy, writes are enforced server-side by SuperAdminMiddleware.
func (h *Handler) GetCompanies(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	companies, err := h.DB.ListCompanies(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch companies", Message: err.Error()})
		return
	}

	companies = filterCompanies(companies, c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"companies": companies, "count": len(companies)})
}

// GetCompany handles GET /companies/:id.
func (h *Handler) GetCompany(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	company, err := h.DB.GetCompany(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch company", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

// CreateCompany handles POST /companies.
func (h *Handler) CreateCompany(c *gin.Context) {
	var req models.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := h.DB.CreateCompany(ctx, companyFromRequest(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create company", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Company created successfully", "id": id})
}

// UpdateCompany handles PUT /companies/:id.
func (h *Handler) UpdateCompany(c *gin.Context) {
	id := c.Param("id")

	var req models.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.UpdateCompany(ctx, id, companyFromRequest(req)); err != nil {
		if err.Error() == fmt.Sprintf("company with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update company", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Company updated successfully"})
}

// DeleteCompany handles DELETE /companies/:id. The delete fans out to the
// company's orders, employees, and admin links in one transaction.
func (h *Handler) DeleteCompany(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := h.DB.DeleteCompany(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("company with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete company", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Company and its employees and orders deleted"})
}

func companyFromRequest(req models.CompanyRequest) models.Company {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return models.Company{
		Name:         req.Name,
		FloorNumber:  req.FloorNumber,
		ContactEmail: emptyToNil(req.ContactEmail),
		ContactPhone: emptyToNil(req.ContactPhone),
		LogoURL:      emptyToNil(req.LogoURL),
		IsActive:     active,
	}
}

// emptyToNil stores blank optional form fields as NULL rather than "".
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
