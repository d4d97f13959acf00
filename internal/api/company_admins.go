package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/db"
	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// The three endpoints below are the REST form of the privileged procedures
// get_company_admins, create_company_admin, and remove_company_admin. They
// exist because provisioning a login identity is not a plain table write.

// GetCompanyAdmins handles GET /companies/:id/admins.
func (h *Handler) GetCompanyAdmins(c *gin.Context) {
	companyID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := h.DB.GetCompany(ctx, companyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch company", Message: err.Error()})
		return
	}

	admins, err := h.DB.GetCompanyAdmins(ctx, companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch company admins", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admins": admins, "count": len(admins)})
}

// CreateCompanyAdmin handles POST /companies/:id/admins. Provisions the login
// identity and the company link atomically.
func (h *Handler) CreateCompanyAdmin(c *gin.Context) {
	companyID := c.Param("id")

	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := h.DB.GetCompany(ctx, companyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch company", Message: err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process password", Message: err.Error()})
		return
	}

	userID, err := h.DB.CreateCompanyAdmin(ctx, strings.ToLower(req.Email), string(hash), companyID)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create admin", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin created successfully", "user_id": userID})
}

// RemoveCompanyAdmin handles DELETE /companies/:id/admins/:user_id.
func (h *Handler) RemoveCompanyAdmin(c *gin.Context) {
	companyID := c.Param("id")
	userID := c.Param("user_id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.RemoveCompanyAdmin(ctx, userID, companyID); err != nil {
		if strings.Contains(err.Error(), "not linked") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Admin not found for this company"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to remove admin", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Admin removed successfully"})
}
