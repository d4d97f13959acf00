package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
)

// GetWaitingStaff handles GET /waiting-staff. Staff are building-wide, so
// there is no company scope here.
func (h *Handler) GetWaitingStaff(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	staff, err := h.DB.ListWaitingStaff(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch waiting staff", Message: err.Error()})
		return
	}

	staff = filterWaitingStaff(staff, c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"waiting_staff": staff, "count": len(staff)})
}

// CreateWaitingStaff handles POST /waiting-staff.
func (h *Handler) CreateWaitingStaff(c *gin.Context) {
	var req models.WaitingStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := h.DB.CreateWaitingStaff(ctx, waitingStaffFromRequest(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create waiting staff", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Waiting staff created successfully", "id": id})
}

// UpdateWaitingStaff handles PUT /waiting-staff/:id.
func (h *Handler) UpdateWaitingStaff(c *gin.Context) {
	id := c.Param("id")

	var req models.WaitingStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.UpdateWaitingStaff(ctx, id, waitingStaffFromRequest(req)); err != nil {
		if err.Error() == fmt.Sprintf("waiting staff with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Waiting staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update waiting staff", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Waiting staff updated successfully"})
}

// DeleteWaitingStaff handles DELETE /waiting-staff/:id.
func (h *Handler) DeleteWaitingStaff(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.DeleteWaitingStaff(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("waiting staff with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Waiting staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete waiting staff", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Waiting staff deleted successfully"})
}

func waitingStaffFromRequest(req models.WaitingStaffRequest) models.WaitingStaff {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return models.WaitingStaff{
		Name:      req.Name,
		Email:     emptyToNil(req.Email),
		Phone:     emptyToNil(req.Phone),
		AvatarURL: emptyToNil(req.AvatarURL),
		IsActive:  active,
	}
}
