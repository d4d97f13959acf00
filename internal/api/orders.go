package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/logging"
	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// GetOrders handles GET /orders: the full set newest-first, optionally
// narrowed by company and/or assigned waiting staff.
func (h *Handler) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	orders, err := h.DB.ListOrders(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch orders", Message: err.Error()})
		return
	}

	orders = filterOrders(orders, c.Query("company_id"), c.Query("waiting_staff_id"))
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// GetOrderSupportData handles GET /orders/support-data: id -> name maps for
// companies and waiting staff so the client can resolve display labels.
// Lookup failures degrade to empty maps rather than failing the screen.
func (h *Handler) GetOrderSupportData(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	data := models.OrderSupportData{
		Companies:    map[string]string{},
		WaitingStaff: map[string]string{},
	}

	if companies, err := h.DB.ListCompanyNames(ctx); err != nil {
		logging.LogKV("warn", "support data: company names unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		data.Companies = companies
	}

	if staff, err := h.DB.ListWaitingStaffNames(ctx); err != nil {
		logging.LogKV("warn", "support data: staff names unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		data.WaitingStaff = staff
	}

	c.JSON(http.StatusOK, data)
}

// GetOrder handles GET /orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := h.DB.GetOrder(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch order", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus handles PATCH /orders/:id/status. Legacy status spellings
// are accepted and normalized before the write; orders already delivered
// reject further changes.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	status, ok := models.CanonicalStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Unknown status",
			Message: fmt.Sprintf("%q is not a recognized order status", req.Status),
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	current, err := h.DB.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch order", Message: err.Error()})
		return
	}
	if models.IsTerminalStatus(current.Status) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "Order already completed",
			Message: "Delivered orders accept no further status changes",
		})
		return
	}

	order, err := h.DB.UpdateOrderStatus(ctx, id, status, req.StatusDescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update order status", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// AssignWaitingStaff handles PATCH /orders/:id/assign. A null
// waiting_staff_id clears the assignment.
func (h *Handler) AssignWaitingStaff(c *gin.Context) {
	id := c.Param("id")

	var req models.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := h.DB.AssignWaitingStaff(ctx, id, emptyToNil(req.WaitingStaffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Order not found"})
			return
		}
		if isForeignKeyError(err) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown waiting staff", Message: "waiting_staff_id must reference an existing staff member"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to assign waiting staff", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.DeleteOrder(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("order with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete order", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Order deleted successfully"})
}
