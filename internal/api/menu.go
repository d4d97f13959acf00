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

// GetMenuItems handles GET /menu-items with optional search and category tab.
func (h *Handler) GetMenuItems(c *gin.Context) {
	category := models.MenuCategory(c.Query("category"))
	if category != "" && category != "all" && !category.IsValid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid category",
			Message: "category must be one of food, drinks, snacks",
		})
		return
	}
	if category == "all" {
		category = ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := h.DB.ListMenuItems(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch menu items", Message: err.Error()})
		return
	}

	items = filterMenuItems(items, c.Query("search"), category)
	c.JSON(http.StatusOK, gin.H{"menu_items": items, "count": len(items)})
}

// CreateMenuItem handles POST /menu-items.
func (h *Handler) CreateMenuItem(c *gin.Context) {
	req, ok := bindMenuItem(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := h.DB.CreateMenuItem(ctx, menuItemFromRequest(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create menu item", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created successfully", "id": id})
}

// UpdateMenuItem handles PUT /menu-items/:id.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")

	req, ok := bindMenuItem(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.UpdateMenuItem(ctx, id, menuItemFromRequest(req)); err != nil {
		if err.Error() == fmt.Sprintf("menu item with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update menu item", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Menu item updated successfully"})
}

// SetMenuItemAvailability handles PATCH /menu-items/:id/availability. The
// response carries the patched record so the client updates local state
// without a full list refetch.
func (h *Handler) SetMenuItemAvailability(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	item, err := h.DB.SetMenuItemAvailability(ctx, id, *req.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update availability", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem handles DELETE /menu-items/:id.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.DB.DeleteMenuItem(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("menu item with ID %s not found", id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete menu item", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "Menu item deleted successfully"})
}

func bindMenuItem(c *gin.Context) (models.MenuItemRequest, bool) {
	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data", Message: err.Error()})
		return req, false
	}
	if !models.MenuCategory(req.Category).IsValid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid category",
			Message: "category must be one of food, drinks, snacks",
		})
		return req, false
	}
	return req, true
}

func menuItemFromRequest(req models.MenuItemRequest) models.MenuItem {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return models.MenuItem{
		Name:      req.Name,
		Price:     req.Price,
		Category:  models.MenuCategory(req.Category),
		Available: available,
		Image:     emptyToNil(req.Image),
	}
}
