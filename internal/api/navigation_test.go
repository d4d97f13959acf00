package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func navLabels(items []NavItem) []string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	return labels
}

func TestVisibleNavItems_SuperAdmin(t *testing.T) {
	labels := navLabels(VisibleNavItems(models.RoleSuperAdmin))
	assert.Equal(t, []string{
		"Dashboard", "Orders", "Companies", "Employees", "Waiting Staff", "Menu", "Settings",
	}, labels)
}

func TestVisibleNavItems_AdminHidesWaitingStaff(t *testing.T) {
	labels := navLabels(VisibleNavItems(models.RoleAdmin))
	assert.NotContains(t, labels, "Waiting Staff")
	assert.Equal(t, []string{
		"Dashboard", "Orders", "Companies", "Employees", "Menu", "Settings",
	}, labels)
}

func TestVisibleNavItems_UnknownRole(t *testing.T) {
	assert.Empty(t, VisibleNavItems("employee"))
	assert.Empty(t, VisibleNavItems(""))
}

func TestCanManageCompanies(t *testing.T) {
	assert.True(t, CanManageCompanies(models.RoleSuperAdmin))
	assert.False(t, CanManageCompanies(models.RoleAdmin))
	assert.False(t, CanManageCompanies(""))
}

func TestGetNavigation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil, nil)

	router := gin.New()
	router.GET("/navigation", func(c *gin.Context) {
		c.Set("role", models.RoleAdmin)
		handler.GetNavigation(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/navigation", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"can_manage_companies":false`)
	assert.Contains(t, body, "Dashboard")
	assert.NotContains(t, body, "Waiting Staff")
}
