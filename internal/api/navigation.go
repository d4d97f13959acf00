package api

import (
	"net/http"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
)

// NavItem is one sidebar entry with the roles allowed to see it.
type NavItem struct {
	Label string   `json:"label"`
	Path  string   `json:"path"`
	Roles []string `json:"-"`
}

// navItems is the single route -> allowed-role-set table. All visibility
// decisions live here rather than scattered across handlers.
var navItems = []NavItem{
	{Label: "Dashboard", Path: "/", Roles: []string{models.RoleSuperAdmin, models.RoleAdmin}},
	{Label: "Orders", Path: "/orders", Roles: []string{models.RoleSuperAdmin, models.RoleAdmin}},
	{Label: "Companies", Path: "/companies", Roles: []string{models.RoleSuperAdmin, models.RoleAdmin}},
	{Label: "Employees", Path: "/employees", Roles: []string{models.RoleSuperAdmin, models.RoleAdmin}},
	{Label: "Waiting Staff", Path: "/waiting-staff", Roles: []string{models.RoleSuperAdmin}},
	{Label: "Menu", Path: "/menu", Roles: []string{models.RoleSuperAdmin, models.RoleAdmin}},
	{Label: "Settings", Path: "/settings", Roles: []string{models.RoleSuperAdmin, models.RoleAdmin}},
}

// VisibleNavItems returns the entries a role may see, in sidebar order.
func VisibleNavItems(role string) []NavItem {
	out := []NavItem{}
	for _, item := range navItems {
		for _, r := range item.Roles {
			if r == role {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// CanManageCompanies gates the company create/edit/delete controls; admins
// get a read-only list.
func CanManageCompanies(role string) bool {
	return role == models.RoleSuperAdmin
}

// GetNavigation handles GET /navigation: the sidebar entries plus the write
// capabilities the caller's role unlocks.
func (h *Handler) GetNavigation(c *gin.Context) {
	role := GetRole(c)
	c.JSON(http.StatusOK, gin.H{
		"items":                VisibleNavItems(role),
		"can_manage_companies": CanManageCompanies(role),
	})
}
