package api

import (
	"strings"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
)

// The dashboard filtered lists in the browser after a full fetch. These
// helpers keep the same semantics server-side: a full table read, then a
// case-insensitive substring match over the displayed text fields.

func matchesTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	lowered := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowered) {
			return true
		}
	}
	return false
}

func filterCompanies(companies []models.Company, term string) []models.Company {
	if term == "" {
		return companies
	}
	out := []models.Company{}
	for _, c := range companies {
		if matchesTerm(term, c.Name) {
			out = append(out, c)
		}
	}
	return out
}

func filterEmployees(employees []models.Employee, term string) []models.Employee {
	if term == "" {
		return employees
	}
	out := []models.Employee{}
	for _, e := range employees {
		if matchesTerm(term, e.Name, e.Email) {
			out = append(out, e)
		}
	}
	return out
}

func filterWaitingStaff(staff []models.WaitingStaff, term string) []models.WaitingStaff {
	if term == "" {
		return staff
	}
	out := []models.WaitingStaff{}
	for _, s := range staff {
		email := ""
		if s.Email != nil {
			email = *s.Email
		}
		if matchesTerm(term, s.Name, email) {
			out = append(out, s)
		}
	}
	return out
}

// filterMenuItems applies the search term first, then the category tab.
// An empty category means the "all" tab.
func filterMenuItems(items []models.MenuItem, term string, category models.MenuCategory) []models.MenuItem {
	out := []models.MenuItem{}
	for _, m := range items {
		if !matchesTerm(term, m.Name) {
			continue
		}
		if category != "" && m.Category != category {
			continue
		}
		out = append(out, m)
	}
	return out
}

// filterOrders narrows by company and/or assigned staff id; empty means no
// filter on that axis.
func filterOrders(orders []models.Order, companyID, staffID string) []models.Order {
	if companyID == "" && staffID == "" {
		return orders
	}
	out := []models.Order{}
	for _, o := range orders {
		if companyID != "" && (o.CompanyID == nil || *o.CompanyID != companyID) {
			continue
		}
		if staffID != "" && (o.WaitingStaffID == nil || *o.WaitingStaffID != staffID) {
			continue
		}
		out = append(out, o)
	}
	return out
}
