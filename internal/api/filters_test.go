package api

import (
	"testing"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMatchesTerm(t *testing.T) {
	assert.True(t, matchesTerm("", "anything"))
	assert.True(t, matchesTerm("acme", "Acme GmbH"))
	assert.True(t, matchesTerm("GMBH", "Acme GmbH"))
	assert.True(t, matchesTerm("jane", "John Doe", "jane@savour.test"))
	assert.False(t, matchesTerm("acme", "Globex"))
	assert.False(t, matchesTerm("x", ""))
}

func TestFilterCompanies(t *testing.T) {
	companies := []models.Company{
		{Name: "Acme GmbH"},
		{Name: "Globex"},
		{Name: "acme labs"},
	}

	assert.Len(t, filterCompanies(companies, ""), 3)

	got := filterCompanies(companies, "acme")
	assert.Len(t, got, 2)
	assert.Equal(t, "Acme GmbH", got[0].Name)
	assert.Equal(t, "acme labs", got[1].Name)

	assert.Empty(t, filterCompanies(companies, "initech"))
}

func TestFilterEmployees_MatchesNameOrEmail(t *testing.T) {
	employees := []models.Employee{
		{Name: "Jane Doe", Email: "jane@acme.test"},
		{Name: "John Roe", Email: "john@globex.test"},
	}

	got := filterEmployees(employees, "globex")
	assert.Len(t, got, 1)
	assert.Equal(t, "John Roe", got[0].Name)

	got = filterEmployees(employees, "doe")
	assert.Len(t, got, 1)
	assert.Equal(t, "Jane Doe", got[0].Name)
}

func TestFilterWaitingStaff_NilEmail(t *testing.T) {
	staff := []models.WaitingStaff{
		{Name: "Sam", Email: strPtr("sam@savour.test")},
		{Name: "Alex", Email: nil},
	}

	got := filterWaitingStaff(staff, "savour")
	assert.Len(t, got, 1)
	assert.Equal(t, "Sam", got[0].Name)

	got = filterWaitingStaff(staff, "alex")
	assert.Len(t, got, 1)
	assert.Equal(t, "Alex", got[0].Name)
}

func TestFilterMenuItems_SearchThenCategory(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Espresso", Category: models.CategoryDrinks},
		{Name: "Club Sandwich", Category: models.CategoryFood},
		{Name: "Iced Latte", Category: models.CategoryDrinks},
		{Name: "Trail Mix", Category: models.CategorySnacks},
	}

	// "all" tab: empty category
	assert.Len(t, filterMenuItems(items, "", ""), 4)

	got := filterMenuItems(items, "", models.CategoryDrinks)
	assert.Len(t, got, 2)

	got = filterMenuItems(items, "latte", models.CategoryDrinks)
	assert.Len(t, got, 1)
	assert.Equal(t, "Iced Latte", got[0].Name)

	// search hits but the category tab excludes it
	assert.Empty(t, filterMenuItems(items, "espresso", models.CategoryFood))
}

func TestFilterOrders(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", CompanyID: strPtr("c1"), WaitingStaffID: strPtr("w1")},
		{ID: "o2", CompanyID: strPtr("c1"), WaitingStaffID: nil},
		{ID: "o3", CompanyID: strPtr("c2"), WaitingStaffID: strPtr("w1")},
		{ID: "o4", CompanyID: nil, WaitingStaffID: nil},
	}

	assert.Len(t, filterOrders(orders, "", ""), 4)

	got := filterOrders(orders, "c1", "")
	assert.Len(t, got, 2)

	got = filterOrders(orders, "", "w1")
	assert.Len(t, got, 2)

	got = filterOrders(orders, "c1", "w1")
	assert.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)

	assert.Empty(t, filterOrders(orders, "c3", ""))
}
