package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMenuTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil, nil)
	router := gin.New()
	router.GET("/menu-items", handler.GetMenuItems)
	router.POST("/menu-items", handler.CreateMenuItem)
	router.PATCH("/menu-items/:id/availability", handler.SetMenuItemAvailability)
	return router
}

func TestGetMenuItems_InvalidCategory(t *testing.T) {
	router := newMenuTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/menu-items?category=dessert", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid category")
}

func TestCreateMenuItem_InvalidCategory(t *testing.T) {
	router := newMenuTestRouter()

	body := bytes.NewBufferString(`{"name":"Tiramisu","price":4.5,"category":"dessert"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/menu-items", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid category")
}

func TestCreateMenuItem_RejectsNonPositivePrice(t *testing.T) {
	router := newMenuTestRouter()

	for _, body := range []string{
		`{"name":"Espresso","price":0,"category":"drinks"}`,
		`{"name":"Espresso","price":-2,"category":"drinks"}`,
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/menu-items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestSetMenuItemAvailability_RequiresFlag(t *testing.T) {
	router := newMenuTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/menu-items/abc/availability", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
