package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newOrderTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil, nil)
	router := gin.New()
	router.PATCH("/orders/:id/status", handler.UpdateOrderStatus)
	router.PATCH("/orders/:id/assign", handler.AssignWaitingStaff)
	return router
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	router := newOrderTestRouter()

	body := bytes.NewBufferString(`{"status":"shipped"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/orders/abc/status", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown status")
}

func TestUpdateOrderStatus_MissingStatus(t *testing.T) {
	router := newOrderTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/orders/abc/status", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignWaitingStaff_RejectsBadJSON(t *testing.T) {
	router := newOrderTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/orders/abc/assign", bytes.NewBufferString(`{"waiting_staff_id":42}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth_NoDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil, nil)
	router := gin.New()
	router.GET("/health", handler.Health)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
