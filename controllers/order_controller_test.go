package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetUserOrdersRequiresEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// No email means no identity to scope by; the handler must reject the
	// request before it ever reaches the database.
	ctrl := &Controller{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/orders/user", nil)

	ctrl.GetUserOrders(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}
