package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type enqueuePayload struct {
	SKUs   []string `json:"skus" binding:"required"`
	Status string   `json:"status" binding:"required,queuestatus"`
}

func TestSetupValidator_CustomEnumTags(t *testing.T) {
	SetupValidator()

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var payload enqueuePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid status", `{"skus":["TS-001"],"status":"PENDING"}`, http.StatusOK},
		{"unknown status", `{"skus":["TS-001"],"status":"PAUSED"}`, http.StatusBadRequest},
		{"missing skus", `{"status":"PENDING"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestFormatValidationErrors_UsesJSONFieldNames(t *testing.T) {
	SetupValidator()

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var payload enqueuePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"status":"PENDING"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"skus"`)
}
