package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouterMountsUnderDefaultVersion(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("/queue")
	group.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "queue")
	})

	NewRouter(engine).Register(group).Setup()

	assert.Equal(t, http.StatusOK, do(engine, "GET", "/api/v1/queue").Code)
	assert.Equal(t, http.StatusNotFound, do(engine, "GET", "/queue").Code)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("/queue")
	group.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "queue")
	})

	NewRouter(engine, WithAPIVersion("v2")).Register(group).Setup()

	assert.Equal(t, http.StatusOK, do(engine, "GET", "/api/v2/queue").Code)
	assert.Equal(t, http.StatusNotFound, do(engine, "GET", "/api/v1/queue").Code)
}

func TestDomainGroupMethods(t *testing.T) {
	engine := gin.New()
	echo := func(c *gin.Context) {
		c.String(http.StatusOK, c.Request.Method)
	}
	group := NewDomainGroup("/templates")
	group.GET("", echo)
	group.POST("", echo)
	group.PATCH("/:id", echo)
	group.DELETE("/:id", echo)

	NewRouter(engine).Register(group).Setup()

	assert.Equal(t, "GET", do(engine, "GET", "/api/v1/templates").Body.String())
	assert.Equal(t, "POST", do(engine, "POST", "/api/v1/templates").Body.String())
	assert.Equal(t, "PATCH", do(engine, "PATCH", "/api/v1/templates/7").Body.String())
	assert.Equal(t, "DELETE", do(engine, "DELETE", "/api/v1/templates/7").Body.String())
}

func TestRouterRegistersMultipleGroups(t *testing.T) {
	engine := gin.New()
	queue := NewDomainGroup("/queue")
	queue.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "queue")
	})
	shippers := NewDomainGroup("/shippers")
	shippers.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "shippers")
	})

	NewRouter(engine).Register(queue).Register(shippers).Setup()

	assert.Equal(t, "queue", do(engine, "GET", "/api/v1/queue").Body.String())
	assert.Equal(t, "shippers", do(engine, "GET", "/api/v1/shippers").Body.String())
}
