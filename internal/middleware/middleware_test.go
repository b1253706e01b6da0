package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"signalrelay/internal/consts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestId(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	NewMiddleware().Load(g)

	var fromGin, fromCtx string
	g.GET("/x", func(c *gin.Context) {
		fromGin = c.GetString(consts.RequestId)
		fromCtx = RequestIdFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, fromGin, 16)
	assert.Equal(t, fromGin, fromCtx)
	assert.Equal(t, fromGin, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "upstream-id")
	w = httptest.NewRecorder()
	g.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", fromGin)
}

func TestOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	NewMiddleware().Load(g)
	g.POST("/webhook", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/webhook", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
