package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"catering/internal/shared/middleware"
	"catering/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var out bytes.Buffer
	l := logger.NewWithWriter(&out, "info")

	router := gin.New()
	router.Use(middleware.RequestID(l), middleware.RequestLogger(l))
	router.GET("/ping", func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Info("inside handler")
		c.String(http.StatusOK, c.GetString(logger.RequestIDKey))
	})

	t.Run("generates an ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
		assert.Contains(t, out.String(), id)
	})

	t.Run("keeps the caller's ID", func(t *testing.T) {
		out.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "trace-abc")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "trace-abc", w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, out.String(), "trace-abc")
		assert.Contains(t, out.String(), "HTTP Request")
	})
}
