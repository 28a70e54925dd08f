package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	r, seen := newEngine()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	id := rr.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, *seen)

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID_EchoesCallerID(t *testing.T) {
	r, seen := newEngine()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "corr-123")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "corr-123", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, "corr-123", *seen)
}
