package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := New(3, time.Minute)

	require.True(t, rl.Allow("a"))
	require.True(t, rl.Allow("a"))
	require.True(t, rl.Allow("a"))
	require.False(t, rl.Allow("a"))

	// Other keys are independent
	require.True(t, rl.Allow("b"))
}

func TestWindowExpiry(t *testing.T) {
	rl := New(1, 10*time.Millisecond)

	require.True(t, rl.Allow("a"))
	require.False(t, rl.Allow("a"))

	time.Sleep(15 * time.Millisecond)
	require.True(t, rl.Allow("a"))
}

func TestRemaining(t *testing.T) {
	rl := New(2, time.Minute)

	require.Equal(t, 2, rl.Remaining("a"))
	rl.Allow("a")
	require.Equal(t, 1, rl.Remaining("a"))
	rl.Allow("a")
	rl.Allow("a") // denied, does not consume
	require.Equal(t, 0, rl.Remaining("a"))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware(New(1, time.Minute)))
	r.POST("/reports", func(c *gin.Context) { c.Status(201) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/reports", nil))
	require.Equal(t, 201, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/reports", nil))
	require.Equal(t, 429, w.Code)
}
