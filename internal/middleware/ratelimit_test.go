package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(store *LimiterStore) *gin.Engine {
	r := gin.New()
	r.Use(RateLimitMiddleware(store))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doFrom(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_BurstThenReject(t *testing.T) {
	store := NewLimiterStore(0.001, 2, time.Minute)
	r := newLimitedRouter(store)

	assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1:1234").Code)

	w := doFrom(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"code":"TOO_MANY_REQUESTS"`)

	// another client has its own bucket
	assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.2:1234").Code)
	assert.Equal(t, 2, store.Len())
}

func TestLimiterStore_Cleanup(t *testing.T) {
	store := NewLimiterStore(1, 1, time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	first := store.Get("a")
	assert.Same(t, first, store.Get("a"))
	store.Get("b")

	now = now.Add(45 * time.Second)
	store.Get("b")

	now = now.Add(30 * time.Second)
	store.Cleanup()

	require.Equal(t, 1, store.Len())
	assert.NotSame(t, first, store.Get("a"), "idle key is recreated")
}
