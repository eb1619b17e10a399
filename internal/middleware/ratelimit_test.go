package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doLogin(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	r := gin.New()
	r.POST("/login", RateLimit(rl), func(c *gin.Context) { c.Status(http.StatusOK) })

	if code := doLogin(r, "10.1.2.3:52341"); code != http.StatusOK {
		t.Errorf("first request: expected 200, got %d", code)
	}
	if code := doLogin(r, "10.1.2.3:52341"); code != http.StatusOK {
		t.Errorf("second request: expected 200, got %d", code)
	}
	if code := doLogin(r, "10.1.2.3:52341"); code != http.StatusTooManyRequests {
		t.Errorf("third request: expected 429, got %d", code)
	}
}

func TestRateLimitPerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	r := gin.New()
	r.POST("/login", RateLimit(rl), func(c *gin.Context) { c.Status(http.StatusOK) })

	if code := doLogin(r, "10.1.2.3:52341"); code != http.StatusOK {
		t.Errorf("first client: expected 200, got %d", code)
	}
	// A different address gets its own bucket.
	if code := doLogin(r, "10.9.9.9:40000"); code != http.StatusOK {
		t.Errorf("second client: expected 200, got %d", code)
	}
}
