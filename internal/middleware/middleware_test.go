package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"vendor-message-analysis/pkg/log"
)

func newRouter(mw Middleware, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.POST("/analyze", mw.RateLimit(), handler)
	return r
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	mw := New(log.NewNop(), 60)
	r := newRouter(mw, func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}

	if codes[http.StatusOK] != 6 {
		t.Errorf("allowed = %d, want 6", codes[http.StatusOK])
	}
	if codes[http.StatusTooManyRequests] != 4 {
		t.Errorf("rejected = %d, want 4", codes[http.StatusTooManyRequests])
	}

	// Another client has its own bucket.
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client got %d", w.Code)
	}
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(60, time.Minute)

	const callers = 50
	got := make([]any, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = rl.limiter("10.0.0.1")
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if got[i] != got[0] {
			t.Fatalf("caller %d got a different limiter", i)
		}
	}
}

func TestRateLimiter_ActiveClientKeepsBucket(t *testing.T) {
	rl := newRateLimiter(60, 150*time.Millisecond)

	first := rl.limiter("10.0.0.1")
	for i := 0; i < 4; i++ {
		time.Sleep(60 * time.Millisecond)
		if rl.limiter("10.0.0.1") != first {
			t.Fatalf("bucket replaced after %d refreshes", i+1)
		}
	}

	time.Sleep(300 * time.Millisecond)
	if rl.limiter("10.0.0.1") == first {
		t.Error("idle bucket should have expired")
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newRouter(mw, func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/analyze", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d got %d", i, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	mw := New(log.NewNop(), 0)
	r := newRouter(mw, func(c *gin.Context) {
		seen = requestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if seen != "abc-123" || w.Header().Get(requestIDHeader) != "abc-123" {
		t.Errorf("request id = %q, header = %q", seen, w.Header().Get(requestIDHeader))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/analyze", nil))
	if seen == "" || seen == "abc-123" {
		t.Errorf("expected a generated request id, got %q", seen)
	}
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(log.RequestIDKey).(string)
	return id
}
