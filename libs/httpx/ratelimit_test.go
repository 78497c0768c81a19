package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBlocksOverLimitPerClient(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(ip string) int {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	if do("10.0.0.1") != http.StatusNoContent || do("10.0.0.1") != http.StatusNoContent {
		t.Fatalf("requests within limit were blocked")
	}
	if got := do("10.0.0.1"); got != http.StatusTooManyRequests {
		t.Fatalf("third request got %d, want 429", got)
	}
	// another client has its own counter
	if got := do("10.0.0.2"); got != http.StatusNoContent {
		t.Fatalf("separate client got %d", got)
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	if !rl.allow("k") {
		t.Fatalf("first request blocked")
	}
	if rl.allow("k") {
		t.Fatalf("second request allowed inside window")
	}
	time.Sleep(20 * time.Millisecond)
	if !rl.allow("k") {
		t.Fatalf("request blocked after window elapsed")
	}
}
