package ratelimit

import (
	"net/http"
	"sync"
	"testing"
	"time"
)

// mockClock is a controllable clock for testing.
type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(clock Clock) *Limiter {
	return New(&Config{
		BookCooldown:   2 * time.Second,
		BookMaxPerHour: 3,
		Clock:          clock,
	})
}

func TestCheckBook_Cooldown(t *testing.T) {
	clock := newMockClock()
	limiter := newTestLimiter(clock)
	defer limiter.Close()

	if result := limiter.CheckBook("10.0.0.1"); !result.Allowed {
		t.Fatalf("first attempt blocked: %+v", result)
	}
	limiter.RecordBook("10.0.0.1")

	result := limiter.CheckBook("10.0.0.1")
	if result.Allowed {
		t.Fatalf("attempt within cooldown allowed")
	}
	if result.Reason != "cooldown" {
		t.Fatalf("reason: %s", result.Reason)
	}
	if result.RetryAfter <= 0 || result.RetryAfter > 2*time.Second {
		t.Fatalf("retry after: %v", result.RetryAfter)
	}

	clock.Advance(2 * time.Second)
	if result := limiter.CheckBook("10.0.0.1"); !result.Allowed {
		t.Fatalf("attempt after cooldown blocked: %+v", result)
	}
}

func TestCheckBook_HourlyLimit(t *testing.T) {
	clock := newMockClock()
	limiter := newTestLimiter(clock)
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		if result := limiter.CheckBook("10.0.0.1"); !result.Allowed {
			t.Fatalf("attempt %d blocked: %+v", i, result)
		}
		limiter.RecordBook("10.0.0.1")
		clock.Advance(3 * time.Second)
	}

	result := limiter.CheckBook("10.0.0.1")
	if result.Allowed {
		t.Fatalf("attempt over hourly limit allowed")
	}
	if result.Reason != "hourly_limit" {
		t.Fatalf("reason: %s", result.Reason)
	}

	// The window resets an hour after the first attempt.
	clock.Advance(time.Hour)
	if result := limiter.CheckBook("10.0.0.1"); !result.Allowed {
		t.Fatalf("attempt after window blocked: %+v", result)
	}
}

func TestCheckBook_PerIPIsolation(t *testing.T) {
	clock := newMockClock()
	limiter := newTestLimiter(clock)
	defer limiter.Close()

	limiter.RecordBook("10.0.0.1")
	if result := limiter.CheckBook("10.0.0.2"); !result.Allowed {
		t.Fatalf("unrelated IP blocked: %+v", result)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"host port", "192.0.2.1:51234", "192.0.2.1"},
		{"bare ip", "192.0.2.1", "192.0.2.1"},
		{"ipv6", "[2001:db8::1]:443", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &http.Request{RemoteAddr: tt.remoteAddr}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP(%q) = %q, want %q", tt.remoteAddr, got, tt.want)
			}
		})
	}
}
