package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    5,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	for i := 0; i < 5; i++ {
		if !rl.Allow("client-a") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("client-a") {
		t.Fatal("request 6 should be blocked")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    2,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	rl.Allow("client-a")
	rl.Allow("client-a")

	if rl.Allow("client-a") {
		t.Fatal("client-a should be blocked")
	}
	if !rl.Allow("client-b") {
		t.Fatal("client-b should be allowed")
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    1,
		Window: 20 * time.Millisecond,
		KeyFn:  KeyByIP,
	})

	if !rl.Allow("client-a") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("client-a") {
		t.Fatal("second request in window should be blocked")
	}

	time.Sleep(30 * time.Millisecond)

	if !rl.Allow("client-a") {
		t.Fatal("request after window expiry should be allowed")
	}
}
