package middleware

import "testing"

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < maxAttempts; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("request beyond the limit should be denied")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < maxAttempts; i++ {
		rl.allow("10.0.0.1")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("a different client must not be affected by another key's limit")
	}
}

func TestRateLimiter_WindowExpiryResetsAttempts(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < maxAttempts; i++ {
		rl.allow("10.0.0.1")
	}

	rl.mu.Lock()
	rl.entries["10.0.0.1"].resetTime = rl.entries["10.0.0.1"].resetTime.Add(-2 * windowDuration)
	rl.mu.Unlock()

	if !rl.allow("10.0.0.1") {
		t.Error("an expired window should reset the attempt count")
	}
}
