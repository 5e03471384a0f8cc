package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, limit int64, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiter(client, limit, window), mr
}

func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "203.0.113.7")
		if err != nil {
			t.Fatalf("unexpected error on request %d: %v", i+1, err)
		}
		if !ok {
			t.Fatalf("request %d rejected within budget", i+1)
		}
	}
}

func TestRateLimiter_RejectsOverBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow(ctx, "203.0.113.7"); !ok {
			t.Fatalf("request %d rejected within budget", i+1)
		}
	}

	ok, err := limiter.Allow(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("third request allowed over a budget of 2")
	}
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "203.0.113.7"); !ok {
		t.Fatal("first client rejected")
	}
	if ok, _ := limiter.Allow(ctx, "198.51.100.4"); !ok {
		t.Error("second client throttled by the first client's usage")
	}
}

func TestRateLimiter_WindowKeyExpires(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "203.0.113.7"); !ok {
		t.Fatal("first request rejected")
	}
	if ok, _ := limiter.Allow(ctx, "203.0.113.7"); ok {
		t.Fatal("second request allowed over a budget of 1")
	}

	// Once the window key expires the budget resets.
	mr.FastForward(2 * time.Minute)
	if ok, _ := limiter.Allow(ctx, "203.0.113.7"); !ok {
		t.Error("request rejected after the window expired")
	}
}

func TestRateLimiter_ErrorWhenBackendDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiter(client, 5, time.Minute)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "203.0.113.7")
	if err == nil {
		t.Error("expected an error with the backend down")
	}
}
