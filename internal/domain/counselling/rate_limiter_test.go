package counselling

import (
	"context"
	"errors"
	"testing"
	"time"

	"gradpath-server/internal/domain/user"
)

func TestRateLimiterRejectsWithinInterval(t *testing.T) {
	usr := &user.User{ID: 1}
	repo := newFakeUserRepo(usr)
	limiter := NewRateLimiter(repo, 2*time.Second)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	if err := limiter.Reserve(context.Background(), usr); err != nil {
		t.Fatalf("first request: %v", err)
	}

	limiter.now = func() time.Time { return base.Add(500 * time.Millisecond) }
	err := limiter.Reserve(context.Background(), usr)

	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("second request within interval: got %v, want RateLimitError", err)
	}
	if rateErr.RetryAfter != 1500*time.Millisecond {
		t.Errorf("RetryAfter = %s, want 1.5s", rateErr.RetryAfter)
	}
	if rateErr.RetryAfterSeconds() != 2 {
		t.Errorf("RetryAfterSeconds = %d, want 2 (rounded up)", rateErr.RetryAfterSeconds())
	}
}

func TestRateLimiterAdmitsAfterInterval(t *testing.T) {
	usr := &user.User{ID: 1}
	repo := newFakeUserRepo(usr)
	limiter := NewRateLimiter(repo, 2*time.Second)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }
	if err := limiter.Reserve(context.Background(), usr); err != nil {
		t.Fatalf("first request: %v", err)
	}

	limiter.now = func() time.Time { return base.Add(2 * time.Second) }
	if err := limiter.Reserve(context.Background(), usr); err != nil {
		t.Fatalf("request at exactly the interval boundary: %v", err)
	}
	if len(repo.stamps) != 2 {
		t.Errorf("stamps persisted = %d, want 2", len(repo.stamps))
	}
}

func TestRateLimiterDegradesOpenOnStampFailure(t *testing.T) {
	usr := &user.User{ID: 1}
	repo := newFakeUserRepo(usr)
	repo.stampErr = errors.New("connection reset")
	limiter := NewRateLimiter(repo, 2*time.Second)

	if err := limiter.Reserve(context.Background(), usr); err != nil {
		t.Fatalf("a failed stamp write must not block the turn: %v", err)
	}
	if usr.LastReasoningRequestAt != nil {
		t.Error("in-memory stamp should not be set when the write failed")
	}
}

func TestRateLimiterRetryAfterFloor(t *testing.T) {
	e := &RateLimitError{RetryAfter: 80 * time.Millisecond}
	if e.RetryAfterSeconds() != 1 {
		t.Errorf("RetryAfterSeconds = %d, want floor of 1", e.RetryAfterSeconds())
	}
}
