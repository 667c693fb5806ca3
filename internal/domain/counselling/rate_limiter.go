package counselling

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/infrastructure/logger"
)

// RateLimitError rejects a turn that arrived before the per-user minimum
// interval elapsed.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("reasoning request rate limited, retry after %s", e.RetryAfter)
}

// RetryAfterSeconds rounds the wait up to whole seconds, never below 1.
func (e *RateLimitError) RetryAfterSeconds() int {
	secs := int(math.Ceil(e.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// RateLimiter enforces the minimum interval between reasoning requests per
// user, keyed on the persisted LastReasoningRequestAt stamp.
type RateLimiter struct {
	users       user.Repository
	minInterval time.Duration
	log         zerolog.Logger
	now         func() time.Time
}

// NewRateLimiter constructs a RateLimiter with required dependencies.
func NewRateLimiter(users user.Repository, minInterval time.Duration) *RateLimiter {
	return &RateLimiter{
		users:       users,
		minInterval: minInterval,
		log:         logger.WithComponent("counselling.ratelimiter"),
		now:         time.Now,
	}
}

// Reserve admits or rejects a turn. On admission the stamp is written
// before the engine call, so a second request racing in during the call is
// rejected rather than doubled. A stamp that fails to persist still admits
// the turn; the limiter degrades open.
func (r *RateLimiter) Reserve(ctx context.Context, usr *user.User) error {
	now := r.now()
	if usr.LastReasoningRequestAt != nil {
		elapsed := now.Sub(*usr.LastReasoningRequestAt)
		if elapsed < r.minInterval {
			return &RateLimitError{RetryAfter: r.minInterval - elapsed}
		}
	}

	if err := r.users.SetLastReasoningRequestAt(ctx, usr.ID, now); err != nil {
		// A lost stamp widens the window for this user; the turn itself
		// still proceeds.
		r.log.Warn().Err(err).Uint("user_id", usr.ID).
			Msg("failed to persist rate-limit stamp")
	} else {
		stamp := now
		usr.LastReasoningRequestAt = &stamp
	}
	return nil
}
