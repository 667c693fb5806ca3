package domain

import (
	"github.com/google/wire"

	"gradpath-server/internal/config"
	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/domain/counselling"
	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/task"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/domain/user"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// User domain
	user.NewService,

	// Profile domain
	profile.NewService,

	// University catalog
	university.NewService,

	// Tasks
	task.NewService,

	// Conversation store
	conversation.NewService,

	// Counselling engine
	ProvideRateLimiter,
	counselling.NewDispatcher,
	counselling.NewService,
)

// ProvideRateLimiter builds the per-user reasoning rate limiter from config.
func ProvideRateLimiter(cfg *config.Config, users user.Repository) *counselling.RateLimiter {
	return counselling.NewRateLimiter(users, cfg.CounsellingMinInterval)
}
