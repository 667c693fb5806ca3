// Package user provides the user account domain model and behaviors.
package user

import (
	"context"
	"time"
)

// Stage tracks a student's progress through the study-abroad journey.
// Transitions driven by this service are forward-only.
type Stage string

const (
	StageOnboarding              Stage = "ONBOARDING"
	StageBuildingProfile         Stage = "BUILDING_PROFILE"
	StageDiscoveringUniversities Stage = "DISCOVERING_UNIVERSITIES"
	StageFinalizingUniversities  Stage = "FINALIZING_UNIVERSITIES"
	StagePreparingApplications   Stage = "PREPARING_APPLICATIONS"
)

var stageRank = map[Stage]int{
	StageOnboarding:              0,
	StageBuildingProfile:         1,
	StageDiscoveringUniversities: 2,
	StageFinalizingUniversities:  3,
	StagePreparingApplications:   4,
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	_, ok := stageRank[s]
	return ok
}

// Before reports whether s precedes other in the journey.
func (s Stage) Before(other Stage) bool {
	return stageRank[s] < stageRank[other]
}

// User models a student account. Identity issuance lives with the auth
// collaborator; this service reads the account and owns the counselling
// bookkeeping fields (stage, rate-limit stamp, first-counselling flag).
type User struct {
	ID                     uint
	PublicID               string
	Name                   string
	Email                  string
	Stage                  Stage
	LastReasoningRequestAt *time.Time
	FirstCounsellingDone   bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Filter narrows user lookups.
type Filter struct {
	ID       *uint
	PublicID *string
	Email    *string
}

// Repository defines storage operations for users.
type Repository interface {
	Create(ctx context.Context, usr *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByPublicID(ctx context.Context, publicID string) (*User, error)
	Update(ctx context.Context, usr *User) error

	// SetLastReasoningRequestAt is the single mutation path for the
	// rate-limit stamp; nothing else writes this field.
	SetLastReasoningRequestAt(ctx context.Context, userID uint, at time.Time) error
}

// Service exposes user account reads and the stage transition rule.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID returns the user with the given internal ID.
func (s *Service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByPublicID returns the user with the given public ID.
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*User, error) {
	return s.repo.FindByPublicID(ctx, publicID)
}

// MarkFirstCounsellingDone flips the one-time flag after the user's first
// completed counselling turn.
func (s *Service) MarkFirstCounsellingDone(ctx context.Context, usr *User) error {
	if usr.FirstCounsellingDone {
		return nil
	}
	usr.FirstCounsellingDone = true
	return s.repo.Update(ctx, usr)
}

// AdvanceStage moves the user forward to the target stage and persists the
// change. A target at or behind the current stage is a no-op: stages never
// move backwards through this path.
func (s *Service) AdvanceStage(ctx context.Context, usr *User, target Stage) error {
	if !target.Valid() || !usr.Stage.Before(target) {
		return nil
	}
	usr.Stage = target
	return s.repo.Update(ctx, usr)
}
