package conversation

import (
	"context"
	"time"

	"gradpath-server/internal/utils/platformerrors"
)

// Service is the conversation store: an append-only, windowed log per user.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Append records a single message, creating the record lazily.
func (s *Service) Append(ctx context.Context, userID uint, role Role, content string) error {
	conv, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	conv.Append(role, content, s.now())
	if err := s.repo.Save(ctx, conv); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to save conversation")
	}
	return nil
}

// AppendTurn records a completed turn (user message plus assistant reply)
// in one write.
func (s *Service) AppendTurn(ctx context.Context, userID uint, userContent, assistantContent string) error {
	conv, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	at := s.now()
	conv.Append(RoleUser, userContent, at)
	conv.Append(RoleAssistant, assistantContent, at)
	if err := s.repo.Save(ctx, conv); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to save conversation")
	}
	return nil
}

// RecentWindow returns the last n messages in chronological order, or nil
// when the user has no record yet.
func (s *Service) RecentWindow(ctx context.Context, userID uint, n int) ([]Message, error) {
	conv, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load conversation")
	}
	if conv == nil {
		return nil, nil
	}
	return conv.RecentWindow(n), nil
}

// All returns the user's full record, or nil when none exists.
func (s *Service) All(ctx context.Context, userID uint) (*Conversation, error) {
	conv, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load conversation")
	}
	return conv, nil
}

// Clear deletes the user's record. Absence is not an error.
func (s *Service) Clear(ctx context.Context, userID uint) error {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to clear conversation")
	}
	return nil
}

// PruneIdle removes records untouched since the cutoff.
func (s *Service) PruneIdle(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.DeleteIdleSince(ctx, cutoff)
}

func (s *Service) loadOrCreate(ctx context.Context, userID uint) (*Conversation, error) {
	conv, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load conversation")
	}
	if conv == nil {
		conv = &Conversation{UserID: userID}
	}
	return conv, nil
}
