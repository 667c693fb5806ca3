package counselling

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/infrastructure/logger"
	"gradpath-server/internal/utils/platformerrors"
)

// Gateway sends a built context to the reasoning engine and returns its raw
// output. Implementations classify transport failures; callers only need to
// know that any error means "no usable output this turn".
type Gateway interface {
	Invoke(ctx context.Context, bctx Context) (string, error)
}

// Metrics records per-turn outcomes.
type Metrics interface {
	TurnCompleted()
	TurnRateLimited()
	TurnFallback()
	ActionDispatched(action Action)
}

// NopMetrics discards all observations.
type NopMetrics struct{}

func (NopMetrics) TurnCompleted()            {}
func (NopMetrics) TurnRateLimited()          {}
func (NopMetrics) TurnFallback()             {}
func (NopMetrics) ActionDispatched(_ Action) {}

// Service orchestrates one counselling turn end to end.
type Service struct {
	users         *user.Service
	profiles      *profile.Service
	universities  *university.Service
	conversations *conversation.Service
	gateway       Gateway
	limiter       *RateLimiter
	dispatcher    *Dispatcher
	metrics       Metrics
	log           zerolog.Logger
}

// NewService constructs a Service with required dependencies.
func NewService(
	users *user.Service,
	profiles *profile.Service,
	universities *university.Service,
	conversations *conversation.Service,
	gateway Gateway,
	limiter *RateLimiter,
	dispatcher *Dispatcher,
	metrics Metrics,
) *Service {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Service{
		users:         users,
		profiles:      profiles,
		universities:  universities,
		conversations: conversations,
		gateway:       gateway,
		limiter:       limiter,
		dispatcher:    dispatcher,
		metrics:       metrics,
		log:           logger.WithComponent("counselling.service"),
	}
}

// HandleTurn runs one student message through the engine: rate limit,
// context build, reasoning call, interpretation, dispatch, and history
// append. Engine trouble degrades to a fallback reply; only the rate limit
// and missing inputs surface as errors.
func (s *Service) HandleTurn(ctx context.Context, userID uint, message string) (*Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message is required", nil, "3c7f91e4-2b68-4a50-9d13-e85a06f72c49")
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load user")
	}
	if usr == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"user not found", nil, "6e20d8b5-4f91-47c3-a862-1d5b93c04e7a")
	}

	if err := s.limiter.Reserve(ctx, usr); err != nil {
		s.metrics.TurnRateLimited()
		return nil, err
	}

	prof, err := s.profiles.GetOrCreate(ctx, usr.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load profile")
	}

	history, err := s.conversations.RecentWindow(ctx, usr.ID, HistoryWindow)
	if err != nil {
		// History is an enrichment; a turn without it is still a turn.
		s.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("failed to load conversation window")
		history = nil
	}

	shortlisted, locked := s.describeShortlist(ctx, prof)
	bctx := BuildContext(usr, prof, history, shortlisted, locked, message)

	raw, err := s.gateway.Invoke(ctx, bctx)
	if err != nil {
		s.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("reasoning engine call failed, using fallback")
		raw = ""
	}

	reply := Interpret(raw, bctx)
	if reply.Fallback {
		s.metrics.TurnFallback()
	}

	s.dispatcher.Dispatch(ctx, usr, prof, reply)
	if reply.Action != ActionNone {
		s.metrics.ActionDispatched(reply.Action)
	}

	if err := s.conversations.AppendTurn(ctx, usr.ID, message, reply.Message); err != nil {
		s.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("failed to append conversation turn")
	}

	if !usr.FirstCounsellingDone {
		if err := s.users.MarkFirstCounsellingDone(ctx, usr); err != nil {
			s.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("failed to flag first counselling turn")
		}
	}

	s.metrics.TurnCompleted()
	return reply, nil
}

// describeShortlist resolves the profile's shortlist and lock into names
// for the engine context. Resolution failures degrade to an empty view.
func (s *Service) describeShortlist(ctx context.Context, prof *profile.Profile) ([]ShortlistedSummary, string) {
	ids := make([]uint, 0, len(prof.Shortlisted)+1)
	for _, entry := range prof.Shortlisted {
		ids = append(ids, entry.UniversityID)
	}
	if prof.Locked != nil {
		ids = append(ids, prof.Locked.UniversityID)
	}
	if len(ids) == 0 {
		return nil, ""
	}

	unis, err := s.universities.GetByIDs(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to resolve shortlist names")
		return nil, ""
	}
	names := make(map[uint]string, len(unis))
	for _, uni := range unis {
		names[uni.ID] = uni.Name
	}

	summaries := make([]ShortlistedSummary, 0, len(prof.Shortlisted))
	for _, entry := range prof.Shortlisted {
		if name, ok := names[entry.UniversityID]; ok {
			summaries = append(summaries, ShortlistedSummary{Name: name, Category: entry.Category})
		}
	}
	locked := ""
	if prof.Locked != nil {
		locked = names[prof.Locked.UniversityID]
	}
	return summaries, locked
}
