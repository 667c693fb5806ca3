package counselling

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/task"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/utils/platformerrors"
)

type turnHarness struct {
	service  *Service
	gateway  *stubGateway
	metrics  *countingMetrics
	userRepo *fakeUserRepo
	profRepo *fakeProfileRepo
	convRepo *fakeConversationRepo
	limiter  *RateLimiter
	clock    time.Time
}

func newTurnHarness(t *testing.T, usr *user.User) *turnHarness {
	t.Helper()

	h := &turnHarness{
		gateway:  &stubGateway{},
		metrics:  newCountingMetrics(),
		userRepo: newFakeUserRepo(usr),
		profRepo: newFakeProfileRepo(),
		convRepo: newFakeConversationRepo(),
		clock:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	users := user.NewService(h.userRepo)
	profiles := profile.NewService(h.profRepo)
	universities := university.NewService(catalogOfThree())
	conversations := conversation.NewService(h.convRepo)

	h.limiter = NewRateLimiter(h.userRepo, 2*time.Second)
	h.limiter.now = func() time.Time { return h.clock }

	dispatcher := NewDispatcher(task.NewService(&fakeTaskRepo{}), profiles, universities, users)
	dispatcher.now = func() time.Time { return h.clock }

	h.service = NewService(users, profiles, universities, conversations, h.gateway, h.limiter, dispatcher, h.metrics)
	return h
}

func TestHandleTurnHappyPath(t *testing.T) {
	usr := &user.User{ID: 1, Name: "Priya", Stage: user.StageOnboarding}
	h := newTurnHarness(t, usr)
	h.gateway.raw = `{"message": "Tell me about your academic background to get started.", "action": "NONE"}`

	reply, err := h.service.HandleTurn(context.Background(), 1, "hi, I want to study abroad")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	if reply.Fallback {
		t.Error("engine answered; reply should not be a fallback")
	}
	if h.metrics.completed != 1 || h.metrics.fallbacks != 0 {
		t.Errorf("metrics = %+v", h.metrics)
	}
	if !usr.FirstCounsellingDone {
		t.Error("first turn should flip FirstCounsellingDone")
	}

	conv := h.convRepo.records[1]
	if conv == nil || len(conv.Messages) != 2 {
		t.Fatalf("conversation not persisted: %+v", conv)
	}
	if conv.Messages[0].Role != conversation.RoleUser || conv.Messages[1].Role != conversation.RoleAssistant {
		t.Errorf("turn order wrong: %+v", conv.Messages)
	}
	if h.profRepo.profiles[1] == nil {
		t.Error("profile should be created lazily on the first turn")
	}
}

func TestHandleTurnRateLimited(t *testing.T) {
	usr := &user.User{ID: 1, Name: "Priya"}
	h := newTurnHarness(t, usr)
	h.gateway.raw = `{"message": "Welcome! What would you like to work on?", "action": "NONE"}`

	if _, err := h.service.HandleTurn(context.Background(), 1, "first"); err != nil {
		t.Fatalf("first turn: %v", err)
	}

	h.clock = h.clock.Add(time.Second)
	_, err := h.service.HandleTurn(context.Background(), 1, "second")

	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("got %v, want RateLimitError", err)
	}
	if h.gateway.invoked != 1 {
		t.Errorf("engine invoked %d times; the limited turn must not reach it", h.gateway.invoked)
	}
	if h.metrics.rateLimited != 1 {
		t.Errorf("rate-limited metric = %d", h.metrics.rateLimited)
	}
	if conv := h.convRepo.records[1]; conv != nil && len(conv.Messages) != 2 {
		t.Errorf("limited turn must not be recorded, messages = %d", len(conv.Messages))
	}
}

func TestHandleTurnGatewayFailureFallsBack(t *testing.T) {
	usr := &user.User{ID: 1, Name: "Priya"}
	h := newTurnHarness(t, usr)
	h.gateway.err = errors.New("upstream 503")

	reply, err := h.service.HandleTurn(context.Background(), 1, "recommend universities please")
	if err != nil {
		t.Fatalf("engine trouble must degrade, not fail the turn: %v", err)
	}

	if !reply.Fallback {
		t.Error("reply should be the deterministic fallback")
	}
	if h.metrics.fallbacks != 1 || h.metrics.completed != 1 {
		t.Errorf("metrics = %+v", h.metrics)
	}
	if conv := h.convRepo.records[1]; conv == nil || len(conv.Messages) != 2 {
		t.Error("fallback turns still belong in the conversation log")
	}
}

func TestHandleTurnExplicitLockWorksWithoutEngine(t *testing.T) {
	usr := &user.User{ID: 1, Name: "Priya", Stage: user.StageFinalizingUniversities}
	h := newTurnHarness(t, usr)
	h.gateway.err = errors.New("engine down")

	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	prof := &profile.Profile{UserID: 1}
	prof.AddShortlist(1, university.CategoryDream, now)
	prof.AddShortlist(2, university.CategoryTarget, now)
	prof.AddShortlist(3, university.CategorySafe, now)
	h.profRepo.profiles[1] = prof

	reply, err := h.service.HandleTurn(context.Background(), 1, "lock Arizona State University")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	if !reply.UniversityLocked {
		t.Fatal("explicit lock intent should work even when the engine is down")
	}
	if prof.Locked == nil || prof.Locked.UniversityID != 3 {
		t.Fatalf("locked = %+v", prof.Locked)
	}
	if usr.Stage != user.StagePreparingApplications {
		t.Errorf("stage = %s", usr.Stage)
	}
	if h.metrics.actions[ActionLockUniversity] != 1 {
		t.Errorf("action metric = %+v", h.metrics.actions)
	}
}

func TestHandleTurnValidation(t *testing.T) {
	usr := &user.User{ID: 1}
	h := newTurnHarness(t, usr)

	if _, err := h.service.HandleTurn(context.Background(), 1, "   "); !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("blank message: got %v, want validation error", err)
	}
	if _, err := h.service.HandleTurn(context.Background(), 42, "hello"); !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("unknown user: got %v, want not-found error", err)
	}
	if h.gateway.invoked != 0 {
		t.Errorf("invalid turns must not reach the engine, invoked = %d", h.gateway.invoked)
	}
}

func TestHandleTurnHistoryFailureDegrades(t *testing.T) {
	usr := &user.User{ID: 1, Name: "Priya"}
	h := newTurnHarness(t, usr)
	h.convRepo.findErr = errors.New("table missing")
	h.gateway.raw = `{"message": "Let's keep building your profile together.", "action": "NONE"}`

	reply, err := h.service.HandleTurn(context.Background(), 1, "where were we?")
	if err != nil {
		t.Fatalf("history load failure must not fail the turn: %v", err)
	}
	if strings.TrimSpace(reply.Message) == "" {
		t.Error("reply message missing")
	}
}
