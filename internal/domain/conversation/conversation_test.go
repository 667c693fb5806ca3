package conversation

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestAppendEnforcesWindowBound(t *testing.T) {
	conv := &Conversation{UserID: 1}
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < MaxMessages+8; i++ {
		conv.Append(RoleUser, fmt.Sprintf("message %d", i), base.Add(time.Duration(i)*time.Second))
	}

	if len(conv.Messages) != MaxMessages {
		t.Fatalf("len = %d, want %d", len(conv.Messages), MaxMessages)
	}
	if conv.Messages[0].Content != "message 8" {
		t.Errorf("oldest retained = %q, want the FIFO suffix", conv.Messages[0].Content)
	}
	if conv.Messages[len(conv.Messages)-1].Content != fmt.Sprintf("message %d", MaxMessages+7) {
		t.Errorf("newest = %q", conv.Messages[len(conv.Messages)-1].Content)
	}
	if !conv.LastUpdated.Equal(base.Add(time.Duration(MaxMessages+7) * time.Second)) {
		t.Errorf("LastUpdated = %s", conv.LastUpdated)
	}
}

func TestRecentWindow(t *testing.T) {
	conv := &Conversation{UserID: 1}
	at := time.Now()
	for i := 0; i < 5; i++ {
		conv.Append(RoleUser, fmt.Sprintf("m%d", i), at)
	}

	window := conv.RecentWindow(3)
	if len(window) != 3 {
		t.Fatalf("len = %d", len(window))
	}
	if window[0].Content != "m2" || window[2].Content != "m4" {
		t.Errorf("window = %+v, want chronological tail", window)
	}

	if got := conv.RecentWindow(10); len(got) != 5 {
		t.Errorf("oversized request should clamp, len = %d", len(got))
	}
	if got := conv.RecentWindow(0); got != nil {
		t.Errorf("zero request = %+v, want nil", got)
	}

	// The window is a copy; mutating it must not touch the log.
	window[0].Content = "mutated"
	if conv.Messages[2].Content == "mutated" {
		t.Error("RecentWindow leaked the backing slice")
	}
}

type memoryRepo struct {
	records map[uint]*Conversation
}

func (r *memoryRepo) FindByUserID(ctx context.Context, userID uint) (*Conversation, error) {
	return r.records[userID], nil
}

func (r *memoryRepo) Save(ctx context.Context, conv *Conversation) error {
	r.records[conv.UserID] = conv
	return nil
}

func (r *memoryRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	delete(r.records, userID)
	return nil
}

func (r *memoryRepo) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, conv := range r.records {
		if conv.LastUpdated.Before(cutoff) {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}

func TestServiceAppendTurnCreatesLazily(t *testing.T) {
	repo := &memoryRepo{records: make(map[uint]*Conversation)}
	svc := NewService(repo)

	if err := svc.AppendTurn(context.Background(), 7, "hello", "hi there"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}

	conv := repo.records[7]
	if conv == nil || len(conv.Messages) != 2 {
		t.Fatalf("record = %+v", conv)
	}
	if conv.Messages[0].Role != RoleUser || conv.Messages[1].Role != RoleAssistant {
		t.Errorf("roles = %s, %s", conv.Messages[0].Role, conv.Messages[1].Role)
	}
}

func TestServiceRecentWindowWithoutRecord(t *testing.T) {
	svc := NewService(&memoryRepo{records: make(map[uint]*Conversation)})

	window, err := svc.RecentWindow(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RecentWindow: %v", err)
	}
	if window != nil {
		t.Errorf("window = %+v, want nil for an absent record", window)
	}
}

func TestServiceClearIsIdempotent(t *testing.T) {
	repo := &memoryRepo{records: make(map[uint]*Conversation)}
	svc := NewService(repo)

	if err := svc.AppendTurn(context.Background(), 1, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Clear(context.Background(), 1); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := svc.Clear(context.Background(), 1); err != nil {
		t.Fatalf("clearing an absent record: %v", err)
	}
	if repo.records[1] != nil {
		t.Error("record survived Clear")
	}
}

func TestServicePruneIdle(t *testing.T) {
	repo := &memoryRepo{records: make(map[uint]*Conversation)}
	svc := NewService(repo)
	cutoff := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	repo.records[1] = &Conversation{UserID: 1, LastUpdated: cutoff.Add(-time.Hour)}
	repo.records[2] = &Conversation{UserID: 2, LastUpdated: cutoff.Add(time.Hour)}

	deleted, err := svc.PruneIdle(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("PruneIdle: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if repo.records[2] == nil {
		t.Error("active record pruned")
	}
}
