package task

import (
	"context"
	"strings"

	"gradpath-server/internal/utils/idgen"
	"gradpath-server/internal/utils/platformerrors"
)

// Service handles business logic for tasks.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields callers may set on a new task.
type CreateInput struct {
	UserID       uint
	Title        string
	Description  string
	Priority     Priority
	Category     Category
	RelatedStage string
	CreatedBy    Origin
}

// Create validates and inserts a task. Tasks with the same title are not
// deduplicated: a repeated suggestion creates a repeated task.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"task title is required", nil, "9d41b6c2-7e85-4f3a-b1d9-0a6c38e52f17")
	}

	t := &Task{
		PublicID:     idgen.MustGenerateSecureID("task", 16),
		UserID:       input.UserID,
		Title:        title,
		Description:  input.Description,
		Status:       StatusNotStarted,
		Priority:     input.Priority,
		Category:     input.Category,
		RelatedStage: input.RelatedStage,
		CreatedBy:    input.CreatedBy,
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Category == "" {
		t.Category = CategoryApplication
	}
	if t.CreatedBy == "" {
		t.CreatedBy = OriginUser
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create task")
	}
	return t, nil
}

// ListByUser returns the user's tasks, optionally filtered by status.
func (s *Service) ListByUser(ctx context.Context, userID uint, status *Status) ([]*Task, error) {
	return s.repo.FindByFilter(ctx, Filter{UserID: &userID, Status: status})
}

// UpdateStatus moves a task owned by the user to a new status.
func (s *Service) UpdateStatus(ctx context.Context, userID uint, publicID string, status Status) (*Task, error) {
	switch status {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
	default:
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"unknown task status", nil, "4a8e2d91-5c37-4b60-8f2a-d71e9b03c5a8")
	}

	t, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "task not found")
	}
	if t == nil || t.UserID != userID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"task not found", nil, "b2f04c6e-9a18-4d5b-83c7-1e6a52d90f34")
	}

	t.Status = status
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update task")
	}
	return t, nil
}
