// Package task provides the preparation-task domain model.
package task

import (
	"context"
	"time"
)

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

type Category string

const (
	CategoryExam        Category = "EXAM"
	CategorySOP         Category = "SOP"
	CategoryDocuments   Category = "DOCUMENTS"
	CategoryApplication Category = "APPLICATION"
	CategoryProfile     Category = "PROFILE"
)

// Origin records who created a task.
type Origin string

const (
	OriginAI   Origin = "AI"
	OriginUser Origin = "USER"
)

// Task is one preparation item on a student's checklist. The counselling
// engine only ever inserts new tasks; status changes come from the student.
type Task struct {
	ID           uint
	PublicID     string
	UserID       uint
	Title        string
	Description  string
	Status       Status
	Priority     Priority
	Category     Category
	DueDate      *time.Time
	UniversityID *uint
	RelatedStage string
	CreatedBy    Origin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter narrows task queries.
type Filter struct {
	UserID   *uint
	PublicID *string
	Status   *Status
}

// Repository defines storage operations for tasks.
type Repository interface {
	Create(ctx context.Context, t *Task) error
	FindByFilter(ctx context.Context, filter Filter) ([]*Task, error)
	FindByPublicID(ctx context.Context, publicID string) (*Task, error)
	Update(ctx context.Context, t *Task) error
}
