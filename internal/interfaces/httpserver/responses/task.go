package responses

import (
	"time"

	"gradpath-server/internal/domain/task"
)

// TaskResponse is the task as shown to the student.
type TaskResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Category     string     `json:"category"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	RelatedStage string     `json:"related_stage,omitempty"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewTaskResponse converts a domain task.
func NewTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:           t.PublicID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		Category:     string(t.Category),
		DueDate:      t.DueDate,
		RelatedStage: t.RelatedStage,
		CreatedBy:    string(t.CreatedBy),
		CreatedAt:    t.CreatedAt,
	}
}

// NewTaskListResponse converts a slice of domain tasks.
func NewTaskListResponse(tasks []*task.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
