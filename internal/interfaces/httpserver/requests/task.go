package requests

// CreateTaskRequest creates a preparation task for the student.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=HIGH MEDIUM LOW"`
	Category    string `json:"category" binding:"omitempty,oneof=EXAM SOP DOCUMENTS APPLICATION PROFILE"`
}

// UpdateTaskStatusRequest moves a task to a new status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
}
