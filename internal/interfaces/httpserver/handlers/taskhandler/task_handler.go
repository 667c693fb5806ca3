package taskhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gradpath-server/internal/domain/task"
	"gradpath-server/internal/interfaces/httpserver/middlewares"
	"gradpath-server/internal/interfaces/httpserver/requests"
	"gradpath-server/internal/interfaces/httpserver/responses"
	"gradpath-server/internal/utils/platformerrors"
)

// TaskHandler serves the preparation task endpoints.
type TaskHandler struct {
	tasks *task.Service
}

// NewTaskHandler constructs a TaskHandler.
func NewTaskHandler(tasks *task.Service) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListTasks godoc
// @Summary List preparation tasks
// @Description Returns the student's tasks, optionally filtered by status
// @Tags tasks
// @Produce json
// @Param status query string false "Filter by status" Enums(NOT_STARTED, IN_PROGRESS, COMPLETED)
// @Success 200 {array} responses.TaskResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "7b3e91c4-2d60-48a5-b7f1-e05c83d29a16")
		return
	}

	var status *task.Status
	if raw := c.Query("status"); raw != "" {
		s := task.Status(raw)
		switch s {
		case task.StatusNotStarted, task.StatusInProgress, task.StatusCompleted:
			status = &s
		default:
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "unknown task status", "0c5d72e8-4a91-4f36-b8d0-63e17a95c2b4")
			return
		}
	}

	tasks, err := h.tasks.ListByUser(c.Request.Context(), principal.UserID, status)
	if err != nil {
		responses.HandleError(c, err, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, responses.NewTaskListResponse(tasks))
}

// CreateTask godoc
// @Summary Create a preparation task
// @Description Creates a task owned by the student
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body requests.CreateTaskRequest true "Task fields"
// @Success 201 {object} responses.TaskResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "f81c4d20-6e95-4a37-92b8-0d53c7e16a49")
		return
	}

	var req requests.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid task payload", "3e90a5c7-1b48-4d26-8f3a-75d0c2e89b61")
		return
	}

	created, err := h.tasks.Create(c.Request.Context(), task.CreateInput{
		UserID:      principal.UserID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    task.Priority(req.Priority),
		Category:    task.Category(req.Category),
		CreatedBy:   task.OriginUser,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, responses.NewTaskResponse(created))
}

// UpdateTaskStatus godoc
// @Summary Update a task's status
// @Description Moves one of the student's tasks to a new status
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body requests.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} responses.TaskResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/tasks/{id} [patch]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "91c5e37a-0d82-4b64-a1f9-8e26d40c7b53")
		return
	}

	var req requests.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid status payload", "5d20b8e4-7c91-4a35-b6d2-09f48e73a1c6")
		return
	}

	updated, err := h.tasks.UpdateStatus(c.Request.Context(), principal.UserID, c.Param("id"), task.Status(req.Status))
	if err != nil {
		responses.HandleError(c, err, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, responses.NewTaskResponse(updated))
}
