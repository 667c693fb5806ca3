package tasks

import (
	"github.com/gin-gonic/gin"

	"gradpath-server/internal/interfaces/httpserver/handlers/taskhandler"
)

// TasksRoute handles /v1/tasks routes
type TasksRoute struct {
	handler *taskhandler.TaskHandler
}

// NewTasksRoute constructs a new tasks route handler
func NewTasksRoute(handler *taskhandler.TaskHandler) *TasksRoute {
	return &TasksRoute{handler: handler}
}

// RegisterRouter registers task-related routes
func (r *TasksRoute) RegisterRouter(router gin.IRouter) {
	tasksGroup := router.Group("/tasks")
	{
		tasksGroup.GET("", r.handler.ListTasks)
		tasksGroup.POST("", r.handler.CreateTask)
		tasksGroup.PATCH("/:id", r.handler.UpdateTaskStatus)
	}
}
