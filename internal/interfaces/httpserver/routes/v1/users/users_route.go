package users

import (
	"github.com/gin-gonic/gin"

	"gradpath-server/internal/interfaces/httpserver/handlers/userhandler"
)

// UsersRoute handles /v1/users routes
type UsersRoute struct {
	handler *userhandler.UserHandler
}

// NewUsersRoute constructs a new users route handler
func NewUsersRoute(handler *userhandler.UserHandler) *UsersRoute {
	return &UsersRoute{handler: handler}
}

// RegisterRouter registers user-related routes
func (r *UsersRoute) RegisterRouter(router gin.IRouter) {
	usersGroup := router.Group("/users")
	{
		usersGroup.GET("/me", r.handler.GetMe)
	}
}
