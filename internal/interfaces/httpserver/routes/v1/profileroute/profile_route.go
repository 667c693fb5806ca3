package profileroute

import (
	"github.com/gin-gonic/gin"

	"gradpath-server/internal/interfaces/httpserver/handlers/profilehandler"
)

// ProfileRoute handles /v1/profile routes
type ProfileRoute struct {
	handler *profilehandler.ProfileHandler
}

// NewProfileRoute constructs a new profile route handler
func NewProfileRoute(handler *profilehandler.ProfileHandler) *ProfileRoute {
	return &ProfileRoute{handler: handler}
}

// RegisterRouter registers profile-related routes
func (r *ProfileRoute) RegisterRouter(router gin.IRouter) {
	profileGroup := router.Group("/profile")
	{
		profileGroup.GET("", r.handler.GetProfile)
		profileGroup.PUT("", r.handler.UpdateProfile)
	}
}
