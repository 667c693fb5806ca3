package counsellor

import (
	"github.com/gin-gonic/gin"

	"gradpath-server/internal/interfaces/httpserver/handlers/counsellorhandler"
)

// CounsellorRoute handles /v1/counsellor routes
type CounsellorRoute struct {
	handler *counsellorhandler.CounsellorHandler
}

// NewCounsellorRoute constructs a new counsellor route handler
func NewCounsellorRoute(handler *counsellorhandler.CounsellorHandler) *CounsellorRoute {
	return &CounsellorRoute{handler: handler}
}

// RegisterRouter registers counsellor-related routes
func (r *CounsellorRoute) RegisterRouter(router gin.IRouter) {
	counsellorGroup := router.Group("/counsellor")
	{
		counsellorGroup.POST("", r.handler.Converse)
		counsellorGroup.GET("/conversation", r.handler.GetConversation)
		counsellorGroup.DELETE("/conversation", r.handler.ClearConversation)
	}
}
