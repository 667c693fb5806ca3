package universities

import (
	"github.com/gin-gonic/gin"

	"gradpath-server/internal/interfaces/httpserver/handlers/universityhandler"
)

// UniversitiesRoute handles /v1/universities routes
type UniversitiesRoute struct {
	handler *universityhandler.UniversityHandler
}

// NewUniversitiesRoute constructs a new universities route handler
func NewUniversitiesRoute(handler *universityhandler.UniversityHandler) *UniversitiesRoute {
	return &UniversitiesRoute{handler: handler}
}

// RegisterRouter registers catalog, shortlist, and lock routes
func (r *UniversitiesRoute) RegisterRouter(router gin.IRouter) {
	universitiesGroup := router.Group("/universities")
	{
		universitiesGroup.GET("", r.handler.ListUniversities)
		universitiesGroup.GET("/shortlist", r.handler.GetShortlist)
		universitiesGroup.POST("/shortlist", r.handler.Shortlist)
		universitiesGroup.DELETE("/shortlist/:id", r.handler.RemoveShortlisted)
		universitiesGroup.POST("/lock", r.handler.Lock)
	}
}
