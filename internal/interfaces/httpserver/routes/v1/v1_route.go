package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gradpath-server/internal/config"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/counsellor"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/profileroute"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/tasks"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/universities"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/users"
)

type V1Route struct {
	counsellor   *counsellor.CounsellorRoute
	tasks        *tasks.TasksRoute
	universities *universities.UniversitiesRoute
	profile      *profileroute.ProfileRoute
	users        *users.UsersRoute
}

func NewV1Route(
	counsellorRoute *counsellor.CounsellorRoute,
	tasksRoute *tasks.TasksRoute,
	universitiesRoute *universities.UniversitiesRoute,
	profileRoute *profileroute.ProfileRoute,
	usersRoute *users.UsersRoute,
) *V1Route {
	return &V1Route{
		counsellorRoute,
		tasksRoute,
		universitiesRoute,
		profileRoute,
		usersRoute,
	}
}

// RegisterRouter registers the authenticated v1 API surface.
func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")

	v1Route.counsellor.RegisterRouter(v1Router)
	v1Route.tasks.RegisterRouter(v1Router)
	v1Route.universities.RegisterRouter(v1Router)
	v1Route.profile.RegisterRouter(v1Router)
	v1Route.users.RegisterRouter(v1Router)
}

// RegisterPublicRouter registers endpoints that do not require authentication.
func (v1Route *V1Route) RegisterPublicRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)
}

// GetVersion godoc
// @Summary Get API build version
// @Description Returns the current build version of the API server and environment reload timestamp.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Version information"
// @Router /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":         config.Version,
		"env_reloaded_at": config.GetGlobal().EnvReloadedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetHealthz godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API server.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Health status OK"
// @Router /v1/healthz [get]
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz godoc
// @Summary Readiness check endpoint
// @Description Returns the readiness status of the API server.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Readiness status ready"
// @Router /v1/readyz [get]
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
