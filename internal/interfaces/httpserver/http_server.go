package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gradpath-server/internal/config"
	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/infrastructure"
	"gradpath-server/internal/infrastructure/logger"
	middleware "gradpath-server/internal/interfaces/httpserver/middlewares"
	v1 "gradpath-server/internal/interfaces/httpserver/routes/v1"

	_ "gradpath-server/docs/swagger"
)

type HTTPServer struct {
	engine  *gin.Engine
	infra   *infrastructure.Infrastructure
	v1Route *v1.V1Route
	users   *user.Service
	config  *config.Config
}

func NewHttpServer(
	v1Route *v1.V1Route,
	users *user.Service,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		v1Route,
		users,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(logger.GetLogger()))
	server.engine.Use(middleware.CORSMiddleware())
	server.engine.Use(middleware.MetricsMiddleware())

	// Root health checks for orchestrators
	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.EnableSwagger {
		server.engine.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return &server
}

func (httpServer *HTTPServer) Run() error {
	// Public routes (no auth required)
	root := httpServer.engine.Group("/")

	// Protected routes (auth middleware applied)
	protected := httpServer.engine.Group("/")
	protected.Use(middleware.AuthMiddleware(
		httpServer.users,
		httpServer.config.JWTSecret,
		httpServer.config.Issuer,
		logger.GetLogger(),
	))

	httpServer.v1Route.RegisterPublicRouter(root)
	httpServer.v1Route.RegisterRouter(protected)

	return httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort))
}
