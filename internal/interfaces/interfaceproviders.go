package interfaces

import (
	"github.com/google/wire"

	"gradpath-server/internal/interfaces/httpserver"
	"gradpath-server/internal/interfaces/httpserver/handlers"
	"gradpath-server/internal/interfaces/httpserver/routes"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
	handlers.HandlerProvider,
	routes.RouteProvider,
)
