package handlers

import (
	"github.com/google/wire"

	"gradpath-server/internal/interfaces/httpserver/handlers/counsellorhandler"
	"gradpath-server/internal/interfaces/httpserver/handlers/profilehandler"
	"gradpath-server/internal/interfaces/httpserver/handlers/taskhandler"
	"gradpath-server/internal/interfaces/httpserver/handlers/universityhandler"
	"gradpath-server/internal/interfaces/httpserver/handlers/userhandler"
)

// HandlerProvider aggregates the HTTP handler constructors.
var HandlerProvider = wire.NewSet(
	counsellorhandler.NewCounsellorHandler,
	taskhandler.NewTaskHandler,
	universityhandler.NewUniversityHandler,
	profilehandler.NewProfileHandler,
	userhandler.NewUserHandler,
)
