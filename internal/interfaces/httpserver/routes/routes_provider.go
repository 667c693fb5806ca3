package routes

import (
	"github.com/google/wire"

	v1 "gradpath-server/internal/interfaces/httpserver/routes/v1"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/counsellor"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/profileroute"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/tasks"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/universities"
	"gradpath-server/internal/interfaces/httpserver/routes/v1/users"
)

// RouteProvider aggregates the route constructors.
var RouteProvider = wire.NewSet(
	v1.NewV1Route,
	counsellor.NewCounsellorRoute,
	tasks.NewTasksRoute,
	universities.NewUniversitiesRoute,
	profileroute.NewProfileRoute,
	users.NewUsersRoute,
)
