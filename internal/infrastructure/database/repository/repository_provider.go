package repository

import (
	"github.com/google/wire"

	"gradpath-server/internal/infrastructure/database/repository/conversationrepo"
	"gradpath-server/internal/infrastructure/database/repository/profilerepo"
	"gradpath-server/internal/infrastructure/database/repository/taskrepo"
	"gradpath-server/internal/infrastructure/database/repository/universityrepo"
	"gradpath-server/internal/infrastructure/database/repository/userrepo"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	profilerepo.NewProfileGormRepository,
	universityrepo.NewUniversityGormRepository,
	taskrepo.NewTaskGormRepository,
	conversationrepo.NewConversationGormRepository,
)
