package taskrepo

import (
	"context"

	"gorm.io/gorm"

	"gradpath-server/internal/domain/task"
	"gradpath-server/internal/infrastructure/database/dbschema"
	"gradpath-server/internal/utils/functional"
	"gradpath-server/internal/utils/platformerrors"
)

type TaskGormRepository struct {
	db *gorm.DB
}

var _ task.Repository = (*TaskGormRepository)(nil)

func NewTaskGormRepository(db *gorm.DB) task.Repository {
	return &TaskGormRepository{db: db}
}

func (repo *TaskGormRepository) Create(ctx context.Context, t *task.Task) error {
	entity := dbschema.NewSchemaTask(t)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create task",
			err,
			"83b7d2e0-4c19-4f65-a8d3-56e91c20f7a4",
		)
	}
	t.ID = entity.ID
	t.CreatedAt = entity.CreatedAt
	t.UpdatedAt = entity.UpdatedAt
	return nil
}

func (repo *TaskGormRepository) FindByFilter(ctx context.Context, filter task.Filter) ([]*task.Task, error) {
	query := repo.db.WithContext(ctx).Model(&dbschema.Task{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.PublicID != nil {
		query = query.Where("public_id = ?", *filter.PublicID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var entities []dbschema.Task
	if err := query.Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list tasks",
			err,
			"1e95c6a3-7d28-4b04-92f6-e80b31d47c5a",
		)
	}

	return functional.Map(entities, func(entity dbschema.Task) *task.Task {
		return entity.EtoD()
	}), nil
}

func (repo *TaskGormRepository) FindByPublicID(ctx context.Context, publicID string) (*task.Task, error) {
	var entity dbschema.Task
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find task by public ID",
			err,
			"f47a20d6-9c85-4e31-b0d2-73c58e16a9f0",
		)
	}
	return entity.EtoD(), nil
}

func (repo *TaskGormRepository) Update(ctx context.Context, t *task.Task) error {
	entity := dbschema.NewSchemaTask(t)
	if err := repo.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update task",
			err,
			"2c80e4b7-5f16-4a93-8d27-91e60c35d8f2",
		)
	}
	return nil
}
