package userrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/infrastructure/database/dbschema"
	"gradpath-server/internal/utils/platformerrors"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) user.Repository {
	return &UserGormRepository{db: db}
}

func (repo *UserGormRepository) Create(ctx context.Context, usr *user.User) error {
	entity := dbschema.NewSchemaUser(usr)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create user",
			err,
			"5b82d19c-4e73-4f06-a2d8-91c35b60e7f4",
		)
	}
	usr.ID = entity.ID
	usr.CreatedAt = entity.CreatedAt
	usr.UpdatedAt = entity.UpdatedAt
	return nil
}

func (repo *UserGormRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
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
			"failed to find user by ID",
			err,
			"c1f84a27-9b50-4d3e-86f2-5e09d47a13b8",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByPublicID(ctx context.Context, publicID string) (*user.User, error) {
	var entity dbschema.User
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
			"failed to find user by public ID",
			err,
			"7d20b5e9-1a46-4c83-bf75-8d312c960a4e",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) Update(ctx context.Context, usr *user.User) error {
	entity := dbschema.NewSchemaUser(usr)
	if err := repo.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update user",
			err,
			"e4a91c38-6f72-4b05-9d84-20c5f7e81b96",
		)
	}
	return nil
}

func (repo *UserGormRepository) SetLastReasoningRequestAt(ctx context.Context, userID uint, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&dbschema.User{}).
		Where("id = ?", userID).
		Update("last_reasoning_request_at", at).
		Error
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to stamp reasoning request time",
			err,
			"0c6e83f5-2d91-47a4-b6e0-93f52a18c7d4",
		)
	}
	return nil
}
