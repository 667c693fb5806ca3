package profilerepo

import (
	"context"

	"gorm.io/gorm"

	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/infrastructure/database/dbschema"
	"gradpath-server/internal/utils/platformerrors"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

var _ profile.Repository = (*ProfileGormRepository)(nil)

func NewProfileGormRepository(db *gorm.DB) profile.Repository {
	return &ProfileGormRepository{db: db}
}

func (repo *ProfileGormRepository) Create(ctx context.Context, prof *profile.Profile) error {
	entity := dbschema.NewSchemaProfile(prof)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create profile",
			err,
			"9e53a1d8-7c24-4f60-b1a9-68d20e35c7f1",
		)
	}
	prof.ID = entity.ID
	prof.CreatedAt = entity.CreatedAt
	prof.UpdatedAt = entity.UpdatedAt
	return nil
}

func (repo *ProfileGormRepository) FindByUserID(ctx context.Context, userID uint) (*profile.Profile, error) {
	var entity dbschema.Profile
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
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
			"failed to find profile by user ID",
			err,
			"2a7f94c6-0e81-4d35-9b72-c48e61d50a93",
		)
	}
	return entity.EtoD(), nil
}

func (repo *ProfileGormRepository) Update(ctx context.Context, prof *profile.Profile) error {
	entity := dbschema.NewSchemaProfile(prof)
	if err := repo.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update profile",
			err,
			"f80b62e4-3d17-49c5-a6f8-91e20d74b5c3",
		)
	}
	return nil
}
