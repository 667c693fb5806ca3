package universityrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/infrastructure/database/dbschema"
	"gradpath-server/internal/utils/functional"
	"gradpath-server/internal/utils/platformerrors"
)

type UniversityGormRepository struct {
	db *gorm.DB
}

var _ university.Repository = (*UniversityGormRepository)(nil)

func NewUniversityGormRepository(db *gorm.DB) university.Repository {
	return &UniversityGormRepository{db: db}
}

func (repo *UniversityGormRepository) Create(ctx context.Context, uni *university.University) error {
	entity := dbschema.NewSchemaUniversity(uni)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create university",
			err,
			"6d5f82c1-0b37-4a94-8e62-f19d04c73b58",
		)
	}
	uni.ID = entity.ID
	return nil
}

func (repo *UniversityGormRepository) UpsertByName(ctx context.Context, uni *university.University) error {
	entity := dbschema.NewSchemaUniversity(uni)

	assignments := map[string]any{
		"country":              entity.Country,
		"program":              entity.Program,
		"rank":                 entity.Rank,
		"tuition_fee_per_year": entity.TuitionFeePerYear,
		"cost_level":           entity.CostLevel,
		"competitiveness":      entity.Competitiveness,
		"acceptance_chance":    entity.AcceptanceChance,
		"description":          entity.Description,
		"why_it_fits":          entity.WhyItFits,
		"risks":                entity.Risks,
		"is_active":            entity.IsActive,
		"updated_at":           gorm.Expr("NOW()"),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to upsert university",
			err,
			"b39e57d2-8a04-4c61-95f3-7e2d80c41a6b",
		)
	}
	uni.ID = entity.ID
	return nil
}

func (repo *UniversityGormRepository) FindByID(ctx context.Context, id uint) (*university.University, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *UniversityGormRepository) FindByPublicID(ctx context.Context, publicID string) (*university.University, error) {
	return repo.findOne(ctx, "public_id = ?", publicID)
}

func (repo *UniversityGormRepository) FindByExactName(ctx context.Context, name string) (*university.University, error) {
	return repo.findOne(ctx, "name = ?", name)
}

func (repo *UniversityGormRepository) FindByNamePattern(ctx context.Context, pattern string) (*university.University, error) {
	return repo.findOne(ctx, "name ILIKE ?", "%"+pattern+"%")
}

func (repo *UniversityGormRepository) findOne(ctx context.Context, query string, args ...any) (*university.University, error) {
	var entity dbschema.University
	err := repo.db.WithContext(ctx).
		Where(query, args...).
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
			"failed to find university",
			err,
			"48c1f7a9-5e26-4d80-b3c7-92a60e58d1f4",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UniversityGormRepository) FindByFilter(ctx context.Context, filter university.Filter) ([]*university.University, error) {
	query := repo.db.WithContext(ctx).Model(&dbschema.University{})
	query = applyFilter(query, filter)

	var entities []dbschema.University
	if err := query.Order("rank ASC").Find(&entities).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list universities",
			err,
			"d72a08f5-3b49-4e16-a8d0-65c31f94e2b7",
		)
	}

	return functional.Map(entities, func(entity dbschema.University) *university.University {
		return entity.EtoD()
	}), nil
}

func (repo *UniversityGormRepository) FindByIDs(ctx context.Context, ids []uint) ([]*university.University, error) {
	var entities []dbschema.University
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&entities).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find universities by IDs",
			err,
			"15e94c70-6a82-4dfb-93e5-c08d72a61f39",
		)
	}

	return functional.Map(entities, func(entity dbschema.University) *university.University {
		return entity.EtoD()
	}), nil
}

func (repo *UniversityGormRepository) Count(ctx context.Context, filter university.Filter) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&dbschema.University{})
	query = applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count universities",
			err,
			"a61d30c8-9f57-42e4-b8a1-37e90d52c6f8",
		)
	}
	return count, nil
}

func applyFilter(query *gorm.DB, filter university.Filter) *gorm.DB {
	if filter.Country != nil {
		query = query.Where("country = ?", *filter.Country)
	}
	if filter.Program != nil {
		query = query.Where("program ILIKE ?", "%"+*filter.Program+"%")
	}
	if filter.MaxRank != nil {
		query = query.Where("rank <= ?", *filter.MaxRank)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	return query
}
