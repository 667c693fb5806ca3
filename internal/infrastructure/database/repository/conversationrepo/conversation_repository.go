package conversationrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/infrastructure/database/dbschema"
	"gradpath-server/internal/utils/platformerrors"
)

type ConversationGormRepository struct {
	db *gorm.DB
}

var _ conversation.Repository = (*ConversationGormRepository)(nil)

func NewConversationGormRepository(db *gorm.DB) conversation.Repository {
	return &ConversationGormRepository{db: db}
}

func (repo *ConversationGormRepository) FindByUserID(ctx context.Context, userID uint) (*conversation.Conversation, error) {
	var entity dbschema.Conversation
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
			"failed to find conversation by user ID",
			err,
			"90d13e57-2a86-4cf4-b7e0-68c29d05f1a3",
		)
	}
	return entity.EtoD(), nil
}

func (repo *ConversationGormRepository) Save(ctx context.Context, conv *conversation.Conversation) error {
	entity := dbschema.NewSchemaConversation(conv)

	assignments := map[string]any{
		"messages":     entity.Messages,
		"last_updated": entity.LastUpdated,
		"updated_at":   gorm.Expr("NOW()"),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to save conversation",
			err,
			"7b42f90a-8d35-4e61-a2c8-05f17d83b6e9",
		)
	}
	conv.ID = entity.ID
	return nil
}

func (repo *ConversationGormRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&dbschema.Conversation{}).
		Error
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete conversation",
			err,
			"c58e06d1-3f92-4a74-b1d6-80a43e27c9f5",
		)
	}
	return nil
}

func (repo *ConversationGormRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("last_updated < ?", cutoff).
		Delete(&dbschema.Conversation{})
	if result.Error != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to prune idle conversations",
			result.Error,
			"3da760b4-9e28-4c15-a6f0-52c81d94e7b3",
		)
	}
	return result.RowsAffected, nil
}
