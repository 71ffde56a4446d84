package conversation

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "jan-server/services/messaging-api/internal/domain/conversation"
	"jan-server/services/messaging-api/internal/infrastructure/database/entities"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

// PostgresRepository persists conversations via GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the conversation record.
func (r *PostgresRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	entity := entities.NewSchemaConversation(conv)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation", err, "conversation-create-failed")
	}

	conv.ID = entity.ID
	conv.CreatedAt = entity.CreatedAt
	conv.UpdatedAt = entity.UpdatedAt
	return nil
}

// Update saves the participant pair.
func (r *PostgresRepository) Update(ctx context.Context, conv *domain.Conversation) error {
	entity := entities.NewSchemaConversation(conv)
	result := r.db.WithContext(ctx).
		Model(entity).
		Select("participant_a_id", "participant_b_id", "updated_at").
		Updates(entity)
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to update conversation", result.Error, "conversation-update-failed")
	}
	if result.RowsAffected == 0 {
		return conversationNotFound(ctx, conv.ID)
	}

	conv.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID fetches a conversation by id.
func (r *PostgresRepository) FindByID(ctx context.Context, id uint) (*domain.Conversation, error) {
	var entity entities.Conversation
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conversationNotFound(ctx, id)
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to fetch conversation", err, "conversation-fetch-failed")
	}
	return entity.EtoD(), nil
}

// ListByParticipant returns the user's conversations ordered by id.
func (r *PostgresRepository) ListByParticipant(ctx context.Context, userID uint) ([]*domain.Conversation, error) {
	var rows []entities.Conversation
	err := r.db.WithContext(ctx).
		Where("(participant_a_id = ? OR participant_b_id = ?)", userID, userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to list conversations", err, "conversation-list-failed")
	}

	result := make([]*domain.Conversation, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// HasMessages reports whether any message references the conversation.
func (r *PostgresRepository) HasMessages(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Message{}).Where("conversation_id = ?", id).Count(&count).Error; err != nil {
		return false, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to count conversation messages", err, "conversation-count-messages-failed")
	}
	return count > 0, nil
}

// Delete removes the conversation's messages and then the conversation itself
// inside one transaction.
func (r *PostgresRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&entities.Message{}).Error; err != nil {
			return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
				"failed to delete conversation messages", err, "conversation-delete-messages-failed")
		}

		result := tx.Delete(&entities.Conversation{}, id)
		if result.Error != nil {
			return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
				"failed to delete conversation", result.Error, "conversation-delete-failed")
		}
		if result.RowsAffected == 0 {
			return conversationNotFound(ctx, id)
		}
		return nil
	})
}

func conversationNotFound(ctx context.Context, id uint) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("conversation not found: %d", id), domain.ErrNotFound, "conversation-not-found")
}
