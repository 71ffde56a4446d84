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

// MessageRepository persists messages via GORM.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a message repository backed by the provided DB.
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts the message; id and created_at are assigned by the database layer.
func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	entity := entities.NewSchemaMessage(msg)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create message", err, "message-create-failed")
	}

	msg.ID = entity.ID
	msg.CreatedAt = entity.CreatedAt
	return nil
}

// FindByID fetches a message that belongs to conversationID.
func (r *MessageRepository) FindByID(ctx context.Context, conversationID, id uint) (*domain.Message, error) {
	var entity entities.Message
	err := r.db.WithContext(ctx).
		Where("id = ? AND conversation_id = ?", id, conversationID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, messageNotFound(ctx, conversationID, id)
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to fetch message", err, "message-fetch-failed")
	}
	return entity.EtoD(), nil
}

// ListByConversation returns every message in creation order.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*domain.Message, error) {
	query := r.db.WithContext(ctx).Where("conversation_id = ?", conversationID)
	return r.list(ctx, query)
}

// ListAfter returns the messages ordered after checkpoint by (created_at, id).
func (r *MessageRepository) ListAfter(ctx context.Context, conversationID uint, checkpoint *domain.Message) ([]*domain.Message, error) {
	query := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Where("(created_at > ? OR (created_at = ? AND id > ?))", checkpoint.CreatedAt, checkpoint.CreatedAt, checkpoint.ID)
	return r.list(ctx, query)
}

// Delete removes a single message from the conversation.
func (r *MessageRepository) Delete(ctx context.Context, conversationID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND conversation_id = ?", id, conversationID).
		Delete(&entities.Message{})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to delete message", result.Error, "message-delete-failed")
	}
	if result.RowsAffected == 0 {
		return messageNotFound(ctx, conversationID, id)
	}
	return nil
}

func (r *MessageRepository) list(ctx context.Context, query *gorm.DB) ([]*domain.Message, error) {
	var rows []entities.Message
	if err := query.Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to list messages", err, "message-list-failed")
	}

	result := make([]*domain.Message, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

func messageNotFound(ctx context.Context, conversationID, id uint) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("message not found: %d", id), domain.ErrNotFound, "message-not-found",
		map[string]any{"conversation_id": conversationID})
}
