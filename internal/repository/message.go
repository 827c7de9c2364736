package repository

import (
	"context"

	"collabhub/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByConversationID(ctx context.Context, conversationID string, limit, offset int) ([]models.Message, error)
	GetAfter(ctx context.Context, conversationID string, afterID uint, limit int) ([]models.Message, error)
	ConversationIDsForUser(ctx context.Context, userID uint) ([]string, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// GetByConversationID returns messages oldest first so clients can append in
// arrival order.
func (r *messageRepository) GetByConversationID(ctx context.Context, conversationID string, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetAfter serves the polling path: only messages newer than the client's
// last seen ID.
func (r *messageRepository) GetAfter(ctx context.Context, conversationID string, afterID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND id > ?", conversationID, afterID).
		Order("id ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) ConversationIDsForUser(ctx context.Context, userID uint) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Distinct("conversation_id").
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Pluck("conversation_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
