package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"

	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type AssistantRepository struct {
	db *gorm.DB
}

func NewAssistantRepository(db *gorm.DB) *AssistantRepository {
	return &AssistantRepository{db: db}
}

func (r *AssistantRepository) Create(ctx context.Context, msg *model.AssistantMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Recent returns the last limit messages of a conversation, oldest first.
func (r *AssistantRepository) Recent(ctx context.Context, ownerID, conversationID string, limit int) ([]model.AssistantMessage, error) {
	var messages []model.AssistantMessage
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND conversation_id = ?", ownerID, conversationID).
		Order("created_at desc").Order("id desc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	slices.Reverse(messages)
	return messages, nil
}

func (r *AssistantRepository) Conversation(ctx context.Context, ownerID, conversationID string) ([]model.AssistantMessage, error) {
	var messages []model.AssistantMessage
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND conversation_id = ?", ownerID, conversationID).
		Order("created_at asc").
		Find(&messages).Error
	return messages, err
}

func (r *AssistantRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AssistantMessage{}).Error
}

func (r *AssistantRepository) DeleteConversation(ctx context.Context, ownerID, conversationID string) error {
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND conversation_id = ?", ownerID, conversationID).
		Delete(&model.AssistantMessage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrConversationNotFound
	}
	return nil
}
