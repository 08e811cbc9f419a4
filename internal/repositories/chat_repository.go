package repository

import (
	"context"
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"

	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) CreateRoom(ctx context.Context, room *model.ChatRoom) error {
	err := r.db.WithContext(ctx).Create(room).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrDuplicateRoom
	}
	return err
}

func (r *ChatRepository) ListRooms(ctx context.Context) ([]model.ChatRoom, error) {
	var rooms []model.ChatRoom
	err := r.db.WithContext(ctx).Order("name asc").Find(&rooms).Error
	return rooms, err
}

func (r *ChatRepository) FindRoom(ctx context.Context, id string) (*model.ChatRoom, error) {
	var room model.ChatRoom
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrRoomNotFound)
	}
	return &room, nil
}

func (r *ChatRepository) DeleteRoom(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.ChatMessage{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.ChatRoom{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrRoomNotFound
		}
		return nil
	})
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListMessages returns up to limit messages older than before (when set),
// oldest first.
func (r *ChatRepository) ListMessages(ctx context.Context, roomID string, before time.Time, limit int) ([]model.ChatMessage, error) {
	q := r.db.WithContext(ctx).Where("room_id = ?", roomID)
	if !before.IsZero() {
		q = q.Where("created_at < ?", before)
	}

	var messages []model.ChatMessage
	if err := q.Order("created_at desc").Limit(limit).Find(&messages).Error; err != nil {
		return nil, err
	}

	slices.Reverse(messages)
	return messages, nil
}
