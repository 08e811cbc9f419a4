package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"workbase.com/workbase/internal/chat"
	dto "workbase.com/workbase/internal/data_models"
	model "workbase.com/workbase/internal/models"
	repository "workbase.com/workbase/internal/repositories"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

type ChatService struct {
	repo   *repository.ChatRepository
	hub    *chat.Hub
	broker chat.Broker
	now    func() time.Time
}

func NewChatService(repo *repository.ChatRepository, hub *chat.Hub, broker chat.Broker) *ChatService {
	return &ChatService{repo: repo, hub: hub, broker: broker, now: utcNow}
}

func (s *ChatService) CreateRoom(ctx context.Context, userID string, req dto.CreateRoomRequest) (*model.ChatRoom, error) {
	name, err := requireText(req.Name, "name")
	if err != nil {
		return nil, err
	}

	room := &model.ChatRoom{
		ID:        uuid.NewString(),
		Name:      name,
		Topic:     req.Topic,
		CreatedBy: userID,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *ChatService) ListRooms(ctx context.Context) ([]model.ChatRoom, error) {
	return s.repo.ListRooms(ctx)
}

func (s *ChatService) GetRoom(ctx context.Context, id string) (*model.ChatRoom, error) {
	return s.repo.FindRoom(ctx, id)
}

// DeleteRoom removes the room with its history and disconnects its watchers.
func (s *ChatService) DeleteRoom(ctx context.Context, id string) error {
	if err := s.repo.DeleteRoom(ctx, id); err != nil {
		return err
	}
	s.hub.CloseRoom(id)
	return nil
}

// PostMessage stores the message and then publishes it. A publish failure is
// logged; the message is already durable and shows up on the next fetch.
func (s *ChatService) PostMessage(ctx context.Context, userID, roomID string, req dto.PostMessageRequest) (*model.ChatMessage, error) {
	body, err := requireText(req.Body, "body")
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindRoom(ctx, roomID); err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		AuthorID:  userID,
		Body:      body,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if err := s.broker.Publish(ctx, *msg); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("room", roomID).Msg("failed to publish chat message")
	}
	return msg, nil
}

func (s *ChatService) ListMessages(ctx context.Context, roomID string, before time.Time, limit int) ([]model.ChatMessage, error) {
	if _, err := s.repo.FindRoom(ctx, roomID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}
	return s.repo.ListMessages(ctx, roomID, before, limit)
}

// Watch subscribes to live messages of an existing room.
func (s *ChatService) Watch(ctx context.Context, roomID string) (<-chan model.ChatMessage, func(), error) {
	if _, err := s.repo.FindRoom(ctx, roomID); err != nil {
		return nil, nil, err
	}
	ch, unsubscribe := s.hub.Subscribe(roomID)
	return ch, unsubscribe, nil
}
