package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"workbase.com/workbase/internal/constants"
	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	"workbase.com/workbase/internal/integrations/llm"
	model "workbase.com/workbase/internal/models"
	"workbase.com/workbase/internal/queue"
	repository "workbase.com/workbase/internal/repositories"
)

const assistantPrompt = "You are the WorkBase office assistant. Help with planning, writing and " +
	"workplace questions. Keep answers short and practical."

type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// AssistantService proxies prompts to the language model. Every in-flight
// completion holds one token, so a burst of prompts is turned away instead
// of queueing upstream.
type AssistantService struct {
	repo         *repository.AssistantRepository
	completer    Completer
	tokenManager queue.TokenManager
	history      int
	now          func() time.Time
}

// NewAssistantService builds the assistant. completer may be nil when no
// API key is configured.
func NewAssistantService(
	repo *repository.AssistantRepository,
	completer Completer,
	tokenManager queue.TokenManager,
	history int,
) *AssistantService {
	return &AssistantService{
		repo:         repo,
		completer:    completer,
		tokenManager: tokenManager,
		history:      history,
		now:          utcNow,
	}
}

func (s *AssistantService) Ask(ctx context.Context, ownerID string, req dto.AskRequest) (*dto.AskResponse, error) {
	if s.completer == nil {
		return nil, apperrors.ErrAssistantUnavailable
	}
	prompt, err := requireText(req.Prompt, "prompt")
	if err != nil {
		return nil, err
	}

	if err := s.acquireToken(ctx); err != nil {
		return nil, err
	}
	defer s.releaseToken()

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	question := &model.AssistantMessage{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		ConversationID: conversationID,
		Role:           constants.RoleUser,
		Content:        prompt,
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to store prompt: %w", err)
	}

	history, err := s.repo.Recent(ctx, ownerID, conversationID, s.history)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: string(constants.RoleSystem), Content: assistantPrompt})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: string(m.Role), Content: m.Content})
	}

	content, err := s.completer.Complete(ctx, messages)
	if err != nil {
		// An unanswered prompt would be sent again next to the retry.
		if delErr := s.repo.Delete(context.WithoutCancel(ctx), question.ID); delErr != nil {
			log.Ctx(ctx).Warn().Err(delErr).Str("conversation_id", conversationID).Msg("failed to drop unanswered prompt")
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstreamFailed, err)
	}

	// The reply must sort after the prompt even on a coarse clock.
	repliedAt := s.now()
	if !repliedAt.After(question.CreatedAt) {
		repliedAt = question.CreatedAt.Add(time.Microsecond)
	}

	reply := model.AssistantMessage{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		ConversationID: conversationID,
		Role:           constants.RoleAssistant,
		Content:        content,
		CreatedAt:      repliedAt,
	}
	if err := s.repo.Create(ctx, &reply); err != nil {
		return nil, fmt.Errorf("failed to store reply: %w", err)
	}

	return &dto.AskResponse{ConversationID: conversationID, Reply: reply}, nil
}

func (s *AssistantService) acquireToken(ctx context.Context) error {
	if err := s.tokenManager.AcquireToken(ctx); err != nil {
		if errors.Is(err, queue.ErrNoTokenAvailable) {
			return apperrors.ErrAssistantBusy
		}
		return err
	}
	return nil
}

// releaseToken runs after the request context may have been canceled, so it
// uses a short context of its own.
func (s *AssistantService) releaseToken() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.tokenManager.ReleaseToken(ctx)
}

func (s *AssistantService) Conversation(ctx context.Context, ownerID, conversationID string) ([]model.AssistantMessage, error) {
	messages, err := s.repo.Conversation(ctx, ownerID, conversationID)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, apperrors.ErrConversationNotFound
	}
	return messages, nil
}

func (s *AssistantService) DeleteConversation(ctx context.Context, ownerID, conversationID string) error {
	return s.repo.DeleteConversation(ctx, ownerID, conversationID)
}
