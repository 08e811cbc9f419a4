package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"workbase.com/workbase/internal/constants"
	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	"workbase.com/workbase/internal/integrations/llm"
	"workbase.com/workbase/internal/queue"
	repository "workbase.com/workbase/internal/repositories"
)

type fakeCompleter struct {
	mu    sync.Mutex
	calls [][]llm.Message
	reply string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, messages []llm.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, messages)
	return f.reply, f.err
}

func (f *fakeCompleter) lastCall() []llm.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func newAssistantService(t *testing.T, completer Completer, tokens int, history int) (*AssistantService, *queue.MemoryTokenManager, *fixedClock) {
	clock := newFixedClock()
	tm := queue.NewMemoryTokenManager(tokens)
	s := NewAssistantService(repository.NewAssistantRepository(setupTestDB(t)), completer, tm, history)
	s.now = clock.now
	return s, tm, clock
}

func TestAssistantService_AskStoresConversation(t *testing.T) {
	completer := &fakeCompleter{reply: "Block two hours for it."}
	s, tm, _ := newAssistantService(t, completer, 2, 20)
	ctx := context.Background()
	owner := newOwner()

	resp, err := s.Ask(ctx, owner, dto.AskRequest{Prompt: "How do I plan my week?"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ConversationID)
	assert.Equal(t, "Block two hours for it.", resp.Reply.Content)
	assert.Equal(t, constants.RoleAssistant, resp.Reply.Role)
	assert.Equal(t, 2, tm.Available(), "token is released after the call")

	messages, err := s.Conversation(ctx, owner, resp.ConversationID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constants.RoleUser, messages[0].Role)
	assert.Equal(t, constants.RoleAssistant, messages[1].Role)

	sent := completer.lastCall()
	require.Len(t, sent, 2)
	assert.Equal(t, string(constants.RoleSystem), sent[0].Role)
	assert.Equal(t, "How do I plan my week?", sent[1].Content)

	_, err = s.Conversation(ctx, newOwner(), resp.ConversationID)
	assert.ErrorIs(t, err, apperrors.ErrConversationNotFound)
}

func TestAssistantService_HistoryWindow(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	s, _, clock := newAssistantService(t, completer, 1, 3)
	ctx := context.Background()
	owner := newOwner()

	resp, err := s.Ask(ctx, owner, dto.AskRequest{Prompt: "first"})
	require.NoError(t, err)
	for _, prompt := range []string{"second", "third"} {
		clock.advance(time.Second)
		_, err := s.Ask(ctx, owner, dto.AskRequest{ConversationID: resp.ConversationID, Prompt: prompt})
		require.NoError(t, err)
	}

	sent := completer.lastCall()
	require.Len(t, sent, 4, "system prompt plus the last three messages")
	assert.Equal(t, "second", sent[1].Content)
	assert.Equal(t, "ok", sent[2].Content)
	assert.Equal(t, "third", sent[3].Content)
}

func TestAssistantService_Busy(t *testing.T) {
	s, _, _ := newAssistantService(t, &fakeCompleter{reply: "ok"}, 0, 20)

	_, err := s.Ask(context.Background(), newOwner(), dto.AskRequest{Prompt: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrAssistantBusy)
	assert.Equal(t, 503, apperrors.StatusCode(err))
}

func TestAssistantService_BusyOnSharedPool(t *testing.T) {
	client := mock.NewClient(gomock.NewController(t))
	client.EXPECT().
		Do(gomock.Any(), mock.Match("LPOP", "tokens")).
		Return(mock.Result(mock.RedisNil()))

	completer := &fakeCompleter{reply: "ok"}
	tm := queue.NewRedisTokenManager(client, "tokens")
	s := NewAssistantService(repository.NewAssistantRepository(setupTestDB(t)), completer, tm, 20)

	_, err := s.Ask(context.Background(), newOwner(), dto.AskRequest{Prompt: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrAssistantBusy)
	assert.Equal(t, 503, apperrors.StatusCode(err))
	assert.Empty(t, completer.calls)
}

func TestAssistantService_Unavailable(t *testing.T) {
	s, _, _ := newAssistantService(t, nil, 1, 20)

	_, err := s.Ask(context.Background(), newOwner(), dto.AskRequest{Prompt: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrAssistantUnavailable)
}

func TestAssistantService_UpstreamFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection reset")}
	s, tm, _ := newAssistantService(t, completer, 1, 20)

	_, err := s.Ask(context.Background(), newOwner(), dto.AskRequest{Prompt: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailed)
	assert.Equal(t, 502, apperrors.StatusCode(err))
	assert.Equal(t, 1, tm.Available())
}

func TestAssistantService_FailedPromptIsNotKept(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	s, _, clock := newAssistantService(t, completer, 1, 20)
	ctx := context.Background()
	owner := newOwner()

	resp, err := s.Ask(ctx, owner, dto.AskRequest{Prompt: "first"})
	require.NoError(t, err)

	completer.err = errors.New("connection reset")
	clock.advance(time.Second)
	_, err = s.Ask(ctx, owner, dto.AskRequest{ConversationID: resp.ConversationID, Prompt: "retry me"})
	require.ErrorIs(t, err, apperrors.ErrUpstreamFailed)

	completer.err = nil
	clock.advance(time.Second)
	_, err = s.Ask(ctx, owner, dto.AskRequest{ConversationID: resp.ConversationID, Prompt: "retry me"})
	require.NoError(t, err)

	sent := completer.lastCall()
	require.Len(t, sent, 4, "system prompt, first, ok, retry me")
	assert.Equal(t, "first", sent[1].Content)
	assert.Equal(t, "ok", sent[2].Content)
	assert.Equal(t, "retry me", sent[3].Content)

	messages, err := s.Conversation(ctx, owner, resp.ConversationID)
	require.NoError(t, err)
	assert.Len(t, messages, 4)
}

func TestAssistantService_DeleteConversation(t *testing.T) {
	s, _, _ := newAssistantService(t, &fakeCompleter{reply: "ok"}, 1, 20)
	ctx := context.Background()
	owner := newOwner()

	resp, err := s.Ask(ctx, owner, dto.AskRequest{Prompt: "hello"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteConversation(ctx, owner, resp.ConversationID))
	assert.ErrorIs(t, s.DeleteConversation(ctx, owner, resp.ConversationID), apperrors.ErrConversationNotFound)
}
