package chat

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	model "workbase.com/workbase/internal/models"
)

func newTestRedisBroker(t *testing.T, hub *Hub) (*RedisBroker, *mock.Client) {
	client := mock.NewClient(gomock.NewController(t))
	broker := NewRedisBroker(client, "workbase:chat", hub)
	broker.minRetry = time.Millisecond
	broker.maxRetry = 5 * time.Millisecond
	return broker, client
}

func TestRedisBroker_Publish(t *testing.T) {
	broker, client := newTestRedisBroker(t, NewHub(1))
	ctx := context.Background()
	msg := model.ChatMessage{ID: "m1", RoomID: "general", AuthorID: "user-1", Body: "hello"}

	payload, err := json.Marshal(msg)
	require.NoError(t, err)

	client.EXPECT().
		Do(ctx, mock.Match("PUBLISH", "workbase:chat", string(payload))).
		Return(mock.Result(mock.RedisInt64(1)))
	require.NoError(t, broker.Publish(ctx, msg))

	client.EXPECT().
		Do(ctx, mock.Match("PUBLISH", "workbase:chat", string(payload))).
		Return(mock.ErrorResult(errors.New("connection refused")))
	assert.Error(t, broker.Publish(ctx, msg))
}

func TestRedisBroker_RunDeliversAndResubscribes(t *testing.T) {
	hub := NewHub(4)
	broker, client := newTestRedisBroker(t, hub)

	ch, unsubscribe := hub.Subscribe("general")
	defer unsubscribe()

	frame := func(id string) rueidis.PubSubMessage {
		payload, err := json.Marshal(model.ChatMessage{ID: id, RoomID: "general"})
		require.NoError(t, err)
		return rueidis.PubSubMessage{Channel: "workbase:chat", Message: string(payload)}
	}
	first, second := frame("m1"), frame("m2")

	gomock.InOrder(
		client.EXPECT().
			Receive(gomock.Any(), mock.Match("SUBSCRIBE", "workbase:chat"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ rueidis.Completed, fn func(rueidis.PubSubMessage)) error {
				fn(first)
				fn(rueidis.PubSubMessage{Channel: "workbase:chat", Message: "{not json"})
				return errors.New("connection reset by peer")
			}),
		client.EXPECT().
			Receive(gomock.Any(), mock.Match("SUBSCRIBE", "workbase:chat"), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ rueidis.Completed, fn func(rueidis.PubSubMessage)) error {
				fn(second)
				<-ctx.Done()
				return ctx.Err()
			}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- broker.Run(ctx) }()

	assert.Equal(t, "m1", receive(t, ch).ID)
	assert.Equal(t, "m2", receive(t, ch).ID, "delivery resumes after the subscription drops")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("broker did not stop")
	}
}
