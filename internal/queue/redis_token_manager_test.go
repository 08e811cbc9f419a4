package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTokenKey = "workbase:assistant:tokens"

func TestRedisTokenManager_Acquire(t *testing.T) {
	ctx := context.Background()
	client := mock.NewClient(gomock.NewController(t))
	m := NewRedisTokenManager(client, testTokenKey)

	client.EXPECT().Do(ctx, mock.Match("LPOP", testTokenKey)).Return(mock.Result(mock.RedisString("1")))
	require.NoError(t, m.AcquireToken(ctx))

	client.EXPECT().Do(ctx, mock.Match("LPOP", testTokenKey)).Return(mock.Result(mock.RedisNil()))
	assert.ErrorIs(t, m.AcquireToken(ctx), ErrNoTokenAvailable)

	down := errors.New("connection refused")
	client.EXPECT().Do(ctx, mock.Match("LPOP", testTokenKey)).Return(mock.ErrorResult(down))
	assert.ErrorIs(t, m.AcquireToken(ctx), down)
}

func TestRedisTokenManager_ReleasePushesToken(t *testing.T) {
	ctx := context.Background()
	client := mock.NewClient(gomock.NewController(t))
	m := NewRedisTokenManager(client, testTokenKey)

	client.EXPECT().Do(ctx, mock.Match("RPUSH", testTokenKey, "1")).Return(mock.Result(mock.RedisInt64(1)))
	assert.NoError(t, m.ReleaseToken(ctx))
}

func TestRedisTokenManager_InitializeResetsPool(t *testing.T) {
	ctx := context.Background()
	client := mock.NewClient(gomock.NewController(t))
	m := NewRedisTokenManager(client, testTokenKey)

	gomock.InOrder(
		client.EXPECT().Do(ctx, mock.Match("DEL", testTokenKey)).Return(mock.Result(mock.RedisInt64(1))),
		client.EXPECT().Do(ctx, mock.Match("RPUSH", testTokenKey, "1")).Return(mock.Result(mock.RedisInt64(1))).Times(3),
	)
	require.NoError(t, m.InitializeTokens(ctx, 3))

	client.EXPECT().Do(ctx, mock.Match("DEL", testTokenKey)).Return(mock.ErrorResult(errors.New("READONLY")))
	assert.Error(t, m.InitializeTokens(ctx, 3))
}
