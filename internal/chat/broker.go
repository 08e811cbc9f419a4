package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"
	"github.com/rs/zerolog/log"

	model "workbase.com/workbase/internal/models"
)

// Broker carries a posted message to every API instance's hub.
type Broker interface {
	Publish(ctx context.Context, msg model.ChatMessage) error
	// Run blocks delivering remote messages until ctx is done.
	Run(ctx context.Context) error
}

type MemoryBroker struct {
	hub *Hub
}

func NewMemoryBroker(hub *Hub) *MemoryBroker {
	return &MemoryBroker{hub: hub}
}

func (b *MemoryBroker) Publish(_ context.Context, msg model.ChatMessage) error {
	b.hub.Deliver(msg)
	return nil
}

func (b *MemoryBroker) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

const (
	minResubscribe = 500 * time.Millisecond
	maxResubscribe = 30 * time.Second
)

// RedisBroker relays messages over a Redis pub/sub channel. A message posted
// on this instance reaches local subscribers through Run like any other.
type RedisBroker struct {
	client  rueidis.Client
	channel string
	hub     *Hub

	minRetry time.Duration
	maxRetry time.Duration
}

func NewRedisBroker(client rueidis.Client, channel string, hub *Hub) *RedisBroker {
	return &RedisBroker{
		client:   client,
		channel:  channel,
		hub:      hub,
		minRetry: minResubscribe,
		maxRetry: maxResubscribe,
	}
}

func (b *RedisBroker) Publish(ctx context.Context, msg model.ChatMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	cmd := b.client.B().Publish().Channel(b.channel).Message(string(payload)).Build()
	if err := b.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("publish chat message: %w", err)
	}
	return nil
}

// Run keeps the channel subscribed until ctx is done. A dropped subscription
// is retried with exponential backoff; the backoff resets once a
// subscription has stayed up for maxRetry.
func (b *RedisBroker) Run(ctx context.Context) error {
	logger := log.With().Str("component", "chat").Str("channel", b.channel).Logger()
	wait := b.minRetry

	for {
		started := time.Now()
		err := b.client.Receive(ctx, b.client.B().Subscribe().Channel(b.channel).Build(), b.deliver)
		if ctx.Err() != nil {
			return nil
		}
		if time.Since(started) >= b.maxRetry {
			wait = b.minRetry
		}

		logger.Warn().Err(err).Dur("retry_in", wait).Msg("chat subscription lost, resubscribing")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
		wait = min(wait*2, b.maxRetry)
	}
}

func (b *RedisBroker) deliver(m rueidis.PubSubMessage) {
	var msg model.ChatMessage
	if err := json.Unmarshal([]byte(m.Message), &msg); err != nil {
		log.Warn().Err(err).Str("component", "chat").Msg("discarding malformed broker message")
		return
	}
	b.hub.Deliver(msg)
}
