// Package chat fans chat messages out to the clients watching a room.
package chat

import (
	"sync"

	"github.com/rs/zerolog/log"

	model "workbase.com/workbase/internal/models"
)

const defaultBuffer = 16

type subscriber struct {
	ch        chan model.ChatMessage
	closeOnce sync.Once
}

func (s *subscriber) close() {
	s.closeOnce.Do(func() { close(s.ch) })
}

// Hub tracks local room subscribers. A subscriber that falls a full buffer
// behind loses messages rather than stalling the room.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*subscriber]struct{}
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		rooms:  make(map[string]map[*subscriber]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers for messages of roomID. The returned func unsubscribes
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(roomID string) (<-chan model.ChatMessage, func()) {
	sub := &subscriber{ch: make(chan model.ChatMessage, h.buffer)}

	h.mu.Lock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*subscriber]struct{})
	}
	h.rooms[roomID][sub] = struct{}{}
	h.mu.Unlock()

	return sub.ch, func() {
		h.mu.Lock()
		if subs, ok := h.rooms[roomID]; ok {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(h.rooms, roomID)
			}
		}
		h.mu.Unlock()
		sub.close()
	}
}

func (h *Hub) Deliver(msg model.ChatMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.rooms[msg.RoomID] {
		select {
		case sub.ch <- msg:
		default:
			log.Warn().Str("component", "chat").Str("room", msg.RoomID).Msg("dropping message for slow subscriber")
		}
	}
}

// CloseRoom disconnects every subscriber of roomID.
func (h *Hub) CloseRoom(roomID string) {
	h.mu.Lock()
	subs := h.rooms[roomID]
	delete(h.rooms, roomID)
	h.mu.Unlock()

	for sub := range subs {
		sub.close()
	}
}

func (h *Hub) Subscribers(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}
