package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	middleware "workbase.com/workbase/internal/http/middlewares"
	model "workbase.com/workbase/internal/models"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = wsPongWait * 9 / 10
	wsMaxMessageSize = 8 << 10
	wsRejectBuffer   = 4
)

// socketError is the frame sent back for a client frame that was not
// posted. Chat messages never carry a top-level "message" key.
type socketError struct {
	Message string `json:"message"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers authenticate with a token, not cookies, so any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *Handler) ListRooms(c echo.Context) error {
	rooms, err := h.chat.ListRooms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(rooms),
		"rooms": rooms,
	})
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	room, err := h.chat.CreateRoom(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

func (h *Handler) GetRoom(c echo.Context) error {
	room, err := h.chat.GetRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

func (h *Handler) DeleteRoom(c echo.Context) error {
	if err := h.chat.DeleteRoom(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListMessages(c echo.Context) error {
	before, err := queryTime(c, "before")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	messages, err := h.chat.ListMessages(c.Request().Context(), c.Param("id"), before, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(messages),
		"messages": messages,
	})
}

func (h *Handler) PostMessage(c echo.Context) error {
	var req dto.PostMessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	msg, err := h.chat.PostMessage(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// ChatSocket streams a room over a WebSocket. Frames from the client are
// posted as messages by the authenticated user; every message in the room,
// including the client's own, is pushed back as JSON. A frame that cannot be
// posted is answered with {"message": ...} and the socket stays open.
func (h *Handler) ChatSocket(c echo.Context) error {
	roomID := c.Param("id")
	userID := middleware.OwnerID(c)

	messages, unsubscribe, err := h.chat.Watch(c.Request().Context(), roomID)
	if err != nil {
		return err
	}
	defer unsubscribe()

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		return nil
	}
	defer conn.Close()

	logger := log.Ctx(c.Request().Context()).With().Str("room", roomID).Logger()
	logger.Debug().Msg("chat socket connected")

	rejects := make(chan socketError, wsRejectBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		writeLoop(conn, messages, rejects)
	}()
	reject := func(message string) {
		select {
		case rejects <- socketError{Message: message}:
		default:
		}
	}

	conn.SetReadLimit(wsMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	// Ends when the client disconnects or writeLoop closes the connection.
	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug().Err(err).Msg("chat socket read failed")
			}
			break
		}

		var req dto.PostMessageRequest
		if err := json.Unmarshal(frame, &req); err != nil {
			reject("invalid message frame")
			continue
		}
		if _, err := h.chat.PostMessage(c.Request().Context(), userID, roomID, req); err != nil {
			if apperrors.StatusCode(err) >= http.StatusInternalServerError {
				logger.Error().Err(err).Msg("failed to post chat message")
			}
			reject(apperrors.Message(err))
		}
	}

	unsubscribe()
	<-done
	logger.Debug().Msg("chat socket disconnected")
	return nil
}

// writeLoop owns all writes to conn. It returns when messages is closed or
// a write fails.
func writeLoop(conn *websocket.Conn, messages <-chan model.ChatMessage, rejects <-chan socketError) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-messages:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "room closed"))
				_ = conn.Close()
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				_ = conn.Close()
				return
			}
		case rejected := <-rejects:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(rejected); err != nil {
				_ = conn.Close()
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				return
			}
		}
	}
}
