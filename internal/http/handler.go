package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "workbase.com/workbase/internal/errors"
	"workbase.com/workbase/internal/services"
)

// Services is everything the API serves. Every field must be set.
type Services struct {
	Board     *services.BoardService
	Notes     *services.NoteService
	Stickies  *services.StickyNoteService
	Calendar  *services.CalendarService
	Sessions  *services.SessionService
	Chat      *services.ChatService
	Portal    *services.PortalService
	Directory *services.DirectoryService
	Assistant *services.AssistantService
	Guest     *services.GuestService
}

type Handler struct {
	board     *services.BoardService
	notes     *services.NoteService
	stickies  *services.StickyNoteService
	calendar  *services.CalendarService
	sessions  *services.SessionService
	chat      *services.ChatService
	portal    *services.PortalService
	directory *services.DirectoryService
	assistant *services.AssistantService
	guest     *services.GuestService
}

func NewHandler(s Services) *Handler {
	return &Handler{
		board:     s.Board,
		notes:     s.Notes,
		stickies:  s.Stickies,
		calendar:  s.Calendar,
		sessions:  s.Sessions,
		chat:      s.Chat,
		portal:    s.Portal,
		directory: s.Directory,
		assistant: s.Assistant,
		guest:     s.Guest,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	return c.Validate(req)
}

func queryTime(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.BadRequest(name + " must be an RFC 3339 timestamp")
	}
	return t, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperrors.BadRequest(name + " must be a non-negative integer")
	}
	return n, nil
}
