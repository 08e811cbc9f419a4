package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	middleware "workbase.com/workbase/internal/http/middlewares"
	"workbase.com/workbase/internal/http/validators"
)

type RouteConfig struct {
	JWTSecret          string
	RateLimitPerMinute int
	Logger             zerolog.Logger
}

func Register(e *echo.Echo, h *Handler, cfg RouteConfig) {
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validators.New()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestLogger(cfg.Logger))

	e.GET("/healthz", h.Health)

	api := e.Group("/api/v1",
		middleware.Auth(cfg.JWTSecret),
		middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute),
	)

	api.GET("/tasks", h.ListBoard)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/:id", h.GetTask)
	api.PATCH("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.POST("/tasks/:id/move", h.MoveTask)
	api.POST("/tasks/:id/subtasks", h.AddSubtask)
	api.PATCH("/tasks/:id/subtasks/:subtaskId", h.ToggleSubtask)
	api.DELETE("/tasks/:id/subtasks/:subtaskId", h.DeleteSubtask)

	api.GET("/notes", h.ListNotes)
	api.POST("/notes", h.CreateNote)
	api.GET("/notes/:id", h.GetNote)
	api.PATCH("/notes/:id", h.UpdateNote)
	api.DELETE("/notes/:id", h.DeleteNote)

	api.GET("/stickies", h.ListStickyNotes)
	api.POST("/stickies", h.CreateStickyNote)
	api.PATCH("/stickies/:id", h.UpdateStickyNote)
	api.POST("/stickies/:id/front", h.BringStickyNoteToFront)
	api.DELETE("/stickies/:id", h.DeleteStickyNote)

	api.GET("/events", h.ListEvents)
	api.POST("/events", h.CreateEvent)
	api.GET("/events/:id", h.GetEvent)
	api.PATCH("/events/:id", h.UpdateEvent)
	api.DELETE("/events/:id", h.DeleteEvent)
	api.POST("/events/:id/google", h.PushEventToGoogle)
	api.GET("/calendar/google/auth-url", h.GoogleAuthURL)
	api.POST("/calendar/google/exchange", h.GoogleExchange)
	api.GET("/calendar/google/upcoming", h.GoogleUpcoming)

	api.GET("/sessions", h.ListSessions)
	api.GET("/sessions/current", h.CurrentSession)
	api.GET("/sessions/stats", h.SessionStats)
	api.POST("/sessions/start", h.StartSession)
	api.POST("/sessions/stop", h.StopSession)

	api.GET("/rooms", h.ListRooms)
	api.POST("/rooms", h.CreateRoom)
	api.GET("/rooms/:id", h.GetRoom)
	api.DELETE("/rooms/:id", h.DeleteRoom)
	api.GET("/rooms/:id/messages", h.ListMessages)
	api.POST("/rooms/:id/messages", h.PostMessage)
	api.GET("/rooms/:id/ws", h.ChatSocket)

	api.GET("/tickets", h.ListTickets)
	api.POST("/tickets", h.CreateTicket)
	api.GET("/tickets/:id", h.GetTicket)
	api.POST("/tickets/:id/transition", h.TransitionTicket)
	api.DELETE("/tickets/:id", h.DeleteTicket)

	api.GET("/employees", h.ListEmployees)
	api.POST("/employees", h.CreateEmployee)
	api.GET("/employees/export", h.ExportDirectory)
	api.GET("/employees/:id", h.GetEmployee)
	api.PATCH("/employees/:id", h.UpdateEmployee)
	api.DELETE("/employees/:id", h.DeleteEmployee)
	api.GET("/employees/:id/kudos", h.ListKudos)
	api.POST("/employees/:id/kudos", h.GiveKudos)

	api.GET("/announcements", h.ListAnnouncements)
	api.POST("/announcements", h.CreateAnnouncement)
	api.DELETE("/announcements/:id", h.DeleteAnnouncement)

	api.POST("/assistant/ask", h.Ask)
	api.GET("/assistant/conversations/:id", h.GetConversation)
	api.DELETE("/assistant/conversations/:id", h.DeleteConversation)

	api.POST("/guest/import", h.ImportGuest)
}
