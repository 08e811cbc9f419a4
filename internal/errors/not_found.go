package errors

import "net/http"

var (
	ErrTaskNotFound         = notFound("task not found")
	ErrSubtaskNotFound      = notFound("subtask not found")
	ErrNoteNotFound         = notFound("note not found")
	ErrStickyNoteNotFound   = notFound("sticky note not found")
	ErrEventNotFound        = notFound("calendar event not found")
	ErrSessionNotFound      = notFound("no running session")
	ErrRoomNotFound         = notFound("chat room not found")
	ErrEmployeeNotFound     = notFound("employee not found")
	ErrAnnouncementNotFound = notFound("announcement not found")
	ErrTicketNotFound       = notFound("ticket not found")
	ErrConversationNotFound = notFound("conversation not found")
)

func notFound(message string) *Exception {
	return &Exception{Message: message, StatusCode: http.StatusNotFound}
}
