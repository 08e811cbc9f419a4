package errors

import "net/http"

var ErrInvalidTicketStatus = &Exception{
	Message:    "status must be one of open, inProgress, resolved",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTransition = &Exception{
	Message:    "ticket cannot move to the requested status",
	StatusCode: http.StatusConflict,
}

var ErrInvalidPortal = &Exception{
	Message:    "portal must be one of hr, it",
	StatusCode: http.StatusBadRequest,
}
