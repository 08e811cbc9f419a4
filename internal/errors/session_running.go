package errors

import "net/http"

var ErrSessionRunning = &Exception{
	Message:    "a session is already running",
	StatusCode: http.StatusConflict,
}
