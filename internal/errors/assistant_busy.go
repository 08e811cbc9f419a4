package errors

import "net/http"

var ErrAssistantBusy = &Exception{
	Message:    "assistant is busy, try again shortly",
	StatusCode: http.StatusServiceUnavailable,
}

var ErrAssistantUnavailable = &Exception{
	Message:    "assistant is not configured",
	StatusCode: http.StatusServiceUnavailable,
}

var ErrUpstreamFailed = &Exception{
	Message:    "upstream service failed",
	StatusCode: http.StatusBadGateway,
}
