package errors

import "net/http"

var ErrInvalidTimeRange = &Exception{
	Message:    "end must not be before start",
	StatusCode: http.StatusBadRequest,
}
