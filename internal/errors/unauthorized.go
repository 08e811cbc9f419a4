package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "missing or invalid access token",
	StatusCode: http.StatusUnauthorized,
}
