package errors

import "net/http"

var ErrDuplicateEmail = &Exception{
	Message:    "an employee with this email already exists",
	StatusCode: http.StatusConflict,
}

var ErrDuplicateRoom = &Exception{
	Message:    "a room with this name already exists",
	StatusCode: http.StatusConflict,
}
