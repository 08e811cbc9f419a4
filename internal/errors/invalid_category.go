package errors

import "net/http"

var ErrInvalidCategory = &Exception{
	Message:    "category must be one of todo, inProgress, done",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidPriority = &Exception{
	Message:    "priority must be one of low, medium, high",
	StatusCode: http.StatusBadRequest,
}
