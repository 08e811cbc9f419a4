package errors

import "net/http"

var ErrOptimisticLock = &Exception{
	Message:    "record was modified by another request",
	StatusCode: http.StatusConflict,
}
