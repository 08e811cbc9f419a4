package errors

import "net/http"

var ErrCalendarNotLinked = &Exception{
	Message:    "google calendar is not connected",
	StatusCode: http.StatusPreconditionFailed,
}

var ErrCalendarUnavailable = &Exception{
	Message:    "google calendar sync is not configured",
	StatusCode: http.StatusServiceUnavailable,
}
