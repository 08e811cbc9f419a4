package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	apperrors "workbase.com/workbase/internal/errors"
)

// ErrorHandler renders every error as {"message": ...}. Exceptions keep their
// status; anything unrecognised is a logged 500 with a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := apperrors.StatusCode(err), apperrors.Message(err)

	var appErr *apperrors.Exception
	var httpErr *echo.HTTPError
	if !errors.As(err, &appErr) && errors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if status >= http.StatusInternalServerError {
		log.Ctx(c.Request().Context()).Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, echo.Map{"message": message})
	}
	if err != nil {
		log.Ctx(c.Request().Context()).Warn().Err(err).Msg("failed to write error response")
	}
}
