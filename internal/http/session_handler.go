package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

func (h *Handler) StartSession(c echo.Context) error {
	var req dto.StartSessionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.sessions.Start(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}

func (h *Handler) StopSession(c echo.Context) error {
	session, err := h.sessions.Stop(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

func (h *Handler) CurrentSession(c echo.Context) error {
	session, err := h.sessions.Current(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

func (h *Handler) ListSessions(c echo.Context) error {
	sessions, err := h.sessions.List(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(sessions),
		"sessions": sessions,
	})
}

func (h *Handler) SessionStats(c echo.Context) error {
	stats, err := h.sessions.Stats(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"stats": stats})
}
