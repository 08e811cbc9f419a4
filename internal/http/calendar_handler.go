package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

func (h *Handler) ListEvents(c echo.Context) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return err
	}

	events, err := h.calendar.ListEvents(c.Request().Context(), middleware.OwnerID(c), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":  len(events),
		"events": events,
	})
}

func (h *Handler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	event, err := h.calendar.CreateEvent(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *Handler) GetEvent(c echo.Context) error {
	event, err := h.calendar.GetEvent(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (h *Handler) UpdateEvent(c echo.Context) error {
	var req dto.UpdateEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	event, err := h.calendar.UpdateEvent(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (h *Handler) DeleteEvent(c echo.Context) error {
	if err := h.calendar.DeleteEvent(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GoogleAuthURL returns the consent URL. The owner id doubles as the OAuth
// state so the callback page can hand the code back to the right account.
func (h *Handler) GoogleAuthURL(c echo.Context) error {
	url, err := h.calendar.GoogleAuthURL(middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

func (h *Handler) GoogleExchange(c echo.Context) error {
	var req dto.GoogleExchangeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.calendar.ConnectGoogle(c.Request().Context(), middleware.OwnerID(c), req.Code); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PushEventToGoogle(c echo.Context) error {
	event, err := h.calendar.PushToGoogle(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (h *Handler) GoogleUpcoming(c echo.Context) error {
	events, err := h.calendar.GoogleUpcoming(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return err
	}

	out := make([]echo.Map, 0, len(events))
	for _, ev := range events {
		out = append(out, echo.Map{
			"id":          ev.ID,
			"title":       ev.Title,
			"description": ev.Description,
			"starts_at":   ev.StartsAt,
			"ends_at":     ev.EndsAt,
			"all_day":     ev.AllDay,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":  len(out),
		"events": out,
	})
}
