package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

func (h *Handler) ListStickyNotes(c echo.Context) error {
	notes, err := h.stickies.ListStickyNotes(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":        len(notes),
		"sticky_notes": notes,
	})
}

func (h *Handler) CreateStickyNote(c echo.Context) error {
	var req dto.CreateStickyNoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	note, err := h.stickies.CreateStickyNote(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, note)
}

func (h *Handler) UpdateStickyNote(c echo.Context) error {
	var req dto.UpdateStickyNoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	note, err := h.stickies.UpdateStickyNote(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

func (h *Handler) BringStickyNoteToFront(c echo.Context) error {
	note, err := h.stickies.BringToFront(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

func (h *Handler) DeleteStickyNote(c echo.Context) error {
	if err := h.stickies.DeleteStickyNote(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
