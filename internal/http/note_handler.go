package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

func (h *Handler) ListNotes(c echo.Context) error {
	notes, err := h.notes.ListNotes(c.Request().Context(), middleware.OwnerID(c), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(notes),
		"notes": notes,
	})
}

func (h *Handler) CreateNote(c echo.Context) error {
	var req dto.CreateNoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	note, err := h.notes.CreateNote(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, note)
}

func (h *Handler) GetNote(c echo.Context) error {
	note, err := h.notes.GetNote(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

func (h *Handler) UpdateNote(c echo.Context) error {
	var req dto.UpdateNoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	note, err := h.notes.UpdateNote(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

func (h *Handler) DeleteNote(c echo.Context) error {
	if err := h.notes.DeleteNote(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
