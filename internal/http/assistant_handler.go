package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

func (h *Handler) Ask(c echo.Context) error {
	var req dto.AskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.assistant.Ask(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetConversation(c echo.Context) error {
	messages, err := h.assistant.Conversation(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"conversation_id": c.Param("id"),
		"messages":        messages,
	})
}

func (h *Handler) DeleteConversation(c echo.Context) error {
	if err := h.assistant.DeleteConversation(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
