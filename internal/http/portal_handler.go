package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workbase.com/workbase/internal/constants"
	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

func (h *Handler) ListTickets(c echo.Context) error {
	portal := constants.Portal(c.QueryParam("portal"))
	status := constants.TicketStatus(c.QueryParam("status"))

	tickets, err := h.portal.ListTickets(c.Request().Context(), middleware.OwnerID(c), portal, status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(tickets),
		"tickets": tickets,
	})
}

func (h *Handler) CreateTicket(c echo.Context) error {
	var req dto.CreateTicketRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ticket, err := h.portal.CreateTicket(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}

func (h *Handler) GetTicket(c echo.Context) error {
	ticket, err := h.portal.GetTicket(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func (h *Handler) TransitionTicket(c echo.Context) error {
	var req dto.TransitionTicketRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ticket, err := h.portal.Transition(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func (h *Handler) DeleteTicket(c echo.Context) error {
	if err := h.portal.DeleteTicket(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
