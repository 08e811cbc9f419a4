package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

// ImportGuest adopts the records a guest kept in browser storage into the
// signed-in account.
func (h *Handler) ImportGuest(c echo.Context) error {
	var req dto.GuestSnapshot
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.guest.Import(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}
