package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) ListEmployees(c echo.Context) error {
	employees, err := h.directory.ListEmployees(c.Request().Context(), c.QueryParam("department"), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":     len(employees),
		"employees": employees,
	})
}

func (h *Handler) CreateEmployee(c echo.Context) error {
	var req dto.CreateEmployeeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	employee, err := h.directory.CreateEmployee(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

func (h *Handler) GetEmployee(c echo.Context) error {
	employee, err := h.directory.GetEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *Handler) UpdateEmployee(c echo.Context) error {
	var req dto.UpdateEmployeeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	employee, err := h.directory.UpdateEmployee(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *Handler) DeleteEmployee(c echo.Context) error {
	if err := h.directory.DeleteEmployee(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ExportDirectory(c echo.Context) error {
	data, err := h.directory.ExportDirectory(c.Request().Context(), c.QueryParam("department"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "directory.xlsx"))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) GiveKudos(c echo.Context) error {
	var req dto.GiveKudosRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	kudos, err := h.directory.GiveKudos(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, kudos)
}

func (h *Handler) ListKudos(c echo.Context) error {
	kudos, err := h.directory.ListKudos(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(kudos),
		"kudos": kudos,
	})
}

func (h *Handler) ListAnnouncements(c echo.Context) error {
	announcements, err := h.directory.ListAnnouncements(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":         len(announcements),
		"announcements": announcements,
	})
}

func (h *Handler) CreateAnnouncement(c echo.Context) error {
	var req dto.CreateAnnouncementRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	a, err := h.directory.CreateAnnouncement(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) DeleteAnnouncement(c echo.Context) error {
	if err := h.directory.DeleteAnnouncement(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
