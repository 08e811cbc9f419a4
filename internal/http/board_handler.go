package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "workbase.com/workbase/internal/data_models"
	middleware "workbase.com/workbase/internal/http/middlewares"
)

func (h *Handler) ListBoard(c echo.Context) error {
	board, err := h.board.ListBoard(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.board.CreateTask(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.board.GetTask(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.board.UpdateTask(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.board.DeleteTask(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MoveTask answers with the whole board so the client can reconcile both
// affected lists at once.
func (h *Handler) MoveTask(c echo.Context) error {
	var req dto.MoveTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	board, err := h.board.MoveTask(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

func (h *Handler) AddSubtask(c echo.Context) error {
	var req dto.CreateSubtaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	subtask, err := h.board.AddSubtask(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, subtask)
}

func (h *Handler) ToggleSubtask(c echo.Context) error {
	var req dto.ToggleSubtaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	subtask, err := h.board.ToggleSubtask(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), c.Param("subtaskId"), req.Done)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subtask)
}

func (h *Handler) DeleteSubtask(c echo.Context) error {
	err := h.board.DeleteSubtask(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), c.Param("subtaskId"))
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
