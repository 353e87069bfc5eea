package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	middleware "taskhub.com/taskhub/internal/http/middlewares"
)

func (h *Handler) ListTasks(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	listing, err := h.taskService.List(c.Request().Context(), actor)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, listing)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	actor := middleware.CurrentUser(c)

	title := ""
	if req.Task.Title != nil {
		title = *req.Task.Title
	}
	assigneeID := ""
	if req.Task.UserID != nil {
		assigneeID = *req.Task.UserID
	}

	if _, err := h.taskService.Create(c.Request().Context(), actor, title, assigneeID); err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"notice": "Task was successfully created"})
}

func (h *Handler) ShowTask(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	detail, err := h.taskService.Show(c.Request().Context(), actor, c.Param("slug"))
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	actor := middleware.CurrentUser(c)

	if err := h.taskService.Update(c.Request().Context(), actor, c.Param("slug"), req.Task); err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{})
}

func (h *Handler) DestroyTask(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	if err := h.taskService.Destroy(c.Request().Context(), actor, c.Param("slug")); err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{})
}
