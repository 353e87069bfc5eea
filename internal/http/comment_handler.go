package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	middleware "taskhub.com/taskhub/internal/http/middlewares"
	"taskhub.com/taskhub/internal/http/validators"
)

func (h *Handler) CreateComment(c echo.Context) error {
	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateCommentRequest(&req); err != nil {
		return renderError(c, err)
	}

	actor := middleware.CurrentUser(c)

	comment, err := h.commentService.Create(c.Request().Context(), actor, req.Comment.TaskID, req.Comment.Content)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"comment": comment})
}
