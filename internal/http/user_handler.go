package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	"taskhub.com/taskhub/internal/http/validators"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return renderError(c, err)
	}

	if _, err := h.userService.Signup(c.Request().Context(), req.User.Name, req.User.Email, req.User.Password); err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"notice": "User was successfully created"})
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return renderError(c, err)
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, dto.NewUserSummary(&users[i]))
	}

	return c.JSON(http.StatusOK, echo.Map{"users": summaries})
}
