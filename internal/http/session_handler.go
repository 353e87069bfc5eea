package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	"taskhub.com/taskhub/internal/http/validators"
)

func (h *Handler) CreateSession(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return renderError(c, err)
	}

	user, err := h.sessionService.Login(c.Request().Context(), req.Login.Email, req.Login.Password)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		AuthToken: user.AuthenticationToken,
		User:      dto.NewUserSummary(user),
	})
}

// DestroySession acknowledges a logout. Tokens are stable for the account's
// lifetime, so the client simply discards its copy.
func (h *Handler) DestroySession(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{})
}
