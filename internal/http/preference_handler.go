package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	middleware "taskhub.com/taskhub/internal/http/middlewares"
)

func (h *Handler) ShowPreference(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	preference, err := h.preferenceService.Get(c.Request().Context(), actor)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"preference": preference})
}

func (h *Handler) UpdatePreference(c echo.Context) error {
	var req dto.UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	actor := middleware.CurrentUser(c)

	if err := h.preferenceService.UpdateDeliveryHour(c.Request().Context(), actor, req.Preference.NotificationDeliveryHour); err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{})
}
