package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskhub.com/taskhub/internal/errors"
	"taskhub.com/taskhub/internal/services"
)

type Handler struct {
	userService       *services.UserService
	sessionService    *services.SessionService
	taskService       *services.TaskService
	commentService    *services.CommentService
	preferenceService *services.PreferenceService
}

func NewHandler(
	userService *services.UserService,
	sessionService *services.SessionService,
	taskService *services.TaskService,
	commentService *services.CommentService,
	preferenceService *services.PreferenceService,
) *Handler {
	return &Handler{
		userService:       userService,
		sessionService:    sessionService,
		taskService:       taskService,
		commentService:    commentService,
		preferenceService: preferenceService,
	}
}

// renderError maps service errors to the API's error payloads. Restricted
// attribute denials and destroy denials use different bodies, matching what
// clients of this API expect.
func renderError(c echo.Context, err error) error {
	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": validation.Sentence()})
	}

	if errors.Is(err, apperrors.ErrRestrictedAttributes) {
		return c.JSON(http.StatusForbidden, echo.Map{"errors": apperrors.ErrRestrictedAttributes.Message})
	}
	if errors.Is(err, apperrors.ErrPermissionDenied) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": apperrors.ErrPermissionDenied.Message})
	}

	var exception *apperrors.Exception
	if errors.As(err, &exception) {
		return c.JSON(exception.StatusCode, echo.Map{"error": exception.Message})
	}

	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
}
