package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"taskhub.com/taskhub/internal/auth"
	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	repository "taskhub.com/taskhub/internal/repositories"
)

const currentUserKey = "current_user"

// Authenticate resolves the caller from the X-Auth-Email and X-Auth-Token
// headers and stores the account on the request context. The token compare
// is constant time.
func Authenticate(users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := c.Request().Header.Get("X-Auth-Email")
			token := c.Request().Header.Get("X-Auth-Token")
			if email == "" || token == "" {
				return unauthenticated(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), strings.ToLower(email))
			if err != nil || !auth.TokenMatches(token, user.AuthenticationToken) {
				return unauthenticated(c)
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated account stored by Authenticate.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error": apperrors.ErrUnauthenticated.Message,
	})
}
