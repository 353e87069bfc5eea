package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "taskhub.com/taskhub/internal/http/middlewares"
	repository "taskhub.com/taskhub/internal/repositories"
)

func Register(e *echo.Echo, h *Handler, users *repository.UserRepository, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/users", h.CreateUser)
	e.POST("/sessions", h.CreateSession)

	authenticated := e.Group("", middleware.Authenticate(users))
	authenticated.DELETE("/sessions", h.DestroySession)
	authenticated.GET("/users", h.ListUsers)

	authenticated.GET("/tasks", h.ListTasks)
	authenticated.POST("/tasks", h.CreateTask)
	authenticated.GET("/tasks/:slug", h.ShowTask)
	authenticated.PUT("/tasks/:slug", h.UpdateTask)
	authenticated.DELETE("/tasks/:slug", h.DestroyTask)

	authenticated.POST("/comments", h.CreateComment)

	authenticated.GET("/preferences", h.ShowPreference)
	authenticated.PUT("/preferences", h.UpdatePreference)
}
