package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-api/internal/api/middleware"
	"github.com/99minutos/shop-api/internal/core/domain"
)

// sessionUserID returns the authenticated user's id set by middleware.Session.
func sessionUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextKeyUserID).(string)
	if id == "" {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}

func invalidPayload() error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
}
