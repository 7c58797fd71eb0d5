package handlers

import (
	"github.com/journalapp/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the acting user's ID stored by the JWT
// middleware, or 0 when the request carries no authenticated identity.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}
