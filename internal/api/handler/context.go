package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// ctxActor extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both user_id and role must be
// present, otherwise the token is structurally valid but unusable.
func ctxActor(c echo.Context) (domain.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Actor{UserID: userID, Role: role}, nil
}

// ctxToken returns the token's jti and expiry for logout.
func ctxToken(c echo.Context) (string, time.Time) {
	jti, _ := c.Get("jti").(string)
	expiry, _ := c.Get("token_expiry").(time.Time)
	return jti, expiry
}
