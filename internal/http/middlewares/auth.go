package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"workbase.com/workbase/internal/auth"
	apperrors "workbase.com/workbase/internal/errors"
)

const ownerKey = "owner_id"

// Auth requires a bearer token. Browsers cannot set headers on a WebSocket
// handshake, so the access_token query parameter is accepted as well.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				raw = c.QueryParam("access_token")
			}
			if raw == "" {
				return apperrors.ErrUnauthorized
			}

			ownerID, err := auth.Parse(secret, raw)
			if err != nil {
				return err
			}

			c.Set(ownerKey, ownerID)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// OwnerID returns the authenticated owner, or "" outside Auth.
func OwnerID(c echo.Context) string {
	id, _ := c.Get(ownerKey).(string)
	return id
}
