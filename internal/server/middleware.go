package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trenddesk/internal/session"
)

// requireSession rejects requests while the session is anonymous.
func requireSession(sessions *session.Controller) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessions.Current().Authenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			return next(c)
		}
	}
}

// requireAdmin additionally insists on the admin role. Admins pass every
// gate; the reverse does not hold.
func requireAdmin(sessions *session.Controller) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := sessions.Current()
			if !state.Authenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			if !state.Account.Role.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}
			return next(c)
		}
	}
}
