package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trenddesk/internal/session"
	"trenddesk/internal/telemetry"
)

type SessionHandler struct {
	Sessions *session.Controller
}

func (h *SessionHandler) Register(g *echo.Group) {
	g.GET("", h.current)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
}

// Login
//
//	@Summary		Login
//	@Description	Opens the process session; a success replaces whatever session was active
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginRequest	true	"Login payload"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	HTTPError
//	@Failure		401		{object}	HTTPError
//	@Router			/api/session/login [post]
func (h *SessionHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.Login(req.Username, req.Password)
	if err != nil {
		telemetry.Logins.WithLabelValues("failed").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	telemetry.Logins.WithLabelValues("succeeded").Inc()
	return c.JSON(http.StatusOK, sessionResponse(state))
}

// Logout
//
//	@Summary	Logout
//	@Description	Drops the session unconditionally, even when already anonymous
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Router		/api/session/logout [post]
func (h *SessionHandler) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse(h.Sessions.Logout()))
}

// Current
//
//	@Summary	Current session
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Router		/api/session [get]
func (h *SessionHandler) current(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse(h.Sessions.Current()))
}

func sessionResponse(state session.State) SessionResponse {
	resp := SessionResponse{
		Authenticated: state.Authenticated,
		Surface:       string(session.SurfaceFor(state)),
	}
	if state.Authenticated {
		resp.Username = state.Account.Username
		resp.Role = string(state.Account.Role)
	}
	return resp
}
