package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trenddesk/internal/account"
	"trenddesk/internal/session"
)

// AccountsHandler exposes the admin account operations. Every route is
// behind the admin gate.
type AccountsHandler struct {
	Store *account.Store
	Admin *account.AdminService
}

func (h *AccountsHandler) Register(g *echo.Group, sessions *session.Controller) {
	g.Use(requireAdmin(sessions))
	g.GET("", h.list)
	g.POST("", h.add)
	g.PUT("/password", h.changePassword)
}

func (h *AccountsHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.List())
}

func (h *AccountsHandler) add(c echo.Context) error {
	var req AddAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	conf, err := h.Admin.AddAccount(req.Username, req.Password, account.Role(req.Role))
	if err != nil {
		if _, ok := err.(*account.AlreadyExistsError); ok {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		if _, ok := err.(*account.ValidationError); ok {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, conf)
}

func (h *AccountsHandler) changePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	conf, err := h.Admin.ChangePassword(req.Username, req.Password)
	if err != nil {
		if _, ok := err.(*account.ValidationError); ok {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, conf)
}
