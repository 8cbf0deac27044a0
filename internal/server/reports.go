package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"trenddesk/internal/archive"
	"trenddesk/internal/session"
)

// ReportsHandler serves the in-memory report archive.
type ReportsHandler struct {
	Archive *archive.Archive
}

func (h *ReportsHandler) Register(g *echo.Group, sessions *session.Controller) {
	g.Use(requireSession(sessions))
	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/:id", h.get)
}

func (h *ReportsHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Archive.List())
}

func (h *ReportsHandler) search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q required")
	}
	k := 0
	if raw := c.QueryParam("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "k must be an integer")
		}
		k = n
	}
	hits, err := h.Archive.Search(q, k)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, hits)
}

func (h *ReportsHandler) get(c echo.Context) error {
	report, ok := h.Archive.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.JSON(http.StatusOK, report)
}
