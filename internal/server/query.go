package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trenddesk/internal/session"
	"trenddesk/internal/trends"
)

// QueryHandler starts trend runs and reports executor state. Any
// authenticated account may query, admins included. A run started while
// another is still in flight is accepted; the executor lets the last
// settled run win.
type QueryHandler struct {
	Executor *trends.Executor
}

func (h *QueryHandler) Register(g *echo.Group, sessions *session.Controller) {
	g.Use(requireSession(sessions))
	g.POST("/run", h.run)
	g.GET("", h.snapshot)
}

func (h *QueryHandler) run(c echo.Context) error {
	var req RunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	filters := trends.FilterSet{
		Country:  req.Country,
		State:    req.State,
		District: req.District,
		City:     req.City,
		Language: req.Language,
		Category: req.Category,
	}.WithDefaults()
	runID := h.Executor.Run(filters)
	return c.JSON(http.StatusAccepted, RunAcceptedResponse{RunID: runID})
}

func (h *QueryHandler) snapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Executor.Snapshot())
}
