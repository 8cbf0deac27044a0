package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trenddesk/config"
	"trenddesk/internal/account"
	"trenddesk/internal/archive"
	"trenddesk/internal/session"
	"trenddesk/internal/trends"
	"trenddesk/provider"
)

// Run wires the HTTP server and blocks until it exits.
func Run(cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Validator = newRequestValidator()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Cookie"},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	if cfg.Telemetry.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Initialize shared dependencies (top-level DI)
	accounts := account.NewStore()
	for _, seed := range cfg.Accounts.Seed {
		acc := account.Account{Username: seed.Username, Password: seed.Password, Role: account.Role(seed.Role)}
		if err := accounts.Add(acc); err != nil {
			log.Printf("skipping seed account %q: %v", seed.Username, err)
		}
	}
	sessions := session.NewController(accounts)
	admin := account.NewAdminService(accounts)

	llm, err := provider.NewProvider(provider.Client(cfg.General.Provider), provider.Options{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		return err
	}

	reports, err := archive.NewArchive(log.New(log.Writer(), "[ARCHIVE] ", log.LstdFlags))
	if err != nil {
		return err
	}
	executor := trends.NewExecutor(llm, cfg.Gemini.Grounding, reports, log.New(log.Writer(), "[EXECUTOR] ", log.LstdFlags))

	api := e.Group("/api")

	sh := &SessionHandler{Sessions: sessions}
	sh.Register(api.Group("/session"))

	ah := &AccountsHandler{Store: accounts, Admin: admin}
	ah.Register(api.Group("/accounts"), sessions)

	qh := &QueryHandler{Executor: executor}
	qh.Register(api.Group("/query"), sessions)

	rh := &ReportsHandler{Archive: reports}
	rh.Register(api.Group("/reports"), sessions)

	addr := cfg.Server.Address
	if addr == "" {
		addr = ":10002"
	}
	log.Printf("listening on %s", addr)
	return e.Start(addr)
}
