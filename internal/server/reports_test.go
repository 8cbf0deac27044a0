package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"trenddesk/internal/account"
	"trenddesk/internal/archive"
	"trenddesk/internal/session"
	"trenddesk/internal/trends"
)

func newReportsFixture(t *testing.T) (*ReportsHandler, *archive.Archive) {
	t.Helper()
	reports, err := archive.NewArchive(log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewArchive: %v", err)
	}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := archive.Report{
		ID:        "run-older",
		Filters:   trends.FilterSet{Category: "sports", Language: "english"},
		Prompt:    "prompt one",
		Text:      "Cricket finals dominate the evening conversation.",
		CreatedAt: base,
	}
	newer := archive.Report{
		ID:        "run-newer",
		Filters:   trends.FilterSet{Category: "politics", Language: "english"},
		Prompt:    "prompt two",
		Text:      "Monsoon session adjourns amid walkouts.",
		Citations: []trends.Citation{{URI: "https://example.com/news", Title: "Example News"}},
		CreatedAt: base.Add(time.Hour),
	}
	if err := reports.Put(older); err != nil {
		t.Fatalf("put older: %v", err)
	}
	if err := reports.Put(newer); err != nil {
		t.Fatalf("put newer: %v", err)
	}
	return &ReportsHandler{Archive: reports}, reports
}

func TestReportsListNewestFirst(t *testing.T) {
	h, _ := newReportsFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()
	if err := h.list(e.NewContext(req, rec)); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
	var resp []archive.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "run-newer" || resp[1].ID != "run-older" {
		t.Fatalf("unexpected order: %+v", resp)
	}
}

func TestReportsSearchFindsByText(t *testing.T) {
	h, _ := newReportsFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/search?q=monsoon", nil)
	rec := httptest.NewRecorder()
	if err := h.search(e.NewContext(req, rec)); err != nil {
		t.Fatalf("search: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
	var hits []archive.Hit
	if err := json.Unmarshal(rec.Body.Bytes(), &hits); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hits) == 0 || hits[0].ID != "run-newer" {
		t.Fatalf("unexpected hits: %+v", hits)
	}
}

func TestReportsSearchRequiresQuery(t *testing.T) {
	h, _ := newReportsFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/search", nil)
	rec := httptest.NewRecorder()
	err := h.search(e.NewContext(req, rec))
	if err == nil {
		t.Fatalf("expected error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %#v", err)
	}
}

func TestReportsGetUnknownIs404(t *testing.T) {
	h, _ := newReportsFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/run-missing", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("run-missing")

	err := h.get(ctx)
	if err == nil {
		t.Fatalf("expected error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %#v", err)
	}
}

func TestReportsGetReturnsStoredReport(t *testing.T) {
	h, _ := newReportsFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/run-newer", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("run-newer")

	if err := h.get(ctx); err != nil {
		t.Fatalf("get: %v", err)
	}
	var resp archive.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "run-newer" || len(resp.Citations) != 1 {
		t.Fatalf("unexpected report: %+v", resp)
	}
}

func TestReportsGateRequiresLogin(t *testing.T) {
	h, _ := newReportsFixture(t)
	sessions := session.NewController(account.NewStore())

	e := echo.New()
	h.Register(e.Group("/api/reports"), sessions)

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected status 401 got %d", rec.Code)
	}
}
