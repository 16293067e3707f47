package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travelogue/internal/config"
	httptransport "travelogue/internal/http"
	"travelogue/internal/maps"
	"travelogue/internal/service"
)

type nopGenerator struct{}

func (nopGenerator) GenerateItinerary(context.Context, string) (string, error) { return "plan", nil }

type nopWeather struct{}

func (nopWeather) Summary(context.Context, string) (string, error) { return "sunny", nil }

func newTestEngine(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	planner := service.NewPlanner(nopGenerator{}, nopWeather{}, maps.NewStaticPoints(0, 0), time.Second)
	return httptransport.NewServer(httptransport.ServerDeps{
		Planner:     planner,
		Form:        config.DefaultForm(),
		CORSOrigins: origins,
	}).Routes()
}

func TestRoutes_Health(t *testing.T) {
	r := newTestEngine(nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("health = %d %q", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected request id header")
	}
}

func TestRoutes_Index(t *testing.T) {
	r := newTestEngine(nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRoutes_APIPreflight(t *testing.T) {
	r := newTestEngine([]string{"http://localhost:5173"})
	req := httptest.NewRequest(http.MethodOptions, "/api/itinerary", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow-origin = %q", got)
	}
}
