package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"googlemaps.github.io/maps"
)

func TestStaticPointsOnePerName(t *testing.T) {
	p := NewStaticPoints(37.7749, -122.4194)
	got := p.Points(context.Background(), []string{"Paris", "Tokyo", "Paris"})
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	for i, pt := range got {
		if pt != (Point{Lat: 37.7749, Lon: -122.4194}) {
			t.Errorf("point %d = %+v", i, pt)
		}
	}
	if len(p.Points(context.Background(), nil)) != 0 {
		t.Error("expected no points for no names")
	}
}

func TestGeocodeServicePoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("address") {
		case "Paris":
			_, _ = w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":48.8566,"lng":2.3522}}}]}`))
		case "Tokyo":
			_, _ = w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":35.6762,"lng":139.6503}}}]}`))
		default:
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		}
	}))
	defer srv.Close()

	fallback := Point{Lat: 1, Lon: 2}
	svc, err := NewGeocodeService("test-key", fallback, maps.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewGeocodeService: %v", err)
	}

	got := svc.Points(context.Background(), []string{"Tokyo", "Atlantis", "Paris"})
	want := []Point{{Lat: 35.6762, Lon: 139.6503}, fallback, {Lat: 48.8566, Lon: 2.3522}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGeocodeServiceProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fallback := Point{Lat: 37.7749, Lon: -122.4194}
	svc, err := NewGeocodeService("test-key", fallback, maps.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewGeocodeService: %v", err)
	}
	got := svc.Points(context.Background(), []string{"Paris"})
	if len(got) != 1 || got[0] != fallback {
		t.Errorf("expected fallback point, got %+v", got)
	}
}
