package maps

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves destination names with the Google Maps Geocoding API.
type GeocodeService struct {
	client   *maps.Client
	fallback Point
}

// NewGeocodeService creates a GeocodeService with the given API Key.
// Names that cannot be resolved are placed on fallback.
func NewGeocodeService(apiKey string, fallback Point, opts ...maps.ClientOption) (*GeocodeService, error) {
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client, fallback: fallback}, nil
}

// Geocode returns the first match for name.
func (s *GeocodeService) Geocode(ctx context.Context, name string) (Point, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: name})
	if err != nil {
		return Point{}, fmt.Errorf("geocode api error: %w", err)
	}
	if len(results) == 0 {
		return Point{}, fmt.Errorf("no geocode result for %q", name)
	}
	loc := results[0].Geometry.Location
	return Point{Lat: loc.Lat, Lon: loc.Lng}, nil
}

// Points geocodes each name in order. Lookups run one after another.
func (s *GeocodeService) Points(ctx context.Context, names []string) []Point {
	out := make([]Point, 0, len(names))
	for _, name := range names {
		p, err := s.Geocode(ctx, name)
		if err != nil {
			log.Printf("[MAPS] action=geocode destination=%q fallback=true err=%v", name, err)
			p = s.fallback
		}
		out = append(out, p)
	}
	return out
}
