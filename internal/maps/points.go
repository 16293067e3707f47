package maps

import "context"

// Point is a latitude/longitude pair for the destination map.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PointProvider maps destination names to points, one per name, same order.
type PointProvider interface {
	Points(ctx context.Context, names []string) []Point
}

// StaticPoints places every destination on the same configured coordinate.
// No geocoding is attempted; this is the default when no Maps key is set.
type StaticPoints struct {
	Default Point
}

// NewStaticPoints returns a placeholder provider centred on lat/lon.
func NewStaticPoints(lat, lon float64) StaticPoints {
	return StaticPoints{Default: Point{Lat: lat, Lon: lon}}
}

func (s StaticPoints) Points(_ context.Context, names []string) []Point {
	out := make([]Point, len(names))
	for i := range names {
		out[i] = s.Default
	}
	return out
}
