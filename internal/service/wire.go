package service

import (
	"context"
	"fmt"
	"log"

	"travelogue/internal/ai"
	"travelogue/internal/config"
	"travelogue/internal/maps"
	"travelogue/internal/weather"
)

// NewPlannerFromConfig builds the production clients. The returned func releases them.
// Missing provider keys are logged, not fatal: the affected calls fail inline.
func NewPlannerFromConfig(ctx context.Context, cfg config.Config) (*Planner, func(), error) {
	if cfg.AI.GeminiKey == "" {
		log.Printf("[CONFIG] GOOGLE_API_KEY not set; itinerary calls will fail")
	}
	if cfg.Weather.APIKey == "" {
		log.Printf("[CONFIG] WEATHER_API_KEY not set; weather calls will fail")
	}

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model, cfg.AI.Temperature)
	if err != nil {
		return nil, nil, err
	}

	wx := weather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout)

	fallback := maps.Point{Lat: cfg.Map.DefaultLat, Lon: cfg.Map.DefaultLon}
	var points maps.PointProvider = maps.StaticPoints{Default: fallback}
	if cfg.Map.APIKey != "" {
		geo, err := maps.NewGeocodeService(cfg.Map.APIKey, fallback)
		if err != nil {
			gemini.Close()
			return nil, nil, fmt.Errorf("maps init: %w", err)
		}
		points = geo
	}

	return NewPlanner(gemini, wx, points, cfg.AI.Timeout), gemini.Close, nil
}
