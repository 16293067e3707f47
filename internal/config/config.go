// README: Config loader with env defaults for HTTP, AI, weather, maps and form options.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Range describes an integer slider on the trip form.
type Range struct {
	Min     int `yaml:"min" json:"min"`
	Max     int `yaml:"max" json:"max"`
	Default int `yaml:"default" json:"default"`
}

// Clamp bounds v to [Min, Max]. A zero value selects Default.
func (r Range) Clamp(v int) int {
	if v == 0 {
		return r.Default
	}
	if v < r.Min {
		return r.Min
	}
	if r.Max > 0 && v > r.Max {
		return r.Max
	}
	return v
}

type FormConfig struct {
	Days        Range    `json:"days"`
	Budget      Range    `json:"budget"`
	People      Range    `json:"people"`
	Preferences []string `json:"preferences"`
}

type MapConfig struct {
	APIKey string
	// Placeholder coordinate used for every destination when geocoding is off.
	DefaultLat float64
	DefaultLon float64
}

type Config struct {
	HTTP struct {
		Addr        string
		GinMode     string
		CORSOrigins []string
	}
	AI struct {
		GeminiKey   string
		Model       string
		Timeout     time.Duration
		Temperature *float32 // nil keeps the model default
	}
	Weather struct {
		APIKey  string
		BaseURL string
		Timeout time.Duration
	}
	Map  MapConfig
	Form FormConfig
}

// DefaultPreferences are the trip preference tags offered by the form.
var DefaultPreferences = []string{"Adventure", "Relaxation", "Food & Drink", "Cultural Experiences", "Shopping"}

// Load reads the environment and, when TRAVELOGUE_CONFIG is set, applies the YAML overlay.
// Missing provider keys are not an error; the clients report them per call.
func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRAVELOGUE_HTTP_ADDR", ":8080")
	cfg.HTTP.GinMode = strings.TrimSpace(os.Getenv("GIN_MODE"))
	cfg.HTTP.CORSOrigins = envList("TRAVELOGUE_CORS_ORIGINS", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	})

	cfg.AI.GeminiKey = firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("TRAVELOGUE_AI_MODEL", "gemini-2.0-flash")
	cfg.AI.Timeout = envOrDefaultDuration("TRAVELOGUE_AI_TIMEOUT", 60*time.Second)
	cfg.AI.Temperature = envFloat32("TRAVELOGUE_AI_TEMPERATURE")

	cfg.Weather.APIKey = strings.TrimSpace(os.Getenv("WEATHER_API_KEY"))
	cfg.Weather.BaseURL = strings.TrimRight(envOrDefault("TRAVELOGUE_WEATHER_URL", "https://api.openweathermap.org"), "/")
	cfg.Weather.Timeout = envOrDefaultDuration("TRAVELOGUE_WEATHER_TIMEOUT", 10*time.Second)

	cfg.Map.APIKey = strings.TrimSpace(os.Getenv("TRAVELOGUE_MAPS_API_KEY"))
	cfg.Map.DefaultLat = 37.7749
	cfg.Map.DefaultLon = -122.4194

	cfg.Form = DefaultForm()

	if path := strings.TrimSpace(os.Getenv("TRAVELOGUE_CONFIG")); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// DefaultForm returns the slider ranges and tags of the trip form.
func DefaultForm() FormConfig {
	return FormConfig{
		Days:        Range{Min: 1, Max: 30, Default: 5},
		Budget:      Range{Min: 100, Max: 20000, Default: 1000},
		People:      Range{Min: 1, Max: 10, Default: 2},
		Preferences: append([]string(nil), DefaultPreferences...),
	}
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func envList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return def
}

func envFloat32(key string) *float32 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return nil
	}
	out := float32(f)
	return &out
}
