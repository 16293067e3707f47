// Package weather fetches current conditions from OpenWeatherMap and renders
// them as a one-line summary.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Unavailable is returned, without an error, when the provider answers with a JSON body
// that carries no conditions. OpenWeatherMap's 404 "city not found" is one such answer.
const Unavailable = "Weather information unavailable."

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	currentPath    = "/data/2.5/weather"
)

// ErrMissingAPIKey is returned when no weather key was configured.
var ErrMissingAPIKey = errors.New("weather: missing api key")

// Reporter is the contract the planner depends on.
type Reporter interface {
	Summary(ctx context.Context, destination string) (string, error)
}

// Client queries the OpenWeatherMap current-weather endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type currentResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	// Error payloads carry a message; cod is a string on errors and a number on success.
	Message string `json:"message"`
}

// Summary returns "<Description> with a temperature of <temp>°C." for destination.
func (c *Client) Summary(ctx context.Context, destination string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	u, err := url.Parse(c.baseURL + currentPath)
	if err != nil {
		return "", fmt.Errorf("weather: invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", destination)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL, which includes the key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return "", fmt.Errorf("weather: do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("weather: read response: %w", err)
	}

	var cr currentResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("weather: provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return "", fmt.Errorf("weather: unmarshal response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[WEATHER] action=current destination=%q status=%d message=%q", destination, resp.StatusCode, cr.Message)
	}

	if len(cr.Weather) == 0 {
		return Unavailable, nil
	}
	if cr.Main == nil {
		return "", errors.New("weather: response has no main section")
	}
	return FormatSummary(cr.Weather[0].Description, cr.Main.Temp), nil
}

// FormatSummary renders a condition description and a Celsius temperature.
func FormatSummary(description string, tempC float64) string {
	return fmt.Sprintf("%s with a temperature of %s°C.", capitalize(description), strconv.FormatFloat(tempC, 'f', -1, 64))
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
