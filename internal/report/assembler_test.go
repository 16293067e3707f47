package report

import (
	"errors"
	"strings"
	"testing"
)

func TestAssembleOrderAndHeadings(t *testing.T) {
	results := []DestinationResult{
		{Name: "Paris", Itinerary: Success("| 1 | Louvre |"), Weather: Success("Clear sky with a temperature of 20°C.")},
		{Name: "Tokyo", Itinerary: Success("| 1 | Senso-ji |"), Weather: Success("Light rain with a temperature of 15°C.")},
	}

	r := Assemble(results)

	wantItinerary := "## Itinerary for Paris:\n| 1 | Louvre |\n\n## Itinerary for Tokyo:\n| 1 | Senso-ji |\n\n"
	if r.ItineraryMarkdown != wantItinerary {
		t.Errorf("itinerary = %q, want %q", r.ItineraryMarkdown, wantItinerary)
	}

	lines := strings.Split(r.WeatherSummary, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 weather lines, got %d: %q", len(lines), r.WeatherSummary)
	}
	if lines[0] != "Paris: Clear sky with a temperature of 20°C." || lines[1] != "Tokyo: Light rain with a temperature of 15°C." {
		t.Errorf("weather lines = %q", lines)
	}
}

func TestAssembleHeadingOncePerDestination(t *testing.T) {
	names := []string{"Lisbon", "Porto", "Faro"}
	var results []DestinationResult
	for _, n := range names {
		results = append(results, DestinationResult{Name: n, Itinerary: Success("plan"), Weather: Success("sunny")})
	}

	md := Assemble(results).ItineraryMarkdown
	last := -1
	for _, n := range names {
		h := Heading(n)
		if c := strings.Count(md, h); c != 1 {
			t.Errorf("heading %q appears %d times", h, c)
		}
		idx := strings.Index(md, h)
		if idx <= last {
			t.Errorf("heading %q out of order", h)
		}
		last = idx
	}
}

func TestAssembleKeepsDuplicates(t *testing.T) {
	results := []DestinationResult{
		{Name: "Rome", Itinerary: Success("a"), Weather: Success("x")},
		{Name: "Rome", Itinerary: Success("b"), Weather: Success("y")},
	}
	r := Assemble(results)
	if c := strings.Count(r.ItineraryMarkdown, "## Itinerary for Rome:"); c != 2 {
		t.Errorf("expected duplicate headings, got %d", c)
	}
	if r.WeatherSummary != "Rome: x\nRome: y" {
		t.Errorf("weather = %q", r.WeatherSummary)
	}
}

func TestAssembleInlinesFailures(t *testing.T) {
	results := []DestinationResult{{
		Name:      "Oslo",
		Itinerary: Failure("Error generating itinerary", errors.New("gemini: quota exceeded")),
		Weather:   Failure("Error fetching weather", errors.New("weather: timeout")),
	}}

	r := Assemble(results)
	if !strings.Contains(r.ItineraryMarkdown, "## Itinerary for Oslo:\nError generating itinerary: gemini: quota exceeded\n\n") {
		t.Errorf("itinerary = %q", r.ItineraryMarkdown)
	}
	if r.WeatherSummary != "Oslo: Error fetching weather: weather: timeout" {
		t.Errorf("weather = %q", r.WeatherSummary)
	}
}

func TestAssembleEmpty(t *testing.T) {
	r := Assemble(nil)
	if r.ItineraryMarkdown != "" || r.WeatherSummary != "" {
		t.Errorf("expected empty report, got %+v", r)
	}
}

func TestOutcome(t *testing.T) {
	ok := Success("fine")
	if ok.Failed() || ok.Display() != "fine" {
		t.Errorf("success outcome = %+v", ok)
	}

	bad := Failure("Error fetching weather", errors.New("boom"))
	if !bad.Failed() || bad.Display() != "Error fetching weather: boom" {
		t.Errorf("failure display = %q", bad.Display())
	}

	bare := Failure("", errors.New("boom"))
	if bare.Display() != "boom" {
		t.Errorf("bare failure display = %q", bare.Display())
	}
}
