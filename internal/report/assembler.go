package report

import "strings"

// Heading returns the markdown heading written above each destination's itinerary.
func Heading(name string) string {
	return "## Itinerary for " + name + ":"
}

// Assemble concatenates the results in input order. Duplicates are kept.
func Assemble(results []DestinationResult) Report {
	var itinerary strings.Builder
	weather := make([]string, 0, len(results))

	for _, r := range results {
		itinerary.WriteString(Heading(r.Name))
		itinerary.WriteString("\n")
		itinerary.WriteString(r.Itinerary.Display())
		itinerary.WriteString("\n\n")

		weather = append(weather, r.Name+": "+r.Weather.Display())
	}

	return Report{
		ItineraryMarkdown: itinerary.String(),
		WeatherSummary:    strings.Join(weather, "\n"),
	}
}
