// README: Per-destination outcomes and the combined itinerary/weather report.
package report

import "fmt"

// Outcome is the tagged result of one provider call.
// Text holds the provider's answer; Err is set when the provider failed.
type Outcome struct {
	Text   string
	Err    error
	prefix string
}

// Success wraps text returned by a provider.
func Success(text string) Outcome {
	return Outcome{Text: text}
}

// Failure records a provider error. prefix names the failed step, e.g. "Error fetching weather".
func Failure(prefix string, err error) Outcome {
	return Outcome{Err: err, prefix: prefix}
}

// Failed reports whether the provider call failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Display is the text shown to the user: the provider text, or the inline error message.
func (o Outcome) Display() string {
	if o.Err == nil {
		return o.Text
	}
	if o.prefix == "" {
		return o.Err.Error()
	}
	return fmt.Sprintf("%s: %v", o.prefix, o.Err)
}

// DestinationResult holds both provider outcomes for one destination.
type DestinationResult struct {
	Name      string
	Itinerary Outcome
	Weather   Outcome
}

// Report is the combined text spanning all destinations of a request.
type Report struct {
	ItineraryMarkdown string
	WeatherSummary    string
}
