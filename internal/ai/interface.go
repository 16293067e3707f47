package ai

import (
	"context"
)

// ItineraryGenerator defines the contract for turning a trip prompt into itinerary text.
// This interface keeps the planner independent of the concrete provider (Gemini today).
type ItineraryGenerator interface {
	// GenerateItinerary sends prompt to the model once and returns the generated text verbatim.
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}
