package ai

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildItineraryPrompt formats the trip parameters for one destination into the travel-agent prompt.
// The output is deterministic for identical inputs.
func BuildItineraryPrompt(destination string, numDays int, budget float64, numPeople int, hasChildren bool, preferences []string) string {
	childrenStatus := "no children"
	if hasChildren {
		childrenStatus = "children included"
	}

	prefs := "none specified"
	if len(preferences) > 0 {
		prefs = strings.Join(preferences, ", ")
	}

	return fmt.Sprintf(`You are an expert travel agent. Plan a detailed itinerary for a trip to %s.
The trip is for %d days, with a budget of %s dollars.
The trip is for %d people, including %s.
The user has the following preferences: %s.
The itinerary should be presented in a tabular format with the following columns:
1. Day Number: Plan for the day
2. Activities: List of activities
3. Meals: Suggested meal options
4. Additional Notes: Any tips or recommendations
`, destination, numDays, strconv.FormatFloat(budget, 'f', -1, 64), numPeople, childrenStatus, prefs)
}
