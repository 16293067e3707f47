package ai

import (
	"strings"
	"testing"
)

func TestBuildItineraryPrompt(t *testing.T) {
	got := BuildItineraryPrompt("Paris", 5, 1000, 2, false, []string{"Adventure", "Food & Drink"})

	for _, want := range []string{
		"Plan a detailed itinerary for a trip to Paris.",
		"The trip is for 5 days, with a budget of 1000 dollars.",
		"The trip is for 2 people, including no children.",
		"The user has the following preferences: Adventure, Food & Drink.",
		"1. Day Number: Plan for the day",
		"2. Activities: List of activities",
		"3. Meals: Suggested meal options",
		"4. Additional Notes: Any tips or recommendations",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q\n%s", want, got)
		}
	}
}

func TestBuildItineraryPromptChildrenAndEmptyPreferences(t *testing.T) {
	got := BuildItineraryPrompt("Tokyo", 1, 1250.5, 4, true, nil)

	if !strings.Contains(got, "including children included.") {
		t.Errorf("expected children status in prompt:\n%s", got)
	}
	if !strings.Contains(got, "budget of 1250.5 dollars") {
		t.Errorf("expected exact budget in prompt:\n%s", got)
	}
	if !strings.Contains(got, "preferences: none specified.") {
		t.Errorf("expected empty preference marker:\n%s", got)
	}
}

func TestBuildItineraryPromptDeterministic(t *testing.T) {
	a := BuildItineraryPrompt("Rome", 3, 500, 1, false, []string{"Shopping"})
	b := BuildItineraryPrompt("Rome", 3, 500, 1, false, []string{"Shopping"})
	if a != b {
		t.Fatal("prompt should be deterministic")
	}
}
