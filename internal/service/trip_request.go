package service

import "travelogue/internal/config"

// WithFormDefaults applies the form's slider defaults and bounds and keeps only
// the configured preference tags, once each, in configured order.
func (r TripRequest) WithFormDefaults(form config.FormConfig) TripRequest {
	r.NumDays = form.Days.Clamp(r.NumDays)
	r.NumPeople = form.People.Clamp(r.NumPeople)
	r.Budget = clampBudget(form.Budget, r.Budget)
	r.Preferences = selectPreferences(form.Preferences, r.Preferences)
	return r
}

func clampBudget(rng config.Range, v float64) float64 {
	switch {
	case v == 0:
		return float64(rng.Default)
	case v < float64(rng.Min):
		return float64(rng.Min)
	case rng.Max > 0 && v > float64(rng.Max):
		return float64(rng.Max)
	}
	return v
}

func selectPreferences(allowed, selected []string) []string {
	picked := make(map[string]bool, len(selected))
	for _, s := range selected {
		picked[s] = true
	}
	out := make([]string, 0, len(selected))
	for _, a := range allowed {
		if picked[a] {
			out = append(out, a)
		}
	}
	return out
}
