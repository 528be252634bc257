package main

import "math"

/* ─── Portion modes ──────────────────────────────────────────────────── */

const (
	portionScale = "SCALE"
	portionCount = "COUNT"
)

// validPortionModes is the set of allowed portion_mode values.
var validPortionModes = map[string]bool{
	portionScale: true,
	portionCount: true,
}

// adjustPortion rescales an analysis result by a slider multiplier (SCALE)
// or by an absolute unit count (COUNT), returning the adjusted copy and the
// multiplier that was applied.
//
// Each numeric field is multiplied and rounded independently; small fields
// can round to zero under a fractional multiplier, which is accepted
// behavior. Exercise suggestions are left untouched; callers that want
// scaled durations for display use scaledSuggestions.
func adjustPortion(r foodAnalysisResult, mode string, sliderValue float64, countValue int) (foodAnalysisResult, float64) {
	multiplier := 1.0
	switch mode {
	case portionCount:
		// Guard against divide-by-zero when the analysis carried no count.
		if r.ItemCount > 0 && countValue > 0 {
			multiplier = float64(countValue) / float64(r.ItemCount)
		}
	default: // SCALE
		if sliderValue > 0 {
			multiplier = sliderValue
		}
	}

	out := r
	out.Calories = scaleRound(r.Calories, multiplier)
	out.Protein = scaleRound(r.Protein, multiplier)
	out.Carbs = scaleRound(r.Carbs, multiplier)
	out.Fat = scaleRound(r.Fat, multiplier)
	out.Sugar = scaleRound(r.Sugar, multiplier)
	out.Fiber = scaleRound(r.Fiber, multiplier)
	out.Sodium = scaleRound(r.Sodium, multiplier)
	out.Potassium = scaleRound(r.Potassium, multiplier)
	out.Cholesterol = scaleRound(r.Cholesterol, multiplier)
	out.Water = scaleRound(r.Water, multiplier)
	if mode == portionCount && countValue > 0 {
		out.ItemCount = countValue
	}
	return out, multiplier
}

func scaleRound(v int, multiplier float64) int {
	return int(math.Round(float64(v) * multiplier))
}

// scaledSuggestions returns display copies of the suggestions with durations
// scaled by the portion multiplier. The log store keeps the unscaled
// originals; the scaling is cosmetic only.
func scaledSuggestions(suggestions []exerciseSuggestion, multiplier float64) []exerciseSuggestion {
	out := make([]exerciseSuggestion, len(suggestions))
	for i, s := range suggestions {
		out[i] = s
		out[i].DurationMinutes = scaleRound(s.DurationMinutes, multiplier)
	}
	return out
}
