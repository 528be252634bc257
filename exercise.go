package main

import "math"

// builtinMETs maps the built-in activity names to their MET values
// (Compendium of Physical Activities). User-defined sports extend this set
// through the custom-sport table.
var builtinMETs = map[string]float64{
	"Running":       9.8,
	"Walking":       3.5,
	"Cycling":       7.5,
	"Swimming":      8.0,
	"Hiking":        6.0,
	"Yoga":          2.5,
	"Weightlifting": 3.5,
	"Basketball":    6.5,
	"Tennis":        7.3,
	"Soccer":        7.0,
	"Rowing":        7.0,
	"Elliptical":    5.0,
	"Jump Rope":     12.3,
	"Dancing":       5.5,
}

const lbsToKg = 0.453592

// lookupMET resolves an activity to its MET value, built-ins first, then the
// user's custom sports. Unknown activities return 0; the caller must fall
// back to a manual calorie entry.
func lookupMET(activityID string, customSports map[string]float64) float64 {
	if met, ok := builtinMETs[activityID]; ok {
		return met
	}
	if met, ok := customSports[activityID]; ok {
		return met
	}
	return 0
}

// estimateBurn computes calories burned via the standard MET formula:
// kcal = MET * 3.5 * weightKg / 200 * minutes. Returns 0 for unknown
// activities or non-positive inputs.
func estimateBurn(activityID string, minutes int, weightLbs float64, customSports map[string]float64) int {
	met := lookupMET(activityID, customSports)
	if met <= 0 || minutes <= 0 || weightLbs <= 0 {
		return 0
	}
	weightKg := weightLbs * lbsToKg
	return int(math.Round(met * 3.5 * weightKg / 200 * float64(minutes)))
}
