package main

import "math"

// defaultGoals is the fallback target set used when no body weight is saved.
// Micro targets track population dietary guidelines, not energy needs, so
// they stay fixed even when weight is known.
var defaultGoals = dailyGoals{
	Calories:    2000,
	Protein:     150,
	Carbs:       200,
	Fat:         65,
	Sugar:       50,
	Fiber:       28,
	Sodium:      2300,
	Potassium:   3500,
	Cholesterol: 300,
	Water:       2500,
}

// minimumCalories is the floor for a weight-loss target; an aggressive
// loss plan never pushes the daily budget below this.
const minimumCalories = 1200

// proteinPerLb maps goal type to grams of protein per pound of body weight.
var proteinPerLb = map[string]float64{
	goalMaintain:   0.9,
	goalLoseWeight: 1.0,
	goalGainMuscle: 1.1,
}

// computeGoals derives the daily target set from the profile. Pure and
// deterministic; recomputed on every read, never persisted.
//
// Maintenance is a flat weight*15 TDEE approximation. LOSE_WEIGHT subtracts
// the deficit implied by the loss target (3500 kcal ≈ 1 lb fat), floored at
// minimumCalories; GAIN_MUSCLE adds a 400 kcal surplus. Fat is 35% of target
// calories; carbs absorb the remainder.
func computeGoals(p userProfile) dailyGoals {
	if p.WeightLbs == nil || *p.WeightLbs <= 0 {
		return defaultGoals
	}
	weight := *p.WeightLbs

	maintenance := int(math.Round(weight * 15))
	targetCalories := maintenance

	switch p.GoalType {
	case goalLoseWeight:
		// max(1, months*30) guards division by zero when months <= 0;
		// validating months > 0 is the settings layer's job, not ours.
		days := p.TargetMonths * 30
		if days < 1 {
			days = 1
		}
		deficit := int(math.Round(p.TargetLossLbs * 3500 / float64(days)))
		targetCalories = maintenance - deficit
		if targetCalories < minimumCalories {
			targetCalories = minimumCalories
		}
	case goalGainMuscle:
		targetCalories = maintenance + 400
	}

	perLb, ok := proteinPerLb[p.GoalType]
	if !ok {
		perLb = proteinPerLb[goalMaintain]
	}

	g := defaultGoals
	g.Calories = targetCalories
	g.Protein = int(math.Round(weight * perLb))
	g.Fat = int(math.Round(float64(targetCalories) * 0.35 / 9))
	carbs := int(math.Round(float64(targetCalories-g.Protein*4-g.Fat*9) / 4))
	if carbs < 0 {
		carbs = 0
	}
	g.Carbs = carbs
	g.Water = int(math.Round(weight * 18))
	return g
}
