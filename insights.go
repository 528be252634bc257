package main

import (
	"fmt"
	"time"
)

// ratioOf guards ratio computations against a zero goal.
func ratioOf(total, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(total) / float64(goal)
}

// getInsights produces the coaching pair from today's totals. The decision
// table branches on goal type; a late-day hydration shortfall overrides the
// food advice regardless of goal type. The clock is passed in so tests can
// pin the hour-of-day branches.
//
// Totals must be today's; coaching a past day is pointless, so callers pass
// the current day's aggregate even when another date is on screen.
func getInsights(totals dailyTotals, goals dailyGoals, goalType string, now time.Time) insightPair {
	remaining := totals.EffectiveCalorieGoal - totals.Calories
	hour := now.Hour()

	var pair insightPair
	switch goalType {
	case goalLoseWeight:
		switch {
		case remaining < -100:
			pair.FoodAdvice = fmt.Sprintf("You're %d kcal over today's limit; keep the rest of the day light.", -remaining)
		case remaining < 100 && hour < 18:
			pair.FoodAdvice = fmt.Sprintf("Only %d kcal left and it's not dinner yet; save them.", remaining)
		case ratioOf(totals.Protein, goals.Protein) < 0.7:
			pair.FoodAdvice = "Protein is lagging; make your next meal a lean protein source."
		case ratioOf(totals.Carbs, goals.Carbs) > 0.9:
			pair.FoodAdvice = "Carbs are nearly at your cap; reach for protein or veg if you snack."
		default:
			pair.FoodAdvice = "Right on track for your deficit. Keep it up."
		}
		switch {
		case remaining < -200:
			pair.WorkoutAdvice = "A longer session would offset today's overage; aim for 40+ minutes of cardio."
		case remaining < 100:
			pair.WorkoutAdvice = "A light walk after your next meal will buy back some margin."
		default:
			pair.WorkoutAdvice = "A steady 30-minute cardio session fits comfortably in today's budget."
		}

	case goalGainMuscle:
		switch {
		case ratioOf(totals.Protein, goals.Protein) < 0.8:
			pair.FoodAdvice = fmt.Sprintf("Still %dg of protein to go; add a shake or a protein-heavy meal.", goals.Protein-totals.Protein)
		case remaining > 500:
			pair.FoodAdvice = "Over 500 kcal of surplus left unused; fit in a calorie-dense meal."
		case ratioOf(totals.Carbs, goals.Carbs) < 0.6:
			pair.FoodAdvice = "Carbs fuel your lifts and you're under 60% of target; add a starchy side."
		default:
			pair.FoodAdvice = "Intake is dialed in for growth. Nice work."
		}
		if totals.ExerciseCount == 0 {
			pair.WorkoutAdvice = "No session logged yet; today is a good day to lift."
		} else {
			pair.WorkoutAdvice = "You've trained today. Prioritize recovery: sleep, stretching, protein."
		}

	default: // MAINTAIN
		switch {
		case remaining < -150:
			pair.FoodAdvice = "Running a surplus today; lighten up the next meal."
			pair.WorkoutAdvice = "Burn off the surplus with a brisk 30-minute walk."
		case ratioOf(totals.Fat, goals.Fat) > 1.0:
			pair.FoodAdvice = "Fat intake is past target; go lean for the rest of the day."
			pair.WorkoutAdvice = "Stay active; even a short walk keeps the balance."
		default:
			pair.FoodAdvice = "Intake is balanced; steady as she goes."
			pair.WorkoutAdvice = "Keep moving; light activity makes maintenance easy."
		}
	}

	// Hydration override: well under the water goal past midday trumps the
	// goal-type food advice.
	if ratioOf(totals.Water, goals.Water) < 0.2 && hour > 12 {
		pair.FoodAdvice = "You're well below your water goal; grab a glass before your next meal."
	}
	return pair
}
