package main

import (
	"strings"
	"testing"
	"time"
)

// clockAt pins the insight clock to the given hour on a fixed day.
func clockAt(hour int) time.Time {
	return time.Date(2026, 3, 15, hour, 0, 0, 0, time.UTC)
}

// loseGoals is a typical weight-loss goal set for insight tests.
var loseGoals = dailyGoals{Calories: 1667, Protein: 150, Carbs: 121, Fat: 65, Water: 2700}

// hydrated returns totals with enough water logged to keep the hydration
// override out of the way.
func hydrated(t dailyTotals) dailyTotals {
	t.Water = 2000
	return t
}

/* ─── LOSE_WEIGHT branches ───────────────────────────────────────────── */

// TestGetInsights_LoseOverLimit verifies the over-limit message and the long
// cardio suggestion when remaining is deep negative (1900-1667 = 233 over).
func TestGetInsights_LoseOverLimit(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 1900, EffectiveCalorieGoal: 1667})
	pair := getInsights(totals, loseGoals, goalLoseWeight, clockAt(15))
	if !strings.Contains(pair.FoodAdvice, "233 kcal over") {
		t.Errorf("food advice = %q, want over-limit message", pair.FoodAdvice)
	}
	if !strings.Contains(pair.WorkoutAdvice, "40+ minutes") {
		t.Errorf("workout advice = %q, want long cardio suggestion", pair.WorkoutAdvice)
	}
}

// TestGetInsights_LoseSaveCalories verifies the save-them message fires only
// before dinner: 67 kcal remaining at 10:00 warns, the same at 19:00 falls
// through to the macro checks.
func TestGetInsights_LoseSaveCalories(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 1600, Protein: 120, Carbs: 60, EffectiveCalorieGoal: 1667})
	morning := getInsights(totals, loseGoals, goalLoseWeight, clockAt(10))
	if !strings.Contains(morning.FoodAdvice, "save them") {
		t.Errorf("morning food advice = %q, want save-calories message", morning.FoodAdvice)
	}
	evening := getInsights(totals, loseGoals, goalLoseWeight, clockAt(19))
	if strings.Contains(evening.FoodAdvice, "save them") {
		t.Errorf("evening food advice = %q, save-calories should not fire after 18:00", evening.FoodAdvice)
	}
}

// TestGetInsights_LoseProteinLagging verifies the protein nudge below 70% of
// goal (50/150 = 33%).
func TestGetInsights_LoseProteinLagging(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 800, Protein: 50, EffectiveCalorieGoal: 1667})
	pair := getInsights(totals, loseGoals, goalLoseWeight, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "Protein is lagging") {
		t.Errorf("food advice = %q, want protein nudge", pair.FoodAdvice)
	}
	if !strings.Contains(pair.WorkoutAdvice, "30-minute cardio") {
		t.Errorf("workout advice = %q, want steady cardio", pair.WorkoutAdvice)
	}
}

// TestGetInsights_LoseCarbsNearCap verifies the carb caution past 90% of goal
// (115/121 = 95%) when protein is on track (120/150 = 80%).
func TestGetInsights_LoseCarbsNearCap(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 800, Protein: 120, Carbs: 115, EffectiveCalorieGoal: 1667})
	pair := getInsights(totals, loseGoals, goalLoseWeight, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "Carbs are nearly") {
		t.Errorf("food advice = %q, want carb caution", pair.FoodAdvice)
	}
}

/* ─── GAIN_MUSCLE branches ───────────────────────────────────────────── */

var gainGoals = dailyGoals{Calories: 2650, Protein: 165, Carbs: 250, Fat: 103, Water: 2700}

// TestGetInsights_GainProteinGap verifies the protein-remaining message names
// the exact gap: 165-100 = 65g to go.
func TestGetInsights_GainProteinGap(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 1500, Protein: 100, EffectiveCalorieGoal: 2650})
	pair := getInsights(totals, gainGoals, goalGainMuscle, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "Still 65g of protein") {
		t.Errorf("food advice = %q, want 65g protein gap", pair.FoodAdvice)
	}
}

// TestGetInsights_GainWorkout verifies the lift prompt before any session and
// the recovery message after one.
func TestGetInsights_GainWorkout(t *testing.T) {
	rested := hydrated(dailyTotals{Calories: 2500, Protein: 160, Carbs: 200, EffectiveCalorieGoal: 2650})
	pair := getInsights(rested, gainGoals, goalGainMuscle, clockAt(10))
	if !strings.Contains(pair.WorkoutAdvice, "good day to lift") {
		t.Errorf("workout advice = %q, want lift prompt", pair.WorkoutAdvice)
	}

	trained := rested
	trained.ExerciseCount = 1
	pair = getInsights(trained, gainGoals, goalGainMuscle, clockAt(10))
	if !strings.Contains(pair.WorkoutAdvice, "recovery") {
		t.Errorf("workout advice = %q, want recovery message", pair.WorkoutAdvice)
	}
}

// TestGetInsights_GainSurplus verifies the unused-surplus message when over
// 500 kcal of budget remains with protein on track (140/165 = 85%).
func TestGetInsights_GainSurplus(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 1800, Protein: 140, Carbs: 200, EffectiveCalorieGoal: 2650})
	pair := getInsights(totals, gainGoals, goalGainMuscle, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "surplus") {
		t.Errorf("food advice = %q, want surplus message", pair.FoodAdvice)
	}
}

// TestGetInsights_GainStarchySide verifies the carb-fueling nudge when carbs
// sit under 60% of goal (100/250 = 40%) with protein on track (140/165 = 85%)
// and the surplus mostly used (350 kcal remaining).
func TestGetInsights_GainStarchySide(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 2300, Protein: 140, Carbs: 100, EffectiveCalorieGoal: 2650})
	pair := getInsights(totals, gainGoals, goalGainMuscle, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "starchy side") {
		t.Errorf("food advice = %q, want starchy-side nudge", pair.FoodAdvice)
	}
}

// TestGetInsights_GainDialedIn verifies the positive default when protein,
// surplus, and carbs all check out (150/165 = 91%, 350 remaining, 200/250 = 80%).
func TestGetInsights_GainDialedIn(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 2300, Protein: 150, Carbs: 200, EffectiveCalorieGoal: 2650})
	pair := getInsights(totals, gainGoals, goalGainMuscle, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "dialed in") {
		t.Errorf("food advice = %q, want positive reinforcement", pair.FoodAdvice)
	}
}

// TestGetInsights_LoseOnTrack verifies the positive default with plenty of
// budget left (667 remaining), protein on track (120/150 = 80%), and carbs
// under the cap (60/121 = 50%).
func TestGetInsights_LoseOnTrack(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 1000, Protein: 120, Carbs: 60, EffectiveCalorieGoal: 1667})
	pair := getInsights(totals, loseGoals, goalLoseWeight, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "on track") {
		t.Errorf("food advice = %q, want positive reinforcement", pair.FoodAdvice)
	}
	if !strings.Contains(pair.WorkoutAdvice, "30-minute cardio") {
		t.Errorf("workout advice = %q, want steady cardio default", pair.WorkoutAdvice)
	}
}

/* ─── MAINTAIN branches ──────────────────────────────────────────────── */

var maintainGoals = dailyGoals{Calories: 2250, Protein: 135, Carbs: 230, Fat: 88, Water: 2700}

// TestGetInsights_MaintainSurplus verifies the paired surplus advice when
// running 200 kcal over.
func TestGetInsights_MaintainSurplus(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 2450, EffectiveCalorieGoal: 2250})
	pair := getInsights(totals, maintainGoals, goalMaintain, clockAt(15))
	if !strings.Contains(pair.FoodAdvice, "surplus") {
		t.Errorf("food advice = %q, want surplus message", pair.FoodAdvice)
	}
	if !strings.Contains(pair.WorkoutAdvice, "brisk 30-minute walk") {
		t.Errorf("workout advice = %q, want brisk walk pairing", pair.WorkoutAdvice)
	}
}

// TestGetInsights_MaintainHighFat verifies the fat caution past 100% of goal.
func TestGetInsights_MaintainHighFat(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 1500, Fat: 95, EffectiveCalorieGoal: 2250})
	pair := getInsights(totals, maintainGoals, goalMaintain, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "Fat intake") {
		t.Errorf("food advice = %q, want fat caution", pair.FoodAdvice)
	}
}

// TestGetInsights_MaintainSteady verifies the default balanced pair.
func TestGetInsights_MaintainSteady(t *testing.T) {
	totals := hydrated(dailyTotals{Calories: 1500, EffectiveCalorieGoal: 2250})
	pair := getInsights(totals, maintainGoals, goalMaintain, clockAt(10))
	if !strings.Contains(pair.FoodAdvice, "balanced") {
		t.Errorf("food advice = %q, want balanced message", pair.FoodAdvice)
	}
}

/* ─── Hydration override ─────────────────────────────────────────────── */

// TestGetInsights_HydrationOverride verifies the water reminder replaces the
// food advice after midday but not before: 100ml of a 2700ml goal is 4%.
func TestGetInsights_HydrationOverride(t *testing.T) {
	totals := dailyTotals{Calories: 1500, Water: 100, EffectiveCalorieGoal: 2250}
	afternoon := getInsights(totals, maintainGoals, goalMaintain, clockAt(13))
	if !strings.Contains(afternoon.FoodAdvice, "water goal") {
		t.Errorf("afternoon food advice = %q, want hydration override", afternoon.FoodAdvice)
	}
	morning := getInsights(totals, maintainGoals, goalMaintain, clockAt(11))
	if strings.Contains(morning.FoodAdvice, "water goal") {
		t.Errorf("morning food advice = %q, override should wait until after 12:00", morning.FoodAdvice)
	}
}
