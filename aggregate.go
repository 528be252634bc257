package main

import "time"

// sameDay reports whether a and b fall on the same calendar day; year,
// month, day-of-month equality, not a rolling 24-hour window.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// onDay converts an epoch-ms log timestamp into date's location and checks
// calendar-day equality there.
func onDay(timestampMs int64, date time.Time) bool {
	return sameDay(time.UnixMilli(timestampMs).In(date.Location()), date)
}

// aggregateDay filters both logs to the calendar day of date and reduces
// them into totals. Missing/zero fields contribute zero. Pure; no hidden
// state, identical inputs give identical totals.
func aggregateDay(foodLogs []foodLogItem, exerciseLogs []exerciseLogItem, date time.Time, goals dailyGoals) dailyTotals {
	var t dailyTotals
	for _, item := range foodLogs {
		if !onDay(item.Timestamp, date) {
			continue
		}
		t.Calories += item.Calories
		t.Protein += item.Protein
		t.Carbs += item.Carbs
		t.Fat += item.Fat
		t.Sugar += item.Sugar
		t.Fiber += item.Fiber
		t.Sodium += item.Sodium
		t.Potassium += item.Potassium
		t.Cholesterol += item.Cholesterol
		t.Water += item.Water
	}
	for _, item := range exerciseLogs {
		if !onDay(item.Timestamp, date) {
			continue
		}
		t.TotalBurned += item.CaloriesBurned
		t.ExerciseCount++
	}
	// Burned calories widen the budget ("earn your food") rather than
	// shrinking consumption. Every downstream alert/insight uses this.
	t.EffectiveCalorieGoal = goals.Calories + t.TotalBurned
	return t
}
